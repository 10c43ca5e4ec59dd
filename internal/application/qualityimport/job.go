package qualityimport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/pkg/id"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/pkg/validate"
	"go.uber.org/zap"
)

// ReportRecord is one weekly measurement as submitted in a report file.
type ReportRecord struct {
	SystemID        string  `json:"systemId" validate:"required" message:"systemId is required"`
	Week            string  `json:"week" validate:"required" message:"week is required"`
	TotalTestCases  int     `json:"totalTestCases" validate:"gte=0" message:"totalTestCases must not be negative"`
	PassedTestCases int     `json:"passedTestCases" validate:"gte=0,ltefield=TotalTestCases" message:"passedTestCases must be between 0 and totalTestCases"`
	Defects         int     `json:"defects" validate:"gte=0" message:"defects must not be negative"`
	Coverage        float64 `json:"coverage" validate:"gte=0,lte=100" message:"coverage must be between 0 and 100"`
	ReporterEmail   string  `json:"reporterEmail" validate:"required,email" message:"reporterEmail must be a valid email address"`
}

// Rejection explains why one record of a report was not imported.
type Rejection struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// Summary is the per-report outcome uploaded next to the processed reports.
type Summary struct {
	Report     string      `json:"report"`
	Imported   int         `json:"imported"`
	Rejected   int         `json:"rejected"`
	Rejections []Rejection `json:"rejections"`
	FinishedAt time.Time   `json:"finishedAt"`
}

type objectStore interface {
	ListKeys(ctx context.Context, prefix string) ([]string, error)
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
}

type systemStore interface {
	Get(ctx context.Context, systemID string) (*domain.System, error)
}

type userStore interface {
	ExistsByEmailAndStatus(ctx context.Context, email, status string) (bool, error)
}

type qualityStore interface {
	Put(ctx context.Context, q *domain.SystemQuality) error
}

// Job imports weekly quality reports from object storage into the
// system_qualities table.
type Job struct {
	store         objectStore
	systems       systemStore
	users         userStore
	qualities     qualityStore
	log           *zap.Logger
	reportPrefix  string
	summaryPrefix string
	now           func() time.Time
}

type JobDeps struct {
	Store         objectStore
	SystemRepo    systemStore
	UserRepo      userStore
	QualityRepo   qualityStore
	Logger        *zap.Logger
	ReportPrefix  string
	SummaryPrefix string
}

func NewJob(deps JobDeps) *Job {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Job{
		store:         deps.Store,
		systems:       deps.SystemRepo,
		users:         deps.UserRepo,
		qualities:     deps.QualityRepo,
		log:           log,
		reportPrefix:  deps.ReportPrefix,
		summaryPrefix: deps.SummaryPrefix,
		now:           time.Now,
	}
}

// Run processes every .json report under the report prefix, one at a time.
// A report whose summary is already stored was imported by an earlier run and
// is skipped. Only a failure to list reports aborts the run. A report that
// cannot be read is logged and skipped.
func (j *Job) Run(ctx context.Context) ([]Summary, error) {
	keys, err := j.store.ListKeys(ctx, j.reportPrefix)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	summaries := []Summary{}
	for _, key := range keys {
		if !strings.HasSuffix(strings.ToLower(key), ".json") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return summaries, err
		}
		done, err := j.store.Exists(ctx, j.summaryKey(key))
		if err != nil {
			j.log.Warn("skipping report, cannot check summary", zap.String("key", key), zap.Error(err))
			continue
		}
		if done {
			j.log.Debug("report already imported", zap.String("key", key))
			continue
		}
		s, err := j.importReport(ctx, key)
		if err != nil {
			j.log.Warn("skipping report", zap.String("key", key), zap.Error(err))
			continue
		}
		if err := j.uploadSummary(ctx, s); err != nil {
			j.log.Error("could not upload summary, report will be imported again", zap.String("key", key), zap.Error(err))
		}
		j.log.Info("imported report",
			zap.String("key", key),
			zap.Int("imported", s.Imported),
			zap.Int("rejected", s.Rejected),
		)
		summaries = append(summaries, *s)
	}
	return summaries, nil
}

func (j *Job) importReport(ctx context.Context, key string) (*Summary, error) {
	rc, err := j.store.Download(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var records []ReportRecord
	if err := json.NewDecoder(rc).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}

	s := &Summary{Report: path.Base(key), Rejections: []Rejection{}}
	for i, rec := range records {
		if err := j.importRecord(ctx, rec); err != nil {
			s.Rejected++
			s.Rejections = append(s.Rejections, Rejection{Index: i, Reason: err.Error()})
			j.log.Debug("rejected record", zap.String("key", key), zap.Int("index", i), zap.Error(err))
			continue
		}
		s.Imported++
	}
	s.FinishedAt = j.now().UTC()
	return s, nil
}

func (j *Job) importRecord(ctx context.Context, rec ReportRecord) error {
	if err := validate.Struct(rec); err != nil {
		return err
	}
	if _, err := j.systems.Get(ctx, rec.SystemID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound(domain.MissingSystem)
		}
		return err
	}
	active, err := j.users.ExistsByEmailAndStatus(ctx, rec.ReporterEmail, domain.UserStatusActive)
	if err != nil {
		return err
	}
	if !active {
		return domain.NotFound(domain.MissingUser)
	}
	return j.qualities.Put(ctx, &domain.SystemQuality{
		SystemQualityID: id.New(),
		SystemID:        rec.SystemID,
		Week:            rec.Week,
		TotalTestCases:  rec.TotalTestCases,
		PassedTestCases: rec.PassedTestCases,
		Defects:         rec.Defects,
		Coverage:        rec.Coverage,
		ReporterEmail:   rec.ReporterEmail,
		CreatedAt:       j.now().UTC(),
	})
}

// summaryKey is where the summary of the report at key is stored.
func (j *Job) summaryKey(key string) string {
	return path.Join(j.summaryPrefix, path.Base(key))
}

func (j *Job) uploadSummary(ctx context.Context, s *Summary) error {
	body, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = j.store.Upload(ctx, j.summaryKey(s.Report), bytes.NewReader(body), "application/json")
	return err
}
