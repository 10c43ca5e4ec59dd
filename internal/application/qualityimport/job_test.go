package qualityimport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// --- mocks ---

type mockObjectStore struct {
	mock.Mock
	uploaded  map[string][]byte
	existsErr error
}

func (m *mockObjectStore) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	keys, _ := args.Get(0).([]string)
	return keys, args.Error(1)
}
func (m *mockObjectStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if s, ok := args.Get(0).(string); ok {
		return io.NopCloser(bytes.NewBufferString(s)), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockObjectStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	b, _ := io.ReadAll(r)
	if m.uploaded == nil {
		m.uploaded = map[string][]byte{}
	}
	m.uploaded[key] = b
	args := m.Called(ctx, key, contentType)
	return args.String(0), args.Error(1)
}

// Exists reports objects uploaded through this store, so summaries written by
// one run are visible to the next.
func (m *mockObjectStore) Exists(_ context.Context, key string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.uploaded[key]
	return ok, nil
}

type mockSystemStore struct{ mock.Mock }

func (m *mockSystemStore) Get(ctx context.Context, systemID string) (*domain.System, error) {
	args := m.Called(ctx, systemID)
	if s, _ := args.Get(0).(*domain.System); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) ExistsByEmailAndStatus(ctx context.Context, email, status string) (bool, error) {
	args := m.Called(ctx, email, status)
	return args.Bool(0), args.Error(1)
}

type mockQualityStore struct{ mock.Mock }

func (m *mockQualityStore) Put(ctx context.Context, q *domain.SystemQuality) error {
	return m.Called(ctx, q).Error(0)
}

// --- helpers ---

var fixedNow = time.Date(2026, 10, 12, 3, 0, 0, 0, time.UTC)

func newJob(st *mockObjectStore, ss *mockSystemStore, us *mockUserStore, qs *mockQualityStore) *Job {
	j := NewJob(JobDeps{
		Store:         st,
		SystemRepo:    ss,
		UserRepo:      us,
		QualityRepo:   qs,
		Logger:        zap.NewNop(),
		ReportPrefix:  "reports/incoming/",
		SummaryPrefix: "reports/summaries/",
	})
	j.now = func() time.Time { return fixedNow }
	return j
}

func report(t *testing.T, recs ...ReportRecord) string {
	t.Helper()
	b, err := json.Marshal(recs)
	require.NoError(t, err)
	return string(b)
}

func goodRecord() ReportRecord {
	return ReportRecord{
		SystemID:        "s1",
		Week:            "2026-W41",
		TotalTestCases:  120,
		PassedTestCases: 117,
		Defects:         2,
		Coverage:        81.5,
		ReporterEmail:   "qa@example.com",
	}
}

// --- tests ---

func TestRun_ListFailureAborts(t *testing.T) {
	st := &mockObjectStore{}
	st.On("ListKeys", mock.Anything, "reports/incoming/").Return(nil, errors.New("access denied"))

	_, err := newJob(st, nil, nil, nil).Run(context.Background())
	assert.ErrorContains(t, err, "list reports")
}

func TestRun_ImportsAndRejects(t *testing.T) {
	st := &mockObjectStore{}
	ss := &mockSystemStore{}
	us := &mockUserStore{}
	qs := &mockQualityStore{}

	bad := goodRecord()
	bad.PassedTestCases = 500
	unknownSystem := goodRecord()
	unknownSystem.SystemID = "s404"
	withdrawnReporter := goodRecord()
	withdrawnReporter.ReporterEmail = "gone@example.com"

	st.On("ListKeys", mock.Anything, "reports/incoming/").Return([]string{
		"reports/incoming/",
		"reports/incoming/week41.json",
		"reports/incoming/readme.txt",
	}, nil)
	st.On("Download", mock.Anything, "reports/incoming/week41.json").
		Return(report(t, goodRecord(), bad, unknownSystem, withdrawnReporter), nil)
	st.On("Upload", mock.Anything, "reports/summaries/week41.json", "application/json").Return("s3://b/k", nil)
	ss.On("Get", mock.Anything, "s1").Return(&domain.System{SystemID: "s1"}, nil)
	ss.On("Get", mock.Anything, "s404").Return(nil, domain.ErrNotFound)
	us.On("ExistsByEmailAndStatus", mock.Anything, "qa@example.com", domain.UserStatusActive).Return(true, nil)
	us.On("ExistsByEmailAndStatus", mock.Anything, "gone@example.com", domain.UserStatusActive).Return(false, nil)
	qs.On("Put", mock.Anything, mock.MatchedBy(func(q *domain.SystemQuality) bool {
		return q.SystemID == "s1" && q.Week == "2026-W41" && q.SystemQualityID != ""
	})).Return(nil).Once()

	summaries, err := newJob(st, ss, us, qs).Run(context.Background())

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	s := summaries[0]
	assert.Equal(t, "week41.json", s.Report)
	assert.Equal(t, 1, s.Imported)
	assert.Equal(t, 3, s.Rejected)
	assert.Equal(t, []int{1, 2, 3}, []int{s.Rejections[0].Index, s.Rejections[1].Index, s.Rejections[2].Index})
	assert.Contains(t, s.Rejections[0].Reason, "passedTestCases must be between 0 and totalTestCases")
	assert.Equal(t, "system not found", s.Rejections[1].Reason)
	assert.Equal(t, "user not found", s.Rejections[2].Reason)

	var uploaded Summary
	require.NoError(t, json.Unmarshal(st.uploaded["reports/summaries/week41.json"], &uploaded))
	assert.Equal(t, 1, uploaded.Imported)
	assert.Equal(t, fixedNow, uploaded.FinishedAt)
	qs.AssertExpectations(t)
}

func TestRun_UnreadableReportIsSkipped(t *testing.T) {
	st := &mockObjectStore{}
	st.On("ListKeys", mock.Anything, mock.Anything).Return([]string{"reports/incoming/a.json", "reports/incoming/b.json"}, nil)
	st.On("Download", mock.Anything, "reports/incoming/a.json").Return("{not json", nil)
	st.On("Download", mock.Anything, "reports/incoming/b.json").Return("[]", nil)
	st.On("Upload", mock.Anything, "reports/summaries/b.json", "application/json").Return("", nil)

	summaries, err := newJob(st, nil, nil, nil).Run(context.Background())

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "b.json", summaries[0].Report)
	assert.Zero(t, summaries[0].Imported)
}

func TestRun_StoreErrorRejectsRecordOnly(t *testing.T) {
	st := &mockObjectStore{}
	ss := &mockSystemStore{}
	us := &mockUserStore{}
	qs := &mockQualityStore{}
	st.On("ListKeys", mock.Anything, mock.Anything).Return([]string{"reports/incoming/a.json"}, nil)
	st.On("Download", mock.Anything, mock.Anything).Return(report(t, goodRecord(), goodRecord()), nil)
	st.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return("", nil)
	ss.On("Get", mock.Anything, "s1").Return(&domain.System{SystemID: "s1"}, nil)
	us.On("ExistsByEmailAndStatus", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	qs.On("Put", mock.Anything, mock.Anything).Return(errors.New("throttled")).Once()
	qs.On("Put", mock.Anything, mock.Anything).Return(nil).Once()

	summaries, err := newJob(st, ss, us, qs).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summaries[0].Imported)
	assert.Equal(t, 1, summaries[0].Rejected)
}

func TestRun_SecondRunSkipsImportedReports(t *testing.T) {
	st := &mockObjectStore{}
	ss := &mockSystemStore{}
	us := &mockUserStore{}
	qs := &mockQualityStore{}
	st.On("ListKeys", mock.Anything, "reports/incoming/").Return([]string{"reports/incoming/week41.json"}, nil)
	st.On("Download", mock.Anything, "reports/incoming/week41.json").Return(report(t, goodRecord(), goodRecord()), nil).Once()
	st.On("Upload", mock.Anything, "reports/summaries/week41.json", "application/json").Return("", nil).Once()
	ss.On("Get", mock.Anything, "s1").Return(&domain.System{SystemID: "s1"}, nil)
	us.On("ExistsByEmailAndStatus", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	qs.On("Put", mock.Anything, mock.Anything).Return(nil)

	job := newJob(st, ss, us, qs)
	first, err := job.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, second)

	qs.AssertNumberOfCalls(t, "Put", 2)
	st.AssertNumberOfCalls(t, "Download", 1)
	st.AssertNumberOfCalls(t, "Upload", 1)
}

func TestRun_SummaryCheckFailureSkipsReport(t *testing.T) {
	st := &mockObjectStore{existsErr: errors.New("access denied")}
	st.On("ListKeys", mock.Anything, mock.Anything).Return([]string{"reports/incoming/a.json"}, nil)

	summaries, err := newJob(st, nil, nil, nil).Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, summaries)
	st.AssertNotCalled(t, "Download", mock.Anything, mock.Anything)
}
