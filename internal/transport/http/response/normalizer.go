// Package response renders handler results and failures into the JSON
// envelope shared by every endpoint.
package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	"go.uber.org/zap"
)

// separator joins field messages of a validation failure.
const separator = ", "

type entry struct {
	status  int
	message string
}

var (
	duplicates = map[domain.Duplicate]entry{
		domain.DuplicateEmail:    {http.StatusConflict, "email already exists"},
		domain.DuplicateNickname: {http.StatusConflict, "nickname already exists"},
		domain.DuplicateMemo:     {http.StatusConflict, "memo already exists"},
	}
	missing = map[domain.Missing]entry{
		domain.MissingAuthority: {http.StatusNotFound, "authority not found"},
		domain.MissingUser:      {http.StatusNotFound, "user not found"},
		domain.MissingTeam:      {http.StatusNotFound, "team not found"},
		domain.MissingSystem:    {http.StatusNotFound, "system not found"},
		domain.MissingMemo:      {http.StatusNotFound, "memo not found"},
	}

	unauthorized   = entry{http.StatusUnauthorized, "unauthorized user"}
	badCredentials = entry{http.StatusUnauthorized, "password does not match"}
	invalidRequest = entry{http.StatusBadRequest, "invalid request"}
	internalError  = entry{http.StatusInternalServerError, "internal server error"}
)

// Normalizer maps failures onto the fixed (status, message) table and writes
// them as ErrorResponse bodies. It holds no mutable state.
type Normalizer struct {
	log *zap.Logger
	now func() time.Time
}

func NewNormalizer(log *zap.Logger) *Normalizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Normalizer{log: log, now: func() time.Time { return time.Now().UTC() }}
}

// Normalize returns the HTTP status and body for f. It never panics.
func (n *Normalizer) Normalize(f domain.Failure) (int, ErrorResponse) {
	return n.normalize(f, f)
}

// Write is the single edge where request errors become responses. Errors
// whose chain holds no domain.Failure are logged in full and rendered as a
// generic 500.
func (n *Normalizer) Write(w http.ResponseWriter, err error) {
	var f domain.Failure
	if errors.As(err, &f) {
		status, body := n.normalize(f, err)
		writeJSON(w, status, body)
		return
	}
	n.log.Error("unhandled request error", zap.Error(err))
	writeJSON(w, internalError.status, n.body(internalError))
}

func (n *Normalizer) normalize(f domain.Failure, cause error) (int, ErrorResponse) {
	e := lookup(f)
	n.log.Debug("request failure handled",
		zap.String("failure", fmt.Sprintf("%T", f)),
		zap.Int("status", e.status),
		zap.Error(cause),
	)
	return e.status, n.body(e)
}

func (n *Normalizer) body(e entry) ErrorResponse {
	return ErrorResponse{
		IsSuccess:  false,
		StatusCode: e.status,
		Message:    e.message,
		Timestamp:  n.now(),
	}
}

func lookup(f domain.Failure) entry {
	switch f := f.(type) {
	case *domain.ValidationFailure:
		if f == nil || len(f.Fields) == 0 {
			return invalidRequest
		}
		return entry{http.StatusBadRequest, Aggregate(f.Fields)}
	case *domain.DuplicateFailure:
		if f != nil {
			if e, ok := duplicates[f.Resource]; ok {
				return e
			}
		}
	case *domain.NotFoundFailure:
		if f != nil {
			if e, ok := missing[f.Resource]; ok {
				return e
			}
		}
	case *domain.AuthFailure:
		return unauthorized
	case *domain.CredentialMismatch:
		return badCredentials
	}
	return internalError
}

// Aggregate appends each field message followed by the separator, then
// removes the last occurrence of the separator. With no fields the result is
// empty.
func Aggregate(fields []domain.FieldError) string {
	var b strings.Builder
	for _, fe := range fields {
		b.WriteString(fe.Message)
		b.WriteString(separator)
	}
	s := b.String()
	if i := strings.LastIndex(s, separator); i >= 0 {
		s = s[:i] + s[i+len(separator):]
	}
	return s
}
