package axonops

import (
	"bytes"
	"context"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/internal/core/ports"
	"github.com/olusolaa/axonops-importer/internal/errors"
	"github.com/olusolaa/axonops-importer/internal/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Session is the fail-soft view of the API handed to one exporter. Every
// failure is logged once with its URL and then reported as absence.
type Session struct {
	fetcher ports.Fetcher
	logger  ports.Logger
	stats   domain.FetchStats
}

func NewSession(fetcher ports.Fetcher, logger ports.Logger) *Session {
	if logger == nil {
		logger = log.Discard()
	}
	return &Session{fetcher: fetcher, logger: logger}
}

func (s *Session) Decode(ctx context.Context, path string, out any) bool {
	s.stats.Requests++
	res := s.fetcher.Get(ctx, path)
	if !res.OK() {
		s.fail(ctx, res.URL, res.Err)
		return false
	}

	if len(bytes.TrimSpace(res.Body)) == 0 {
		s.fail(ctx, res.URL, errors.New(errors.CodeDecodeError, "empty response body"))
		return false
	}
	if err := json.Unmarshal(res.Body, out); err != nil {
		s.fail(ctx, res.URL, errors.Wrap(err, errors.CodeDecodeError, "malformed response body"))
		return false
	}
	return true
}

func (s *Session) Stats() domain.FetchStats {
	return s.stats
}

func (s *Session) fail(ctx context.Context, url string, err error) {
	code := errors.GetCode(err)
	if code == errors.CodeResourceNotFound {
		s.stats.NotFound++
	} else {
		s.stats.Failures++
	}
	s.logger.WithFields(map[string]any{"url": url, "error_code": code.String()}).
		Warnf(ctx, "Request failed, treating as absent: %v", err)
}
