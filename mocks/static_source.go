package mocks

import (
	"context"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/axonops-importer/internal/core/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StaticSource serves canned JSON bodies keyed by request path. Paths without
// a body, or with a body that does not decode, are absent.
type StaticSource struct {
	Bodies    map[string]string
	Requested []string
	stats     domain.FetchStats
}

func NewStaticSource(bodies map[string]string) *StaticSource {
	return &StaticSource{Bodies: bodies}
}

func (s *StaticSource) Decode(_ context.Context, path string, out any) bool {
	s.Requested = append(s.Requested, path)
	s.stats.Requests++
	body, ok := s.Bodies[path]
	if !ok {
		s.stats.Failures++
		return false
	}
	if err := json.Unmarshal([]byte(body), out); err != nil {
		s.stats.Failures++
		return false
	}
	return true
}

func (s *StaticSource) Stats() domain.FetchStats {
	return s.stats
}
