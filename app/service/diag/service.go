// Package diag keeps the last few per-turn pipeline records ("rayos X"):
// what query was searched, what price intent was detected, how many raw
// candidates came back and which products were finally shown. Informational
// only, inspected by humans through the debug endpoint.
package diag

import (
	"sync"

	"mecabot/app/service/catalog"

	"github.com/samber/do"
)

const bufferSize = 64

type Record struct {
	SessionID string            `json:"session_id"`
	Query     string            `json:"query"`
	Intent    string            `json:"intent"`
	RawCount  int               `json:"raw_count"`
	FilterLog string            `json:"filter_log"`
	Results   []catalog.Product `json:"results"`
}

type Service struct {
	mu      sync.RWMutex
	records []Record
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{}, nil
}

func (s *Service) Add(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) >= bufferSize {
		s.records = append(s.records[1:], rec)
		return
	}

	s.records = append(s.records, rec)
}

// Recent returns the buffered records, oldest first.
func (s *Service) Recent() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)

	return out
}
