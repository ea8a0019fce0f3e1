package services

import (
	"context"
	"errors"
	"sync"

	"github.com/mrlokans/booklist/internal/entities"
)

// SearchResult is a search snapshot tagged with the sequence number of the
// request that produced it.
type SearchResult struct {
	Seq   uint64
	Query string
	Books []entities.RankedBook
	// Fresh is false when a newer search was issued before this one finished.
	// Callers should drop stale results.
	Fresh bool
}

// SearchSession serialises the results of searches issued as a user types.
// Each new search cancels the one still in flight, and results are tagged so
// a late answer to an old query never replaces a newer one.
type SearchSession struct {
	searcher BookSearcher

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

func NewSearchSession(searcher BookSearcher) *SearchSession {
	return &SearchSession{searcher: searcher}
}

// Search runs query and reports whether its result is still the latest.
// A search cancelled because it was superseded returns a stale result and a
// nil error.
func (s *SearchSession) Search(ctx context.Context, query string) (SearchResult, error) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	if s.cancel != nil {
		s.cancel()
	}
	searchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	books, err := s.searcher.Search(searchCtx, query)

	s.mu.Lock()
	fresh := seq == s.seq
	if fresh {
		s.cancel = nil
	}
	s.mu.Unlock()
	cancel()

	result := SearchResult{Seq: seq, Query: query, Fresh: fresh}
	if err != nil {
		if !fresh && errors.Is(err, context.Canceled) {
			return result, nil
		}
		return result, err
	}
	result.Books = books
	return result, nil
}

// Latest returns the sequence number of the most recently issued search.
func (s *SearchSession) Latest() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}
