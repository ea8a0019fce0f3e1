package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/booklist/internal/entities"
)

// blockingSearcher lets a test decide when each query completes.
type blockingSearcher struct {
	started chan string
	release map[string]chan struct{}
	honour  bool // return ctx.Err() when the context is cancelled
}

func newBlockingSearcher(honourCancel bool, queries ...string) *blockingSearcher {
	s := &blockingSearcher{
		started: make(chan string, len(queries)),
		release: make(map[string]chan struct{}),
		honour:  honourCancel,
	}
	for _, q := range queries {
		s.release[q] = make(chan struct{})
	}
	return s
}

func (s *blockingSearcher) Search(ctx context.Context, query string) ([]entities.RankedBook, error) {
	s.started <- query
	if s.honour {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-s.release[query]:
		}
	} else {
		<-s.release[query]
	}
	return []entities.RankedBook{{Index: 1, ID: 1, Title: query}}, nil
}

func waitStarted(t *testing.T, s *blockingSearcher, query string) {
	t.Helper()
	select {
	case got := <-s.started:
		require.Equal(t, query, got)
	case <-time.After(2 * time.Second):
		t.Fatalf("search %q did not start", query)
	}
}

type outcome struct {
	result SearchResult
	err    error
}

func TestSearchSession_SingleSearchIsFresh(t *testing.T) {
	searcher := newBlockingSearcher(false, "hob")
	close(searcher.release["hob"])
	session := NewSearchSession(searcher)

	result, err := session.Search(context.Background(), "hob")
	require.NoError(t, err)
	assert.True(t, result.Fresh)
	assert.Equal(t, uint64(1), result.Seq)
	assert.Equal(t, "hob", result.Query)
	require.Len(t, result.Books, 1)
	assert.Equal(t, uint64(1), session.Latest())
}

func TestSearchSession_SupersededSearchIsCancelled(t *testing.T) {
	searcher := newBlockingSearcher(true, "h", "ho")
	session := NewSearchSession(searcher)

	first := make(chan outcome, 1)
	go func() {
		r, err := session.Search(context.Background(), "h")
		first <- outcome{r, err}
	}()
	waitStarted(t, searcher, "h")

	second := make(chan outcome, 1)
	go func() {
		r, err := session.Search(context.Background(), "ho")
		second <- outcome{r, err}
	}()
	waitStarted(t, searcher, "ho")

	old := <-first
	require.NoError(t, old.err)
	assert.False(t, old.result.Fresh)
	assert.Equal(t, uint64(1), old.result.Seq)
	assert.Nil(t, old.result.Books)

	close(searcher.release["ho"])
	latest := <-second
	require.NoError(t, latest.err)
	assert.True(t, latest.result.Fresh)
	assert.Equal(t, uint64(2), latest.result.Seq)
}

func TestSearchSession_LateResultIsStale(t *testing.T) {
	// The searcher ignores cancellation, so the old query finishes after the
	// new one and must be flagged stale.
	searcher := newBlockingSearcher(false, "h", "ho")
	session := NewSearchSession(searcher)

	first := make(chan outcome, 1)
	go func() {
		r, err := session.Search(context.Background(), "h")
		first <- outcome{r, err}
	}()
	waitStarted(t, searcher, "h")

	close(searcher.release["ho"])
	latest, err := session.Search(context.Background(), "ho")
	require.NoError(t, err)
	assert.True(t, latest.Fresh)

	close(searcher.release["h"])
	old := <-first
	require.NoError(t, old.err)
	assert.False(t, old.result.Fresh)
	assert.Len(t, old.result.Books, 1)
}

type errSearcher struct{ err error }

func (e errSearcher) Search(context.Context, string) ([]entities.RankedBook, error) {
	return nil, e.err
}

func TestSearchSession_ReturnsErrorsOfLatestSearch(t *testing.T) {
	storeErr := errors.New("boom")
	session := NewSearchSession(errSearcher{err: storeErr})

	result, err := session.Search(context.Background(), "x")
	assert.ErrorIs(t, err, storeErr)
	assert.True(t, result.Fresh)
}

func TestSearchSession_ParentCancellationIsAnError(t *testing.T) {
	searcher := newBlockingSearcher(true, "x")
	session := NewSearchSession(searcher)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan outcome, 1)
	go func() {
		r, err := session.Search(ctx, "x")
		done <- outcome{r, err}
	}()
	waitStarted(t, searcher, "x")
	cancel()

	got := <-done
	assert.ErrorIs(t, got.err, context.Canceled)
	assert.True(t, got.result.Fresh)
}
