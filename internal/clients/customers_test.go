package clients_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/YaminiCharan14/linen/internal/clients"
)

// stubCustomerAPI answers each query after a per-query delay, so tests
// can make an earlier request resolve after a later one.
type stubCustomerAPI struct {
	mu      sync.Mutex
	delays  map[string]time.Duration
	queries []string
}

func (s *stubCustomerAPI) SearchCustomersByName(_ context.Context, name string) ([]clients.Customer, error) {
	s.mu.Lock()
	delay := s.delays[name]
	s.queries = append(s.queries, name)
	s.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	return []clients.Customer{{ID: name, Name: name}}, nil
}

func (s *stubCustomerAPI) calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

type resultSink struct {
	mu      sync.Mutex
	applied [][]clients.Customer
}

func (r *resultSink) apply(customers []clients.Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applied = append(r.applied, customers)
}

func (r *resultSink) last() []clients.Customer {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.applied) == 0 {
		return nil
	}
	return r.applied[len(r.applied)-1]
}

func (r *resultSink) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.applied)
}

func TestSearcherDebounceTrailingEdge(t *testing.T) {
	api := &stubCustomerAPI{delays: map[string]time.Duration{}}
	sink := &resultSink{}
	s := clients.NewSearcher(api, 20*time.Millisecond, zap.NewNop())

	// rapid typing: only the last keystroke should hit the API
	s.Search(context.Background(), "a", sink.apply)
	s.Search(context.Background(), "ac", sink.apply)
	s.Search(context.Background(), "acme", sink.apply)

	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, []string{"acme"}, api.calls())
	assert.Equal(t, 1, sink.count())
	assert.Equal(t, "acme", sink.last()[0].Name)
}

func TestSearcherDropsStaleResults(t *testing.T) {
	api := &stubCustomerAPI{delays: map[string]time.Duration{
		"slow": 80 * time.Millisecond,
	}}
	sink := &resultSink{}
	s := clients.NewSearcher(api, time.Millisecond, zap.NewNop())

	s.Search(context.Background(), "slow", sink.apply)
	time.Sleep(20 * time.Millisecond) // let the slow request launch
	s.Search(context.Background(), "fast", sink.apply)

	time.Sleep(200 * time.Millisecond)

	// the slow query resolved last but must not overwrite the fast one
	assert.Equal(t, 1, sink.count())
	assert.Equal(t, "fast", sink.last()[0].Name)
}

func TestSearcherEmptyQueryClearsImmediately(t *testing.T) {
	api := &stubCustomerAPI{delays: map[string]time.Duration{}}
	sink := &resultSink{}
	s := clients.NewSearcher(api, 10*time.Millisecond, zap.NewNop())

	s.Search(context.Background(), "acme", sink.apply)
	s.Search(context.Background(), "", sink.apply)

	time.Sleep(50 * time.Millisecond)

	assert.Empty(t, api.calls(), "clearing cancels the pending lookup")
	assert.Equal(t, 1, sink.count())
	assert.Nil(t, sink.last())
}
