package clients

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Customer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerAPI is the search-by-name call the Searcher debounces.
type CustomerAPI interface {
	SearchCustomersByName(ctx context.Context, name string) ([]Customer, error)
}

// CustomerClient talks to the customer service.
type CustomerClient struct {
	*Client
}

func NewCustomerClient(baseURL string, headers func() http.Header) *CustomerClient {
	return &CustomerClient{Client: New(baseURL, headers)}
}

var _ CustomerAPI = (*CustomerClient)(nil)

func (c *CustomerClient) SearchCustomersByName(ctx context.Context, name string) ([]Customer, error) {
	var customers []Customer
	path := "/customers/search?name=" + url.QueryEscape(name)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &customers, requestOpts{}); err != nil {
		return nil, err
	}
	return customers, nil
}

// Searcher debounces search-as-you-type customer lookups on the trailing
// edge and sequences requests so a slow stale query can never overwrite
// the result of a newer one.
type Searcher struct {
	api      CustomerAPI
	debounce time.Duration
	logger   *zap.Logger

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

func NewSearcher(api CustomerAPI, debounce time.Duration, logger *zap.Logger) *Searcher {
	return &Searcher{api: api, debounce: debounce, logger: logger}
}

// Search schedules a lookup for query and calls apply with the results
// once it completes, unless a newer query was issued in the meantime. An
// empty query clears the options immediately and supersedes anything in
// flight.
func (s *Searcher) Search(ctx context.Context, query string, apply func([]Customer)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.seq++
	seq := s.seq

	if query == "" {
		apply(nil)
		return
	}

	s.timer = time.AfterFunc(s.debounce, func() {
		customers, err := s.api.SearchCustomersByName(ctx, query)
		if err != nil {
			s.logger.Warn("Customer search failed", zap.String("query", query), zap.Error(err))
			return
		}

		s.mu.Lock()
		latest := seq == s.seq
		s.mu.Unlock()
		if latest {
			apply(customers)
		}
	})
}
