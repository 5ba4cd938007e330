package teststubs

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/preston-bernstein/superliga-data-service/internal/domain/news"
)

// StubProvider is a test double for providers.FootballProvider.
// Errs, when set, are returned in order for the first calls before falling back to Err/Records.
type StubProvider struct {
	Records  []json.RawMessage
	ByAction map[string][]json.RawMessage
	Err      error
	Errs     []error
	Delay    time.Duration
	Calls    atomic.Int32
	Notify   chan struct{}

	mu         sync.Mutex
	lastAction string
	lastParams url.Values
}

// Fetch returns configured records and error while tracking calls.
func (s *StubProvider) Fetch(ctx context.Context, action string, params url.Values) ([]json.RawMessage, error) {
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	n := int(s.Calls.Add(1))

	s.mu.Lock()
	s.lastAction = action
	s.lastParams = params
	s.mu.Unlock()

	if s.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.Delay):
		}
	}
	if n <= len(s.Errs) && s.Errs[n-1] != nil {
		return nil, s.Errs[n-1]
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if recs, ok := s.ByAction[action]; ok {
		return recs, nil
	}
	return s.Records, nil
}

// Last returns the action and params of the most recent call.
func (s *StubProvider) Last() (string, url.Values) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAction, s.lastParams
}

// StubNewsProvider is a test double for providers.NewsProvider.
type StubNewsProvider struct {
	Resp  news.Response
	Err   error
	Errs  []error
	Calls atomic.Int32
}

// FetchNews returns the configured response and error while tracking calls.
func (s *StubNewsProvider) FetchNews(ctx context.Context) (news.Response, error) {
	_ = ctx
	n := int(s.Calls.Add(1))
	if n <= len(s.Errs) && s.Errs[n-1] != nil {
		return news.Response{}, s.Errs[n-1]
	}
	return s.Resp, s.Err
}

// Raw marshals values into raw JSON records; it panics on marshal failure and is intended for tests.
func Raw(values ...any) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(values))
	for _, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			panic(err)
		}
		out = append(out, b)
	}
	return out
}
