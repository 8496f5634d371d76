package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"vendorhub/internal/domain/entity"
	"vendorhub/internal/domain/service"

	"github.com/pkg/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryStore is an in-memory KeyValueStore with the same JSON
// serialization semantics as the file store.
type memoryStore struct {
	mu      sync.Mutex
	records map[string][]byte

	// failSet makes every Set fail, for persistence-failure scenarios.
	failSet bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: map[string][]byte{}}
}

func (s *memoryStore) Set(ctx context.Context, key string, value any) error {
	if s.failSet {
		return errors.New("disk full")
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.records[key] = raw
	s.mu.Unlock()

	return nil
}

func (s *memoryStore) Get(ctx context.Context, key string, out any) (bool, error) {
	s.mu.Lock()
	raw, ok := s.records[key]
	s.mu.Unlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, nil
	}

	return true, nil
}

func (s *memoryStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.records, key)
	s.mu.Unlock()

	return nil
}

func (s *memoryStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.records[key]

	return ok
}

// fakeAPI records calls and replays canned responses keyed by
// "METHOD path".
type fakeAPI struct {
	mu        sync.Mutex
	calls     []apiCall
	responses map[string]any
	errs      map[string]error
}

type apiCall struct {
	method string
	path   string
	body   any
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		responses: map[string]any{},
		errs:      map[string]error{},
	}
}

func (f *fakeAPI) respond(method, path string, response any) {
	f.responses[method+" "+path] = response
}

func (f *fakeAPI) fail(method, path string, err error) {
	f.errs[method+" "+path] = err
}

func (f *fakeAPI) Do(ctx context.Context, method, path string, body, out any) error {
	f.mu.Lock()
	f.calls = append(f.calls, apiCall{method: method, path: path, body: body})
	f.mu.Unlock()

	key := method + " " + path
	if err := f.errs[key]; err != nil {
		return err
	}

	if response, ok := f.responses[key]; ok && out != nil {
		raw, err := json.Marshal(response)
		if err != nil {
			return err
		}

		return json.Unmarshal(raw, out)
	}

	return nil
}

func (f *fakeAPI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.calls)
}

func (f *fakeAPI) lastCall() apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[len(f.calls)-1]
}

// staticLocation always resolves the same position.
type staticLocation struct {
	loc entity.Location
}

func (p staticLocation) Current(ctx context.Context) (*entity.Location, error) {
	loc := p.loc

	return &loc, nil
}

// deniedLocation always reports a permission denial.
type deniedLocation struct{}

func (deniedLocation) Current(ctx context.Context) (*entity.Location, error) {
	return nil, service.ErrLocationPermissionDenied
}

// neverExpireTokens treats every token as live; expiredTokens treats every
// token as stale.
type neverExpireTokens struct{}

func (neverExpireTokens) Inspect(token string) (*service.TokenClaims, error) {
	return &service.TokenClaims{}, nil
}

func (neverExpireTokens) Expired(token string) bool { return false }

type expiredTokens struct{}

func (expiredTokens) Inspect(token string) (*service.TokenClaims, error) {
	return &service.TokenClaims{}, nil
}

func (expiredTokens) Expired(token string) bool { return true }
