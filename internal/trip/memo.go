package trip

import (
	"context"
	"sync"
)

// Memo is an explicit request-scoped cache: repeated service calls within
// one incoming request resolve each key at most once, so rendering a page
// that needs both the trip data and the password config costs one query.
// A Memo lives for one request and is discarded with it.
type Memo struct {
	mu      sync.Mutex
	entries map[string]memoEntry
}

type memoEntry struct {
	val any
	err error
}

func NewMemo() *Memo {
	return &Memo{entries: make(map[string]memoEntry)}
}

// do returns the cached outcome for key, running fn on the first call.
// Errors are cached too: a failed fetch is not retried within the request.
func (m *Memo) do(key string, fn func() (any, error)) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[key]; ok {
		return e.val, e.err
	}
	val, err := fn()
	m.entries[key] = memoEntry{val: val, err: err}
	return val, err
}

type memoCtxKey struct{}

// WithMemo attaches a fresh Memo to ctx. The HTTP layer calls this once per
// incoming request.
func WithMemo(ctx context.Context) context.Context {
	return context.WithValue(ctx, memoCtxKey{}, NewMemo())
}

// memoDo runs fn through the context's Memo when one is attached, and
// directly otherwise.
func memoDo(ctx context.Context, key string, fn func() (any, error)) (any, error) {
	m, ok := ctx.Value(memoCtxKey{}).(*Memo)
	if !ok {
		return fn()
	}
	return m.do(key, fn)
}
