package engine

import (
	"context"
	"errors"

	"github.com/blade-kv/blade/internal/config"
	"github.com/blade-kv/blade/internal/key"
	"github.com/blade-kv/blade/internal/store"
)

// Engine is the facade over the key codec, the store and the resolved
// configuration. It is cheap to construct; the backend is opened per
// operation and released before the operation returns.
type Engine struct {
	cfg config.Config
}

// New creates an engine over a resolved configuration.
func New(cfg config.Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the resolved configuration the engine runs with.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// Item is one listing row: the display key (namespace suffix stripped)
// and its value.
type Item struct {
	Key   string
	Value []byte
}

// Get returns the value stored under the external key.
// Returns a NOT_FOUND Error when the key is absent.
func (e *Engine) Get(ctx context.Context, externalKey string) ([]byte, error) {
	s, err := store.Open(e.cfg)
	if err != nil {
		return nil, wrapStorageError("open store", err)
	}
	defer s.Close()

	k := key.Parse(externalKey)
	value, err := s.Get(ctx, k.Namespace, k.Local)
	if errors.Is(err, store.ErrNotFound) {
		return nil, NewNotFoundError(externalKey, err)
	}
	if err != nil {
		return nil, wrapStorageError("get", err)
	}
	return value, nil
}

// Set upserts the value under the external key. Overwriting an existing
// key moves it to the front of recency order.
func (e *Engine) Set(ctx context.Context, externalKey string, value []byte) error {
	s, err := store.Open(e.cfg)
	if err != nil {
		return wrapStorageError("open store", err)
	}
	defer s.Close()

	k := key.Parse(externalKey)
	if err := s.Set(ctx, k.Namespace, k.Local, value); err != nil {
		return wrapStorageError("set", err)
	}
	return nil
}

// Delete removes the entry under the external key. Deleting an absent key
// succeeds.
func (e *Engine) Delete(ctx context.Context, externalKey string) error {
	s, err := store.Open(e.cfg)
	if err != nil {
		return wrapStorageError("open store", err)
	}
	defer s.Close()

	k := key.Parse(externalKey)
	if err := s.Delete(ctx, k.Namespace, k.Local); err != nil {
		return wrapStorageError("delete", err)
	}
	return nil
}

// List returns the namespace's entries most-recent-first. The empty
// namespace lists unqualified keys.
func (e *Engine) List(ctx context.Context, namespace string) ([]Item, error) {
	s, err := store.Open(e.cfg)
	if err != nil {
		return nil, wrapStorageError("open store", err)
	}
	defer s.Close()

	entries, err := s.List(ctx, namespace)
	if err != nil {
		return nil, wrapStorageError("list", err)
	}

	items := make([]Item, len(entries))
	for i, entry := range entries {
		items[i] = Item{Key: entry.Key, Value: entry.Value}
	}
	return items, nil
}

// Namespaces returns every namespace holding at least one entry, ascending.
func (e *Engine) Namespaces(ctx context.Context) ([]string, error) {
	s, err := store.Open(e.cfg)
	if err != nil {
		return nil, wrapStorageError("open store", err)
	}
	defer s.Close()

	namespaces, err := s.Namespaces(ctx)
	if err != nil {
		return nil, wrapStorageError("list namespaces", err)
	}
	return namespaces, nil
}

// DumpConfig renders the resolved configuration as key = value lines.
func (e *Engine) DumpConfig() string {
	return e.cfg.Dump()
}
