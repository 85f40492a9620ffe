package store

import (
	"context"
	"errors"

	"github.com/gogotex/qa-service/pkg/metrics"
)

// Instrumented wraps a Store and counts every call in
// metrics.StoreOperations under the given backend label.
type Instrumented struct {
	next    Store
	backend string
}

func NewInstrumented(next Store, backend string) *Instrumented {
	return &Instrumented{next: next, backend: backend}
}

func (s *Instrumented) observe(op string, err error) {
	outcome := metrics.OutcomeOK
	switch {
	case errors.Is(err, ErrNotFound):
		outcome = metrics.OutcomeNotFound
	case err != nil:
		outcome = metrics.OutcomeError
	}
	metrics.StoreOperations.WithLabelValues(s.backend, op, outcome).Inc()
}

func (s *Instrumented) NewID(collection string) string {
	return s.next.NewID(collection)
}

func (s *Instrumented) Set(ctx context.Context, collection, id string, doc Document) error {
	err := s.next.Set(ctx, collection, id, doc)
	s.observe("set", err)
	return err
}

func (s *Instrumented) Get(ctx context.Context, collection, id string) (Document, error) {
	d, err := s.next.Get(ctx, collection, id)
	s.observe("get", err)
	return d, err
}

func (s *Instrumented) All(ctx context.Context, collection string) ([]Document, error) {
	docs, err := s.next.All(ctx, collection)
	s.observe("all", err)
	return docs, err
}

func (s *Instrumented) Where(ctx context.Context, collection, field string, value interface{}) ([]Document, error) {
	docs, err := s.next.Where(ctx, collection, field, value)
	s.observe("where", err)
	return docs, err
}

func (s *Instrumented) Ping(ctx context.Context) error {
	return Ping(ctx, s.next)
}
