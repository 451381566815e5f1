// Package workflow is the application layer around the duplicate check and
// the transition policy. It fetches issues from the store, runs the pure
// checks over them and writes back only what the checks allow.
package workflow

import (
	"errors"
	"time"

	"github.com/Kavirubc/gh-tracker/internal/identity"
	"github.com/Kavirubc/gh-tracker/internal/similarity"
	"github.com/Kavirubc/gh-tracker/internal/store"
	"go.uber.org/zap"
)

// Options holds the collaborators of a Service
type Options struct {
	Store      store.Store
	Identity   identity.Provider
	Engine     *similarity.Engine
	Collection string
	Logger     *zap.Logger
	Now        func() time.Time
}

// Service runs tracker operations against a store
type Service struct {
	store      store.Store
	identity   identity.Provider
	engine     *similarity.Engine
	collection string
	logger     *zap.Logger
	now        func() time.Time
}

// New creates a service. Store is required; the engine defaults to
// similarity.DefaultOptions and the collection to store.DefaultCollection.
func New(opts Options) (*Service, error) {
	if opts.Store == nil {
		return nil, errors.New("store is required")
	}

	s := &Service{
		store:      opts.Store,
		identity:   opts.Identity,
		engine:     opts.Engine,
		collection: opts.Collection,
		logger:     opts.Logger,
		now:        opts.Now,
	}
	if s.engine == nil {
		s.engine = similarity.New(similarity.DefaultOptions())
	}
	if s.collection == "" {
		s.collection = store.DefaultCollection
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s, nil
}

// Engine returns the similarity engine in use
func (s *Service) Engine() *similarity.Engine {
	return s.engine
}
