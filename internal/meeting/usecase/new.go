package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"meetbot/internal/availability"
	"meetbot/internal/extractor"
	"meetbot/internal/meeting"
	"meetbot/internal/meeting/repository"
	"meetbot/internal/router"
	"meetbot/pkg/log"
)

const (
	defaultDedupWindow = 10 * time.Second
	dedupCacheSize     = 1024
	defaultProdID      = "-//meetbot//EN"
)

// implUseCase is the private implementation of meeting.UseCase.
type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	extractor *extractor.Extractor
	engine    *availability.Engine
	router    router.Router

	// recent maps a normalised schedule request to the meeting it created.
	recent   *expirable.LRU[string, int64]
	hooks    []meeting.Hook
	recorder meeting.Recorder
	now      func() time.Time
	prodID   string
}

// Option customises the usecase.
type Option func(*implUseCase)

// WithDedupWindow sets how long an identical schedule request returns the
// meeting it already created. Zero or less disables suppression.
func WithDedupWindow(d time.Duration) Option {
	return func(uc *implUseCase) {
		if d <= 0 {
			uc.recent = nil
			return
		}
		uc.recent = expirable.NewLRU[string, int64](dedupCacheSize, nil, d)
	}
}

// WithHooks registers hooks run after each committed schedule or cancel.
func WithHooks(hooks ...meeting.Hook) Option {
	return func(uc *implUseCase) { uc.hooks = append(uc.hooks, hooks...) }
}

// WithRecorder counts outcomes.
func WithRecorder(r meeting.Recorder) Option {
	return func(uc *implUseCase) { uc.recorder = r }
}

// WithClock replaces time.Now for export timestamps.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// WithProductID sets the PRODID of exported calendars.
func WithProductID(id string) Option {
	return func(uc *implUseCase) { uc.prodID = id }
}

// New creates a new meeting UseCase implementation.
func New(l log.Logger, repo repository.Repository, ext *extractor.Extractor, engine *availability.Engine, rt router.Router, opts ...Option) meeting.UseCase {
	uc := &implUseCase{
		l:         l,
		repo:      repo,
		extractor: ext,
		engine:    engine,
		router:    rt,
		recent:    expirable.NewLRU[string, int64](dedupCacheSize, nil, defaultDedupWindow),
		now:       time.Now,
		prodID:    defaultProdID,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
