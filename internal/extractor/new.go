package extractor

import (
	"time"

	"meetbot/pkg/datemath"
)

const defaultTitleMaxLen = 100

// Extractor turns free text into typed scheduling requests. It is safe for
// concurrent use: the only state is the clock and the matcher list.
type Extractor struct {
	parser      *datemath.Parser
	now         func() time.Time
	titleMaxLen int
	dates       []dateMatcher
}

// Option customises an Extractor.
type Option func(*Extractor)

// WithClock replaces time.Now as the reference for relative dates.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) { e.now = now }
}

// WithTitleMaxLen caps extracted titles, in runes.
func WithTitleMaxLen(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.titleMaxLen = n
		}
	}
}

// New builds an Extractor resolving relative dates with parser.
func New(parser *datemath.Parser, opts ...Option) *Extractor {
	e := &Extractor{
		parser:      parser,
		now:         time.Now,
		titleMaxLen: defaultTitleMaxLen,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.dates = defaultDateMatchers(parser)
	return e
}

func (e *Extractor) today() time.Time {
	return e.now().In(e.parser.Location())
}
