package router

import (
	"context"

	"meetbot/pkg/log"
)

// Router is the interface for intent routing
type Router interface {
	Classify(ctx context.Context, message string) (RouterOutput, error)
}

// KeywordRouter classifies intent from verbs and time expressions
type KeywordRouter struct {
	l log.Logger
}

var _ Router = (*KeywordRouter)(nil)

// New creates a new KeywordRouter
func New(l log.Logger) *KeywordRouter {
	return &KeywordRouter{l: l}
}
