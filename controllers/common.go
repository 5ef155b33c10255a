package controllers

import (
	"context"
	"time"
)

const RequestTimeoutSecs = 50 * time.Second

// WithTimeout caps a single request's database and collaborator work.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), RequestTimeoutSecs)
}
