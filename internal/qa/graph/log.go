package graph

import (
	"context"
	"runtime/debug"

	"github.com/gogotex/qa-service/pkg/logger"
)

// panicLogger sends resolver panics recovered by graphql-go to the service log.
type panicLogger struct{}

func (panicLogger) LogPanic(ctx context.Context, value interface{}) {
	logger.Errorf("graphql: panic occurred: %v\n%s", value, debug.Stack())
}
