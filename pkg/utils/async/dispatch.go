package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/inari/pkg/utils/errors"
)

// Dispatch runs a handler as a detached background task. The handler gets a
// fresh background context (the request context may be canceled as soon as
// the acknowledgement response is written) that preserves the logger, and
// panics are recovered so a single broken conversation cannot take the
// process down. A task that outlives the process is abandoned, not awaited.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	if isSyncMode(ctx) {
		if err := handler(ctx); err != nil {
			errors.Handle(ctx, err)
		}
		return
	}

	newCtx := newBackgroundContext(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				err := goerr.New("panic in async handler",
					goerr.V("recover", r),
					goerr.V("stack", string(debug.Stack())),
				)
				errors.Handle(newCtx, err)
			}
		}()

		if err := handler(newCtx); err != nil {
			errors.Handle(newCtx, err)
		}
	}()
}

// newBackgroundContext creates a new background context preserving the logger
func newBackgroundContext(ctx context.Context) context.Context {
	return ctxlog.With(context.Background(), ctxlog.From(ctx))
}
