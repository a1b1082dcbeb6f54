package errors

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs errors with context
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	ctxlog.From(ctx).Error("error occurred", "error", err)
}
