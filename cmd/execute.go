package cmd

import (
	"context"

	"github.com/huangsam/trackpulse/core"
	"github.com/huangsam/trackpulse/internal/contract"
)

// runExecutor runs executeFunc against the validated config. A context that
// is already done stops the command before anything is read or written.
func runExecutor(ctx context.Context, executeFunc core.ExecutorFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return executeFunc(ctx, cfg)
}

// checkAndExecute runs the given function and exits on failure.
func checkAndExecute(ctx context.Context, msg string, executeFunc core.ExecutorFunc) {
	if err := runExecutor(ctx, executeFunc); err != nil {
		contract.LogFatal(msg, err)
	}
}
