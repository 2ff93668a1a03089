package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/philipparndt/gofit/pkg/watcher"
	"github.com/spf13/cobra"
)

// runFit runs fit once and, with watch set, again after every change of
// path until interrupted. Failed refits are logged and watching continues.
func (a *app) runFit(cmd *cobra.Command, path string, watch bool, fit func() error) error {
	if err := fit(); err != nil {
		if !watch {
			return err
		}
		a.logger.Error("fit failed", "file", path, "error", err)
	}
	if !watch {
		return nil
	}

	w, err := watcher.New(watcher.DefaultDebounce, a.logger)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(path); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	a.logger.Info("watching for changes", "file", path)
	err = w.Run(ctx, func(changed string) {
		a.logger.Info("refitting", "file", changed)
		if err := fit(); err != nil {
			a.logger.Error("fit failed", "file", changed, "error", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
