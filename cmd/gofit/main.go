package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/philipparndt/gofit/version"
	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands of one invocation
type app struct {
	logLevel   string
	configPath string
	logger     *slog.Logger
	profile    fitProfile
}

func newRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "gofit",
		Short: "Best-fit circles and spheres for measured points",
		Long: `gofit fits circles and spheres to points read from STL meshes or
coordinate files. A primitive is solved exactly from three (circle) or four
(sphere) points, or searched along the free center axis when the other
center coordinates and the radius are known.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = newLogger(a.logLevel, cmd.ErrOrStderr())
			slog.SetDefault(a.logger)
			a.logger.Debug("starting", "command", cmd.Name(), "version", version.GetVersion())

			profile, err := loadProfile(a.configPath)
			if err != nil {
				return err
			}
			a.profile = profile
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "TOML fit profile with samples, tolerance and metric")

	root.AddCommand(newCircleCmd(a), newSphereCmd(a), newArcCmd(a), newInfoCmd(a))
	return root
}

func newLogger(level string, w io.Writer) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
