package cmd

import (
	"bytes"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/minipy/foundation/core/error"
	mdwlog "github.com/msto63/minipy/foundation/core/log"
	"github.com/msto63/minipy/pkg/core/cache"
	"github.com/msto63/minipy/pkg/core/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch PATH...",
	Short: "Re-parse source files whenever they change",
	Long: `Watches files and directories and prints the statements of every
source file whose content changes. Parse errors are printed and watching continues.
Stop with Ctrl+C.

Examples:
  minipy watch main.py
  minipy watch --format json src/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	p, err := printer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	e := engine()

	w, err := watch.New(watch.Options{
		Debounce: appConfig.Watch.Debounce.Duration,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	defer w.Close()

	for _, path := range args {
		if err := w.Add(path); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching", mdwlog.Field("paths", args))
	// last content parsed per path
	last := cache.New[string](cache.Config{})
	return w.Run(ctx, func(_ context.Context, path string) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return mdwerror.Wrap(err, "failed to read source file").
				WithCode(mdwerror.CodeIO).
				WithDetail("path", path)
		}

		key := cache.ContentKey(path, data)
		if prev, ok := last.Get(path); ok && prev == key {
			logger.Debug("unchanged", mdwlog.Field("path", path))
			return nil
		}

		result, err := e.ParseReader(path, bytes.NewReader(data))
		if err != nil {
			last.Delete(path)
			printError(cmd.ErrOrStderr(), err)
			return err
		}
		last.Set(path, key)
		return p.Statements(result.Source, result.Nodes)
	})
}
