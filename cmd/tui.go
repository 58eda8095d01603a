package cmd

import (
	"os/signal"
	"syscall"

	"movieShelf/tui"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// runSession starts the interactive catalog. SIGTERM cancels it between
// prompts; Ctrl+C is read as a key by the prompts themselves.
func runSession(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	if err := tui.Run(ctx, cfg, plain); err != nil {
		logrus.WithError(err).Error("session ended without confirmed exit")
		return err
	}
	return nil
}
