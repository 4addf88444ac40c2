package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/settingsync/persist"
)

// WatchCmd loads the snapshot and then reloads it on every change until
// SIGINT/SIGTERM.
type WatchCmd struct{}

func (c *WatchCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outcome, err := svc.Load(ctx)
	if err != nil {
		fmt.Fprintf(stdout, "%s %s: %v\n", outcome, svc.SnapshotURL(), err)
	}
	watcher, err := persist.NewWatcher(ctx, svc)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "watching %s\n", svc.SnapshotURL())
	return watcher.Run(ctx, func(outcome persist.Outcome, err error) {
		if err != nil {
			fmt.Fprintf(stdout, "%s: %v\n", outcome, err)
			return
		}
		fmt.Fprintln(stdout, outcome)
	})
}
