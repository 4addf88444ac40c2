package cmd

import (
	"context"
	"fmt"
)

// LoadCmd reconciles the settings with the stored snapshot.
type LoadCmd struct{}

func (c *LoadCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	outcome, err := svc.Load(context.Background())
	fmt.Fprintf(stdout, "%s %s\n", outcome, svc.SnapshotURL())
	return err
}
