package cmd

import (
	"context"
	"fmt"
)

// SaveCmd writes the snapshot of the current settings.
type SaveCmd struct{}

func (c *SaveCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	URL, err := svc.Save(context.Background())
	if err != nil {
		return err
	}
	if URL == "" {
		fmt.Fprintln(stdout, "storage disabled")
		return nil
	}
	fmt.Fprintf(stdout, "saved %s\n", URL)
	return nil
}
