package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/settingsync/internal/matcher"
	"github.com/viant/settingsync/settings"
	"gopkg.in/yaml.v3"
)

// ShowCmd prints every setting with its current source. Secrets are masked.
type ShowCmd struct {
	Output  string `short:"o" long:"output" description:"output format" choice:"text" choice:"json" choice:"yaml" default:"text"`
	Pattern string `short:"p" long:"pattern" description:"comma separated names, a trailing * matches by prefix"`
	Load    bool   `short:"l" long:"load" description:"reconcile with the snapshot first"`
}

func (c *ShowCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	if c.Load {
		if _, err := svc.Load(context.Background()); err != nil {
			return err
		}
	}

	var attrs []settings.Attribute
	for _, attr := range svc.Store().Attributes() {
		if matcher.Match(c.Pattern, attr.Name) {
			attrs = append(attrs, attr)
		}
	}

	switch c.Output {
	case "json":
		data, err := json.MarshalIndent(attrs, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(data))
	case "yaml":
		data, err := yaml.Marshal(attrs)
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, string(data))
	default:
		fmt.Fprint(stdout, settings.FormatText(attrs))
	}
	return nil
}
