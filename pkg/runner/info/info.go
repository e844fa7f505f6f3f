package info

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/store"
)

type Info struct {
	Config store.Config
	Disk   *store.Disk
	// Watermark is the last day the overdue triage was settled.
	Watermark string
}

func (n *Info) Do(ctx context.Context) error {
	out := color.Output

	if override := os.Getenv("DAYBOOK_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "DAYBOOK_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "DAYBOOK_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.log_level: ", n.Config.LogLevel())

	if n.Disk == nil {
		return fmt.Errorf("failed to open the store")
	}

	_, _ = fmt.Fprintf(out, "Keys:\n")
	found := 0
	for _, k := range n.Disk.Keys() {
		_, _ = fmt.Fprintf(out, "  %s\n", k)
		found++
	}
	if found == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "nothing stored yet")
	}

	if n.Watermark == "" {
		_, _ = fmt.Fprintln(out, "Triage: never settled")
	} else {
		_, _ = fmt.Fprintln(out, "Triage: settled through", n.Watermark)
	}
	return nil
}
