package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/lixenwraith/boing/config"
)

// assignments collects repeated -set Key=Value flags
type assignments []string

func (a *assignments) String() string {
	return strings.Join(*a, ",")
}

func (a *assignments) Set(v string) error {
	*a = append(*a, v)
	return nil
}

// runSettings is the configuration command: optional reset, then assignments,
// then a listing of the effective values
// The store is only written when something changed
func runSettings(store *config.FileStore, reset bool, sets []string, out io.Writer) error {
	changed := false

	if reset {
		store.Reset()
		if err := config.Defaults().Save(store); err != nil {
			return fmt.Errorf("reset settings: %w", err)
		}
		changed = true
	}

	for _, s := range sets {
		if err := config.SetRaw(store, s); err != nil {
			return err
		}
		changed = true
	}

	if changed {
		if err := store.Save(); err != nil {
			return err
		}
		fmt.Fprintf(out, "saved %s\n", store.Path())
	}

	printSettings(out, config.Load(config.NewEnvStore(store)))
	return nil
}

func printSettings(out io.Writer, s config.Settings) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, e := range s.Entries() {
		fmt.Fprintf(tw, "%s\t%s\n", e.Key, e.Value)
	}
	tw.Flush()
}
