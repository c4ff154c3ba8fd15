// Package main is the furrystore command: a small workbench for the store.
//
// Usage:
//
//	furrystore inspect --seed seed.yaml --set number=10   # apply writes, print the record
//	furrystore demo --seed seed.yaml --watch              # interactive terminal demo
//	furrystore version                                    # show version info
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/odvcencio/furry-store/seed"
	"github.com/odvcencio/furry-store/store"
)

// Version information, set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
)

// defaultRecord is used when no seed file is given.
func defaultRecord() store.Record {
	return store.Record{"number": 1, "string": "A"}
}

type rootOptions struct {
	verbose bool
	seed    string
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "furrystore",
		Short: "Observable key-value store workbench",
		Long: `furrystore exercises an observable record store.

Writes that do not change a field are dropped before any listener or bound
view is notified. The inspect command shows which listeners fire for a set
of writes; the demo command binds three terminal views to one store.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log store activity to stderr")
	cmd.PersistentFlags().StringVarP(&opts.seed, "seed", "s", "", "seed file (.yaml, .toml or .json)")

	cmd.AddCommand(newVersionCmd(), newInspectCmd(opts), newDemoCmd(opts))
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "furrystore %s (%s)\n", version, commit)
		},
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// openStore builds a store from the seed flag, or the default record.
func (o *rootOptions) openStore() (*store.Store, error) {
	initial := defaultRecord()
	if o.seed != "" {
		rec, err := seed.Load(o.seed)
		if err != nil {
			return nil, err
		}
		initial = rec
	}
	return store.New(initial, store.WithLogger(o.log())), nil
}

func (o *rootOptions) log() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}
	return o.logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
