package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/odvcencio/furry-store/inspect"
	"github.com/odvcencio/furry-store/seed"
	"github.com/odvcencio/furry-store/store"
)

type inspectOptions struct {
	sets   []string
	each   bool
	format string
	color  bool
}

func newInspectCmd(root *rootOptions) *cobra.Command {
	opts := &inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Apply writes to a store and print what was notified",
		Long: `Load the seed record, subscribe a listener to every field and to the
whole record, apply the --set assignments, then print each notification
followed by the final record.

By default all assignments go through one merge, so the whole-record listener
fires at most once. With --each every assignment is a separate write.

Example:
  furrystore inspect --seed seed.yaml --set number=2 --set string=B
  furrystore inspect --set number=1 --format markdown`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := root.openStore()
			if err != nil {
				return err
			}
			return runInspect(cmd.OutOrStdout(), s, opts)
		},
	}
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "assignment key=value (repeatable)")
	cmd.Flags().BoolVar(&opts.each, "each", false, "apply each assignment as its own write")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "output format: json, markdown or html")
	cmd.Flags().BoolVar(&opts.color, "color", false, "colour json output")
	return cmd
}

func runInspect(w io.Writer, s *store.Store, opts *inspectOptions) error {
	writes := make([]store.Record, 0, len(opts.sets))
	merged := store.Record{}
	for _, raw := range opts.sets {
		key, value, err := seed.ParseAssignment(raw)
		if err != nil {
			return err
		}
		writes = append(writes, store.Record{key: value})
		merged[key] = value
	}
	if !opts.each && len(merged) > 0 {
		writes = []store.Record{merged}
	}

	var events []string
	for _, key := range keysOf(s.Record(), merged) {
		s.Subscribe(store.Field(key), func(v any) {
			events = append(events, fmt.Sprintf("field %s -> %v", key, v))
		})
	}
	s.Subscribe(store.All, func(v any) {
		rec, _ := v.(store.Record)
		events = append(events, fmt.Sprintf("record -> %d fields", len(rec)))
	})

	accepted := 0
	for _, partial := range writes {
		if s.Merge(partial) {
			accepted++
		}
	}

	fmt.Fprintf(w, "writes: %d accepted, %d suppressed\n", accepted, len(writes)-accepted)
	for _, e := range events {
		fmt.Fprintf(w, "  %s\n", e)
	}
	return render(w, s.Record(), opts)
}

func render(w io.Writer, rec store.Record, opts *inspectOptions) error {
	switch opts.format {
	case "json", "":
		return inspect.JSON(w, rec, opts.color)
	case "markdown", "md":
		_, err := io.WriteString(w, inspect.Markdown(rec))
		return err
	case "html":
		return inspect.HTML(w, rec)
	}
	return fmt.Errorf("unknown format %q", opts.format)
}

// keysOf returns the sorted union of the field names in the records.
func keysOf(recs ...store.Record) []string {
	union := store.Record{}
	for _, rec := range recs {
		for k := range rec {
			union[k] = nil
		}
	}
	return union.Keys()
}
