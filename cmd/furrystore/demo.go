package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/odvcencio/furry-store/seed"
	"github.com/odvcencio/furry-store/state"
	"github.com/odvcencio/furry-store/store"
)

func newDemoCmd(root *rootOptions) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive terminal demo",
		Long: `Bind three terminal views to one store and show how many times each
renders. Writing the same value again leaves every counter unchanged.

With --watch the seed file is reloaded on save and merged into the store;
only views bound to fields that changed re-render.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch && root.seed == "" {
				return fmt.Errorf("--watch needs --seed")
			}
			s, err := root.openStore()
			if err != nil {
				return err
			}
			return runDemo(cmd.Context(), s, root.log(), root.seed, watch)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "merge seed file changes into the store")
	return cmd
}

func runDemo(ctx context.Context, s *store.Store, logger *slog.Logger, seedPath string, watch bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	queue := state.NewQueue()
	b := newBoard(s, queue)
	b.mount()
	defer b.unmount()

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	reloads := make(chan store.Record)
	if watch {
		go watchSeed(ctx, seedPath, logger, reloads)
	}

	draw(screen, b)
	for {
		select {
		case <-ctx.Done():
			return nil
		case rec := <-reloads:
			b.merge(rec)
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if ev.Key() == tcell.KeyRune && b.handleRune(ev.Rune()) {
					return nil
				}
			}
		}
		queue.Flush()
		draw(screen, b)
	}
}

// watchSeed forwards reloaded seed records to reloads until ctx is done.
// A watcher that cannot start and a reload that fails are both logged; the
// demo keeps running on the last good record.
func watchSeed(ctx context.Context, path string, logger *slog.Logger, reloads chan<- store.Record) {
	err := seed.Watch(ctx, path, func(rec store.Record, err error) {
		if err != nil {
			logger.Warn("seed reload failed", slog.String("path", path), slog.Any("err", err))
			return
		}
		select {
		case reloads <- rec:
		case <-ctx.Done():
		}
	})
	if err != nil {
		logger.Warn("seed watch failed", slog.String("path", path), slog.Any("err", err))
	}
}

func draw(screen tcell.Screen, b *board) {
	width, height := screen.Size()
	style := tcell.StyleDefault
	screen.Clear()
	for y, line := range b.lines(width) {
		if y >= height {
			break
		}
		x := 0
		for _, r := range line {
			screen.SetContent(x, y, r, nil, style)
			x += runewidth.RuneWidth(r)
		}
	}
	screen.Show()
}
