package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-store/bind"
	"github.com/odvcencio/furry-store/state"
	"github.com/odvcencio/furry-store/store"
	"github.com/odvcencio/furry-store/view"
)

const maxEvents = 5

// board holds three views bound to one store: the whole record, the number
// field and the string field.
type board struct {
	store *store.Store

	recordView *view.Component
	record     store.Record
	setRecord  *bind.Setter

	numberView *view.Component
	number     int
	setNumber  *bind.Setter

	stringView *view.Component
	text       string
	setText    *bind.Setter

	events []string
	unsub  func()
}

func newBoard(s *store.Store, scheduler state.Scheduler) *board {
	b := &board{store: s}
	b.recordView = view.New(func(f *view.Frame) {
		b.record, b.setRecord = bind.Record(f, s)
	}, view.WithScheduler(scheduler), view.WithName("record"))
	b.numberView = view.New(func(f *view.Frame) {
		b.number, b.setNumber = bind.FieldOf[int](f, s, "number")
	}, view.WithScheduler(scheduler), view.WithName("number"))
	b.stringView = view.New(func(f *view.Frame) {
		b.text, b.setText = bind.FieldOf[string](f, s, "string")
	}, view.WithScheduler(scheduler), view.WithName("string"))
	return b
}

func (b *board) mount() {
	b.unsub = b.store.Subscribe(store.All, func(v any) {
		rec, _ := v.(store.Record)
		b.log(fmt.Sprintf("notified: number=%v string=%v", rec["number"], rec["string"]))
	})
	b.recordView.Mount()
	b.numberView.Mount()
	b.stringView.Mount()
}

func (b *board) unmount() {
	b.stringView.Unmount()
	b.numberView.Unmount()
	b.recordView.Unmount()
	if b.unsub != nil {
		b.unsub()
	}
}

// handleRune applies a key press and reports whether the demo should quit.
func (b *board) handleRune(r rune) bool {
	switch r {
	case 'q':
		return true
	case 'n':
		b.write("number +1", b.setNumber.Set(b.number+1))
	case 's':
		b.write("string +char", b.setText.Set(b.text+string(nextChar(b.text))))
	case 'r':
		n, _ := b.record["number"].(int)
		str, _ := b.record["string"].(string)
		b.write("record merge", b.setRecord.Set(store.Record{
			"number": n + 1,
			"string": str + string(rune('A'+n)),
		}))
	case '=':
		b.write("same number", b.setNumber.Set(b.number))
	}
	return false
}

// merge applies an externally loaded record, such as a reloaded seed file.
func (b *board) merge(rec store.Record) {
	b.write("seed reload", b.store.Merge(rec))
}

func (b *board) write(label string, accepted bool) {
	if !accepted {
		b.log(label + ": suppressed")
	}
}

func (b *board) log(line string) {
	b.events = append(b.events, line)
	if len(b.events) > maxEvents {
		b.events = b.events[len(b.events)-maxEvents:]
	}
}

// lines renders the board as text, each line fitted to width cells.
func (b *board) lines(width int) []string {
	out := []string{
		"furrystore demo",
		"",
		fmt.Sprintf("record  %-28s renders %d", formatRecord(b.record), b.recordView.Renders()),
		fmt.Sprintf("number  %-28d renders %d", b.number, b.numberView.Renders()),
		fmt.Sprintf("string  %-28s renders %d", b.text, b.stringView.Renders()),
		"",
		"keys: n number+1  s string+char  r merge both  = same value  q quit",
		"",
	}
	out = append(out, b.events...)
	for i, line := range out {
		out[i] = fit(line, width)
	}
	return out
}

func formatRecord(rec store.Record) string {
	parts := make([]string, 0, len(rec))
	for _, k := range rec.Keys() {
		parts = append(parts, fmt.Sprintf("%s:%v", k, rec[k]))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func nextChar(s string) rune {
	if s == "" {
		return 'A'
	}
	r := []rune(s)
	return r[len(r)-1] + 1
}

func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}
