// Package inspect renders store records for people: JSON, Markdown and HTML.
package inspect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/odvcencio/furry-store/store"
)

// Style is the chroma style used for coloured JSON.
const Style = "monokai"

// JSON writes rec as indented JSON with sorted keys. With color the output
// carries terminal escape codes.
func JSON(w io.Writer, rec store.Record, color bool) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	data = append(data, '\n')
	if !color {
		_, err = w.Write(data)
		return err
	}
	if err := quick.Highlight(w, string(data), "json", "terminal256", Style); err != nil {
		return fmt.Errorf("highlight record: %w", err)
	}
	return nil
}

// Markdown returns rec as a field table, keys sorted.
func Markdown(rec store.Record) string {
	var b strings.Builder
	b.WriteString("| Field | Type | Value |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, k := range rec.Keys() {
		v := rec[k]
		fmt.Fprintf(&b, "| %s | %s | %s |\n", cell(k), cell(fmt.Sprintf("%T", v)), cell(fmt.Sprint(v)))
	}
	return b.String()
}

// HTML writes the Markdown table converted to HTML.
func HTML(w io.Writer, rec store.Record) error {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(rec)), &buf); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
