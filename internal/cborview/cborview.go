// Package cborview renders decoded CBOR values as styled text runs for the
// metadata and overview panes.
package cborview

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Run is a fragment of rendered text. Dim runs carry the type labels and
// punctuation, drawn in a muted color by the widget layer.
type Run struct {
	Text string
	Dim  bool
}

// Line is one rendered CBOR value.
type Line []Run

// String flattens the line to plain text, mostly for tests and logs.
func (l Line) String() string {
	var b strings.Builder
	for _, run := range l {
		b.WriteString(run.Text)
	}
	return b.String()
}

func dim(text string) Run {
	return Run{Text: text, Dim: true}
}

func raw(text string) Run {
	return Run{Text: text}
}

// labeled prefixes content runs with a dimmed type label.
func labeled(label string, content ...Run) Line {
	return append(Line{dim(label + " ")}, content...)
}

// ValueLine renders one decoded CBOR value. Values are expected in the
// shapes the cbor package produces when decoding into any: integers as
// uint64/int64, byte strings as []byte, maps as map[any]any.
func ValueLine(value any) Line {
	switch v := value.(type) {
	case nil:
		return Line{dim("(null)")}
	case uint64:
		return labeled("integer", raw(strconv.FormatUint(v, 10)))
	case int64:
		return labeled("integer", raw(strconv.FormatInt(v, 10)))
	case []byte:
		return labeled("bytes", raw(fmt.Sprintf("%02x", v)))
	case float64:
		return labeled("float", raw(strconv.FormatFloat(v, 'g', -1, 64)))
	case float32:
		return labeled("float", raw(strconv.FormatFloat(float64(v), 'g', -1, 32)))
	case string:
		return labeled("text", raw(v))
	case bool:
		return labeled("bool", raw(strconv.FormatBool(v)))
	case []any:
		line := Line{dim("array ")}
		for i, elem := range v {
			if i > 0 {
				line = append(line, raw(" "))
			}
			line = append(line, dim("{"))
			line = append(line, ValueLine(elem)...)
			line = append(line, dim("}"))
		}
		return line
	case map[any]any:
		line := Line{dim("map ")}
		for i, entry := range sortedEntries(v) {
			if i > 0 {
				line = append(line, raw(" "))
			}
			line = append(line, dim("{"))
			line = append(line, ValueLine(entry.key)...)
			line = append(line, dim("}: {"))
			line = append(line, ValueLine(entry.value)...)
			line = append(line, dim("}"))
		}
		return line
	case time.Time:
		return labeled("datetime", raw(v.Format(time.RFC3339)))
	case cbor.Tag:
		return append(labeled(fmt.Sprintf("tag(%d)", v.Number)), ValueLine(v.Content)...)
	default:
		return labeled("value", raw(fmt.Sprint(v)))
	}
}

type mapEntry struct {
	key   any
	value any
}

// sortedEntries orders map entries by their rendered key so output is
// stable across runs.
func sortedEntries(m map[any]any) []mapEntry {
	entries := make([]mapEntry, 0, len(m))
	for k, v := range m {
		entries = append(entries, mapEntry{key: k, value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		return ValueLine(entries[i].key).String() < ValueLine(entries[j].key).String()
	})
	return entries
}
