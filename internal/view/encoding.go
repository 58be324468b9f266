package view

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rrr-registry/rrr-tui/internal/registry"
)

// Encoding selects between a textual and a hexadecimal representation of
// record bytes. The open form uses it to parse typed names, the content
// pane to render record data.
type Encoding uint8

const (
	EncodingUTF8 Encoding = iota
	EncodingHex
)

func encodingOptions() []RadioOption[Encoding] {
	return []RadioOption[Encoding]{
		{Value: EncodingUTF8, Label: "UTF-8"},
		{Value: EncodingHex, Label: "Hex"},
	}
}

// decodeName turns the open form's input into record name bytes.
func decodeName(text string, enc Encoding) (registry.RecordName, error) {
	switch enc {
	case EncodingHex:
		compact := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' {
				return -1
			}
			return r
		}, text)
		name, err := hex.DecodeString(compact)
		if err != nil {
			return nil, fmt.Errorf("invalid hex record name: %w", err)
		}
		return registry.RecordName(name), nil
	default:
		return registry.RecordName(text), nil
	}
}

// encodeData renders record content for the content pane.
func encodeData(data []byte, enc Encoding) string {
	switch enc {
	case EncodingHex:
		return strings.TrimRight(hex.Dump(data), "\n")
	default:
		if utf8.Valid(data) {
			return string(data)
		}
		return strings.ToValidUTF8(string(data), "�")
	}
}
