package view

import (
	"strings"
	"testing"
)

func TestDecodeName(t *testing.T) {
	tests := map[string]struct {
		text    string
		enc     Encoding
		want    string
		wantErr bool
	}{
		"utf8 passes through":      {text: "hello", enc: EncodingUTF8, want: "hello"},
		"utf8 empty is root":       {text: "", enc: EncodingUTF8, want: ""},
		"hex decodes":              {text: "68656c6c6f", enc: EncodingHex, want: "hello"},
		"hex ignores spaces":       {text: "68 65 6c 6c 6f", enc: EncodingHex, want: "hello"},
		"hex rejects odd length":   {text: "abc", enc: EncodingHex, wantErr: true},
		"hex rejects stray letter": {text: "zz", enc: EncodingHex, wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := decodeName(tc.text, tc.enc)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("decodeName(%q) succeeded, want error", tc.text)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeName(%q): %v", tc.text, err)
			}
			if string(got) != tc.want {
				t.Errorf("decodeName(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestEncodeData(t *testing.T) {
	data := []byte("hi")

	if got := encodeData(data, EncodingUTF8); got != "hi" {
		t.Errorf("utf8 = %q, want %q", got, "hi")
	}

	dump := encodeData(data, EncodingHex)
	if !strings.Contains(dump, "68 69") {
		t.Errorf("hex dump %q does not contain byte pair", dump)
	}
	if strings.HasSuffix(dump, "\n") {
		t.Errorf("hex dump keeps trailing newline")
	}
}

func TestEncodeData_InvalidUTF8IsReplaced(t *testing.T) {
	got := encodeData([]byte{0xff, 'a'}, EncodingUTF8)
	if !strings.Contains(got, "�") || !strings.Contains(got, "a") {
		t.Errorf("invalid bytes rendered as %q", got)
	}
}
