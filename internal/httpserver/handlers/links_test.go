package handlers

import (
	"encoding/json"
	"testing"
)

func TestRawString(t *testing.T) {
	tests := []struct {
		name string
		raw  json.RawMessage
		want string
	}{
		{name: "string", raw: json.RawMessage(`"abc"`), want: "abc"},
		{name: "number", raw: json.RawMessage(`12`), want: ""},
		{name: "null", raw: json.RawMessage(`null`), want: ""},
		{name: "missing", raw: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rawString(tt.raw); got != tt.want {
				t.Errorf("rawString(%s) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestQRSize(t *testing.T) {
	tests := map[string]int{
		"":     defaultQRSize,
		"abc":  defaultQRSize,
		"10":   minQRSize,
		"300":  300,
		"5000": maxQRSize,
	}
	for in, want := range tests {
		if got := qrSize(in); got != want {
			t.Errorf("qrSize(%q) = %d, want %d", in, got, want)
		}
	}
}
