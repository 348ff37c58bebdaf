package domain

import (
	"testing"
	"time"
)

func TestRandomCodeShape(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := RandomCode(DefaultCodeLength)
		if len(code) != DefaultCodeLength {
			t.Fatalf("RandomCode() length = %d, want %d", len(code), DefaultCodeLength)
		}
		if !IsBase36(code) {
			t.Fatalf("RandomCode() = %q, want lowercase base-36", code)
		}
	}
}

func TestNewCodeGeneratorLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   int
	}{
		{name: "default on zero", length: 0, want: DefaultCodeLength},
		{name: "default on negative", length: -3, want: DefaultCodeLength},
		{name: "custom", length: 10, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewCodeGenerator(tt.length)
			if got := len(gen()); got != tt.want {
				t.Errorf("generated code length = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRandomCodeNotReproducible(t *testing.T) {
	seen := make(map[string]struct{}, 200)
	for i := 0; i < 200; i++ {
		seen[RandomCode(DefaultCodeLength)] = struct{}{}
	}
	// 36^6 possible codes; 200 draws colliding down to a handful would mean a broken source.
	if len(seen) < 190 {
		t.Errorf("expected mostly distinct codes, got %d distinct out of 200", len(seen))
	}
}

func TestIsBase36(t *testing.T) {
	tests := map[string]bool{
		"abc123": true,
		"ABC123": false,
		"abc-12": false,
		"":       false,
		"zzzzzz": true,
	}
	for in, want := range tests {
		if got := IsBase36(in); got != want {
			t.Errorf("IsBase36(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRecordClick(t *testing.T) {
	rec := LinkRecord{Code: "abc123", URL: "https://example.com"}
	if rec.LastClicked != nil {
		t.Fatal("LastClicked should be nil before first click")
	}

	first := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	rec.RecordClick(first)
	snapshot := rec

	second := first.Add(time.Minute)
	rec.RecordClick(second)

	if rec.Clicks != 2 {
		t.Errorf("Clicks = %d, want 2", rec.Clicks)
	}
	if !rec.LastClicked.Equal(second) {
		t.Errorf("LastClicked = %v, want %v", rec.LastClicked, second)
	}
	if !snapshot.LastClicked.Equal(first) {
		t.Errorf("earlier copy LastClicked changed to %v, want %v", snapshot.LastClicked, first)
	}
}
