package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "returns empty when limit non-positive",
			input:  "hello world",
			limit:  0,
			expect: "",
		},
		{
			name:   "shorter than limit",
			input:  "hello",
			limit:  10,
			expect: "hello",
		},
		{
			name:   "truncates and adds ellipsis",
			input:  "hello world",
			limit:  5,
			expect: "hello...",
		},
		{
			name:   "trims surrounding whitespace",
			input:  "  spaced  ",
			limit:  5,
			expect: "space...",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestStringFieldsSkipsEmptyEntries(t *testing.T) {
	t.Parallel()

	fields := StringFields(
		StringField{Key: "candidate", Value: "alice.pdf"},
		StringField{Key: "", Value: "dropped"},
		StringField{Key: "location", Value: "   "},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields[0].Key != "candidate" {
		t.Fatalf("unexpected field key: %q", fields[0].Key)
	}
}

func TestWithFieldsHandlesNilLogger(t *testing.T) {
	t.Parallel()

	if got := WithFields(nil); got == nil {
		t.Fatalf("expected a usable logger")
	}
	if got := WithFields(zap.NewNop(), zap.String("k", "v")); got == nil {
		t.Fatalf("expected a logger with fields")
	}
}
