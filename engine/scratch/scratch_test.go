package scratch

import "testing"

func TestSprintf(t *testing.T) {
	Init(64)

	tests := []struct {
		format string
		args   []any
		want   string
	}{
		{"plain", nil, "plain"},
		{"n=%d", []any{42}, "n=42"},
		{"u=%u", []any{uint64(7)}, "u=7"},
		{"s=%s", []any{"hi"}, "s=hi"},
		{"f=%.2f", []any{3.14159}, "f=3.14"},
		{"f=%f", []any{1.5}, "f=1.500"},
		{"100%%", nil, "100%"},
		{"%d/%d", []any{3, 4}, "3/4"},
	}
	for _, tt := range tests {
		Reset()
		if got := Sprintf(tt.format, tt.args...); got != tt.want {
			t.Errorf("Sprintf(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestSprintfAppendsWithinFrame(t *testing.T) {
	Init(64)
	Reset()
	a := Sprintf("a=%d", 1)
	b := Sprintf("b=%d", 2)
	if a != "a=1" || b != "b=2" {
		t.Fatalf("got %q and %q", a, b)
	}
	if Len() != len("a=1")+len("b=2") {
		t.Fatalf("Len() = %d", Len())
	}
}

func TestGrowTo(t *testing.T) {
	Init(8)
	GrowTo(64)
	if Cap() < 64 {
		t.Fatalf("Cap() = %d, want >= 64", Cap())
	}
	GrowTo(16) // never shrinks
	if Cap() < 64 {
		t.Fatalf("Cap() shrank to %d", Cap())
	}
}
