package options

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	if err != nil || id != 42 {
		t.Fatalf("expected 42, got %d %v", id, err)
	}
	for _, bad := range []string{"", "-1", "abc", "4.2"} {
		if _, err := ParseID(bad); err == nil {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestHandleErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	prev := color.Output
	color.Output = &buf
	defer func() { color.Output = prev }()

	o := &OutputOptions{JSON: true}
	if err := o.HandleError(errors.New("boom")); err != nil {
		t.Fatalf("expected error to be printed, got %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != `{"error":"boom"}` {
		t.Fatalf("unexpected output %q", got)
	}

	o.JSON = false
	if err := o.HandleError(errors.New("boom")); err == nil {
		t.Fatal("expected error to pass through")
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("one two three four", 9)
	if got != "one two\nthree\nfour" {
		t.Fatalf("unexpected wrap %q", got)
	}
}
