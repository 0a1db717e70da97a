package commands

import (
	"bytes"
	"strings"
	"testing"
)

// TestDisplayTable tests column alignment and the row count footer
func TestDisplayTable(t *testing.T) {
	var out bytes.Buffer
	displayTable(&out, []string{"id", "name"}, [][]string{
		{"238222", "Just Enough Items"},
		{"5", "Tiny"},
	})

	lines := strings.Split(out.String(), "\n")
	want := []string{
		"id     | name",
		"------ | -----------------",
		"238222 | Just Enough Items",
		"5      | Tiny",
		"",
		"(2 rows)",
	}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("Line %d: expected %q, got %q", i, line, lines[i])
		}
	}
}

// TestDisplayTableEmpty tests the message printed for no rows
func TestDisplayTableEmpty(t *testing.T) {
	var out bytes.Buffer
	displayTable(&out, []string{"id"}, nil)

	if out.String() != "No results found.\n" {
		t.Errorf("Unexpected output %q", out.String())
	}
}
