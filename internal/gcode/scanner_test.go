package gcode

import (
	"strings"
	"testing"
)

func TestBoundedLines_SmallFileScansEverything(t *testing.T) {
	text := strings.Repeat("G1 X1\n", 100)
	lines := boundedLines(text)
	if len(lines) != 101 { // trailing newline yields an empty final element
		t.Fatalf("got %d lines, want 101", len(lines))
	}
}

func TestBoundedLines_LargeFileKeepsHeadAndTail(t *testing.T) {
	n := 50000
	raw := make([]string, n)
	for i := range raw {
		raw[i] = "G1 X1"
	}
	raw[0] = "; header line"
	raw[n-1] = "; summary line"
	lines := boundedLines(strings.Join(raw, "\n"))

	if len(lines) != headLines+tailLines {
		t.Fatalf("got %d lines, want %d", len(lines), headLines+tailLines)
	}
	if lines[0] != "; header line" {
		t.Errorf("prefix not preserved, first line = %q", lines[0])
	}
	if lines[len(lines)-1] != "; summary line" {
		t.Errorf("suffix not preserved, last line = %q", lines[len(lines)-1])
	}
}

func TestBoundedLines_SummaryAtEndOfHugeFileIsStillMatched(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 40000; i++ {
		sb.WriteString("G1 X10 Y10 E0.5\n")
	}
	sb.WriteString("; estimated printing time (normal mode) = 2h 30m\n")

	meta := NewExtractor(nil).Extract(sb.String(), "")
	if meta.PrintDuration == nil || *meta.PrintDuration != "2h 30m" {
		t.Fatalf("summary block in tail window not matched: %v", meta.PrintDuration)
	}
}
