package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf, Description: "Checking plots"}

	r.Start(2)
	r.Update(1, "Q01")
	r.Update(2, "Q02")
	r.Finish()

	want := "Checking plots: 2 items\n[1/2] Q01\n[2/2] Q02\nChecking plots: done\n"
	if buf.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter("x").(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestNewReporterTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	r, ok := NewReporter("x").(*TerminalReporter)
	if !ok {
		t.Fatal("expected TerminalReporter outside CI")
	}
	// Update before Start must not panic.
	r.Update(1, "early")
	r.Finish()
	if !strings.Contains(r.Description, "x") {
		t.Error("description not kept")
	}
}
