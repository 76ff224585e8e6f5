package magetasks

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRunSections_StopsAtFirstFailure(t *testing.T) {
	var ran []string
	step := func(name string, err error) Section {
		return Section{Name: name, Run: func() error {
			ran = append(ran, name)
			return err
		}}
	}
	boom := errors.New("boom") //nolint:err113 // Test helper needs dynamic error

	done, err := RunSections(step("one", nil), step("two", boom), step("three", nil))

	if done != 1 {
		t.Errorf("completed = %d, want 1", done)
	}
	if !errors.Is(err, boom) {
		t.Errorf("RunSections() error = %v, want wrapped boom", err)
	}
	if strings.Join(ran, ",") != "one,two" {
		t.Errorf("ran = %v, want [one two]", ran)
	}
}

func TestRunSections_AllPass(t *testing.T) {
	ok := Section{Name: "ok", Run: func() error { return nil }}
	done, err := RunSections(ok, ok)
	if err != nil || done != 2 {
		t.Errorf("RunSections() = %d, %v; want 2, nil", done, err)
	}
}

func TestLdflags(t *testing.T) {
	built := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	got := Ldflags("v1.2.0", "abc123", built)

	for _, want := range []string{
		"-X 'github.com/dkoosis/doctor/internal/version.Version=v1.2.0'",
		"-X 'github.com/dkoosis/doctor/internal/version.CommitHash=abc123'",
		"-X 'github.com/dkoosis/doctor/internal/version.BuildDate=2026-01-02T03:04:05Z'",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Ldflags() = %q, missing %q", got, want)
		}
	}
}
