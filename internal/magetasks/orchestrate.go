package magetasks

import "fmt"

// Section is one named step of a workflow.
type Section struct {
	Name        string
	Description string
	Run         func() error
}

// RunSections runs each section in order, stopping at the first failure.
// It returns the number of sections that completed.
func RunSections(sections ...Section) (int, error) {
	for i, s := range sections {
		PrintH1Header(s.Name)
		if s.Description != "" {
			PrintInfo(s.Description)
		}
		if err := s.Run(); err != nil {
			PrintError(fmt.Sprintf("%s failed", s.Name))
			return i, fmt.Errorf("%s: %w", s.Name, err)
		}
	}
	return len(sections), nil
}

// RunAll lints, tests and builds, stopping at the first failing section.
func RunAll() error {
	_, err := RunSections(
		Section{Name: "Lint", Description: "Formatting and static analysis", Run: LintAll},
		Section{Name: "Tests", Description: "Run the test suite", Run: TestAll},
		Section{Name: "Build", Description: "Build the doctor binary", Run: BuildAll},
	)
	return err
}
