package version

import "testing"

func TestString(t *testing.T) {
	origVersion, origCommit := Version, CommitHash
	t.Cleanup(func() { Version, CommitHash = origVersion, origCommit })

	Version, CommitHash = "v1.2.0", "unknown"
	if got := String(); got != "v1.2.0" {
		t.Errorf("String() = %q, want %q", got, "v1.2.0")
	}

	CommitHash = "abc1234"
	if got := String(); got != "v1.2.0 (abc1234)" {
		t.Errorf("String() = %q, want %q", got, "v1.2.0 (abc1234)")
	}
}
