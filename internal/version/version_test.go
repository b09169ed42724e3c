package version

import "testing"

func TestShortPrefersReleaseVersion(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	Version, Commit = "dev", "none"
	if got := Short(); got != "dev" {
		t.Fatalf("Short() = %q, want dev", got)
	}

	Commit = "0123456789abcdef"
	if got := Short(); got != "0123456" {
		t.Fatalf("Short() = %q, want abbreviated commit", got)
	}

	Version = "v1.2.0"
	if got := Title(); got != "fuzzyclock (v1.2.0)" {
		t.Fatalf("Title() = %q", got)
	}
}
