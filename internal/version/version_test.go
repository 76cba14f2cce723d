package version

import (
	"strings"
	"testing"
)

func TestVersionHasDefault(t *testing.T) {
	if Version == "" {
		t.Error("Version must not be empty")
	}
	if !strings.Contains(Version, ".") {
		t.Errorf("Version %q does not look semantic", Version)
	}
}

func TestBuildMetadataOverridable(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	defer func() {
		GitCommit, BuildDate = origCommit, origDate
	}()

	// имитация -ldflags при сборке релиза
	GitCommit = "abc123"
	BuildDate = "2026-08-30T00:00:00Z"
	if GitCommit != "abc123" || BuildDate != "2026-08-30T00:00:00Z" {
		t.Error("build metadata did not take the override")
	}
}
