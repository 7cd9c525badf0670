package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGitCommit_ShortForm(t *testing.T) {
	// Either the ldflags/VCS hash truncated to 8 chars, or "dev" under
	// `go test` where no VCS info is stamped.
	assert.NotEmpty(t, GitCommit)
	assert.LessOrEqual(t, len(GitCommit), 8)
}

func TestInitGitCommit_OverrideTruncation(t *testing.T) {
	orig := gitCommitOverride
	defer func() { gitCommitOverride = orig }()

	gitCommitOverride = "a3f8c2d1e5b74960"
	assert.Equal(t, "a3f8c2d1", initGitCommit())

	gitCommitOverride = "abc123"
	assert.Equal(t, "abc123", initGitCommit())
}

func TestFull(t *testing.T) {
	full := Full()

	assert.True(t, strings.HasPrefix(full, AppName+"/"), "got %q", full)
	assert.Equal(t, AppName+"/"+GitCommit, full)
}
