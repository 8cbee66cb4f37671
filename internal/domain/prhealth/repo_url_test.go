package prhealth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepositoryURL(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		owner string
		repo  string
	}{
		{"trailing slash", "https://github.com/octocat/Hello-World/", "octocat", "Hello-World"},
		{"no trailing slash", "https://github.com/octocat/Hello-World", "octocat", "Hello-World"},
		{"enterprise host", "https://git.example.com/platform/api", "platform", "api"},
		{"bare owner/repo", "octocat/Hello-World", "octocat", "Hello-World"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := ParseRepositoryURL(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.repo, repo)
		})
	}
}

func TestParseRepositoryURLMalformed(t *testing.T) {
	for _, url := range []string{"invalid", "", "/", "invalid/", "/repo"} {
		t.Run(url, func(t *testing.T) {
			_, _, err := ParseRepositoryURL(url)
			require.ErrorIs(t, err, ErrMalformedRepositoryURL)
		})
	}
}
