package prhealth

import (
	"fmt"
	"strings"
)

// ParseRepositoryURL extracts owner and repository name from the last two path
// segments of a hosting URL such as https://github.com/octocat/Hello-World/.
func ParseRepositoryURL(repoURL string) (owner, repo string, err error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(repoURL), "/")

	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedRepositoryURL, repoURL)
	}

	owner, repo = parts[len(parts)-2], parts[len(parts)-1]
	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedRepositoryURL, repoURL)
	}

	return owner, repo, nil
}
