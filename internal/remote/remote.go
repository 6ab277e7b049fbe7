// Package remote derives a hosting-service repository identity from a git
// remote URL.
package remote

import (
	"strings"

	"github.com/vcstools/git-pr/internal/errors"
)

const githubHost = "github.com"

// Identity is the (owner, repository) pair a remote URL points at. It has no
// identity beyond structural equality.
type Identity struct {
	Owner      string
	Repository string
}

// Resolve extracts the owner and repository from an HTTPS or SSH remote URL.
// It is a heuristic: the result is not validated against the hosting service
// until the first API call.
func Resolve(remoteURL string) (Identity, error) {
	url := strings.TrimSuffix(strings.TrimSpace(remoteURL), ".git")

	if !strings.Contains(url, githubHost) {
		return Identity{}, errors.ErrUnsupportedHost.WithContext("url", remoteURL)
	}

	var parts []string
	if strings.HasPrefix(url, "http") {
		parts = strings.Split(url, "/")
	} else {
		// SSH form: user@host:owner/repo
		segs := strings.Split(url, ":")
		parts = strings.Split(segs[len(segs)-1], "/")
	}

	if len(parts) < 2 {
		return Identity{}, errors.ErrRemoteParse.WithContext("url", remoteURL)
	}

	owner := parts[len(parts)-2]
	repo := parts[len(parts)-1]
	if owner == "" || repo == "" {
		return Identity{}, errors.ErrRemoteParse.WithContext("url", remoteURL)
	}

	return Identity{Owner: owner, Repository: repo}, nil
}
