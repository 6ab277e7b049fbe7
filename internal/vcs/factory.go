package vcs

import (
	"strings"

	"github.com/vcstools/git-pr/internal/config"
	"github.com/vcstools/git-pr/internal/errors"
	"github.com/vcstools/git-pr/internal/remote"
	"github.com/vcstools/git-pr/internal/vcs/github"
)

// NewClient picks the hosting-service client matching the remote URL.
// Currently only GitHub remotes are recognized; adding a provider means
// adding a case here and an implementation of Client.
func NewClient(remoteURL string, cfg *config.Config) (Client, error) {
	switch {
	case strings.Contains(remoteURL, "github.com"):
		identity, err := remote.Resolve(remoteURL)
		if err != nil {
			return nil, err
		}
		return github.NewGitHubClient(identity.Owner, identity.Repository, cfg.Token), nil
	default:
		return nil, errors.ErrUnsupportedHost.WithContext("url", remoteURL)
	}
}
