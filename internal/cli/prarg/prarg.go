// Package prarg parses the positional pull-request-number argument shared
// by every PR-addressing command.
package prarg

import (
	"strconv"

	"github.com/urfave/cli/v3"

	domainErrors "github.com/vcstools/git-pr/internal/errors"
)

// Number reads the first positional argument as a PR number.
func Number(cmd *cli.Command) (int, error) {
	raw := cmd.Args().First()
	number, err := strconv.Atoi(raw)
	if err != nil || number <= 0 {
		return 0, domainErrors.NewAppError(domainErrors.TypeParse, "Pull request number must be a positive integer", err).
			WithContext("argument", raw).
			WithSuggestion("Pass the PR number shown by `git-pr list`, e.g. `git-pr pull 42`")
	}
	return number, nil
}
