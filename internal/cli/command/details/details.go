package details

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/vcstools/git-pr/internal/cli/prarg"
	"github.com/vcstools/git-pr/internal/config"
	"github.com/vcstools/git-pr/internal/i18n"
	"github.com/vcstools/git-pr/internal/models"
	"github.com/vcstools/git-pr/internal/services"
	"github.com/vcstools/git-pr/internal/ui"
)

// DetailFetcher is a minimal interface for testing purposes
type DetailFetcher interface {
	FetchDetail(ctx context.Context, number int) (models.PullRequestDetail, error)
	FetchCommitsWithFiles(ctx context.Context, number int) ([]models.Commit, []services.CommitWarning, error)
	DetailRows(detail models.PullRequestDetail, commits []models.Commit) []models.DetailRow
}

// CommandFactory creates the `show-details` command.
type CommandFactory struct {
	fetcher DetailFetcher
}

func NewCommandFactory(fetcher DetailFetcher) *CommandFactory {
	return &CommandFactory{fetcher: fetcher}
}

func (f *CommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "show-details",
		Aliases:   []string{"details"},
		Usage:     t.GetMessage("details_command_usage", 0, nil),
		ArgsUsage: "<pr-number>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			number, err := prarg.Number(cmd)
			if err != nil {
				return err
			}

			spin := ui.NewSmartSpinner(t.GetMessage("details.fetching", 0, map[string]interface{}{
				"Number": number,
			}))
			spin.Start()

			detail, err := f.fetcher.FetchDetail(ctx, number)
			if err != nil {
				spin.Stop()
				return err
			}

			commits, warnings, err := f.fetcher.FetchCommitsWithFiles(ctx, number)
			spin.Stop()
			if err != nil {
				return err
			}

			for _, warning := range warnings {
				ui.PrintWarning(os.Stderr, t.GetMessage("warning.commit_files_failed", 0, map[string]interface{}{
					"SHA": warning.SHA,
				}))
			}

			fmt.Println(ui.RenderDetailTable(t, f.fetcher.DetailRows(detail, commits)))
			return nil
		},
	}
}
