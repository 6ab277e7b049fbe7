package list

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/vcstools/git-pr/internal/config"
	"github.com/vcstools/git-pr/internal/i18n"
	"github.com/vcstools/git-pr/internal/models"
	"github.com/vcstools/git-pr/internal/services"
	"github.com/vcstools/git-pr/internal/ui"
)

// PRLister is a minimal interface for testing purposes
type PRLister interface {
	ListOpen(ctx context.Context) ([]models.PRRow, []services.PRWarning, error)
}

// CommandFactory creates the `list` command.
type CommandFactory struct {
	lister PRLister
}

func NewCommandFactory(lister PRLister) *CommandFactory {
	return &CommandFactory{lister: lister}
}

func (f *CommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   t.GetMessage("list_command_usage", 0, nil),
		Action: func(ctx context.Context, _ *cli.Command) error {
			spin := ui.NewSmartSpinner(t.GetMessage("list.fetching", 0, nil))
			spin.Start()

			rows, warnings, err := f.lister.ListOpen(ctx)
			spin.Stop()
			if err != nil {
				return err
			}

			for _, warning := range warnings {
				ui.PrintWarning(os.Stderr, t.GetMessage("warning.pr_detail_failed", 0, map[string]interface{}{
					"Number": warning.Number,
				}))
			}

			if len(rows) == 0 {
				ui.PrintInfo(t.GetMessage("list.no_open_prs", 0, nil))
				return nil
			}

			fmt.Println(ui.RenderPRTable(t, rows))
			return nil
		},
	}
}
