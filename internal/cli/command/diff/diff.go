package diff

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/vcstools/git-pr/internal/cli/prarg"
	"github.com/vcstools/git-pr/internal/config"
	"github.com/vcstools/git-pr/internal/i18n"
	"github.com/vcstools/git-pr/internal/models"
	"github.com/vcstools/git-pr/internal/ui"
)

// DiffShower is a minimal interface for testing purposes
type DiffShower interface {
	ShowDiff(ctx context.Context, number int) (models.BranchPlan, error)
}

// CommandFactory creates the `show-diff` command.
type CommandFactory struct {
	shower DiffShower
}

func NewCommandFactory(shower DiffShower) *CommandFactory {
	return &CommandFactory{shower: shower}
}

func (f *CommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "show-diff",
		Aliases:   []string{"diff"},
		Usage:     t.GetMessage("diff_command_usage", 0, nil),
		ArgsUsage: "<pr-number>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			number, err := prarg.Number(cmd)
			if err != nil {
				return err
			}

			ui.PrintInfo(t.GetMessage("diff.showing", 0, map[string]interface{}{
				"Number": number,
			}))
			_, err = f.shower.ShowDiff(ctx, number)
			return err
		},
	}
}
