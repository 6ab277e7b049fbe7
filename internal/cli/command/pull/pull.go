package pull

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/vcstools/git-pr/internal/cli/prarg"
	"github.com/vcstools/git-pr/internal/config"
	"github.com/vcstools/git-pr/internal/i18n"
	"github.com/vcstools/git-pr/internal/models"
	"github.com/vcstools/git-pr/internal/ui"
)

// BranchPuller is a minimal interface for testing purposes
type BranchPuller interface {
	Pull(ctx context.Context, number int) (models.BranchPlan, error)
}

// CommandFactory creates the `pull` command.
type CommandFactory struct {
	puller BranchPuller
}

func NewCommandFactory(puller BranchPuller) *CommandFactory {
	return &CommandFactory{puller: puller}
}

func (f *CommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "pull",
		Usage:     t.GetMessage("pull_command_usage", 0, nil),
		ArgsUsage: "<pr-number>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			number, err := prarg.Number(cmd)
			if err != nil {
				return err
			}

			spin := ui.NewSmartSpinner(t.GetMessage("pull.pulling", 0, map[string]interface{}{
				"Number": number,
			}))
			spin.Start()

			plan, err := f.puller.Pull(ctx, number)
			spin.Stop()
			if err != nil {
				return err
			}

			if plan.IsFork {
				ui.PrintSuccess(os.Stdout, t.GetMessage("pull.fork_success", 0, map[string]interface{}{
					"Branch": plan.LocalBranch,
				}))
				ui.PrintInfo(t.GetMessage("pull.fork_readonly", 0, map[string]interface{}{
					"Number": number,
				}))
				return nil
			}

			ui.PrintSuccess(os.Stdout, t.GetMessage("pull.same_repo_success", 0, map[string]interface{}{
				"Branch": plan.LocalBranch,
				"Head":   plan.LocalBranch,
			}))
			return nil
		},
	}
}
