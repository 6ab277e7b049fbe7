package review

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/vcstools/git-pr/internal/cli/prarg"
	"github.com/vcstools/git-pr/internal/config"
	domainErrors "github.com/vcstools/git-pr/internal/errors"
	"github.com/vcstools/git-pr/internal/i18n"
	"github.com/vcstools/git-pr/internal/models"
	"github.com/vcstools/git-pr/internal/ui"
)

const defaultMessage = "Looks good to me."

// Reviewer is a minimal interface for testing purposes
type Reviewer interface {
	SubmitReview(ctx context.Context, number int, body string, event models.ReviewEvent) error
	Close(ctx context.Context, number int) error
}

// CommandFactory creates the `submit-review` command.
type CommandFactory struct {
	reviewer Reviewer
}

func NewCommandFactory(reviewer Reviewer) *CommandFactory {
	return &CommandFactory{reviewer: reviewer}
}

func (f *CommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "submit-review",
		Aliases:   []string{"review"},
		Usage:     t.GetMessage("review_command_usage", 0, nil),
		ArgsUsage: "<pr-number>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Usage:   t.GetMessage("review_message_flag_usage", 0, nil),
				Value:   defaultMessage,
			},
			&cli.BoolFlag{
				Name:    "approve",
				Aliases: []string{"a"},
				Usage:   t.GetMessage("review_approve_flag_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:    "reject",
				Aliases: []string{"r"},
				Usage:   t.GetMessage("review_reject_flag_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:    "comment-only",
				Aliases: []string{"c"},
				Usage:   t.GetMessage("review_comment_flag_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			number, err := prarg.Number(cmd)
			if err != nil {
				return err
			}

			approve := cmd.Bool("approve")
			reject := cmd.Bool("reject")
			commentOnly := cmd.Bool("comment-only")
			if countSet(approve, reject, commentOnly) > 1 {
				return domainErrors.NewAppError(domainErrors.TypeParse,
					"--approve, --reject and --comment-only are mutually exclusive", nil)
			}

			message := cmd.String("message")

			switch {
			case reject:
				return f.rejectAndClose(ctx, t, number, message)
			case commentOnly:
				ui.PrintInfo(t.GetMessage("review.submitting_comment", 0, map[string]interface{}{
					"Number": number,
				}))
				return f.submit(ctx, t, number, message, models.ReviewComment)
			case approve:
				ui.PrintInfo(t.GetMessage("review.submitting_approve", 0, map[string]interface{}{
					"Number": number,
				}))
				return f.submit(ctx, t, number, message, models.ReviewApprove)
			default:
				ui.PrintInfo(t.GetMessage("review.default_approve", 0, map[string]interface{}{
					"Number": number,
				}))
				return f.submit(ctx, t, number, message, models.ReviewApprove)
			}
		},
	}
}

func (f *CommandFactory) submit(ctx context.Context, t *i18n.Translations, number int, message string, event models.ReviewEvent) error {
	if err := f.reviewer.SubmitReview(ctx, number, message, event); err != nil {
		return err
	}
	ui.PrintSuccess(os.Stdout, t.GetMessage("review.success", 0, map[string]interface{}{
		"Number": number,
	}))
	return nil
}

// rejectAndClose submits the REQUEST_CHANGES review and then closes the PR.
// The two steps are separate service calls: when the close fails the review
// stays submitted and the close error is what the user sees.
func (f *CommandFactory) rejectAndClose(ctx context.Context, t *i18n.Translations, number int, message string) error {
	ui.PrintInfo(t.GetMessage("review.submitting_reject", 0, map[string]interface{}{
		"Number": number,
	}))
	if err := f.submit(ctx, t, number, message, models.ReviewRequestChanges); err != nil {
		return err
	}
	if err := f.reviewer.Close(ctx, number); err != nil {
		return err
	}
	ui.PrintSuccess(os.Stdout, t.GetMessage("review.closed", 0, map[string]interface{}{
		"Number": number,
	}))
	return nil
}

func countSet(flags ...bool) int {
	n := 0
	for _, set := range flags {
		if set {
			n++
		}
	}
	return n
}
