package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/vcstools/git-pr/internal/cli/command/details"
	"github.com/vcstools/git-pr/internal/cli/command/diff"
	"github.com/vcstools/git-pr/internal/cli/command/list"
	"github.com/vcstools/git-pr/internal/cli/command/pull"
	"github.com/vcstools/git-pr/internal/cli/command/review"
	"github.com/vcstools/git-pr/internal/cli/registry"
	"github.com/vcstools/git-pr/internal/config"
	"github.com/vcstools/git-pr/internal/git"
	"github.com/vcstools/git-pr/internal/i18n"
	"github.com/vcstools/git-pr/internal/logger"
	"github.com/vcstools/git-pr/internal/services"
	"github.com/vcstools/git-pr/internal/ui"
	"github.com/vcstools/git-pr/internal/vcs"
	"github.com/vcstools/git-pr/internal/version"
)

func main() {
	ctx := context.Background()

	app, translations, err := initializeApp(ctx)
	if err != nil {
		ui.HandleAppError(err, translations)
		os.Exit(1)
	}

	ctx = logger.With(ctx, "invocation_id", uuid.NewString())
	if err := app.Run(ctx, os.Args); err != nil {
		ui.StopActiveSpinner()
		ui.HandleAppError(err, translations)
		os.Exit(1)
	}
}

func initializeApp(ctx context.Context) (*cli.Command, *i18n.Translations, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfg.Language)
	if err != nil {
		return nil, nil, err
	}

	logger.Initialize(cfg.Debug)

	gitService := git.NewGitService()
	remoteURL, err := gitService.RemoteURL(ctx)
	if err != nil {
		return nil, translations, err
	}

	client, err := vcs.NewClient(remoteURL, cfg)
	if err != nil {
		return nil, translations, err
	}

	listService := services.NewListService(client)
	detailService := services.NewDetailService(client)
	branchService := services.NewBranchService(client, gitService)
	reviewService := services.NewReviewService(client)

	registerCommand := registry.NewRegistry(cfg, translations)
	factories := map[string]registry.CommandFactory{
		"list":          list.NewCommandFactory(listService),
		"show-details":  details.NewCommandFactory(detailService),
		"show-diff":     diff.NewCommandFactory(branchService),
		"pull":          pull.NewCommandFactory(branchService),
		"submit-review": review.NewCommandFactory(reviewService),
	}
	for _, name := range []string{"list", "show-details", "show-diff", "pull", "submit-review"} {
		if err := registerCommand.Register(name, factories[name]); err != nil {
			return nil, translations, err
		}
	}

	commands := registerCommand.CreateCommands()
	commands = append(commands, &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	})

	return &cli.Command{
		Name:                  "git-pr",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
	}, translations, nil
}
