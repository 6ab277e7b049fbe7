package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

func NewTranslations(defaultLang string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	files, err := filepath.Glob("locales/active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "A git plugin to interact with pull requests"

	[app_description]
	other = "List, inspect, pull and review GitHub pull requests without leaving the terminal"

	[list_command_usage]
	other = "List all currently open pull requests for the repository"

	[details_command_usage]
	other = "Show details for a pull request, including commits and changed files"

	[diff_command_usage]
	other = "Show the diff of a PR branch compared to its base branch"

	[pull_command_usage]
	other = "Pull and checkout a PR branch locally"

	[review_command_usage]
	other = "Submit a review for a pull request"

	[review_message_flag_usage]
	other = "Review message to attach to the review"

	[review_approve_flag_usage]
	other = "Approve the pull request"

	[review_reject_flag_usage]
	other = "Request changes and close the pull request"

	[review_comment_flag_usage]
	other = "Only comment, without approving or rejecting"

	[list.fetching]
	other = "Fetching open pull requests..."

	[list.no_open_prs]
	other = "No open pull requests found."

	[details.fetching]
	other = "Fetching details for PR #{{.Number}}..."

	[pull.pulling]
	other = "Pulling PR #{{.Number}}..."

	[pull.same_repo_success]
	other = "Switched to branch {{.Branch}} tracking origin/{{.Head}}"

	[pull.fork_success]
	other = "Switched to branch {{.Branch}}"

	[pull.fork_readonly]
	other = "This branch is a read-only checkout of PR #{{.Number}}, since it comes from a fork."

	[diff.showing]
	other = "Showing diff for PR #{{.Number}}..."

	[review.submitting_approve]
	other = "Submitting APPROVAL review for PR #{{.Number}}..."

	[review.submitting_reject]
	other = "Submitting REQUEST_CHANGES review and closing PR #{{.Number}}..."

	[review.submitting_comment]
	other = "Submitting COMMENT only review for PR #{{.Number}}..."

	[review.default_approve]
	other = "No review flag specified, defaulting to APPROVE for PR #{{.Number}}..."

	[review.success]
	other = "Review submitted successfully for PR #{{.Number}}"

	[review.closed]
	other = "PR #{{.Number}} successfully closed."

	[warning.pr_detail_failed]
	other = "Failed to fetch details for PR #{{.Number}}"

	[warning.commit_files_failed]
	other = "Failed to fetch commit {{.SHA}}"

	[table.header_number]
	other = "Number"

	[table.header_title]
	other = "Title"

	[table.header_author]
	other = "Author"

	[table.header_age]
	other = "Age"

	[table.header_commits]
	other = "Total Commits"

	[table.header_files]
	other = "Number of Changed Files"

	[table.header_labels]
	other = "Labels"

	[table.header_description]
	other = "Description"

	[table.header_pr_number]
	other = "PR Number"

	[table.header_status]
	other = "Status"

	[table.header_authors]
	other = "Authors"

	[table.header_commit_sha]
	other = "Commit SHA"

	[table.header_changed_files]
	other = "Changed Files"

	[ui_error.try_suggestion]
	other = "💡 Try: "

	[help_command_usage]
	other = "Show help"
	`
