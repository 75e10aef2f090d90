package commands

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/veronikaslc/cards/internal/audit"
	"github.com/veronikaslc/cards/internal/client/cards"
	"github.com/veronikaslc/cards/internal/errors"
	"github.com/veronikaslc/cards/internal/output"
	"github.com/veronikaslc/cards/internal/vocabulary"
)

// VocabulariesCommand creates the vocabularies command group.
func VocabulariesCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vocabularies",
		Aliases: []string{"vocab"},
		Short:   "Inspect vocabularies used by questionnaires",
		Long:    "List the vocabularies referenced by vocabulary questions, the ones installed, and the ones missing.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(vocabulariesRequiredCommand(s))
	cmd.AddCommand(vocabulariesInstalledCommand(s))
	cmd.AddCommand(vocabulariesMissingCommand(s))

	return cmd
}

func vocabulariesRequiredCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "required",
		Aliases: []string{"list"},
		Short:   "List vocabularies referenced by vocabulary questions",
		Long: `Query every lfs:Question whose dataType is "vocabulary" and print the
deduplicated set of their sourceVocabularies, one per line.

Exits non-zero and prints "Vocabularies query failed" if the query is rejected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVocabulariesRequired(cmd, s)
		},
	}
}

func runVocabulariesRequired(cmd *cobra.Command, s *session) error {
	return s.audited(cmd, "vocabularies_required", func(ctx context.Context, c *cards.Client) (output.List, error) {
		rows, err := c.RequiredVocabularyQuestions(ctx)
		if err != nil {
			return output.List{}, err
		}

		required := vocabulary.Required(rows)
		s.logger.Debug("vocabularies collected",
			zap.Int("questions", len(rows)),
			zap.Int("vocabularies", required.Len()),
		)

		return output.List{
			Command: cmd.CommandPath(),
			Column:  "vocabulary",
			Items:   required.Members(),
			Summary: map[string]interface{}{
				"questions":    len(rows),
				"vocabularies": required.Len(),
			},
		}, nil
	})
}

func vocabulariesInstalledCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "installed",
		Short: "List vocabularies installed in the repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.audited(cmd, "vocabularies_installed", func(ctx context.Context, c *cards.Client) (output.List, error) {
				rows, err := c.InstalledVocabularies(ctx)
				if err != nil {
					return output.List{}, err
				}

				installed := vocabulary.Installed(rows)
				return output.List{
					Command: cmd.CommandPath(),
					Column:  "vocabulary",
					Items:   installed.Members(),
					Summary: map[string]interface{}{"vocabularies": installed.Len()},
				}, nil
			})
		},
	}
}

func vocabulariesMissingCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "missing",
		Short: "List required vocabularies that are not installed",
		Long: `Compare the vocabularies referenced by vocabulary questions with the
vocabularies installed in the repository and print the ones that still need
to be installed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.audited(cmd, "vocabularies_missing", func(ctx context.Context, c *cards.Client) (output.List, error) {
				questions, err := c.RequiredVocabularyQuestions(ctx)
				if err != nil {
					return output.List{}, err
				}
				installedRows, err := c.InstalledVocabularies(ctx)
				if err != nil {
					return output.List{}, err
				}

				required := vocabulary.Required(questions)
				installed := vocabulary.Installed(installedRows)
				missing := required.Difference(installed)

				return output.List{
					Command: cmd.CommandPath(),
					Column:  "vocabulary",
					Items:   missing.Members(),
					Summary: map[string]interface{}{
						"required":  required.Len(),
						"installed": installed.Len(),
						"missing":   missing.Len(),
					},
				}, nil
			})
		},
	}
}

// audited runs fn with a fresh request ID, records the outcome in the audit
// log and writes the resulting list. Query failures are reported on stdout.
func (s *session) audited(cmd *cobra.Command, operation string, fn func(context.Context, *cards.Client) (output.List, error)) error {
	start := time.Now()
	requestID := uuid.NewString()
	ctx := cards.ContextWithRequestID(cmd.Context(), requestID)

	list, err := fn(ctx, s.client())

	op := audit.Operation{
		Type:         operation,
		UserIdentity: s.cfg.AdminUser,
		Command:      cmd.CommandPath(),
		Target:       s.cfg.CardsURL,
		RequestID:    requestID,
		Parameters: map[string]interface{}{
			"format":   s.cfg.OutputFormat,
			"password": s.cfg.AdminPassword,
		},
		Outcome:  audit.OutcomeSuccess,
		Duration: time.Since(start),
	}
	if err != nil {
		op.Outcome = audit.OutcomeFailure
		op.Error = err
	}
	audit.NewLogger(s.logger.Logger).LogOperation(op)

	if err != nil {
		return reportQueryFailure(cmd.OutOrStdout(), s.cfg.OutputFormat, cmd.CommandPath(), err)
	}

	return output.WriteList(cmd.OutOrStdout(), s.cfg.OutputFormat, list)
}

// reportQueryFailure prints the fixed failure message for a rejected query
// and marks the error as reported. Other errors are returned untouched.
func reportQueryFailure(w io.Writer, format, command string, err error) error {
	var cliErr *errors.CLIError
	if !stderrors.As(err, &cliErr) || cliErr.Code != errors.ErrCodeQueryFailed {
		return err
	}

	switch format {
	case output.FormatJSON:
		_ = output.NewJSONFormatter(w).WriteError(command, stderrors.New(cliErr.Message), string(cliErr.Code), cliErr.Suggestion)
	case output.FormatYAML:
		_ = output.NewYAMLFormatter(w).Write(output.Output{
			Command: command,
			Error: &output.ErrorOutput{
				Message:    cliErr.Message,
				Code:       string(cliErr.Code),
				Suggestion: cliErr.Suggestion,
			},
		})
	default:
		fmt.Fprintln(w, errors.QueryFailedMessage)
	}

	cliErr.Reported = true
	return cliErr
}
