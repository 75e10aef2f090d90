package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/veronikaslc/cards/internal/audit"
	"github.com/veronikaslc/cards/internal/health"
	"github.com/veronikaslc/cards/internal/output"
)

// CheckCommand creates the check command.
func CheckCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the CARDS instance is reachable and the admin credentials work",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, s)
		},
	}
}

func runCheck(cmd *cobra.Command, s *session) error {
	start := time.Now()

	status, err := health.NewChecker(s.cfg.Timeout).Check(cmd.Context(), s.client(), s.cfg.AdminUser)

	op := audit.Operation{
		Type:         "check",
		UserIdentity: s.cfg.AdminUser,
		Command:      cmd.CommandPath(),
		Target:       s.cfg.CardsURL,
		Outcome:      audit.OutcomeSuccess,
		Duration:     time.Since(start),
	}
	if err != nil {
		op.Outcome = audit.OutcomeFailure
		op.Error = err
	}
	audit.NewLogger(s.logger.Logger).LogOperation(op)

	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch s.cfg.OutputFormat {
	case output.FormatJSON:
		return output.NewJSONFormatter(w).WriteSuccess(cmd.CommandPath(), status, nil)
	case output.FormatYAML:
		return output.NewYAMLFormatter(w).Write(output.Output{Success: true, Command: cmd.CommandPath(), Data: status})
	default:
		t := output.NewTableFormatter(w)
		if err := t.WriteHeader("SERVICE", "URL", "USER", "LATENCY"); err != nil {
			return err
		}
		if err := t.WriteRow(status.Service, status.URL, status.UserID, status.Latency.Round(time.Millisecond).String()); err != nil {
			return err
		}
		return t.Flush()
	}
}
