// Package commands provides Cobra command implementations for cards-admin.
//
// Purpose:
//
//	Build the command tree, resolve configuration once per invocation, and
//	translate command failures into exit codes. Commands write results to the
//	command's stdout and diagnostics to its stderr.
//
package commands

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/veronikaslc/cards/internal/client/cards"
	"github.com/veronikaslc/cards/internal/config"
	"github.com/veronikaslc/cards/internal/errors"
	"github.com/veronikaslc/cards/internal/logging"
	"github.com/veronikaslc/cards/internal/output"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	cardsURL string
	format   string
	logLevel string
	verbose  bool
	timeout  time.Duration
}

// session carries what a single invocation resolved before running.
type session struct {
	flags  globalFlags
	cfg    config.Config
	logger *logging.Logger

	// started is set once cobra has parsed flags and validated arguments.
	started bool
}

// RootCommand creates the cards-admin command tree.
func RootCommand(version string) *cobra.Command {
	cmd, _ := newRootCommand(version)
	return cmd
}

func newRootCommand(version string) (*cobra.Command, *session) {
	s := &session{}

	cmd := &cobra.Command{
		Use:   "cards-admin",
		Short: "Administrative queries against a CARDS data repository",
		Long: `cards-admin runs read-only administrative queries against a CARDS instance.

The instance address is read from CARDS_URL (default http://localhost:8080)
and the admin password from ADMIN_PASSWORD (default admin).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s.started = true
			return s.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s.logger != nil {
				_ = s.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&s.flags.cardsURL, "cards-url", "", "CARDS base address (overrides CARDS_URL)")
	cmd.PersistentFlags().StringVar(&s.flags.format, "format", "", "Output format: plain, json, yaml, table, csv")
	cmd.PersistentFlags().StringVar(&s.flags.logLevel, "log-level", "", "Diagnostic log level: debug, info, warn, error (overrides LOG_LEVEL)")
	cmd.PersistentFlags().BoolVar(&s.flags.verbose, "verbose", false, "Enable debug diagnostics on stderr")
	cmd.PersistentFlags().DurationVar(&s.flags.timeout, "timeout", 0, "HTTP timeout (0 uses transport defaults)")

	cmd.AddCommand(VocabulariesCommand(s))
	cmd.AddCommand(CheckCommand(s))

	return cmd, s
}

// load resolves configuration and the logger for this invocation.
func (s *session) load(cmd *cobra.Command) error {
	cfg, err := config.Load(config.Overrides{
		CardsURL:     s.flags.cardsURL,
		OutputFormat: s.flags.format,
		LogLevel:     s.flags.logLevel,
		Verbose:      s.flags.verbose,
		Timeout:      s.flags.timeout,
	})
	if err != nil {
		return errors.NewValidationError(
			fmt.Sprintf("failed to load configuration: %v", err),
			"Check CARDS_URL and the command-line flags.",
		)
	}

	if err := output.ValidateFormat(cfg.OutputFormat); err != nil {
		return errors.NewUsageError(err.Error())
	}

	s.cfg = cfg
	s.logger = logging.New(
		logging.DefaultConfig().WithLogLevel(cfg.LogLevel),
		cmd.ErrOrStderr(),
	)
	s.logger.Debug("configuration resolved",
		zap.String("cards_url", cfg.CardsURL),
		zap.String("user", cfg.AdminUser),
		zap.String("format", cfg.OutputFormat),
	)

	return nil
}

// client returns a CARDS client bound to the resolved configuration.
func (s *session) client() *cards.Client {
	return cards.NewClient(s.cfg, cards.WithLogger(s.logger))
}

// Execute runs the command tree with args and returns the process exit code.
// Errors are printed to stderr unless the command already reported them.
// Unknown commands, bad flags and unexpected arguments exit with ExitUsage.
func Execute(ctx context.Context, version string, args []string, stdout, stderr io.Writer) int {
	root, s := newRootCommand(version)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var cliErr *errors.CLIError
	if !s.started && !stderrors.As(err, &cliErr) {
		err = errors.NewUsageError(err.Error())
	}

	if !errors.IsReported(err) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return errors.ExitCode(err)
}
