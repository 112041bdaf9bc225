// Package commands implements CLI command handlers for lithic.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harborgrid-justin/lithic/internal/config"
	"github.com/harborgrid-justin/lithic/internal/hooks"
	"github.com/harborgrid-justin/lithic/internal/patch"
)

var (
	// ErrNoChange indicates the file was processed but no patch applied.
	// Mapped to exit status 1 without an error message.
	ErrNoChange = errors.New("no import changes applied")

	// ErrNoFileArgument indicates the command was invoked without a file.
	// Usage has already been printed when this is returned.
	ErrNoFileArgument = errors.New("no file argument")
)

type configLoader func(path string) (*config.Config, error)

// RootCommand holds configuration and dependencies for the root patch command.
type RootCommand struct {
	cfgPath      string
	dryRun       bool
	showDiff     bool
	noColor      bool
	verbose      bool
	backupSuffix string

	loadConfig configLoader
}

// NewRootCommand creates the root command: lithic patches the single file
// named by its positional argument.
func NewRootCommand() *cobra.Command {
	return newRootCommandWithDeps(config.Load)
}

func newRootCommandWithDeps(loadConfig configLoader) *cobra.Command {
	rc := &RootCommand{loadConfig: loadConfig}

	cmd := &cobra.Command{
		Use:   "lithic <file>",
		Short: "Insert a missing useCallback import into a React source file",
		Long: `Lithic textually patches one source file: when the file does not mention
useCallback anywhere, the symbol is appended to a named-import declaration
listing useEffect and useState (in either order). The file is rewritten only
when the content actually changes.

Exit status is 0 when the file was patched and 1 otherwise.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          rc.run,
	}

	cmd.Flags().StringVar(&rc.cfgPath, "config", "", "Config file path (default: .lithic.yaml in CWD or $HOME)")
	cmd.Flags().BoolVarP(&rc.dryRun, "dry-run", "n", false, "Show what would change without writing the file")
	cmd.Flags().BoolVar(&rc.showDiff, "diff", false, "Print a diff of the applied change")
	cmd.Flags().BoolVar(&rc.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVarP(&rc.verbose, "verbose", "v", false, "Enable debug diagnostics on stderr")
	cmd.Flags().StringVar(&rc.backupSuffix, "backup-suffix", "", "Save the original content to <file><suffix> before overwriting")

	return cmd
}

func (rc *RootCommand) run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		helpErr := cmd.Help()
		if helpErr != nil {
			return helpErr
		}

		return ErrNoFileArgument
	}

	cfg, err := rc.loadConfig(rc.cfgPath)
	if err != nil {
		return err
	}

	rc.applyFlagOverrides(cmd, cfg)

	validateErr := cfg.Validate()
	if validateErr != nil {
		return validateErr
	}

	if !cfg.Output.Color {
		color.NoColor = true
	}

	patcher := patch.New(hooks.ImportRules())
	patcher.DryRun = cfg.Patch.DryRun
	patcher.BackupSuffix = cfg.Patch.BackupSuffix

	fixer := hooks.NewFixer(patcher, newLogger(cmd.ErrOrStderr(), cfg.Output.Verbose))

	result, err := fixer.Fix(args[0], cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if result.Changed && (rc.showDiff || cfg.Patch.DryRun) {
		fmt.Fprintln(cmd.OutOrStdout(), result.Diff())
	}

	if !result.Changed {
		return ErrNoChange
	}

	return nil
}

// applyFlagOverrides lets explicitly set flags win over config file values.
func (rc *RootCommand) applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("dry-run") {
		cfg.Patch.DryRun = rc.dryRun
	}

	if flags.Changed("backup-suffix") {
		cfg.Patch.BackupSuffix = rc.backupSuffix
	}

	if flags.Changed("no-color") {
		cfg.Output.Color = !rc.noColor
	}

	if flags.Changed("verbose") {
		cfg.Output.Verbose = rc.verbose
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return nil
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
