package renum

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/renum/pkg/config"
	"github.com/arthur-debert/renum/pkg/errors"
	"github.com/arthur-debert/renum/pkg/executor"
	"github.com/arthur-debert/renum/pkg/locking"
	"github.com/arthur-debert/renum/pkg/logging"
	"github.com/arthur-debert/renum/pkg/paths"
	"github.com/arthur-debert/renum/pkg/pattern"
	"github.com/arthur-debert/renum/pkg/selection"
	"github.com/arthur-debert/renum/pkg/sequence"
	"github.com/arthur-debert/renum/pkg/style"
	"github.com/arthur-debert/renum/pkg/ui"
)

// runSettings is the effective configuration of one rename invocation
// after merging config sources with the flags set on the command line.
type runSettings struct {
	DryRun        bool
	AllowWarnings bool
	NoLock        bool
	Order         sequence.Order
	Format        ui.Format
}

// resolveSettings merges loaded configuration with explicitly set
// flags. Flags always win over config, config over built-in defaults.
func resolveSettings(cmd *cobra.Command, cfg *config.Settings) (*runSettings, error) {
	flags := cmd.Root().PersistentFlags()

	// --go is deliberately flag-only: a dry run stays the default even
	// when a config file exists
	goFlag, _ := flags.GetBool("go")

	allowWarnings := cfg.AllowWarnings
	if flags.Changed("allow-warnings") {
		allowWarnings, _ = flags.GetBool("allow-warnings")
	}

	noLock := cfg.NoLock
	if flags.Changed("no-lock") {
		noLock, _ = flags.GetBool("no-lock")
	}

	orderName := cfg.Order
	if flags.Changed("order") {
		orderName, _ = flags.GetString("order")
	}
	order, err := sequence.ParseOrder(orderName)
	if err != nil {
		return nil, err
	}

	formatName := cfg.Format
	if flags.Changed("format") {
		formatName, _ = flags.GetString("format")
	}
	format, err := ui.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	return &runSettings{
		DryRun:        !goFlag,
		AllowWarnings: allowWarnings,
		NoLock:        noLock,
		Order:         order,
		Format:        format,
	}, nil
}

// runRename is the shared pipeline behind the files and glob commands.
// selectFiles produces the selection; everything around it (pattern
// parsing, the warning gate, locking, execution, rendering) is common.
func runRename(cmd *cobra.Command, patternArg string, selectFiles func(cfg *config.Settings) ([]string, error)) error {
	logger := logging.GetLogger("cmd")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	settings, err := resolveSettings(cmd, cfg)
	if err != nil {
		return err
	}

	renderer := style.NewRenderer(settings.Format, os.Stdout)

	pat, err := pattern.Parse(patternArg)
	if err != nil {
		return errors.Wrapf(err, errors.ErrPatternParse, "%s %q", MsgErrParsePattern, patternArg)
	}

	if !pat.HasDynamicContent() {
		logger.Warn().Str("pattern", patternArg).Msg("Rename pattern has no dynamic content")
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderWarning(fmt.Sprintf(MsgStaticPatternWarning, patternArg)))
		if !settings.AllowWarnings {
			return errors.New(errors.ErrPatternStatic, MsgWarningsNotAllowed)
		}
	}

	files, err := selectFiles(cfg)
	if err != nil {
		return err
	}

	// Only real runs touch the filesystem, so only they take the lock
	if !settings.DryRun && !settings.NoLock {
		lock := locking.New(paths.New().RunLockPath())
		if err := lock.Acquire(); err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn().Err(err).Msg("Failed to release run lock")
			}
		}()
	}

	exec := executor.New(executor.Options{DryRun: settings.DryRun})
	report, err := exec.Execute(files, pat, settings.Order)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderReport(report))
	return nil
}

func newFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "files <pattern> <file>...",
		Short:   MsgFilesShort,
		Long:    MsgFilesLong,
		Example: MsgFilesExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, args[0], func(cfg *config.Settings) ([]string, error) {
				return selection.Files(args[1:]), nil
			})
		},
	}
}

func newGlobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "glob <pattern> <glob>",
		Short:   MsgGlobShort,
		Long:    MsgGlobLong,
		Example: MsgGlobExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, args[0], func(cfg *config.Settings) ([]string, error) {
				sortName := cfg.SortBy
				if cmd.Flags().Changed("sort-by") {
					sortName, _ = cmd.Flags().GetString("sort-by")
				}
				sortBy, err := selection.ParseSortBy(sortName)
				if err != nil {
					return nil, err
				}
				return selection.Glob(args[1], sortBy)
			})
		},
	}

	cmd.Flags().String("sort-by", string(selection.SortLexicographical), MsgFlagSortBy)

	return cmd
}

func newGenConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.genconfig")
			content := config.GenerateConfigContent()

			write, _ := cmd.Flags().GetBool("write")
			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			// Never clobber an existing config
			if _, err := os.Stat(config.LocalConfigName); err == nil {
				logger.Warn().Str("path", config.LocalConfigName).Msg("Config file already exists, skipping")
				fmt.Fprintf(cmd.ErrOrStderr(), MsgConfigExists, config.LocalConfigName)
				return nil
			}

			if err := os.WriteFile(config.LocalConfigName, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to write config to %s", config.LocalConfigName)
			}

			logger.Info().Str("path", config.LocalConfigName).Msg("Written config file")
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, config.LocalConfigName)
			return nil
		},
	}

	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)

	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
