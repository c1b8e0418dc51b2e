package mmv

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/mmv/internal/version"
	"github.com/arthur-debert/mmv/pkg/cobrax/topics"
	"github.com/arthur-debert/mmv/pkg/config"
	"github.com/arthur-debert/mmv/pkg/filesystem"
	"github.com/arthur-debert/mmv/pkg/logging"
	"github.com/arthur-debert/mmv/pkg/matcher"
	"github.com/arthur-debert/mmv/pkg/operations"
	"github.com/arthur-debert/mmv/pkg/types"
	"github.com/arthur-debert/mmv/pkg/ui"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// app carries what a single invocation needs between the cobra hooks
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	fs       types.FS
	cfg      *config.Config
	renderer ui.Renderer
}

// NewRootCmd creates and returns the root command writing to the process
// streams
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{stdout: os.Stdout, stderr: os.Stderr, fs: filesystem.NewOS()})
}

func newRootCmd(a *app) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity  int
		force      bool
		dryRun     bool
		preflight  bool
		format     string
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ExactArgs(2),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			overrides := map[string]interface{}{}
			if flags.Changed("force") {
				overrides["force"] = force
			}
			if flags.Changed("dry-run") {
				overrides["dry_run"] = dryRun
			}
			if flags.Changed("preflight") {
				overrides["preflight"] = preflight
			}
			if flags.Changed("format") {
				overrides["output.format"] = format
			}
			if flags.Changed("verbose") {
				overrides["logging.verbosity"] = verbosity
			}

			cfg, err := config.Load(config.LoadOptions{
				ConfigPath: configPath,
				Overrides:  overrides,
			})
			if err != nil {
				return err
			}
			a.cfg = cfg

			logging.SetupLogger(cfg.Logging.Verbosity, a.stderr)
			logging.LogCommand(cmd.Name(), args)

			outputFormat, err := ui.ParseFormat(cfg.Output.Format)
			if err != nil {
				return err
			}
			renderer, err := ui.NewRenderer(outputFormat, a.stdout, a.stderr)
			if err != nil {
				return err
			}
			a.renderer = renderer
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.rename(args[0], args[1])
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVar(&preflight, "preflight", false, MsgFlagPreflight)
	rootCmd.PersistentFlags().StringVar(&format, "format", config.FormatAuto, MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{config.FormatAuto, config.FormatTerm, config.FormatText, config.FormatJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionTemplate, version.Version, version.Commit, version.Date))

	rootCmd.AddCommand(newGenConfigCmd(a))
	rootCmd.AddCommand(newCompletionCmd())

	// Topic-based help replaces cobra's help command
	helpFS, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		opts := topics.Options{
			Extensions: []string{".md", ".txt"},
			Renderer:   topics.NewGlamourRenderer(),
		}
		_, _ = topics.InitializeWithOptions(rootCmd, helpFS, opts)
	}

	return rootCmd
}

// rename runs the scan, resolves every target and hands the pairs to the
// executor, which renders each move as it happens
func (a *app) rename(source, target string) error {
	logger := logging.GetLogger("cmd.mmv")
	done := logging.LogOperationStart(logger, "rename")
	defer done()

	fileMatcher, err := matcher.New(a.fs, source)
	if err != nil {
		return err
	}

	files, err := fileMatcher.FilesWithMatches()
	if err != nil {
		return err
	}

	pairs, err := operations.BuildPairs(files, target)
	if err != nil {
		return err
	}

	executor := operations.NewExecutor(a.fs, operations.Options{
		Force:     a.cfg.Force,
		DryRun:    a.cfg.DryRun,
		Preflight: a.cfg.Preflight,
	}, operations.ReporterFunc(a.renderer.RenderMove))

	results, err := executor.Execute(pairs)
	logger.Info().
		Int("files", len(files)).
		Int("moved", len(results)).
		Bool("dry_run", a.cfg.DryRun).
		Msg("rename finished")
	return err
}

func newGenConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent(a.cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
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
		// Scripts are generated without loading the config
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
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
