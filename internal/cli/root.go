package cli

import (
	"context"
	"io"
	"os"

	"github.com/EbonJaeger/soltools/internal/version"
	"github.com/EbonJaeger/soltools/pkg/config"
	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/filesystem"
	"github.com/EbonJaeger/soltools/pkg/logging"
	"github.com/EbonJaeger/soltools/pkg/permission"
	"github.com/EbonJaeger/soltools/pkg/repo"
	"github.com/EbonJaeger/soltools/pkg/runner"
	"github.com/EbonJaeger/soltools/pkg/style"
	"github.com/EbonJaeger/soltools/pkg/vcs"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Deps are the collaborators commands run against. Tests replace them.
type Deps struct {
	FS             filesystem.FS
	Runner         runner.Runner
	VCS            vcs.Client
	IdentityLookup func() (vcs.Identity, error)
	Escalate       func(ctx context.Context, opts permission.Options) (bool, error)
	Getwd          func() (string, error)
	// Args are the command line arguments without the program name.
	Args []string

	Stdout io.Writer
	Stderr io.Writer
}

// DefaultDeps runs against the host.
func DefaultDeps() Deps {
	return Deps{
		FS:             filesystem.NewOS(),
		Runner:         runner.NewExecRunner(),
		VCS:            vcs.NewGitClient(),
		IdentityLookup: vcs.GlobalIdentity,
		Escalate:       permission.EscalateIfNeeded,
		Getwd:          os.Getwd,
		Args:           os.Args[1:],
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
	}
}

type globalOptions struct {
	verbosity  int
	dryRun     bool
	configFile string
	repoPath   string
	format     string
}

// app is the state shared by every command of one invocation.
type app struct {
	deps     Deps
	opts     globalOptions
	cfg      *config.Config
	renderer *style.Renderer
}

// NewRootCmd creates the root command wired to the host.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(DefaultDeps())
}

// NewRootCmdWithDeps creates the root command using deps.
func NewRootCmdWithDeps(deps Deps) *cobra.Command {
	initTemplateFormatting()

	a := &app{deps: deps}

	rootCmd := &cobra.Command{
		Use:     "soltools",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.SetOut(deps.Stdout)
	rootCmd.SetErr(deps.Stderr)

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVar(&a.opts.dryRun, "dry-run", false, MsgFlagDryRun)
	flags.StringVarP(&a.opts.configFile, "config", "c", "", MsgFlagConfig)
	flags.StringVar(&a.opts.repoPath, "repo", "", MsgFlagRepo)
	flags.StringVar(&a.opts.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(
		&cobra.Group{ID: "repo", Title: formatBoldUpper("repository") + ":"},
		&cobra.Group{ID: "packaging", Title: formatBoldUpper("packaging") + ":"},
		&cobra.Group{ID: "misc", Title: formatBoldUpper("misc") + ":"},
	)
	rootCmd.SetHelpCommandGroupID("misc")
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newCopyCmd(a))
	rootCmd.AddCommand(newCleanCmd(a))
	rootCmd.AddCommand(newIndexCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newCloneCmd(a))
	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newGenConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// setup loads the configuration and picks the output format.
func (a *app) setup() error {
	format, err := style.ParseFormat(a.opts.format)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, MsgErrUnknownFormat, a.opts.format)
	}
	a.renderer = style.NewRenderer(a.deps.Stdout, format)

	overrides := map[string]interface{}{}
	if a.opts.repoPath != "" {
		overrides["repository_path"] = a.opts.repoPath
	}
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: a.opts.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}
	a.cfg = cfg

	log.Debug().
		Str("repository", cfg.RepositoryPath).
		Bool("dry_run", a.opts.dryRun).
		Str("format", format.String()).
		Msg("Configuration loaded")
	return nil
}

func (a *app) indexer() repo.Indexer {
	return repo.Indexer{
		Binary:          a.cfg.Indexer.Command,
		Subcommand:      a.cfg.Indexer.Subcommand,
		SkipSigningFlag: a.cfg.Indexer.SkipSigningFlag,
		Output:          a.deps.Stderr,
	}
}

// runner returns the runner for external tools; in a dry run commands
// are printed instead.
func (a *app) runner() runner.Runner {
	if a.opts.dryRun {
		return runner.NewDryRunner(a.deps.Stderr)
	}
	return a.deps.Runner
}

func (a *app) workingDir() (string, error) {
	cwd, err := a.deps.Getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrIO, MsgErrWorkingDir)
	}
	return cwd, nil
}

// escalate re-runs the invocation as root for commands that write to the
// repository. It reports true when the privileged child handled it.
func (a *app) escalate(cmd *cobra.Command) (bool, error) {
	if a.opts.dryRun {
		return false, nil
	}
	escalated, err := a.deps.Escalate(cmd.Context(), permission.Options{
		Enabled:  a.cfg.Permission.Escalate,
		SudoPath: a.cfg.Permission.SudoPath,
		Args:     a.escalatedArgs(),
		Runner:   a.deps.Runner,
	})
	if escalated && err == nil {
		log.Debug().Msg(MsgDebugEscalated)
	}
	return escalated, err
}

// escalatedArgs pins the resolved repository and config file on the
// child's command line. sudo resets the environment and HOME, so the child
// would otherwise see neither SOLTOOLS_* variables nor the user's config.
func (a *app) escalatedArgs() []string {
	args := []string{"--repo=" + a.cfg.RepositoryPath}
	if a.cfg.File != "" {
		args = append(args, "--config="+a.cfg.File)
	}
	return append(args, a.deps.Args...)
}
