package cli

import (
	"fmt"
	"path/filepath"

	"github.com/EbonJaeger/soltools/internal/version"
	"github.com/EbonJaeger/soltools/pkg/config"
	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/filesystem"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newGenConfigCmd(a *app) *cobra.Command {
	var (
		write, force bool
		output       string
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent(nil)
			if err != nil {
				return errors.Wrap(err, errors.ErrConfig, "failed to render configuration")
			}
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path := output
			if path == "" {
				path = config.DefaultConfigPath()
			}
			exists, err := filesystem.Exists(a.deps.FS, path)
			if err != nil {
				return errors.Wrapf(err, errors.ErrIO, MsgErrWriteConfig, path)
			}
			if exists && !force {
				return errors.Newf(errors.ErrPrecondition, MsgErrConfigExists, path)
			}
			if a.opts.dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "would write %s\n", path)
				return nil
			}

			if err := a.deps.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrIO, MsgErrWriteConfig, path)
			}
			if err := a.deps.FS.WriteFile(path, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrIO, MsgErrWriteConfig, path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Example:               MsgCompletionExample,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	// Completion must work without a readable config.
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {}
	return cmd
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Hidden:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "SOLTOOLS",
				Section: "1",
				Source:  "soltools " + version.Version,
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return errors.Wrapf(err, errors.ErrIO, "failed to write man pages to %s", dir)
			}
			return nil
		},
	}

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", MsgFlagManDir)
	return cmd
}
