package cli

import (
	"github.com/EbonJaeger/soltools/pkg/packaging"
	"github.com/EbonJaeger/soltools/pkg/style"
	"github.com/spf13/cobra"
)

func newCloneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "clone NAME",
		Aliases: []string{"c"},
		Short:   MsgCloneShort,
		Long:    MsgCloneLong,
		Example: MsgCloneExample,
		GroupID: "packaging",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := a.workingDir()
			if err != nil {
				return err
			}

			opts := packaging.CloneOptions{
				FS:          a.deps.FS,
				Root:        cwd,
				CommonDir:   a.cfg.Packaging.CommonDir,
				Name:        args[0],
				URLTemplate: a.cfg.Source.URLTemplate,
				Client:      a.deps.VCS,
				DryRun:      a.opts.dryRun,
			}
			if a.renderer.Format() != style.FormatJSON {
				opts.Progress = a.deps.Stderr
			}

			result, err := packaging.Clone(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return a.renderer.Clone(result)
		},
	}
}

func newInitCmd(a *app) *cobra.Command {
	var maintain bool

	cmd := &cobra.Command{
		Use:     "init NAME URL",
		Aliases: []string{"i"},
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		GroupID: "packaging",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := a.workingDir()
			if err != nil {
				return err
			}

			result, err := packaging.Init(cmd.Context(), packaging.InitOptions{
				FS:        a.deps.FS,
				Root:      cwd,
				CommonDir: a.cfg.Packaging.CommonDir,
				Name:      args[0],
				SourceURL: args[1],
				Maintain:  maintain,
				Maintainer: packaging.Maintainer{
					Name:   a.cfg.Maintainer.Name,
					Email:  a.cfg.Maintainer.Email,
					Matrix: a.cfg.Maintainer.Matrix,
				},
				IdentityLookup: a.deps.IdentityLookup,
				Client:         a.deps.VCS,
				Runner:         a.runner(),
				Scaffold:       a.cfg.Packaging.Scaffold,
				Output:         a.deps.Stderr,
				DryRun:         a.opts.dryRun,
			})
			if err != nil {
				return err
			}
			return a.renderer.Init(result)
		},
	}

	cmd.Flags().BoolVarP(&maintain, "maintain", "m", false, MsgFlagMaintain)
	return cmd
}
