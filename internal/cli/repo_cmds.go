package cli

import (
	"path/filepath"

	"github.com/EbonJaeger/soltools/pkg/logging"
	"github.com/EbonJaeger/soltools/pkg/repo"
	"github.com/spf13/cobra"
)

func newCopyCmd(a *app) *cobra.Command {
	var index bool

	cmd := &cobra.Command{
		Use:     "copy",
		Aliases: []string{"cp"},
		Short:   MsgCopyShort,
		Long:    MsgCopyLong,
		Example: MsgCopyExample,
		GroupID: "repo",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if escalated, err := a.escalate(cmd); escalated || err != nil {
				return err
			}

			cwd, err := a.workingDir()
			if err != nil {
				return err
			}

			logger := logging.GetLogger("cli.copy")
			logger.Info().Str("source", cwd).Str("repository", a.cfg.RepositoryPath).Msg("Copying packages")

			result, err := repo.CopyInto(cmd.Context(), repo.CopyOptions{
				FS:      a.deps.FS,
				Source:  cwd,
				Path:    a.cfg.RepositoryPath,
				Suffix:  a.cfg.PackageSuffix,
				DryRun:  a.opts.dryRun,
				Index:   index,
				Runner:  a.runner(),
				Indexer: a.indexer(),
			})
			if err != nil {
				return err
			}
			return a.renderer.Copy(result)
		},
	}

	cmd.Flags().BoolVarP(&index, "index", "i", false, MsgFlagIndex)
	return cmd
}

func newCleanCmd(a *app) *cobra.Command {
	var (
		index bool
		keep  []string
	)

	cmd := &cobra.Command{
		Use:     "clean [names...]",
		Aliases: []string{"rm"},
		Short:   MsgCleanShort,
		Long:    MsgCleanLong,
		Example: MsgCleanExample,
		GroupID: "repo",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return a.packageNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if escalated, err := a.escalate(cmd); escalated || err != nil {
				return err
			}

			opts := repo.CleanOptions{
				FS:      a.deps.FS,
				Path:    a.cfg.RepositoryPath,
				Suffix:  a.cfg.PackageSuffix,
				DryRun:  a.opts.dryRun,
				Index:   index,
				Runner:  a.runner(),
				Indexer: a.indexer(),
			}
			// No names removes everything; an unset --keep keeps nothing.
			if len(args) > 0 {
				opts.Remove = args
			}
			if cmd.Flags().Changed("keep") {
				opts.Keep = keep
				if opts.Keep == nil {
					opts.Keep = []string{}
				}
			}

			logger := logging.GetLogger("cli.clean")
			logger.Info().
				Strs("remove", opts.Remove).
				Strs("keep", opts.Keep).
				Bool("dry_run", opts.DryRun).
				Msg("Cleaning repository")

			result, err := repo.Clean(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return a.renderer.Clean(result)
		},
	}

	cmd.Flags().BoolVarP(&index, "index", "i", false, MsgFlagIndex)
	cmd.Flags().StringSliceVarP(&keep, "keep", "k", nil, MsgFlagKeep)
	return cmd
}

func newIndexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "index",
		Short:   MsgIndexShort,
		GroupID: "repo",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if escalated, err := a.escalate(cmd); escalated || err != nil {
				return err
			}

			path := a.cfg.RepositoryPath
			if a.opts.dryRun {
				return a.renderer.Index(path, nil, true)
			}
			if err := repo.Index(cmd.Context(), a.runner(), a.indexer(), path); err != nil {
				return err
			}

			entries, err := repo.ReadIndexFile(a.deps.FS, filepath.Join(path, a.cfg.IndexFile))
			if err != nil {
				return err
			}
			return a.renderer.Index(path, entries, false)
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "repo",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, err := repo.List(repo.ListOptions{
				FS:        a.deps.FS,
				Path:      a.cfg.RepositoryPath,
				Suffix:    a.cfg.PackageSuffix,
				IndexFile: a.cfg.IndexFile,
			})
			if err != nil {
				return err
			}
			return a.renderer.Listing(listing)
		},
	}
}

// packageNames completes clean arguments from the repository index.
func (a *app) packageNames() []string {
	if a.cfg == nil {
		if err := a.setup(); err != nil {
			return nil
		}
	}
	entries, err := repo.ReadIndexFile(a.deps.FS, filepath.Join(a.cfg.RepositoryPath, a.cfg.IndexFile))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}
