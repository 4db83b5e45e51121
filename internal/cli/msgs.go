package cli

// Command descriptions
const (
	MsgRootShort = "Helpers for Solus packagers"
	MsgRootLong  = `soltools automates the chores around building Solus packages: keeping the
local solbuild repository tidy and indexed, and setting up package
repositories in a packaging checkout.

Repository commands (copy, clean, index) re-run themselves through sudo
when they need root to write to the local repository.`

	MsgCopyShort   = "Copy built packages into the local repository"
	MsgCopyLong    = "Copy every package file in the current directory into the local repository, replacing files of the same name."
	MsgCopyExample = `  soltools copy
  soltools copy --index`

	MsgCleanShort = "Remove packages from the local repository"
	MsgCleanLong  = `Remove package files from the local repository.

With no names every package file is removed. Each name matches the package
files that start with it. Names given to --keep are never removed, even when
they are also named for removal.`
	MsgCleanExample = `  soltools clean                      # remove everything
  soltools clean nano vim             # remove nano* and vim*
  soltools clean --keep glibc         # remove everything except glibc*
  soltools clean --dry-run nano       # show what would be removed`

	MsgIndexShort = "Index the local repository"
	MsgListShort  = "List packages in the local repository"
	MsgListLong   = "List the package files in the local repository and whether the repository index records them."

	MsgCloneShort   = "Clone a package repository"
	MsgCloneLong    = "Clone the named package's source repository into the current packaging root. The current directory must contain the common directory."
	MsgCloneExample = `  soltools clone nano`

	MsgInitShort   = "Create a new package repository"
	MsgInitLong    = "Create a package directory with a git repository, a Makefile and optionally a MAINTAINERS.md, then generate package.yml from the source URL."
	MsgInitExample = `  soltools init nano https://www.nano-editor.org/dist/v7/nano-7.2.tar.xz
  soltools init --maintain nano https://www.nano-editor.org/dist/v7/nano-7.2.tar.xz`

	MsgGenConfigShort = "Print the default configuration"
	MsgGenConfigLong  = "Print the default configuration with every value commented out. With --write it is written to the config file path instead."

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
)

// Flag descriptions
const (
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Preview changes without executing them"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/soltools/config.toml)"
	MsgFlagRepo     = "Local repository path (overrides repository_path)"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagIndex    = "Index the repository afterwards"
	MsgFlagKeep     = "Package names to keep (comma separated, repeatable)"
	MsgFlagMaintain = "Write a MAINTAINERS.md naming you as maintainer"
	MsgFlagWrite    = "Write the config file instead of printing it"
	MsgFlagForce    = "Overwrite an existing config file"
	MsgFlagOutput   = "File written by --write (default $XDG_CONFIG_HOME/soltools/config.toml)"
	MsgFlagManDir   = "Directory to write man pages to"
)

// Status and error messages
const (
	MsgConfigWritten     = "Wrote %s\n"
	MsgErrConfigExists   = "%s already exists (use --force to overwrite)"
	MsgErrNoCommand      = "no command specified"
	MsgErrWorkingDir     = "failed to determine the current directory"
	MsgErrWriteConfig    = "failed to write %s"
	MsgErrUnknownFormat  = "unknown output format %q"
	MsgDebugEscalated    = "Command handled by privileged child"
	MsgCompletionExample = `  source <(soltools completion bash)
  soltools completion zsh > "${fpath[1]}/_soltools"
  soltools completion fish > ~/.config/fish/completions/soltools.fish`
)

// MsgUsageTemplate is the cobra usage template.
const MsgUsageTemplate = `{{boldUpper "usage"}}:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "aliases"}}:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "examples"}}:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "commands"}}:{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{bold (rpad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{.Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{bold (rpad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "flags"}}:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "global flags"}}:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
