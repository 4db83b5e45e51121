package config

// Config is the full soltools configuration.
type Config struct {
	RepositoryPath string `koanf:"repository_path" toml:"repository_path"`
	PackageSuffix  string `koanf:"package_suffix" toml:"package_suffix"`
	IndexFile      string `koanf:"index_file" toml:"index_file"`

	Indexer    IndexerConfig    `koanf:"indexer" toml:"indexer"`
	Source     SourceConfig     `koanf:"source" toml:"source"`
	Packaging  PackagingConfig  `koanf:"packaging" toml:"packaging"`
	Maintainer MaintainerConfig `koanf:"maintainer" toml:"maintainer"`
	Permission PermissionConfig `koanf:"permission" toml:"permission"`

	// File is the config file that was merged, empty when none was.
	File string `koanf:"-" toml:"-"`
}

// IndexerConfig describes how the repository indexer is invoked:
// <command> <subcommand> <skip_signing_flag> <repository_path>.
type IndexerConfig struct {
	Command         string `koanf:"command" toml:"command"`
	Subcommand      string `koanf:"subcommand" toml:"subcommand"`
	SkipSigningFlag string `koanf:"skip_signing_flag" toml:"skip_signing_flag"`
}

type SourceConfig struct {
	URLTemplate string `koanf:"url_template" toml:"url_template"`
}

type PackagingConfig struct {
	CommonDir string `koanf:"common_dir" toml:"common_dir"`
	Scaffold  string `koanf:"scaffold" toml:"scaffold"`
}

type MaintainerConfig struct {
	Name   string `koanf:"name" toml:"name"`
	Email  string `koanf:"email" toml:"email"`
	Matrix string `koanf:"matrix" toml:"matrix"`
}

type PermissionConfig struct {
	Escalate bool   `koanf:"escalate" toml:"escalate"`
	SudoPath string `koanf:"sudo_path" toml:"sudo_path"`
}
