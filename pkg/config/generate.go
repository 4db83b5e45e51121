package config

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# soltools configuration
#
# Every value below is the built-in default. Uncomment a line to override it.
# Environment variables take precedence over this file, e.g.
# SOLTOOLS_REPOSITORY_PATH or SOLTOOLS_INDEXER__COMMAND.

`

// DefaultsContent returns the embedded defaults file verbatim.
func DefaultsContent() string {
	return string(defaultConfig)
}

// GenerateConfigContent renders cfg as TOML with every value commented out.
// A nil cfg renders the built-in defaults.
func GenerateConfigContent(cfg *Config) (string, error) {
	if cfg == nil {
		cfg = Default()
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return generatedHeader + commentOutConfigValues(string(data)), nil
}

// commentOutConfigValues comments out every assignment, leaving blank lines,
// comments and section headers untouched.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			result = append(result, line)
		case strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
