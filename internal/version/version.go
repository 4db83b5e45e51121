package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/EbonJaeger/soltools/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/EbonJaeger/soltools/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/EbonJaeger/soltools/internal/version.Date={{.Date}}
)

// String returns the multi-line description printed by `soltools version`.
func String() string {
	return "soltools version " + Version + "\n  commit: " + Commit + "\n  built:  " + Date + "\n"
}
