package version

// overridden at build time via -ldflags
var (
	Version   = "dev"
	Commit    = "none"
	Date      = "unknown"
	BuildedBy = "local"

	FullVersion = Version
)
