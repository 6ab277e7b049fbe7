package version

// Version is the current git-pr release.
// It must be bumped on every release.
const Version = "0.1.0"

// FullVersion returns the version with the v prefix.
func FullVersion() string {
	return "v" + Version
}
