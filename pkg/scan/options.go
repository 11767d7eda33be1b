// Package scan summarizes Markdown notes on disk: it discovers files under a
// set of paths and analyzes them concurrently with outline.
package scan

// Options controls discovery and analysis.
type Options struct {
	// Paths are files or directories to scan. Empty scans WorkingDir.
	Paths []string

	// WorkingDir resolves relative Paths and exclude patterns.
	// Empty uses the process working directory.
	WorkingDir string

	// Extensions are the lowercase file extensions treated as Markdown.
	// Empty uses DefaultExtensions.
	Extensions []string

	// Exclude holds glob patterns matched against paths relative to
	// WorkingDir. "dir/**" excludes a subtree and "**/name" matches name at
	// any depth.
	Exclude []string

	// FollowSymlinks descends into symlinked directories.
	FollowSymlinks bool

	// Jobs bounds concurrent analysis. Zero or less uses runtime.NumCPU.
	Jobs int
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) paths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
