package msdocs

// Page represents a raw documentation source page split into its parts.
type Page struct {
	// Path is the source file path, kept for diagnostics.
	Path string

	// FrontMatter is the raw YAML front matter block.
	FrontMatter string

	// Body is the markdown body following the front matter.
	Body string
}

// Parser extracts a documentation entry from a raw source page.
type Parser interface {
	// Parse returns the entry for a page. It returns EINVALID for pages
	// that are not function documentation: missing front matter, a title
	// without the "<name> function" form, or a name outside the supported
	// charset. Such pages are expected and are skipped by the ingest
	// pipeline rather than aborting the build.
	Parse(path string, data []byte) (*Entry, error)
}
