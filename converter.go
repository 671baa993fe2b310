package msdocs

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown. Documentation
	// pages embed raw HTML (tables, headings) in their markdown bodies;
	// the parser hands those fragments to a Converter.
	Convert(html string) (string, error)
}
