// Package markdown parses Microsoft documentation source pages. Each page is
// a markdown file with a YAML front matter block; the API name comes from the
// front matter title and the body becomes the entry description after cleanup.
package markdown

import (
	"regexp"
	"strings"

	"github.com/fwojciec/msdocs"
	"gopkg.in/yaml.v3"
)

// Ensure Parser implements msdocs.Parser at compile time.
var _ msdocs.Parser = (*Parser)(nil)

// Parser extracts documentation entries from SDK/WDK markdown pages.
type Parser struct {
	conv msdocs.Converter
}

// NewParser creates a new Parser. The converter handles HTML fragments
// embedded in page bodies; a nil converter leaves those fragments untouched.
func NewParser(conv msdocs.Converter) *Parser {
	return &Parser{conv: conv}
}

// frontMatter holds the YAML fields the parser cares about.
type frontMatter struct {
	Title string `yaml:"title"`
}

var (
	// Page titles look like "CreateFileW function (winbase.h)".
	reTitleName = regexp.MustCompile(`(\S+) function`)

	// Embedded anchor and div tags carry no information offline.
	reAnchorDiv = regexp.MustCompile(`</?(a|div)[^>]*>`)

	reSpaceRuns     = regexp.MustCompile(` {2,}`)
	reTagGap        = regexp.MustCompile(`>[\n\r]+<`)
	reNewlineTag    = regexp.MustCompile(`[\n\r]+<`)
	reBlankRuns     = regexp.MustCompile(`[\n\r]{2,}`)
	reSectionHeader = regexp.MustCompile(`# -(\S+)`)
	reFuncHeader    = regexp.MustCompile(`# (\S+) function`)
	reSeeAlso       = regexp.MustCompile(`## See-also[^#]+`)
	reMarkdownLink  = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	reH3            = regexp.MustCompile(`<h3>[^<]+</h3>`)
)

// Parse extracts the entry for a single source page.
func (p *Parser) Parse(path string, data []byte) (*msdocs.Entry, error) {
	page, err := splitPage(path, data)
	if err != nil {
		return nil, err
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(page.FrontMatter), &fm); err != nil {
		return nil, msdocs.Errorf(msdocs.EINVALID, "invalid front matter in %s: %v", path, err)
	}
	if fm.Title == "" {
		return nil, msdocs.Errorf(msdocs.EINVALID, "title is not present in %s", path)
	}

	m := reTitleName.FindStringSubmatch(fm.Title)
	if m == nil {
		return nil, msdocs.Errorf(msdocs.EINVALID, "unsupported title format %q in %s", fm.Title, path)
	}
	name := strings.ReplaceAll(m[1], `\`, "")

	entry := &msdocs.Entry{
		Name:        name,
		Description: p.cleanBody(page.Body),
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

// splitPage separates the YAML front matter from the markdown body.
func splitPage(path string, data []byte) (*msdocs.Page, error) {
	parts := strings.SplitN(string(data), "---", 3)
	if len(parts) < 3 || strings.TrimSpace(parts[0]) != "" {
		return nil, msdocs.Errorf(msdocs.EINVALID, "missing front matter in %s", path)
	}
	return &msdocs.Page{
		Path:        path,
		FrontMatter: parts[1],
		Body:        parts[2],
	}, nil
}

// cleanBody normalizes a page body for offline display: strips dead markup,
// collapses whitespace, rewrites section headers, drops the see-also link
// list, and converts embedded HTML fragments to markdown.
func (p *Parser) cleanBody(text string) string {
	text = reAnchorDiv.ReplaceAllString(text, "")

	text = reSpaceRuns.ReplaceAllString(text, " ")
	text = reTagGap.ReplaceAllString(text, "><")
	text = reNewlineTag.ReplaceAllString(text, "<")
	text = reBlankRuns.ReplaceAllString(text, "\n\n")
	text = strings.ReplaceAll(text, "\n ", " ")

	// "## -description" -> "## Description"
	text = reSectionHeader.ReplaceAllStringFunc(text, func(m string) string {
		section := strings.TrimPrefix(m, "# -")
		return "# " + capitalize(section)
	})

	// "# CreateFileW function" -> "# CreateFileW"
	text = reFuncHeader.ReplaceAllString(text, "# $1")

	// The see-also section is a list of links, all dead offline.
	text = reSeeAlso.ReplaceAllString(text, "")

	// Link targets are dead offline; keep the text, emphasized.
	text = reMarkdownLink.ReplaceAllString(text, "**$1**")

	text = p.convertFragments(text)

	return strings.TrimSpace(text)
}

// convertFragments rewrites embedded <h3> headings and <table> blocks as
// markdown. Fragments the converter cannot handle are left as-is; a partially
// cleaned page beats a skipped one.
func (p *Parser) convertFragments(text string) string {
	if p.conv == nil {
		return text
	}

	text = reH3.ReplaceAllStringFunc(text, func(m string) string {
		md, err := p.conv.Convert(m)
		if err != nil {
			return m
		}
		return "\n\n" + strings.TrimSpace(md) + "\n\n"
	})

	var b strings.Builder
	offset := 0
	for {
		start := strings.Index(text[offset:], "<table")
		if start == -1 {
			b.WriteString(text[offset:])
			break
		}
		start += offset
		end := strings.Index(text[start:], "</table>")
		if end == -1 {
			b.WriteString(text[offset:])
			break
		}
		end += start + len("</table>")

		b.WriteString(text[offset:start])
		fragment := text[start:end]
		if md, err := p.conv.Convert(fragment); err == nil {
			b.WriteString("\n\n" + strings.TrimSpace(md) + "\n\n")
		} else {
			b.WriteString(fragment)
		}
		offset = end
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
