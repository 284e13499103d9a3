// Package sanitize turns the HTML fragments returned by the recipe API into
// plain text that can be shown in a label without interpreting markup.
package sanitize

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// skipped elements have their whole subtree dropped
var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Iframe:   true,
	atom.Object:   true,
	atom.Embed:    true,
	atom.Noscript: true,
	atom.Template: true,
}

// block elements start a new line
var block = map[atom.Atom]bool{
	atom.P:          true,
	atom.Br:         true,
	atom.Div:        true,
	atom.Ol:         true,
	atom.Ul:         true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Tr:         true,
	atom.Blockquote: true,
}

// Bullet prefixes list items in the output.
const Bullet = "• "

// Text returns the visible text of an HTML fragment. Scripts, styles and
// embedded objects are removed with their content, entities are decoded,
// block elements become line breaks and list items become bullet lines.
// Runs of whitespace within a line collapse to a single space and blank
// lines collapse to one.
func Text(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(fragment))
	skipDepth := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return normalize(b.String())

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if skipped[a] {
				if tt == html.StartTagToken {
					skipDepth++
				}
				continue
			}
			if skipDepth > 0 {
				continue
			}
			switch {
			case a == atom.Li:
				b.WriteString("\n" + Bullet)
			case block[a]:
				b.WriteString("\n")
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if skipped[a] {
				if skipDepth > 0 {
					skipDepth--
				}
				continue
			}
			if skipDepth == 0 && (block[a] || a == atom.Li) {
				b.WriteString("\n")
			}

		case html.TextToken:
			if skipDepth == 0 {
				b.Write(z.Text())
			}
		}
	}
}

// normalize collapses whitespace inside lines and drops empty lines.
func normalize(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		// a bullet with nothing after it is an empty list item
		if line == "" || line == strings.TrimSpace(Bullet) {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
