// Package template renders notification emails from templates with {{name}} placeholders.
package template

import (
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// Render replaces every {{name}} in tpl with values[name]. Names without a value render
// as the empty string.
func Render(tpl string, values map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(tpl, func(m string) string {
		name := placeholderRe.FindStringSubmatch(m)[1]
		return values[name]
	})
}

var (
	tagRe    = regexp.MustCompile(`(?s)<[^>]*>`)
	blankRe  = regexp.MustCompile(`\n[ \t]*\n(?:[ \t]*\n)+`)
	entities = strings.NewReplacer("&nbsp;", " ", "&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&#39;", "'")
)

// PlainText derives the text/plain alternative of a rendered HTML body.
func PlainText(html string) string {
	s := strings.ReplaceAll(html, "<br>", "\n")
	s = strings.ReplaceAll(s, "</p>", "</p>\n")
	s = tagRe.ReplaceAllString(s, "")
	s = entities.Replace(s)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	s = strings.Join(lines, "\n")
	s = blankRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
