package textclean

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// tags whose text content is never review prose
var skippedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"svg":      true,
	"iframe":   true,
	"head":     true,
	"title":    true,
}

// StripHTML flattens an HTML fragment to plain text. Review excerpts come
// back from the data source with markup and entities baked in; agents
// should only ever see prose. Input without markup passes through with
// whitespace normalized.
func StripHTML(raw string) string {
	if !strings.ContainsAny(raw, "<&") {
		return normalizeSpace(raw)
	}

	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return normalizeSpace(raw)
	}

	var sb strings.Builder
	collectText(doc, &sb)
	return normalizeSpace(sb.String())
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode && skippedTags[n.Data] {
		return
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteString(" ")
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateToSentence cuts s down to at most maxLen characters, preferring
// to end on sentence punctuation so a generated query never trails off
// mid-thought. If no punctuation falls inside the window, it cuts hard.
func TruncateToSentence(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxLen {
		return s
	}

	// never split a rune on the hard cut
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	truncated := s[:cut]
	lastPunc := -1
	for _, p := range []string{".", "!", "?"} {
		if i := strings.LastIndex(truncated, p); i > lastPunc {
			lastPunc = i
		}
	}
	if lastPunc == -1 {
		return truncated
	}
	return truncated[:lastPunc+1]
}
