package ingestion

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// StripHTML extracts the plain text of an HTML fragment. Seed catalogs
// sourced from partner job boards carry markup in descriptions; the engine
// vectorizes text, so tags are dropped before a job reaches the catalog.
// Content that does not look like HTML is returned with whitespace
// normalized only.
func StripHTML(content string) string {
	if !strings.ContainsAny(content, "<>") {
		return collapseWhitespace(content)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return collapseWhitespace(content)
	}

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		for _, node := range s.Nodes {
			collectText(node, &sb)
		}
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// Fragment without a body (e.g. bare text with a stray angle bracket)
		text = doc.Text()
	}
	return collapseWhitespace(text)
}

// collectText appends every text node under n, one space between nodes so
// adjacent elements do not run together.
func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript":
			return
		}
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

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
