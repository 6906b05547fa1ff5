package document

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Heading is an h1..h6 element.
type Heading struct {
	Level int
	Text  string
}

// Image is an img element.
type Image struct {
	Src string
	Alt string
}

// Link is an anchor element.
type Link struct {
	Href string
	Rel  string
	Text string
}

// Paragraph is one block of running text. Align is the declared text
// alignment ("center", "right", ...) or empty when none is set.
type Paragraph struct {
	Text  string
	Align string
}

// content is the parsed, read-only representation shared by all assessments.
type content struct {
	plain      string
	paragraphs []Paragraph
	headings   []Heading
	images     []Image
	links      []Link
	// sections holds the text before the first subheading followed by the
	// text under each subheading (h2..h6).
	sections []string
}

var blockElements = map[string]bool{
	"p": true, "div": true, "li": true, "ul": true, "ol": true, "blockquote": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"table": true, "tr": true, "td": true, "th": true, "pre": true,
	"figure": true, "figcaption": true, "section": true, "article": true,
}

var headingLevels = map[string]int{"h1": 1, "h2": 2, "h3": 3, "h4": 4, "h5": 5, "h6": 6}

var (
	styleAlignPattern = regexp.MustCompile(`text-align\s*:\s*([a-z]+)`)
	classAlignPattern = regexp.MustCompile(`has-text-align-([a-z]+)`)
	blankLinePattern  = regexp.MustCompile(`\n\s*\n`)
	spacePattern      = regexp.MustCompile(`[ \t\r\f\v\x{00a0}]+`)
)

// parseContent builds the shared representation of a document's text. Plain
// text without markup is handled by the same path.
func parseContent(text string) *content {
	c := &content{}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		c.plain = normalizeLines(text)
		c.paragraphs = splitParagraphs(text)
		c.sections = []string{c.plain}
		return c
	}

	var all, section strings.Builder
	var walk func(n *html.Node, inHeading bool)
	walk = func(n *html.Node, inHeading bool) {
		switch n.Type {
		case html.TextNode:
			all.WriteString(n.Data)
			if !inHeading {
				section.WriteString(n.Data)
			}
			return
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript":
				return
			case "br":
				all.WriteString("\n")
				section.WriteString("\n")
				return
			}
			if level, ok := headingLevels[n.Data]; ok && isSubheading(level) {
				c.sections = append(c.sections, normalizeLines(section.String()))
				section.Reset()
				inHeading = true
			}
		}

		block := n.Type == html.ElementNode && blockElements[n.Data]
		if block {
			all.WriteString("\n")
			section.WriteString("\n")
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child, inHeading)
		}
		if block {
			all.WriteString("\n")
			section.WriteString("\n")
		}
	}
	for _, n := range doc.Nodes {
		walk(n, false)
	}
	c.sections = append(c.sections, normalizeLines(section.String()))

	raw := all.String()
	c.plain = normalizeLines(raw)

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		c.headings = append(c.headings, Heading{
			Level: headingLevels[goquery.NodeName(s)],
			Text:  collapseSpace(s.Text()),
		})
	})
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		alt, _ := s.Attr("alt")
		c.images = append(c.images, Image{Src: src, Alt: alt})
	})
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		rel, _ := s.Attr("rel")
		c.links = append(c.links, Link{Href: href, Rel: rel, Text: collapseSpace(s.Text())})
	})

	if ps := doc.Find("p"); ps.Length() > 0 {
		ps.Each(func(_ int, s *goquery.Selection) {
			t := collapseSpace(s.Text())
			if t == "" {
				return
			}
			c.paragraphs = append(c.paragraphs, Paragraph{Text: t, Align: alignment(s)})
		})
	} else {
		c.paragraphs = splitParagraphs(raw)
	}
	return c
}

// isSubheading reports whether a heading level starts a new section.
func isSubheading(level int) bool { return level == 2 || level == 3 }

// alignment reads the declared text alignment of an element from its inline
// style or block-editor class.
func alignment(s *goquery.Selection) string {
	if style, ok := s.Attr("style"); ok {
		if m := styleAlignPattern.FindStringSubmatch(strings.ToLower(style)); m != nil {
			return m[1]
		}
	}
	if class, ok := s.Attr("class"); ok {
		if m := classAlignPattern.FindStringSubmatch(class); m != nil {
			return m[1]
		}
	}
	return ""
}

func splitParagraphs(text string) []Paragraph {
	var out []Paragraph
	for _, block := range blankLinePattern.Split(text, -1) {
		if t := collapseSpace(block); t != "" {
			out = append(out, Paragraph{Text: t})
		}
	}
	return out
}

// normalizeLines collapses horizontal whitespace and drops empty lines.
func normalizeLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(spacePattern.ReplaceAllString(line, " ")); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func collapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
