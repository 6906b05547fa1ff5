package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentPlainText(t *testing.T) {
	doc := New(Fields{Text: "First paragraph here.\n\nSecond   paragraph.\nStill second."})

	assert.Equal(t, "First paragraph here.\nSecond paragraph.\nStill second.", doc.PlainText())
	require.Len(t, doc.Paragraphs(), 2)
	assert.Equal(t, "First paragraph here.", doc.Introduction())
	assert.Equal(t, "Second paragraph. Still second.", doc.Paragraphs()[1].Text)
	assert.Empty(t, doc.Headings())
}

func TestParseContentHTML(t *testing.T) {
	text := `<h1>Main</h1>
<p>Intro about <strong>SEO</strong>.</p>
<h2>Part one</h2>
<p style="text-align: center">Centered text.</p>
<img src="/a.png" alt="seo chart"><img src="/b.png">
<h3>Part two</h3>
<p class="has-text-align-right">Right <a href="https://example.com" rel="nofollow">link</a>.</p>
<script>var x = "ignored";</script>`
	doc := New(Fields{Text: text})

	assert.NotContains(t, doc.PlainText(), "ignored")
	assert.Contains(t, doc.PlainText(), "Intro about SEO.")

	assert.Equal(t, []Heading{{1, "Main"}, {2, "Part one"}, {3, "Part two"}}, doc.Headings())
	assert.Equal(t, []Heading{{2, "Part one"}, {3, "Part two"}}, doc.Subheadings())
	assert.Equal(t, []Image{{Src: "/a.png", Alt: "seo chart"}, {Src: "/b.png"}}, doc.Images())
	assert.Equal(t, []Link{{Href: "https://example.com", Rel: "nofollow", Text: "link"}}, doc.Links())

	paragraphs := doc.Paragraphs()
	require.Len(t, paragraphs, 3)
	assert.Equal(t, "Intro about SEO.", paragraphs[0].Text)
	assert.Equal(t, "", paragraphs[0].Align)
	assert.Equal(t, "center", paragraphs[1].Align)
	assert.Equal(t, "right", paragraphs[2].Align)

	sections := doc.Sections()
	require.Len(t, sections, 3)
	assert.Equal(t, "Main\nIntro about SEO.", sections[0])
	assert.Equal(t, "Centered text.", sections[1])
	assert.Equal(t, "Right link.", sections[2])
}

func TestSectionsFollowSubheadings(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		subheadings int
		sections    []string
	}{
		{
			name:        "h4 does not split",
			text:        "<p>Intro.</p><h4>Minor</h4><p>Body.</p><h4>Other</h4><p>More.</p>",
			subheadings: 0,
			sections:    []string{"Intro.\nMinor\nBody.\nOther\nMore."},
		},
		{
			name:        "h4 stays inside its h2 section",
			text:        "<p>Intro.</p><h2>Major</h2><p>Body.</p><h4>Minor</h4><p>More.</p>",
			subheadings: 1,
			sections:    []string{"Intro.", "Body.\nMinor\nMore."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := New(Fields{Text: tt.text})
			assert.Len(t, doc.Subheadings(), tt.subheadings)
			assert.Equal(t, tt.sections, doc.Sections())
		})
	}
}

func TestParseContentBlocksSplitLines(t *testing.T) {
	doc := New(Fields{Text: "<p>One.</p><p>Two.</p><ul><li>Three</li></ul>"})
	assert.Equal(t, "One.\nTwo.\nThree", doc.PlainText())
}
