package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/seoscore/internal/assessment"
	"github.com/dotcommander/seoscore/internal/report"
	"github.com/dotcommander/seoscore/internal/scoring"
)

func sampleReport() report.Report {
	rep := report.Empty()
	rep.SEO = []scoring.NormalizedResult{
		scoring.Normalize(assessment.Result{
			Identifier: "keyphraseDensity",
			Score:      9,
			Text:       "Keyphrase density: This is great!",
			Marks:      []assessment.Mark{{Original: "seo", Marked: "<yoastmark class='yoast-text-mark'>seo</yoastmark>"}},
		}),
		scoring.Normalize(assessment.Result{Identifier: "titleWidth", Score: 1, Text: "SEO title width: Please create an SEO title.", EditFieldName: "SEO title"}),
	}
	return rep
}

func TestJSONFormatterPretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, true).Format(sampleReport()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "{\n  \"seo\": ["), out)
	assert.Contains(t, out, `"_identifier": "keyphraseDensity"`)
	assert.Contains(t, out, "<yoastmark class='yoast-text-mark'>seo</yoastmark>", "HTML must not be escaped")
	assert.Contains(t, out, `"inclusiveLanguage": []`)
	assert.True(t, strings.HasSuffix(out, "}\n"))

	var decoded map[string][]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "bad", decoded["seo"][1]["rating"])
}

func TestJSONFormatterCompact(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, false).Format(report.Empty()))
	assert.Equal(t, `{"seo":[],"readability":[],"relatedKeyword":[],"inclusiveLanguage":[]}`+"\n", buf.String())
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteError(&buf, "Invalid JSON input"))
	assert.Equal(t, `{"error":"Invalid JSON input"}`+"\n", buf.String())
}

func TestConsoleFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewConsoleFormatter(&buf, false).Format(sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "SEO (2)")
	assert.Contains(t, out, "✓ Keyphrase density: This is great!")
	assert.Contains(t, out, "✗ SEO title width: Please create an SEO title.")
	assert.Contains(t, out, "Readability (0)\n  no results")
	assert.Contains(t, out, "Inclusive language (0)")
}
