package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestPrintParsedResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParsedResume(&types.ParsedResume{
		Contact: types.ContactInfo{
			Name:  "Jane Smith",
			Email: "jane@example.com",
		},
		Sections: []types.Section{
			{Kind: types.SectionExperience, Title: "Work Experience"},
			{Kind: types.SectionSkills, Title: "Skills"},
		},
		Keywords: []string{"golang", "docker"},
		Metrics:  []string{"40%"},
	})

	out := buf.String()
	assert.Contains(t, out, "Jane Smith")
	assert.Contains(t, out, "experience, skills")
	assert.Contains(t, out, "golang, docker")
}

func TestPrintParsedResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintParsedResume(nil)
	assert.Empty(t, buf.String())
}

func TestPrintScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScore(types.ATSScore{
		OverallScore:    72,
		KeywordScore:    80,
		FormattingScore: 85,
		ContentScore:    60,
		MatchedKeywords: []string{"golang"},
		Suggestions:     []string{"Add a phone number"},
	})

	out := buf.String()
	assert.Contains(t, out, "72/100")
	assert.Contains(t, out, "Suggestions")
	assert.Contains(t, out, "Add a phone number")
}

func TestPrintScore_TruncatesLongKeywordList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScore(types.ATSScore{
		MissingKeywords: []string{"a", "b", "c", "d", "e", "f", "g"},
	})

	assert.Contains(t, buf.String(), "(+2 more)")
}

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatches([]types.JobMatch{
		{
			Job:          types.Job{Title: "Senior Golang Developer", Company: "Acme"},
			MatchScore:   91,
			MatchReasons: []string{"Remote-friendly role"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Senior Golang Developer")
	assert.Contains(t, out, "91")
	assert.Contains(t, out, "Remote-friendly role")
}

func TestPrintMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatches(nil)
	assert.Contains(t, buf.String(), "no matches")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("Title", strings.Repeat("x", 200))
	assert.Contains(t, buf.String(), "...")
}
