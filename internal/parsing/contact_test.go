package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/vocab"
)

func TestExtractContact_NameEmailAndPhone(t *testing.T) {
	text := "Jane Smith\njane@example.com\n555-987-6543"

	info := ExtractContact(text, vocab.Default())

	assert.Equal(t, "Jane Smith", info.Name)
	assert.Equal(t, "jane@example.com", info.Email)
	assert.Equal(t, "(555) 987-6543", info.Phone)
	assert.False(t, info.HasProfileLink)
}

func TestExtractContact_FirstEmailWins(t *testing.T) {
	text := "Contact: first@example.com or second@example.com"

	info := ExtractContact(text, vocab.Default())

	assert.Equal(t, "first@example.com", info.Email)
}

func TestExtractContact_PhoneFormatsNormalized(t *testing.T) {
	cases := map[string]string{
		"(415) 555-0123":  "(415) 555-0123",
		"415.555.0123":    "(415) 555-0123",
		"+1 415 555 0123": "(415) 555-0123",
		"4155550123":      "(415) 555-0123",
	}
	for raw, want := range cases {
		info := ExtractContact("Jane Smith\n"+raw, vocab.Default())
		assert.Equal(t, want, info.Phone, "raw %q", raw)
	}
}

func TestExtractContact_FirstLineTooLongIsNotAName(t *testing.T) {
	text := "Results-driven software engineering professional with over a decade of experience\njane@example.com"

	info := ExtractContact(text, vocab.Default())

	assert.Empty(t, info.Name)
	assert.Equal(t, "jane@example.com", info.Email)
}

func TestExtractContact_EmailFirstLineIsNotAName(t *testing.T) {
	info := ExtractContact("jane@example.com\nJane Smith", vocab.Default())

	assert.Empty(t, info.Name)
}

func TestExtractContact_LeadingBlankLinesSkipped(t *testing.T) {
	info := ExtractContact("\n\n  Jane Smith\njane@example.com", vocab.Default())

	assert.Equal(t, "Jane Smith", info.Name)
}

func TestExtractContact_ProfileLinkDetected(t *testing.T) {
	text := "Jane Smith\nlinkedin.com/in/janesmith"

	info := ExtractContact(text, vocab.Default())

	assert.True(t, info.HasProfileLink)
}

func TestExtractContact_GithubLinkDetected(t *testing.T) {
	text := "Jane Smith\nhttps://GitHub.com/janesmith"

	info := ExtractContact(text, vocab.Default())

	assert.True(t, info.HasProfileLink)
}

func TestExtractContact_AllFieldsAbsent(t *testing.T) {
	info := ExtractContact("", vocab.Default())

	assert.Empty(t, info.Name)
	assert.Empty(t, info.Email)
	assert.Empty(t, info.Phone)
	assert.False(t, info.HasProfileLink)
}
