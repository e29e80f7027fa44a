package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords_CaseInsensitiveMatch(t *testing.T) {
	got := ExtractKeywords("Built services in Python and deployed with Docker.", []string{"python", "docker", "rust"})

	assert.Equal(t, []string{"python", "docker"}, got)
}

func TestExtractKeywords_RepeatedTermReportedOnce(t *testing.T) {
	text := "JavaScript expert. Wrote JavaScript daily. Taught javascript."

	got := ExtractKeywords(text, []string{"javascript"})

	assert.Equal(t, []string{"javascript"}, got)
}

func TestExtractKeywords_PreservesVocabularyOrder(t *testing.T) {
	text := "docker before python in this text"

	got := ExtractKeywords(text, []string{"python", "docker"})

	assert.Equal(t, []string{"python", "docker"}, got)
}

func TestExtractKeywords_SubstringContainment(t *testing.T) {
	// Containment is intentional: "java" matches inside "javascript".
	got := ExtractKeywords("Senior JavaScript developer", []string{"java", "javascript"})

	assert.Equal(t, []string{"java", "javascript"}, got)
}

func TestExtractKeywords_EmptyText(t *testing.T) {
	assert.Empty(t, ExtractKeywords("", []string{"python"}))
}

func TestExtractKeywords_MultiWordPhrase(t *testing.T) {
	got := ExtractKeywords("Strong problem solving and communication.", []string{"problem solving", "communication"})

	assert.Equal(t, []string{"problem solving", "communication"}, got)
}
