package vocab

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedVocabulary(t *testing.T) {
	v := Default()

	assert.NotEmpty(t, v.TechKeywords)
	assert.NotEmpty(t, v.TargetKeywords)
	assert.NotEmpty(t, v.ActionVerbs)
	assert.NotEmpty(t, v.StopWords)
	assert.NotEmpty(t, v.USStates)
	assert.NotEmpty(t, v.ProfileDomains)
}

func TestDefault_AllTermsLowercase(t *testing.T) {
	v := Default()

	lists := map[string][]string{
		"tech_keywords":   v.TechKeywords,
		"target_keywords": v.TargetKeywords,
		"action_verbs":    v.ActionVerbs,
		"stop_words":      v.StopWords,
		"us_states":       v.USStates,
		"profile_domains": v.ProfileDomains,
	}
	for name, list := range lists {
		for _, term := range list {
			assert.Equal(t, strings.ToLower(term), term, "list %s term %q", name, term)
		}
	}
}

func TestDefault_TargetKeywordsSubsetOfTechKeywords(t *testing.T) {
	v := Default()

	tech := make(map[string]bool, len(v.TechKeywords))
	for _, k := range v.TechKeywords {
		tech[k] = true
	}
	for _, k := range v.TargetKeywords {
		assert.True(t, tech[k], "target keyword %q missing from tech_keywords", k)
	}
}

func TestStopWordSet_ContainsAllStopWords(t *testing.T) {
	v := Default()

	set := v.StopWordSet()
	assert.Len(t, set, len(v.StopWords))
	assert.True(t, set["the"])
	assert.False(t, set["python"])
}

func TestLoadFromFile_ValidOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	content := `{
		"tech_keywords": ["cobol"],
		"target_keywords": ["cobol"],
		"action_verbs": ["modernized"],
		"stop_words": ["the"],
		"us_states": ["ohio"],
		"profile_domains": ["example.com"]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cobol"}, v.TechKeywords)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadFromFile_EmptyTechKeywords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tech_keywords": []}`), 0o644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}
