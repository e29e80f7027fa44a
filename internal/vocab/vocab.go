// Package vocab provides the controlled vocabulary lists used by the signal
// extractors, scorer, and matcher. The default vocabulary is embedded at
// compile time; deployments can override it with a JSON file so term lists
// can grow without code changes.
package vocab

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/jonathan/resume-analyzer/internal/schemas"
)

//go:embed vocabulary.json
var defaultVocabulary []byte

// Vocabulary holds every term list the analysis pipeline draws from.
// All terms are stored lowercase.
type Vocabulary struct {
	// TechKeywords is the controlled vocabulary for resume keyword extraction:
	// languages, frameworks, databases, cloud/devops tools, and soft-skill
	// phrases. It doubles as the candidate list filtered against a job
	// description when computing the keyword sub-score.
	TechKeywords []string `json:"tech_keywords"`

	// TargetKeywords is the generic industry target list used by the keyword
	// sub-score when no job description is supplied. Every entry must also
	// appear in TechKeywords or it can never be matched.
	TargetKeywords []string `json:"target_keywords"`

	// ActionVerbs are the verbs whose absence costs content-score points.
	ActionVerbs []string `json:"action_verbs"`

	// StopWords are discarded when tokenizing free text for job matching.
	StopWords []string `json:"stop_words"`

	// USStates is the state-name list used by the location heuristic.
	USStates []string `json:"us_states"`

	// ProfileDomains are the substrings whose presence counts as a profile link.
	ProfileDomains []string `json:"profile_domains"`
}

var (
	defaultOnce sync.Once
	defaultV    *Vocabulary
	defaultErr  error
)

// Default returns the embedded vocabulary. The embedded document is parsed
// once; a parse failure here is a build defect, so it panics.
func Default() *Vocabulary {
	defaultOnce.Do(func() {
		defaultV, defaultErr = parse(defaultVocabulary)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("embedded vocabulary is invalid: %v", defaultErr))
	}
	return defaultV
}

// LoadFromFile loads a vocabulary override from a JSON file. When the
// vocabulary schema can be resolved on disk it is validated first, so a
// malformed override fails loudly instead of silently dropping categories.
func LoadFromFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/vocabulary.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSONFile(schemaPath, path); err != nil {
			return nil, fmt.Errorf("vocabulary file %s failed schema validation: %w", path, err)
		}
	}

	return parse(data)
}

// StopWordSet returns the stop words as a lookup set.
func (v *Vocabulary) StopWordSet() map[string]bool {
	set := make(map[string]bool, len(v.StopWords))
	for _, w := range v.StopWords {
		set[w] = true
	}
	return set
}

func parse(data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}
	if len(v.TechKeywords) == 0 {
		return nil, fmt.Errorf("vocabulary has no tech_keywords")
	}
	return &v, nil
}
