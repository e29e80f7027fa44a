package parsing

import (
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/vocab"
)

// Parse runs the full signal-extraction pipeline over cleaned resume text.
// A nil vocabulary falls back to the embedded default.
func Parse(text string, v *vocab.Vocabulary) *types.ParsedResume {
	if v == nil {
		v = vocab.Default()
	}
	return &types.ParsedResume{
		RawText:  text,
		Sections: SegmentSections(text),
		Contact:  ExtractContact(text, v),
		Keywords: ExtractKeywords(text, v.TechKeywords),
		Metrics:  ExtractMetrics(text),
	}
}
