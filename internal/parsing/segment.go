// Package parsing turns plain resume text into structured signals: labeled
// sections, contact details, vocabulary keywords, and quantified-achievement
// metrics. Everything here is deterministic and rule-based.
package parsing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// sectionPatterns maps each section kind to the header phrases that open it.
// A header is a line that starts with one of the phrases, optionally followed
// by punctuation. Longer phrases come first within each alternation so the
// captured title is the full phrase. Declaration order here breaks ties when
// two kinds claim the same offset.
var sectionPatterns = []struct {
	kind types.SectionKind
	re   *regexp.Regexp
}{
	{types.SectionExperience, headerPattern(`work experience|professional experience|employment history|career history|experience|employment`)},
	{types.SectionEducation, headerPattern(`education|academic background|qualifications`)},
	{types.SectionSkills, headerPattern(`technical skills|core competencies|skills|technologies|expertise`)},
	{types.SectionSummary, headerPattern(`professional summary|career objective|summary|objective|profile|about me`)},
	{types.SectionProjects, headerPattern(`personal projects|projects|portfolio`)},
	{types.SectionCertifications, headerPattern(`certifications|certificates|licenses`)},
}

func headerPattern(phrases string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^[ \t]*(` + phrases + `)\b[ \t]*[:.\-]?[ \t]*$`)
}

type headerMatch struct {
	kind  types.SectionKind
	start int
	title string
	order int
}

// SegmentSections detects labeled sections in resume text. Each section spans
// from its header line to the next detected header (or end of text), so
// sections never overlap. Text before the first header belongs to no section.
// Returns an empty slice when no headers are found.
func SegmentSections(text string) []types.Section {
	var matches []headerMatch
	for order, p := range sectionPatterns {
		for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
			matches = append(matches, headerMatch{
				kind:  p.kind,
				start: loc[0],
				title: strings.TrimSpace(text[loc[2]:loc[3]]),
				order: order,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].start != matches[j].start {
			return matches[i].start < matches[j].start
		}
		return matches[i].order < matches[j].order
	})

	// Two patterns can claim the same header line; keep the first by
	// declaration order.
	kept := matches[:0]
	for _, m := range matches {
		if len(kept) > 0 && kept[len(kept)-1].start == m.start {
			continue
		}
		kept = append(kept, m)
	}

	sections := make([]types.Section, 0, len(kept))
	for i, m := range kept {
		end := len(text)
		if i+1 < len(kept) {
			end = kept[i+1].start
		}
		sections = append(sections, types.Section{
			Kind:    m.kind,
			Title:   m.title,
			Content: strings.TrimSpace(text[m.start:end]),
		})
	}
	return sections
}
