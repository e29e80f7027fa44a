// Package types provides type definitions for structured data used throughout the resume-analyzer system.
package types

// SectionKind identifies one of the resume section categories the segmenter recognizes.
type SectionKind string

// Recognized section kinds, in segmentation precedence order.
const (
	SectionExperience     SectionKind = "experience"
	SectionEducation      SectionKind = "education"
	SectionSkills         SectionKind = "skills"
	SectionSummary        SectionKind = "summary"
	SectionProjects       SectionKind = "projects"
	SectionCertifications SectionKind = "certifications"
	SectionOther          SectionKind = "other"
)

// Section is a labeled contiguous span of resume text identified by a header line.
// Content runs from the section's header to the next detected header (or end of text),
// so sections never overlap.
type Section struct {
	Kind    SectionKind `json:"kind"`
	Title   string      `json:"title"`
	Content string      `json:"content"`
}

// ContactInfo holds contact details extracted from resume text.
// Every field is optional; absence is a scoring signal, not an error.
type ContactInfo struct {
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Name           string `json:"name,omitempty"`
	HasProfileLink bool   `json:"has_profile_link"`
}

// ParsedResume is the structured signal extracted from one resume text.
// It is built fresh per analysis request and never persisted as-is.
type ParsedResume struct {
	RawText  string      `json:"raw_text,omitempty"`
	Sections []Section   `json:"sections"`
	Contact  ContactInfo `json:"contact"`
	Keywords []string    `json:"keywords"` // lowercase, deduplicated, vocabulary order
	Metrics  []string    `json:"metrics"`  // literal substrings, deduplicated
}

// HasSection reports whether a section of the given kind was detected.
func (p *ParsedResume) HasSection(kind SectionKind) bool {
	for _, s := range p.Sections {
		if s.Kind == kind {
			return true
		}
	}
	return false
}

// HasKeyword reports whether the resume's keyword set contains the given
// lowercase term.
func (p *ParsedResume) HasKeyword(term string) bool {
	for _, k := range p.Keywords {
		if k == term {
			return true
		}
	}
	return false
}
