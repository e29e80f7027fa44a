package parsing

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/vocab"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)
)

const maxNameLength = 50

// ExtractContact pulls contact details out of resume text. Each field is
// best-effort: the first email and first phone number win, the candidate name
// is the first non-empty line when it looks like a name, and a profile link
// is any occurrence of a known profile domain.
func ExtractContact(text string, v *vocab.Vocabulary) types.ContactInfo {
	info := types.ContactInfo{}

	if m := emailPattern.FindString(text); m != "" {
		info.Email = m
	}

	if m := phonePattern.FindStringSubmatch(text); m != nil {
		info.Phone = formatPhone(m[2], m[3], m[4])
	}

	info.Name = extractName(text)

	lower := strings.ToLower(text)
	for _, domain := range v.ProfileDomains {
		if strings.Contains(lower, domain) {
			info.HasProfileLink = true
			break
		}
	}

	return info
}

// formatPhone renders a US phone number as (XXX) XXX-XXXX regardless of the
// separators used in the source text.
func formatPhone(area, prefix, line string) string {
	return fmt.Sprintf("(%s) %s-%s", area, prefix, line)
}

// extractName returns the first non-empty line when it plausibly is a name:
// short and free of email-address characters. Anything else means the name
// is absent, which is a scoring signal rather than an error.
func extractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) >= maxNameLength || strings.Contains(line, "@") {
			return ""
		}
		return line
	}
	return ""
}
