package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const sampleResume = `Jane Smith
jane@example.com
555-987-6543
linkedin.com/in/janesmith

SUMMARY
Senior backend engineer with 10+ years of experience.

WORK EXPERIENCE:
- Led a team of 8 engineers
- Improved API performance by 30% and cut infra spend by 50%
- Scaled platform to 50,000 users

EDUCATION:
BS Computer Science

SKILLS:
Python, Docker, PostgreSQL, AWS, leadership`

func TestParse_FullPipeline(t *testing.T) {
	parsed := Parse(CleanText(sampleResume), nil)

	require.Len(t, parsed.Sections, 4)
	assert.True(t, parsed.HasSection(types.SectionSummary))
	assert.True(t, parsed.HasSection(types.SectionExperience))
	assert.True(t, parsed.HasSection(types.SectionEducation))
	assert.True(t, parsed.HasSection(types.SectionSkills))

	assert.Equal(t, "Jane Smith", parsed.Contact.Name)
	assert.Equal(t, "jane@example.com", parsed.Contact.Email)
	assert.Equal(t, "(555) 987-6543", parsed.Contact.Phone)
	assert.True(t, parsed.Contact.HasProfileLink)

	assert.True(t, parsed.HasKeyword("python"))
	assert.True(t, parsed.HasKeyword("docker"))
	assert.True(t, parsed.HasKeyword("postgresql"))
	assert.True(t, parsed.HasKeyword("aws"))
	assert.True(t, parsed.HasKeyword("leadership"))
	assert.False(t, parsed.HasKeyword("rust"))

	assert.Contains(t, parsed.Metrics, "30%")
	assert.Contains(t, parsed.Metrics, "50%")
	assert.Contains(t, parsed.Metrics, "50,000 users")
}
