package matching

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// seniorityTier buckets roles and candidates into coarse experience levels.
type seniorityTier int

const (
	tierJunior seniorityTier = iota
	tierMid
	tierSenior
)

// Experience point awards. A same-tier match earns the full 30; mismatches
// degrade rather than zero out because job titles are noisy signals.
const (
	experienceSameTier     = 30
	experienceSeniorBridge = 20
	experienceJuniorJob    = 15
	experienceFallback     = 15
)

var (
	seniorTitleMarkers  = []string{"senior", "lead", "principal"}
	juniorTitleMarkers  = []string{"junior", "entry"}
	seniorResumeMarkers = []string{"senior", "lead", "10+ years"}
	juniorResumeMarkers = []string{"junior", "entry", "recent graduate"}
)

// jobTier classifies a job posting by its title.
func jobTier(title string) seniorityTier {
	lower := strings.ToLower(title)
	if containsAny(lower, seniorTitleMarkers) {
		return tierSenior
	}
	if containsAny(lower, juniorTitleMarkers) {
		return tierJunior
	}
	return tierMid
}

// resumeTier classifies a candidate by seniority markers in their summary.
func resumeTier(profile types.ResumeProfile) seniorityTier {
	lower := strings.ToLower(profile.Summary)
	if containsAny(lower, seniorResumeMarkers) {
		return tierSenior
	}
	if containsAny(lower, juniorResumeMarkers) {
		return tierJunior
	}
	return tierMid
}

// experiencePoints scores how well the candidate's seniority fits the role
// and returns an explanatory reason when the fit is at least partial.
func experiencePoints(profile types.ResumeProfile, job types.Job) (int, string) {
	jt := jobTier(job.Title)
	rt := resumeTier(profile)

	points := experienceFallback
	switch {
	case jt == rt:
		points = experienceSameTier
	case jt == tierSenior && rt != tierJunior:
		points = experienceSeniorBridge
	case jt == tierJunior:
		points = experienceJuniorJob
	}

	switch {
	case points >= 25:
		return points, "Experience level matches the role"
	case points >= 15:
		return points, "Experience level somewhat matches the role"
	default:
		return points, ""
	}
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
