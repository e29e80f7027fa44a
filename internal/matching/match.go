// Package matching ranks job postings against a resume profile. Scores
// combine keyword overlap, seniority fit, location fit, and a bonus for a
// strong ATS score; the package is pure and does no I/O.
package matching

import (
	"fmt"
	"math"
	"sort"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/vocab"
)

// Component caps: keyword overlap contributes up to 40 points, experience
// fit up to 30, location fit up to 20, and the ATS bonus up to 10. The total
// is clamped to 100.
const (
	keywordPointsFactor = 0.4
	atsBonusFactor      = 0.1
	maxMatchScore       = 100
)

// Keyword-fit reason bands, as percentages of job keywords matched.
const (
	excellentFitPct = 80
	goodFitPct      = 60
	partialFitPct   = 40
)

// atsBonusReasonThreshold is the ATS overall score above which the bonus
// gets called out as a match reason.
const atsBonusReasonThreshold = 80

// MatchResumeToJobs scores every job against the profile and returns the
// matches in descending score order. The sort is stable, so jobs with equal
// scores keep their input order. A nil vocabulary falls back to the embedded
// default.
func MatchResumeToJobs(profile types.ResumeProfile, jobs []types.Job, v *vocab.Vocabulary) []types.JobMatch {
	if v == nil {
		v = vocab.Default()
	}

	stop := v.StopWordSet()
	resumeKws := profileKeywords(profile, stop)

	matches := make([]types.JobMatch, 0, len(jobs))
	for _, job := range jobs {
		matches = append(matches, scoreJob(profile, job, resumeKws, v, stop))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	return matches
}

func scoreJob(profile types.ResumeProfile, job types.Job, resumeKws []string, v *vocab.Vocabulary, stop map[string]bool) types.JobMatch {
	jobKws := jobKeywords(job, v, stop)

	var matched, missing []string
	for _, jk := range jobKws {
		found := false
		for _, rk := range resumeKws {
			if keywordMatches(rk, jk) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, jk)
		} else {
			missing = append(missing, jk)
		}
	}

	var reasons []string
	var pct float64
	if len(jobKws) > 0 {
		pct = float64(len(matched)) / float64(len(jobKws)) * 100
	}
	score := int(math.Round(pct * keywordPointsFactor))

	switch {
	case pct >= excellentFitPct:
		reasons = append(reasons, fmt.Sprintf("Excellent skills fit: %d%% of job keywords matched", int(pct)))
	case pct >= goodFitPct:
		reasons = append(reasons, fmt.Sprintf("Good skills fit: %d%% of job keywords matched", int(pct)))
	case pct >= partialFitPct:
		reasons = append(reasons, fmt.Sprintf("Partial skills fit: %d%% of job keywords matched", int(pct)))
	}

	expPoints, expReason := experiencePoints(profile, job)
	score += expPoints
	if expReason != "" {
		reasons = append(reasons, expReason)
	}

	locPoints, locReason := locationPoints(profile, job, v.USStates)
	score += locPoints
	if locReason != "" {
		reasons = append(reasons, locReason)
	}

	if profile.ATSScore != nil {
		bonus := int(math.Round(float64(*profile.ATSScore) * atsBonusFactor))
		score += bonus
		if *profile.ATSScore >= atsBonusReasonThreshold {
			reasons = append(reasons, "Strong ATS-optimized resume boosts this match")
		}
	}

	if score > maxMatchScore {
		score = maxMatchScore
	}

	return types.JobMatch{
		Job:             job,
		MatchScore:      score,
		MatchReasons:    reasons,
		KeywordMatches:  matched,
		MissingKeywords: missing,
	}
}
