package matching

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Location point awards, best hit wins: remote or same city 20, same
// country 15, shared US state 12, otherwise a small base so location never
// dominates the total.
const (
	locationRemote      = 20
	locationSameCity    = 20
	locationSameCountry = 15
	locationSharedState = 12
	locationBase        = 5
)

var remoteMarkers = []string{"remote", "anywhere"}

// locationPoints scores geographic compatibility between the candidate and
// the job posting, returning a reason for strong matches.
func locationPoints(profile types.ResumeProfile, job types.Job, usStates []string) (int, string) {
	loc := strings.ToLower(job.Location)

	if containsAny(loc, remoteMarkers) {
		return locationRemote, "Remote-friendly role"
	}

	if city := strings.ToLower(strings.TrimSpace(profile.City)); city != "" && strings.Contains(loc, city) {
		return locationSameCity, "Location is a great match"
	}

	if country := strings.ToLower(strings.TrimSpace(profile.Country)); country != "" && strings.Contains(loc, country) {
		return locationSameCountry, "Location is a great match"
	}

	if sharesUSState(profile, loc, usStates) {
		return locationSharedState, ""
	}

	return locationBase, ""
}

// sharesUSState reports whether the job location and any candidate location
// field name the same US state.
func sharesUSState(profile types.ResumeProfile, jobLocation string, usStates []string) bool {
	candidate := strings.ToLower(profile.City + " " + profile.Country)
	for _, state := range usStates {
		if strings.Contains(jobLocation, state) && strings.Contains(candidate, state) {
			return true
		}
	}
	return false
}
