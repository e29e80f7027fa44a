package parsing

import "regexp"

// metricPatterns are the achievement shapes the extractor recognizes, in the
// order their matches are reported: percentages, money/magnitude figures, and
// scale counts.
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(?:\.\d+)?%`),
	regexp.MustCompile(`(?i)\$?\d+(?:[.,]\d+)?\s*(?:million|billion|thousand|[kmb])\b`),
	regexp.MustCompile(`(?i)\d+(?:,\d{3})*\+?\s+(?:users|customers|clients|employees|developers|engineers|projects)\b`),
}

// ExtractMetrics finds quantified achievements in resume text: literal
// substrings like "30%", "$2 million", or "50,000 users". Exact duplicates
// are removed; matches keep source casing and ordering within each pattern
// family.
func ExtractMetrics(text string) []string {
	seen := make(map[string]bool)
	var metrics []string
	for _, re := range metricPatterns {
		for _, m := range re.FindAllString(text, -1) {
			if seen[m] {
				continue
			}
			seen[m] = true
			metrics = append(metrics, m)
		}
	}
	return metrics
}
