package parsing

import "strings"

// ExtractKeywords reports which vocabulary terms appear in the text, using
// case-insensitive substring containment. The result preserves vocabulary
// order and contains each term at most once, lowercase.
func ExtractKeywords(text string, vocabulary []string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool, len(vocabulary))
	var found []string
	for _, term := range vocabulary {
		term = strings.ToLower(term)
		if seen[term] {
			continue
		}
		if strings.Contains(lower, term) {
			seen[term] = true
			found = append(found, term)
		}
	}
	return found
}
