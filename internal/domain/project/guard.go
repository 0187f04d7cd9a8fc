package project

import "strings"

// HasDuplicateNumber reports whether candidate, trimmed, equals the trimmed
// project number of any project other than excludeID. Matching is exact and
// case-sensitive. An empty candidate never collides.
func HasDuplicateNumber(projects []Project, candidate, excludeID string) bool {
	key := strings.TrimSpace(candidate)
	if key == "" {
		return false
	}
	for i := range projects {
		if excludeID != "" && projects[i].ID == excludeID {
			continue
		}
		if strings.TrimSpace(projects[i].ProjectNo) == key {
			return true
		}
	}
	return false
}
