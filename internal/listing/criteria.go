// Package listing filters and pages the in-memory project collection.
package listing

import (
	"strings"

	"github.com/rpggio/stageboard/internal/domain/project"
)

// AllStages is the stage selector that disables the stage predicate.
const AllStages = "All"

// Criteria holds the active filters. Empty fields match everything.
type Criteria struct {
	Stage         string `json:"stage,omitempty"`
	ProjectNo     string `json:"projectNo,omitempty"`
	Customer      string `json:"customer,omitempty"`
	Owner         string `json:"owner,omitempty"`
	DispatchMonth string `json:"dispatchMonth,omitempty"`
}

// Match reports whether p satisfies every predicate of c. The stage
// predicate is an exact match; the others are case-insensitive substring
// matches.
func (c Criteria) Match(p project.Project) bool {
	if c.Stage != "" && c.Stage != AllStages && p.ProductionStage != c.Stage {
		return false
	}
	return contains(p.ProjectNo, c.ProjectNo) &&
		contains(p.CustomerName, c.Customer) &&
		contains(p.Owner, c.Owner) &&
		contains(p.DispatchMonth, c.DispatchMonth)
}

// Apply returns the projects matching c, in input order.
func Apply(projects []project.Project, c Criteria) []project.Project {
	out := make([]project.Project, 0, len(projects))
	for _, p := range projects {
		if c.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

func contains(value, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(needle))
}
