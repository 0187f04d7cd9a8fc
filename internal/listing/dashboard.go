package listing

import (
	"strings"

	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/rpggio/stageboard/internal/domain/stage"
)

// StageCount is the number of projects sitting in one stage.
type StageCount struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// StageCounts counts projects per stage, in stage order. A project counts
// toward a stage when its trimmed production stage equals the trimmed name.
func StageCounts(projects []project.Project, stages []stage.Stage) []StageCount {
	tally := make(map[string]int, len(stages))
	for _, p := range projects {
		tally[strings.TrimSpace(p.ProductionStage)]++
	}
	out := make([]StageCount, len(stages))
	for i, st := range stages {
		name := strings.TrimSpace(st.Name)
		out[i] = StageCount{Stage: name, Count: tally[name]}
	}
	return out
}

// Selection tracks the dashboard card currently opened.
type Selection struct {
	selected string
}

// Toggle selects name, or clears the selection when name is already selected.
func (s *Selection) Toggle(name string) {
	if s.selected == name {
		s.selected = ""
		return
	}
	s.selected = name
}

// Selected returns the selected card, or "" when none is open.
func (s *Selection) Selected() string { return s.selected }

// Projects returns the detail list for the selection. AllStages lists every
// project; nothing selected returns nil.
func (s *Selection) Projects(all []project.Project) []project.Project {
	switch s.selected {
	case "":
		return nil
	case AllStages:
		return all
	}
	out := make([]project.Project, 0)
	for _, p := range all {
		if p.ProductionStage == s.selected {
			out = append(out, p)
		}
	}
	return out
}
