package activity

import "time"

// ActivityType represents the type of activity event
type ActivityType string

const (
	TypeProjectCreated  ActivityType = "project_created"
	TypeProjectUpdated  ActivityType = "project_updated"
	TypeProjectDeleted  ActivityType = "project_deleted"
	TypeStageCreated    ActivityType = "stage_created"
	TypeStageUpdated    ActivityType = "stage_updated"
	TypeStageDeleted    ActivityType = "stage_deleted"
	TypeImportSucceeded ActivityType = "import_succeeded"
	TypeImportFailed    ActivityType = "import_failed"
)

// EntityType names the collection an activity entry refers to
type EntityType string

const (
	EntityProject EntityType = "project"
	EntityStage   EntityType = "stage"
	EntityImport  EntityType = "import"
)

// ActivityEntry represents an event in the activity log
type ActivityEntry struct {
	ID           int64        `json:"id"`
	EntityType   EntityType   `json:"entity_type"`
	EntityID     *string      `json:"entity_id,omitempty"`
	ActivityType ActivityType `json:"type"`
	Summary      string       `json:"summary"`
	Details      string       `json:"details,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}
