package models

// ChangeAction classifies a change log entry
type ChangeAction string

const (
	ActionCreate       ChangeAction = "create"
	ActionUpdate       ChangeAction = "update"
	ActionDelete       ChangeAction = "delete"
	ActionSettings     ChangeAction = "settings"
	ActionAnnouncement ChangeAction = "announcement"
)

// ChangeLogEntry is one audit line. Entries are never mutated after creation.
type ChangeLogEntry struct {
	ID          string       `json:"id"`
	Timestamp   string       `json:"timestamp"`
	Action      ChangeAction `json:"action"`
	Description string       `json:"description"`
}
