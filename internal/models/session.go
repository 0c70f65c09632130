package models

// SessionState reports both access gates of the board
type SessionState struct {
	ViewerGranted  bool `json:"viewerGranted"`
	ViewerError    bool `json:"viewerError"`
	EditorUnlocked bool `json:"editorUnlocked"`
	EditorError    bool `json:"editorError"`
}

// ViewerAccessKey is the only key the board persists
const ViewerAccessKey = "sami_global_access"
