package models

import "time"

// Folder is a flat, per-user grouping of files. Folders do not nest and
// names are not required to be unique within an owner.
type Folder struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
