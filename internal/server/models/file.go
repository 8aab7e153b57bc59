// Package models defines server-side data models persisted in the database.
package models

import "time"

// File describes user-visible metadata for an uploaded binary payload.
// The payload itself lives in object storage under StorageKey; the metadata
// row is the authoritative record of the file's existence.
type File struct {
	// ID is the server-assigned identifier, immutable after creation.
	ID string `json:"id"`
	// UserID is the owner of the file and never changes.
	UserID string `json:"user_id"`
	// Name is the human-chosen display name, changed by rename.
	Name string `json:"name"`
	// StorageKey is the object-storage key of the blob, immutable.
	StorageKey string `json:"stored_name"`
	// ContentType is the declared MIME type, set at upload.
	ContentType string `json:"file_type"`
	// Size is the byte count of the persisted blob.
	Size int64 `json:"size"`
	// FolderID references the containing folder; nil means root.
	FolderID *string `json:"folder_id"`

	IsFavorite bool `json:"is_favorite"`
	IsTrashed  bool `json:"is_trashed"`

	// UploadedAt is the server-assigned creation timestamp, immutable.
	UploadedAt time.Time `json:"uploaded_at"`
}

// FilePatch is a partial update to a File. Nil fields are left untouched.
// FolderID is special: it is only applied when SetFolder is true, so callers
// can distinguish "move to root" (SetFolder with nil FolderID) from
// "do not touch the folder".
type FilePatch struct {
	Name       *string
	IsFavorite *bool
	IsTrashed  *bool

	SetFolder bool
	FolderID  *string
}

// Empty reports whether the patch changes nothing.
func (p FilePatch) Empty() bool {
	return p.Name == nil && p.IsFavorite == nil && p.IsTrashed == nil && !p.SetFolder
}
