package models

// Folder groups ciphers for one owner. Folders have no tombstone state:
// deleting one is permanent.
type Folder struct {
	ID        string  `json:"id"`
	UserID    *string `json:"userId"`
	Name      string  `json:"name"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`

	// Object is always "folder" on the wire.
	Object string `json:"object"`
}

// TableName returns the name of the database table
// associated with the Folder model.
func (f Folder) TableName() string {
	return "folders"
}

// FolderRequest is the request body for folder create and update. The name
// arrives encrypted and is stored verbatim.
type FolderRequest struct {
	Name string `json:"name"`
}
