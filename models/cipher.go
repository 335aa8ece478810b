package models

import (
	"encoding/json"
	"fmt"
)

// CipherType is the discriminant that selects which branch of the opaque
// [CipherData] payload a client populated. The numbering follows the
// Bitwarden wire protocol and is stored verbatim.
type CipherType int

const (
	CipherTypeLogin      CipherType = 1
	CipherTypeSecureNote CipherType = 2
	CipherTypeCard       CipherType = 3
	CipherTypeIdentity   CipherType = 4
)

// Cipher is one stored secret item. The server never inspects the encrypted
// payload: Data round-trips byte-for-byte between the client and the "data"
// text column.
//
// A cipher is visible to exactly one owner. Every repository operation
// filters by (id, user_id) jointly, so an id owned by someone else is
// indistinguishable from an absent one.
type Cipher struct {
	// ID is the server-generated unique identifier. Immutable.
	ID string `json:"id"`

	// UserID is the owning principal. Immutable after creation; it is the
	// sole authorization boundary for the item.
	UserID *string `json:"userId"`

	// OrganizationID is an optional organization-sharing reference.
	// Stored and returned as-is.
	OrganizationID *string `json:"organizationId"`

	// Type selects which CipherData branch the client populated.
	Type CipherType `json:"type"`

	// Data is the opaque tagged payload. Its leaves stay encrypted;
	// the server stores them verbatim.
	Data CipherData `json:"data"`

	Favorite bool `json:"favorite"`

	// FolderID optionally references a folder of the same owner. The
	// reference is not validated against the folders table.
	FolderID *string `json:"folderId"`

	// DeletedAt is nil for active items and carries the tombstone
	// timestamp for soft-deleted ones. Tombstoned rows stay visible to
	// restore and to sync.
	DeletedAt *string `json:"deletedAt"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`

	// Object is always "cipher" on the wire.
	Object string `json:"object"`

	OrganizationUseTotp bool `json:"organizationUseTotp"`
	Edit                bool `json:"edit"`
	ViewPassword        bool `json:"viewPassword"`

	CollectionIDs []string        `json:"collectionIds"`
	Attachments   json.RawMessage `json:"attachments"`
	Key           *string         `json:"key"`
}

// TableName returns the name of the database table
// associated with the Cipher model.
func (c Cipher) TableName() string {
	return "ciphers"
}

// CipherData is the type-tagged payload of a cipher. Only the branch matching
// [Cipher.Type] is expected to be populated, but the server does not enforce
// this. Every leaf is kept as raw JSON so that encrypted content is preserved
// byte-for-byte across storage and retrieval.
type CipherData struct {
	Name            json.RawMessage `json:"name,omitempty"`
	Notes           json.RawMessage `json:"notes,omitempty"`
	Login           json.RawMessage `json:"login,omitempty"`
	Card            json.RawMessage `json:"card,omitempty"`
	Identity        json.RawMessage `json:"identity,omitempty"`
	SecureNote      json.RawMessage `json:"secureNote,omitempty"`
	Fields          json.RawMessage `json:"fields,omitempty"`
	PasswordHistory json.RawMessage `json:"passwordHistory,omitempty"`
	Reprompt        json.RawMessage `json:"reprompt,omitempty"`
}

// Encode serializes the payload into the text form stored in the
// ciphers.data column.
func (d CipherData) Encode() (string, error) {
	encoded, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("error encoding cipher data: %w", err)
	}

	return string(encoded), nil
}

// DecodeCipherData parses the ciphers.data column back into a [CipherData].
// The inverse of [CipherData.Encode].
func DecodeCipherData(stored string) (CipherData, error) {
	var data CipherData
	if err := json.Unmarshal([]byte(stored), &data); err != nil {
		return CipherData{}, fmt.Errorf("error decoding cipher data: %w", err)
	}

	return data, nil
}

// CipherRequest is the flat request body accepted by the standard create
// endpoint and by full update. It carries the payload fields alongside the
// entity-level attributes.
type CipherRequest struct {
	Type           CipherType `json:"type"`
	OrganizationID *string    `json:"organizationId"`
	FolderID       *string    `json:"folderId"`
	Favorite       bool       `json:"favorite"`
	CollectionIDs  []string   `json:"collectionIds"`

	// Key is the optional per-item encryption key, opaque to the server.
	Key *string `json:"key"`

	Name            json.RawMessage `json:"name,omitempty"`
	Notes           json.RawMessage `json:"notes,omitempty"`
	Login           json.RawMessage `json:"login,omitempty"`
	Card            json.RawMessage `json:"card,omitempty"`
	Identity        json.RawMessage `json:"identity,omitempty"`
	SecureNote      json.RawMessage `json:"secureNote,omitempty"`
	Fields          json.RawMessage `json:"fields,omitempty"`
	PasswordHistory json.RawMessage `json:"passwordHistory,omitempty"`
	Reprompt        json.RawMessage `json:"reprompt,omitempty"`
}

// Data collects the payload fields of the request into a [CipherData]
// container. Both create entry shapes go through this method, so a flat
// request and an enveloped one produce identical stored entities.
func (r CipherRequest) Data() CipherData {
	return CipherData{
		Name:            r.Name,
		Notes:           r.Notes,
		Login:           r.Login,
		Card:            r.Card,
		Identity:        r.Identity,
		SecureNote:      r.SecureNote,
		Fields:          r.Fields,
		PasswordHistory: r.PasswordHistory,
		Reprompt:        r.Reprompt,
	}
}

// CreateCipherRequest is the alternate create entry shape: the same cipher
// request wrapped in an envelope with collection ids alongside.
type CreateCipherRequest struct {
	Cipher        CipherRequest `json:"cipher"`
	CollectionIDs []string      `json:"collectionIds"`
}

// ImportRequest is the bulk import body: ciphers and folders created in one
// call, with relationships linking cipher indexes to folder indexes.
type ImportRequest struct {
	Ciphers             []CipherRequest      `json:"ciphers"`
	Folders             []FolderRequest      `json:"folders"`
	FolderRelationships []ImportRelationship `json:"folderRelationships"`
}

// ImportRelationship links the cipher at index Key to the folder at index
// Value, both referring to positions inside the same [ImportRequest].
type ImportRelationship struct {
	Key   int `json:"key"`
	Value int `json:"value"`
}

// CipherPatch describes a partial update. Only non-nil fields are applied;
// the rest of the row is left untouched. The two fields are logically
// independent of each other.
type CipherPatch struct {
	FolderID *string `json:"folderId"`
	Favorite *bool   `json:"favorite"`
}

// Empty reports whether the patch carries no fields at all.
func (p CipherPatch) Empty() bool {
	return p.FolderID == nil && p.Favorite == nil
}
