package models

// Profile is the account section of a full sync payload.
type Profile struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	EmailVerified      bool    `json:"emailVerified"`
	AvatarColor        *string `json:"avatarColor"`
	Premium            bool    `json:"premium"`
	MasterPasswordHint *string `json:"masterPasswordHint"`
	Culture            string  `json:"culture"`
	TwoFactorEnabled   bool    `json:"twoFactorEnabled"`
	Key                string  `json:"key"`
	PrivateKey         string  `json:"privateKey"`
	SecurityStamp      string  `json:"securityStamp"`
	Object             string  `json:"object"`
}

// SyncResponse is the full vault payload returned by the sync endpoint.
// Tombstoned ciphers are included with their deletedAt set so clients can
// reconcile local state.
type SyncResponse struct {
	Profile     Profile  `json:"profile"`
	Folders     []Folder `json:"folders"`
	Collections []any    `json:"collections"`
	Ciphers     []Cipher `json:"ciphers"`
	Domains     *any     `json:"domains"`
	Policies    []any    `json:"policies"`
	Sends       []any    `json:"sends"`
	Object      string   `json:"object"`
}

// ListResponse is the fixed empty-list shape returned by the device,
// emergency-access and webauthn endpoints.
type ListResponse struct {
	Data              []any   `json:"data"`
	Object            string  `json:"object"`
	ContinuationToken *string `json:"continuationToken"`
}

// EmptyList returns a [ListResponse] with no entries.
func EmptyList() ListResponse {
	return ListResponse{Data: []any{}, Object: "list"}
}
