package models

// User represents an account entity used for authentication and vault
// ownership. Credential material is supplied by the client already derived;
// the server stretches the master password hash once more before storage but
// never sees a plaintext password.
type User struct {
	// ID is the internal unique identifier of the user, assigned by the
	// server at registration. Immutable.
	ID string `json:"-"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// AvatarColor is an optional UI preference chosen by the client.
	AvatarColor *string `json:"avatarColor"`

	// Email is the unique login identifier, case-normalized to lowercase
	// at creation.
	Email string `json:"email"`

	EmailVerified bool `json:"emailVerified"`

	// MasterPasswordHash stores the server-side stretched form of the
	// client-derived master password hash. Never exposed via JSON.
	MasterPasswordHash string `json:"-"`

	// MasterPasswordHint is an optional user-provided hint.
	MasterPasswordHint *string `json:"-"`

	// Key is the user's encrypted symmetric key. Opaque to the server.
	Key string `json:"key"`

	// PrivateKey and PublicKey form the user's asymmetric key pair; the
	// private half arrives encrypted with the symmetric key.
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`

	// KdfType and KdfIterations are the client-side key derivation
	// parameters. Stored for prelogin, never computed on the server.
	KdfType       int `json:"kdf"`
	KdfIterations int `json:"kdfIterations"`

	// SecurityStamp changes whenever credentials change, invalidating
	// outstanding sessions.
	SecurityStamp string `json:"-"`

	// CreatedAt is immutable. UpdatedAt moves whenever profile-level state
	// changes and contributes to the vault revision computation.
	CreatedAt string `json:"-"`
	UpdatedAt string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserKeysRequest carries the asymmetric key pair submitted at registration.
type UserKeysRequest struct {
	EncryptedPrivateKey string `json:"encryptedPrivateKey"`
	PublicKey           string `json:"publicKey"`
}

// RegisterRequest is the body of the registration finish endpoint.
type RegisterRequest struct {
	Name               string          `json:"name"`
	Email              string          `json:"email"`
	MasterPasswordHash string          `json:"masterPasswordHash"`
	MasterPasswordHint *string         `json:"masterPasswordHint"`
	UserSymmetricKey   string          `json:"userSymmetricKey"`
	UserAsymmetricKeys UserKeysRequest `json:"userAsymmetricKeys"`
	Kdf                int             `json:"kdf"`
	KdfIterations      int             `json:"kdfIterations"`
}

// PreloginResponse tells a client which KDF parameters to use before it
// derives the master password hash locally.
type PreloginResponse struct {
	Kdf           int `json:"kdf"`
	KdfIterations int `json:"kdfIterations"`
}

// DefaultKdfIterations is returned by prelogin when the account does not
// exist, so that unknown emails are indistinguishable from real ones.
const DefaultKdfIterations = 600000
