package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/olekhv/vaultkeep/internal/config"
	"github.com/olekhv/vaultkeep/internal/logger"
	"github.com/olekhv/vaultkeep/internal/store"
	"github.com/olekhv/vaultkeep/internal/utils"
	"github.com/olekhv/vaultkeep/models"
	"golang.org/x/crypto/pbkdf2"
)

// serverKdfIterations is the server-side PBKDF2 round count applied to the
// client-derived master password hash before storage. This is on top of the
// client-side derivation, so a database leak alone does not expose
// login-usable credentials.
const serverKdfIterations = 100_000

// accountService is the concrete implementation of [AccountService].
// It handles registration with an optional allow-list, the prelogin KDF
// disclosure, password-grant logins, and JWT token lifecycle.
type accountService struct {
	userRepository store.UserRepository

	// allowedEmails restricts registration when non-empty.
	allowedEmails []string

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	uuid   *utils.UUIDGenerator
	now    func() string
	logger *logger.Logger
}

// NewAccountService constructs an [AccountService] wired to the given
// repository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAccountService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: userRepository,
		allowedEmails:  cfg.AllowedEmails,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		uuid:           utils.NewUUIDGenerator(),
		now:            models.NowTimestamp,
		logger:         logger,
	}
}

// Register creates a new account from the registration finish request.
// The email is lowercased before storage and must pass the allow-list when
// one is configured. The client-derived master password hash is stretched
// once more with PBKDF2-SHA256 before it is persisted.
func (a *accountService) Register(ctx context.Context, request models.RegisterRequest) error {
	log := logger.FromContext(ctx)

	email := strings.ToLower(strings.TrimSpace(request.Email))
	if email == "" || request.MasterPasswordHash == "" || request.UserSymmetricKey == "" {
		log.Error().Msg("invalid registration data provided")
		return ErrInvalidDataProvided
	}

	if !a.emailAllowed(email) {
		log.Warn().Str("email", email).Msg("registration attempt outside allow-list")
		return ErrNotAllowedToRegister
	}

	now := a.now()
	user := models.User{
		ID:                 a.uuid.Generate(),
		Name:               request.Name,
		Email:              email,
		MasterPasswordHint: request.MasterPasswordHint,
		Key:                request.UserSymmetricKey,
		PrivateKey:         request.UserAsymmetricKeys.EncryptedPrivateKey,
		PublicKey:          request.UserAsymmetricKeys.PublicKey,
		KdfType:            request.Kdf,
		KdfIterations:      request.KdfIterations,
		SecurityStamp:      a.uuid.Generate(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if user.KdfIterations == 0 {
		user.KdfIterations = models.DefaultKdfIterations
	}
	user.MasterPasswordHash = stretchMasterPasswordHash(request.MasterPasswordHash, user.ID)

	if err := a.userRepository.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return fmt.Errorf("user creation ended with error: %w", err)
	}

	return nil
}

// Prelogin discloses the KDF parameters for an email. Unknown emails get
// the default parameters, so account existence cannot be probed here.
func (a *accountService) Prelogin(ctx context.Context, email string) models.PreloginResponse {
	user, err := a.userRepository.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return models.PreloginResponse{Kdf: 0, KdfIterations: models.DefaultKdfIterations}
	}

	return models.PreloginResponse{Kdf: user.KdfType, KdfIterations: user.KdfIterations}
}

// Login verifies the client-derived master password hash against the stored
// stretched credential and issues a signed JWT on success. A missing account
// and a wrong password are reported identically.
func (a *accountService) Login(ctx context.Context, email string, masterPasswordHash string) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.TokenResponse{}, ErrWrongPassword
		}
		log.Err(err).Msg("error looking up user for login")
		return models.TokenResponse{}, err
	}

	stretched := stretchMasterPasswordHash(masterPasswordHash, user.ID)
	if subtle.ConstantTimeCompare([]byte(stretched), []byte(user.MasterPasswordHash)) != 1 {
		log.Warn().Str("email", user.Email).Msg("failed login attempt")
		return models.TokenResponse{}, ErrWrongPassword
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("error generating token")
		return models.TokenResponse{}, fmt.Errorf("error generating token: %w", err)
	}

	return models.TokenResponse{
		AccessToken:   token.String(),
		ExpiresIn:     int(a.tokenDuration.Seconds()),
		TokenType:     "Bearer",
		Key:           user.Key,
		PrivateKey:    user.PrivateKey,
		Kdf:           user.KdfType,
		KdfIterations: user.KdfIterations,
	}, nil
}

// Profile returns the account section of the sync payload.
func (a *accountService) Profile(ctx context.Context, userID string) (models.Profile, error) {
	user, err := a.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}

	return buildProfile(user), nil
}

// ValidateToken parses and verifies a compact JWT string, translating the
// library's expiry error into the service-level sentinel.
func (a *accountService) ValidateToken(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, err
	}

	return token, nil
}

func (a *accountService) emailAllowed(email string) bool {
	if len(a.allowedEmails) == 0 {
		return true
	}

	for _, allowed := range a.allowedEmails {
		if strings.EqualFold(allowed, email) {
			return true
		}
	}

	return false
}

// buildProfile maps a stored user onto the wire-level profile object.
func buildProfile(user models.User) models.Profile {
	return models.Profile{
		ID:                 user.ID,
		Name:               user.Name,
		Email:              user.Email,
		EmailVerified:      user.EmailVerified,
		AvatarColor:        user.AvatarColor,
		Premium:            true,
		MasterPasswordHint: user.MasterPasswordHint,
		Culture:            "en-US",
		TwoFactorEnabled:   false,
		Key:                user.Key,
		PrivateKey:         user.PrivateKey,
		SecurityStamp:      user.SecurityStamp,
		Object:             "profile",
	}
}

// stretchMasterPasswordHash applies the server-side PBKDF2-SHA256 rounds to
// the client-derived hash. The user id doubles as the salt, so equal client
// hashes never stretch to equal stored values.
func stretchMasterPasswordHash(clientHash string, userID string) string {
	stretched := pbkdf2.Key([]byte(clientHash), []byte(userID), serverKdfIterations, 32, sha256.New)
	return base64.StdEncoding.EncodeToString(stretched)
}
