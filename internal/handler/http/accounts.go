package http

import (
	"encoding/json"
	"net/http"

	"github.com/olekhv/vaultkeep/internal/logger"
	"github.com/olekhv/vaultkeep/internal/utils"
	"github.com/olekhv/vaultkeep/models"
)

// prelogin discloses the KDF parameters a client must use to derive its
// master password hash. Unknown emails receive defaults, so this endpoint
// cannot be used to probe for accounts.
func (h *Handler) prelogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.prelogin").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, h.services.AccountService.Prelogin(r.Context(), request.Email), http.StatusOK)
}

// registerFinish creates the account from client-derived key material.
func (h *Handler) registerFinish(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.registerFinish").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.Register(r.Context(), request); err != nil {
		log.Err(err).Str("func", "*Handler.registerFinish").Msg("error registering user")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, struct{}{}, http.StatusOK)
}

// sendVerificationEmail returns a fixed token: no mail infrastructure is
// attached, the client feeds the value straight back into register/finish.
func (h *Handler) sendVerificationEmail(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, "fake_token", http.StatusOK)
}

// revisionDate reports the vault revision date in epoch milliseconds.
// Clients compare it against their local value to decide whether a full
// sync is needed.
func (h *Handler) revisionDate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	revision, err := h.services.RevisionService.RevisionDate(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.revisionDate").Msg("error computing revision date")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, revision, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	profile, err := h.services.AccountService.Profile(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.profile").Msg("error getting profile")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

// alive is the liveness probe.
func (h *Handler) alive(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
