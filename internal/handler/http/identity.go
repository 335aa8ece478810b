package http

import (
	"net/http"

	"github.com/olekhv/vaultkeep/internal/logger"
	"github.com/olekhv/vaultkeep/internal/utils"
)

// connectToken implements the password grant of the token endpoint. The
// client posts form-encoded credentials; on success it receives a signed
// bearer token plus its own encrypted key material.
func (h *Handler) connectToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.connectToken").Msg("invalid form body")
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	if grantType := r.PostFormValue("grant_type"); grantType != "password" {
		log.Error().Str("grant_type", grantType).Msg("unsupported grant type")
		http.Error(w, "unsupported grant type", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("username")
	masterPasswordHash := r.PostFormValue("password")
	if email == "" || masterPasswordHash == "" {
		http.Error(w, "missing credentials", http.StatusBadRequest)
		return
	}

	response, err := h.services.AccountService.Login(r.Context(), email, masterPasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*Handler.connectToken").Msg("login failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
