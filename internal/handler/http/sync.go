package http

import (
	"net/http"

	"github.com/olekhv/vaultkeep/internal/logger"
	"github.com/olekhv/vaultkeep/internal/utils"
)

// sync returns the complete vault state for the authenticated user,
// tombstoned ciphers included.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	payload, err := h.services.SyncService.Sync(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("error assembling sync payload")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, payload, http.StatusOK)
}
