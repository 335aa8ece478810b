package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/olekhv/vaultkeep/internal/logger"
	"github.com/olekhv/vaultkeep/internal/utils"
	"github.com/olekhv/vaultkeep/models"
)

// createCipher handles the flat create shape: the request body is the
// cipher request itself.
func (h *Handler) createCipher(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.CipherRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createCipher").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	cipher, err := h.services.CipherService.CreateCipher(r.Context(), userID, request, request.CollectionIDs)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createCipher").Msg("error creating cipher")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, cipher, http.StatusOK)
}

// createCipherEnvelope handles the alternate create shape: the cipher
// request arrives wrapped together with collection ids. Both shapes produce
// identical stored entities.
func (h *Handler) createCipherEnvelope(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.CreateCipherRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createCipherEnvelope").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	cipher, err := h.services.CipherService.CreateCipher(r.Context(), userID, request.Cipher, request.CollectionIDs)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createCipherEnvelope").Msg("error creating cipher")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, cipher, http.StatusOK)
}

func (h *Handler) getCipher(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	cipher, err := h.services.CipherService.GetCipher(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCipher").Msg("error getting cipher")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, cipher, http.StatusOK)
}

func (h *Handler) listCiphers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	ciphers, err := h.services.CipherService.GetAllCiphers(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCiphers").Msg("error listing ciphers")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	response := struct {
		Data              []models.Cipher `json:"data"`
		Object            string          `json:"object"`
		ContinuationToken *string         `json:"continuationToken"`
	}{Data: ciphers, Object: "list"}

	utils.WriteJSON(w, response, http.StatusOK)
}

// importCiphers handles the bulk import: folders first, then ciphers linked
// to them by index. Success is an empty object, matching the other
// write-only account endpoints.
func (h *Handler) importCiphers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.importCiphers").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.CipherService.ImportVault(r.Context(), userID, request); err != nil {
		log.Err(err).Str("func", "*Handler.importCiphers").Msg("error importing vault")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, struct{}{}, http.StatusOK)
}

// updateCipher is the full update: every client-controlled field is
// replaced with the request's values.
func (h *Handler) updateCipher(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.CipherRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.updateCipher").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	cipher, err := h.services.CipherService.UpdateCipher(r.Context(), userID, chi.URLParam(r, "id"), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateCipher").Msg("error updating cipher")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, cipher, http.StatusOK)
}

// patchCipher applies a partial update: only the fields present in the body
// are touched.
func (h *Handler) patchCipher(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var patch models.CipherPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Str("func", "*Handler.patchCipher").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	cipher, err := h.services.CipherService.PatchCipher(r.Context(), userID, chi.URLParam(r, "id"), patch)
	if err != nil {
		log.Err(err).Str("func", "*Handler.patchCipher").Msg("error patching cipher")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, cipher, http.StatusOK)
}

// softDeleteCipher tombstones the item. The response is uniform success;
// repeated deletes are indistinguishable from the first one.
func (h *Handler) softDeleteCipher(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.CipherService.SoftDeleteCipher(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		log.Err(err).Str("func", "*Handler.softDeleteCipher").Msg("error soft deleting cipher")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) restoreCipher(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	cipher, err := h.services.CipherService.RestoreCipher(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.restoreCipher").Msg("error restoring cipher")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, cipher, http.StatusOK)
}

func (h *Handler) hardDeleteCipher(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.CipherService.HardDeleteCipher(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		log.Err(err).Str("func", "*Handler.hardDeleteCipher").Msg("error hard deleting cipher")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
