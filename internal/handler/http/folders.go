package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/olekhv/vaultkeep/internal/logger"
	"github.com/olekhv/vaultkeep/internal/utils"
	"github.com/olekhv/vaultkeep/models"
)

func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.FolderRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createFolder").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	folder, err := h.services.FolderService.CreateFolder(r.Context(), userID, request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createFolder").Msg("error creating folder")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, folder, http.StatusOK)
}

func (h *Handler) getFolder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	folder, err := h.services.FolderService.GetFolder(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getFolder").Msg("error getting folder")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, folder, http.StatusOK)
}

func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	folders, err := h.services.FolderService.GetAllFolders(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listFolders").Msg("error listing folders")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	response := struct {
		Data              []models.Folder `json:"data"`
		Object            string          `json:"object"`
		ContinuationToken *string         `json:"continuationToken"`
	}{Data: folders, Object: "list"}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) updateFolder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.FolderRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.updateFolder").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	folder, err := h.services.FolderService.UpdateFolder(r.Context(), userID, chi.URLParam(r, "id"), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateFolder").Msg("error updating folder")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, folder, http.StatusOK)
}

// deleteFolder removes the folder permanently. The response is uniform
// success regardless of whether a row existed.
func (h *Handler) deleteFolder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.FolderService.DeleteFolder(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		log.Err(err).Str("func", "*Handler.deleteFolder").Msg("error deleting folder")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
