package http

import (
	"net/http"

	"github.com/olekhv/vaultkeep/internal/utils"
	"github.com/olekhv/vaultkeep/models"
)

// The device, emergency-access and webauthn surfaces are not implemented;
// clients only need the fixed empty shapes to proceed.

func (h *Handler) emptyDeviceList(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.EmptyList(), http.StatusOK)
}

func (h *Handler) emptyAccessList(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.EmptyList(), http.StatusOK)
}

// knownDevice always reports false: device tracking is out of scope, and
// "unknown" is the safe answer for login flows.
func (h *Handler) knownDevice(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, false, http.StatusOK)
}

// emptyObject acknowledges device token registration without storing anything.
func (h *Handler) emptyObject(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, struct{}{}, http.StatusOK)
}
