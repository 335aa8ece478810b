package http

import (
	"net/http"

	"github.com/olekhv/vaultkeep/internal/utils"
)

// serverVersion is reported to clients via /api/config. Clients gate
// features on it, so it tracks the upstream API version being emulated.
const serverVersion = "2025.1.0"

// clientConfig serves the static server metadata clients fetch at startup.
func (h *Handler) clientConfig(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"version":     serverVersion,
		"gitHash":     nil,
		"server":      map[string]any{"name": "vaultkeep", "url": "https://github.com/olekhv/vaultkeep"},
		"environment": map[string]any{"vault": nil, "api": "/api", "identity": "/identity", "notifications": nil, "sso": nil},
		"featureStates": map[string]any{
			"duo-redirect":       true,
			"email-verification": true,
		},
		"object": "config",
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
