package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/identity/accounts/prelogin", h.prelogin)
		r.Post("/identity/accounts/register/finish", h.registerFinish)
		r.Post("/identity/accounts/register/send-verification-email", h.sendVerificationEmail)
		r.Post("/identity/connect/token", h.connectToken)

		r.Get("/api/config", h.clientConfig)
		r.Get("/api/devices/knowndevice", h.knownDevice)

		r.Get("/alive", h.alive)
	})

	// routes behind JWT authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/sync", h.sync)
		r.Get("/api/accounts/revision-date", h.revisionDate)
		r.Get("/api/accounts/profile", h.profile)

		r.Route("/api/ciphers", func(r chi.Router) {
			r.Get("/", h.listCiphers)
			r.Post("/", h.createCipher)
			r.Post("/create", h.createCipherEnvelope)
			r.Post("/import", h.importCiphers)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getCipher)
				r.Put("/", h.updateCipher)
				r.Post("/", h.updateCipher)
				r.Delete("/", h.hardDeleteCipher)
				r.Put("/delete", h.softDeleteCipher)
				r.Post("/delete", h.softDeleteCipher)
				r.Put("/restore", h.restoreCipher)
				r.Put("/partial", h.patchCipher)
				r.Post("/partial", h.patchCipher)
			})
		})

		r.Route("/api/folders", func(r chi.Router) {
			r.Get("/", h.listFolders)
			r.Post("/", h.createFolder)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getFolder)
				r.Put("/", h.updateFolder)
				r.Delete("/", h.deleteFolder)
			})
		})

		r.Get("/api/devices", h.emptyDeviceList)
		r.Route("/api/devices/identifier/{deviceID}", func(r chi.Router) {
			r.Get("/", h.emptyObject)
			r.Post("/token", h.emptyObject)
			r.Put("/token", h.emptyObject)
			r.Put("/clear-token", h.emptyObject)
			r.Post("/clear-token", h.emptyObject)
		})
		r.Get("/api/emergency-access/trusted", h.emptyAccessList)
		r.Get("/api/emergency-access/granted", h.emptyAccessList)
		r.Get("/api/webauthn", h.emptyAccessList)
	})

	return router
}
