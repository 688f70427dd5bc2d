package handler

import (
	"net/http"

	"galactic_pets/internal/app/service"
	"galactic_pets/internal/common"

	"github.com/go-chi/chi/v5"
)

// SetupHandler exposes the one-time admin bootstrap endpoint.
type SetupHandler struct {
	userService *service.UserAdminService
}

func NewSetupHandler(userService *service.UserAdminService) *SetupHandler {
	return &SetupHandler{userService: userService}
}

func (h *SetupHandler) RegisterRoutes(r chi.Router) {
	r.Get("/setup", h.setup)
}

func (h *SetupHandler) setup(w http.ResponseWriter, r *http.Request) {
	creds, err := h.userService.BootstrapAdmin(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	resp := struct {
		Message     string                    `json:"message"`
		Credentials *service.SetupCredentials `json:"credentials"`
	}{
		Message:     "Admin user created successfully",
		Credentials: creds,
	}
	common.RespondWithJSON(w, http.StatusCreated, resp)
}
