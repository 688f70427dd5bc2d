package handler

import (
	"encoding/json"
	"net/http"

	"galactic_pets/internal/api/middleware"
	"galactic_pets/internal/app/service"
	"galactic_pets/internal/common"

	"github.com/go-chi/chi/v5"
)

// AdminHandler serves the admin dashboard: pet and user management.
type AdminHandler struct {
	petService  *service.PetService
	userService *service.UserAdminService
}

func NewAdminHandler(petService *service.PetService, userService *service.UserAdminService) *AdminHandler {
	return &AdminHandler{petService: petService, userService: userService}
}

func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)
	r.Use(middleware.AdminOnly)

	r.Get("/alien-pets", h.listPets)
	r.Delete("/alien-pets", h.deletePet)
	r.Get("/users", h.listUsers)
	r.Delete("/users", h.deleteUser)
}

func (h *AdminHandler) listPets(w http.ResponseWriter, r *http.Request) {
	pets, err := h.petService.ListPets(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, pets)
}

func (h *AdminHandler) deletePet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PetID string `json:"petId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.PetID == "" {
		common.RespondWithError(w, http.StatusBadRequest, "Pet ID is required")
		return
	}

	if err := h.petService.DeletePet(r.Context(), req.PetID); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK, "Alien pet deleted successfully")
}

func (h *AdminHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, users)
}

func (h *AdminHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	actorEmail, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.UserID == "" {
		common.RespondWithError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	if err := h.userService.DeleteUser(r.Context(), actorEmail, req.UserID); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK, "User deleted successfully")
}
