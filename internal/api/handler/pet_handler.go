package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"galactic_pets/internal/app/service"
	"galactic_pets/internal/common"

	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type PetHandler struct {
	petService *service.PetService
}

func NewPetHandler(petService *service.PetService) *PetHandler {
	return &PetHandler{petService: petService}
}

func (h *PetHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listPets)         // GET /api/alien-pets
	r.Post("/", h.createPet)       // POST /api/alien-pets (multipart)
	r.Get("/{petID}", h.getPet)    // GET /api/alien-pets/{id}
	r.Put("/{petID}", h.updatePet) // PUT /api/alien-pets/{id}
	r.Delete("/{petID}", h.deletePet)
}

func (h *PetHandler) listPets(w http.ResponseWriter, r *http.Request) {
	pets, err := h.petService.ListPets(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, pets)
}

func (h *PetHandler) getPet(w http.ResponseWriter, r *http.Request) {
	petID := chi.URLParam(r, "petID")
	pet, err := h.petService.GetPet(r.Context(), petID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, pet)
}

func (h *PetHandler) createPet(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	fields := service.PetFields{
		Name:        r.FormValue("name"),
		Species:     r.FormValue("species"),
		Planet:      r.FormValue("planet"),
		Description: r.FormValue("description"),
	}

	var image *service.UploadedImage
	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			common.RespondWithError(w, http.StatusBadRequest, "Failed to read image: "+readErr.Error())
			return
		}
		image = &service.UploadedImage{Filename: header.Filename, Data: data}
	case errors.Is(err, http.ErrMissingFile):
		// Image is optional.
	default:
		common.RespondWithError(w, http.StatusBadRequest, "Invalid image upload: "+err.Error())
		return
	}

	pet, err := h.petService.CreatePet(r.Context(), fields, image)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, pet)
}

func (h *PetHandler) updatePet(w http.ResponseWriter, r *http.Request) {
	petID := chi.URLParam(r, "petID")

	var fields service.PetFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.petService.UpdatePet(r.Context(), petID, fields); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK, "Alien pet updated successfully")
}

func (h *PetHandler) deletePet(w http.ResponseWriter, r *http.Request) {
	petID := chi.URLParam(r, "petID")
	if err := h.petService.DeletePet(r.Context(), petID); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK, "Alien pet deleted successfully")
}
