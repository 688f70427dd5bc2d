package service

import (
	"context"
	"fmt"
	"log"

	"galactic_pets/internal/common"
	"galactic_pets/internal/domain/model"
	"galactic_pets/internal/domain/repository"
	"galactic_pets/internal/platform/storage"

	"github.com/google/uuid"
)

type PetService struct {
	petRepo repository.PetRepository
	images  storage.ImageStore
}

func NewPetService(petRepo repository.PetRepository, images storage.ImageStore) *PetService {
	return &PetService{petRepo: petRepo, images: images}
}

type PetFields struct {
	Name        string `json:"name"`
	Species     string `json:"species"`
	Planet      string `json:"planet"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// UploadedImage carries the bytes of an optional multipart image upload.
type UploadedImage struct {
	Filename string
	Data     []byte
}

func (f PetFields) validate() error {
	if f.Name == "" || f.Species == "" || f.Planet == "" || f.Description == "" {
		return fmt.Errorf("name, species, planet and description are required: %w", common.ErrValidation)
	}
	return nil
}

func (s *PetService) ListPets(ctx context.Context) ([]model.AlienPet, error) {
	return s.petRepo.List(ctx)
}

func (s *PetService) GetPet(ctx context.Context, id string) (*model.AlienPet, error) {
	return s.petRepo.FindByID(ctx, id)
}

// CreatePet stores the optional image first, then inserts the listing. If the
// insert fails the already-written file is left behind as an orphan; this is
// logged rather than rolled back.
func (s *PetService) CreatePet(ctx context.Context, fields PetFields, image *UploadedImage) (*model.AlienPet, error) {
	if err := fields.validate(); err != nil {
		return nil, err
	}

	imageURL := ""
	if image != nil {
		url, err := s.images.Save(image.Filename, image.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to store image: %w", err)
		}
		imageURL = url
	}

	pet := &model.AlienPet{
		ID:          uuid.NewString(),
		Name:        fields.Name,
		Species:     fields.Species,
		Planet:      fields.Planet,
		Description: fields.Description,
		ImageURL:    imageURL,
	}

	if err := s.petRepo.Create(ctx, pet); err != nil {
		if imageURL != "" {
			log.Printf("pet insert failed after image write, orphaned file at %s", imageURL)
		}
		return nil, err
	}
	return pet, nil
}

// UpdatePet replaces every mutable field of the listing.
func (s *PetService) UpdatePet(ctx context.Context, id string, fields PetFields) error {
	if err := fields.validate(); err != nil {
		return err
	}
	pet := &model.AlienPet{
		ID:          id,
		Name:        fields.Name,
		Species:     fields.Species,
		Planet:      fields.Planet,
		Description: fields.Description,
		ImageURL:    fields.ImageURL,
	}
	return s.petRepo.Update(ctx, pet)
}

func (s *PetService) DeletePet(ctx context.Context, id string) error {
	return s.petRepo.Delete(ctx, id)
}
