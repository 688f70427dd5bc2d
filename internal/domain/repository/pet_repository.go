package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"galactic_pets/internal/common"
	"galactic_pets/internal/domain/model"
)

type PetRepository interface {
	Create(ctx context.Context, pet *model.AlienPet) error
	FindByID(ctx context.Context, id string) (*model.AlienPet, error)
	List(ctx context.Context) ([]model.AlienPet, error)
	Update(ctx context.Context, pet *model.AlienPet) error
	Delete(ctx context.Context, id string) error
}

type pgPetRepository struct {
	db *sql.DB
}

func NewPgPetRepository(db *sql.DB) PetRepository {
	return &pgPetRepository{db: db}
}

// Create inserts the listing and fills in the database-assigned timestamps,
// so the returned document matches a subsequent FindByID.
func (r *pgPetRepository) Create(ctx context.Context, pet *model.AlienPet) error {
	query := `INSERT INTO alien_pets (id, name, species, planet, description, image_url)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, pet.ID, pet.Name, pet.Species, pet.Planet, pet.Description, pet.ImageURL).
		Scan(&pet.CreatedAt, &pet.UpdatedAt)
	if err != nil {
		return fmt.Errorf("pgPetRepository.Create: %w", err)
	}
	return nil
}

func (r *pgPetRepository) FindByID(ctx context.Context, id string) (*model.AlienPet, error) {
	query := `SELECT id, name, species, planet, description, image_url, created_at, updated_at
	          FROM alien_pets WHERE id = $1`
	pet := &model.AlienPet{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&pet.ID, &pet.Name, &pet.Species, &pet.Planet, &pet.Description, &pet.ImageURL, &pet.CreatedAt, &pet.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgPetRepository.FindByID: %w", err)
	}
	return pet, nil
}

func (r *pgPetRepository) List(ctx context.Context) ([]model.AlienPet, error) {
	query := `SELECT id, name, species, planet, description, image_url, created_at, updated_at
	          FROM alien_pets ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgPetRepository.List: %w", err)
	}
	defer rows.Close()

	pets := []model.AlienPet{}
	for rows.Next() {
		var pet model.AlienPet
		if err := rows.Scan(&pet.ID, &pet.Name, &pet.Species, &pet.Planet, &pet.Description, &pet.ImageURL, &pet.CreatedAt, &pet.UpdatedAt); err != nil {
			return nil, fmt.Errorf("pgPetRepository.List scan: %w", err)
		}
		pets = append(pets, pet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgPetRepository.List rows: %w", err)
	}
	return pets, nil
}

// Update replaces every mutable field. The id and creation timestamp never
// change.
func (r *pgPetRepository) Update(ctx context.Context, pet *model.AlienPet) error {
	query := `UPDATE alien_pets SET
	            name = $1, species = $2, planet = $3, description = $4,
	            image_url = $5, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $6`
	result, err := r.db.ExecContext(ctx, query, pet.Name, pet.Species, pet.Planet, pet.Description, pet.ImageURL, pet.ID)
	if err != nil {
		return fmt.Errorf("pgPetRepository.Update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgPetRepository.Update rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgPetRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM alien_pets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgPetRepository.Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgPetRepository.Delete rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
