package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"galactic_pets/internal/common"
	"galactic_pets/internal/domain/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestPetCreate_FillsTimestamps(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgPetRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO alien_pets")).
		WithArgs("pet-1", "Zorblax", "Floofian", "Nebula IX", "fluffy", "").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	pet := &model.AlienPet{ID: "pet-1", Name: "Zorblax", Species: "Floofian", Planet: "Nebula IX", Description: "fluffy"}
	require.NoError(t, repo.Create(context.Background(), pet))
	assert.Equal(t, now, pet.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetFindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgPetRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, species, planet, description, image_url, created_at, updated_at")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestPetUpdate_ZeroRowsIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgPetRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE alien_pets SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	pet := &model.AlienPet{ID: "missing", Name: "n", Species: "s", Planet: "p", Description: "d"}
	assert.ErrorIs(t, repo.Update(context.Background(), pet), common.ErrNotFound)
}

func TestPetUpdate_OneRowSucceeds(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgPetRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE alien_pets SET")).
		WithArgs("Zorblax2", "Floofian", "Nebula IX", "fluffy", "", "pet-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	pet := &model.AlienPet{ID: "pet-1", Name: "Zorblax2", Species: "Floofian", Planet: "Nebula IX", Description: "fluffy"}
	assert.NoError(t, repo.Update(context.Background(), pet))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetDelete_ZeroRowsIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgPetRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM alien_pets WHERE id = $1")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), common.ErrNotFound)
}

func TestPetList_ScansRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgPetRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "species", "planet", "description", "image_url", "created_at", "updated_at"}).
		AddRow("pet-1", "Zorblax", "Floofian", "Nebula IX", "fluffy", "", now, now).
		AddRow("pet-2", "Grumblor", "Rockmuncher", "Basalt V", "crunchy", "/uploads/grumblor-1.png", now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM alien_pets ORDER BY created_at DESC")).WillReturnRows(rows)

	pets, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, pets, 2)
	assert.Equal(t, "Zorblax", pets[0].Name)
	assert.Equal(t, "/uploads/grumblor-1.png", pets[1].ImageURL)
}
