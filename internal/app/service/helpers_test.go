package service

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"galactic_pets/internal/common"
	"galactic_pets/internal/common/security"
	"galactic_pets/internal/domain/model"
	"galactic_pets/internal/platform/config"
)

func initTestJWT(t *testing.T) {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTKey: []byte("test-signing-secret"),
		JWTExp: time.Hour,
	}
	security.InitJWT()
}

// fakeUserRepo is an in-memory repository.UserRepository.
type fakeUserRepo struct {
	users map[string]*model.User // keyed by id
	err   error                  // forced error for every call, when set
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return fmt.Errorf("user with given email already exists: %w", common.ErrAlreadyExists)
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	users := []model.User{}
	for _, u := range f.users {
		cp := *u
		cp.HashedPassword = ""
		users = append(users, cp)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

// fakePetRepo is an in-memory repository.PetRepository.
type fakePetRepo struct {
	pets map[string]*model.AlienPet
	err  error
}

func newFakePetRepo() *fakePetRepo {
	return &fakePetRepo{pets: map[string]*model.AlienPet{}}
}

func (f *fakePetRepo) Create(ctx context.Context, pet *model.AlienPet) error {
	if f.err != nil {
		return f.err
	}
	pet.CreatedAt = time.Now()
	pet.UpdatedAt = pet.CreatedAt
	stored := *pet
	f.pets[pet.ID] = &stored
	return nil
}

func (f *fakePetRepo) FindByID(ctx context.Context, id string) (*model.AlienPet, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.pets[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePetRepo) List(ctx context.Context) ([]model.AlienPet, error) {
	if f.err != nil {
		return nil, f.err
	}
	pets := []model.AlienPet{}
	for _, p := range f.pets {
		pets = append(pets, *p)
	}
	sort.Slice(pets, func(i, j int) bool { return pets[i].CreatedAt.After(pets[j].CreatedAt) })
	return pets, nil
}

func (f *fakePetRepo) Update(ctx context.Context, pet *model.AlienPet) error {
	if f.err != nil {
		return f.err
	}
	existing, ok := f.pets[pet.ID]
	if !ok {
		return common.ErrNotFound
	}
	existing.Name = pet.Name
	existing.Species = pet.Species
	existing.Planet = pet.Planet
	existing.Description = pet.Description
	existing.ImageURL = pet.ImageURL
	existing.UpdatedAt = time.Now()
	return nil
}

func (f *fakePetRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.pets[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.pets, id)
	return nil
}
