package services

import (
	"testing"

	"cerocafe-backend/entity"
	"cerocafe-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuService(t *testing.T) (*MenuService, *repository.DishRepository) {
	db := openTestDB(t)
	repo := repository.NewDishRepository(db)
	return NewMenuService(repo), repo
}

func TestMenuUpdate(t *testing.T) {
	svc, repo := newMenuService(t)

	d := entity.Dish{Name: "Latte", Price: 350, Category: "coffee", Available: true}
	require.NoError(t, svc.Create(&d, staffActor))

	require.NoError(t, svc.Update(d.ID, map[string]any{"price": 400}, staffActor))
	got, err := repo.Get(d.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(400), got.Price)
}

func TestMenuUpdate_UnknownDish(t *testing.T) {
	svc, _ := newMenuService(t)

	err := svc.Update(4242, map[string]any{"price": 400}, staffActor)
	assert.ErrorIs(t, err, ErrDishNotFound)
}

func TestMenuCreate_Validation(t *testing.T) {
	svc, _ := newMenuService(t)

	err := svc.Create(&entity.Dish{Name: "", Price: 100}, staffActor)
	assert.ErrorIs(t, err, ErrValidationFailed)

	err = svc.Create(&entity.Dish{Name: "Latte", Price: 0}, staffActor)
	assert.ErrorIs(t, err, ErrValidationFailed)

	customer := Actor{ID: 2, Name: "Ana", Role: entity.RoleCustomer}
	err = svc.Create(&entity.Dish{Name: "Latte", Price: 100}, customer)
	assert.ErrorIs(t, err, ErrForbidden)
}
