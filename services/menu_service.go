package services

import (
	"errors"
	"fmt"

	"cerocafe-backend/entity"
	"cerocafe-backend/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.DishRepository
}

func NewMenuService(repo *repository.DishRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List(includeUnavailable bool) ([]entity.Dish, error) {
	return s.Repo.List(!includeUnavailable)
}

func (s *MenuService) Create(d *entity.Dish, actor Actor) error {
	if err := RequireStaff(actor); err != nil {
		return err
	}
	if d.Name == "" || d.Price <= 0 {
		return fmt.Errorf("%w: dish needs a name and a positive price", ErrValidationFailed)
	}
	return s.Repo.Create(d)
}

func (s *MenuService) Update(id uint, updates map[string]any, actor Actor) error {
	if err := RequireStaff(actor); err != nil {
		return err
	}
	if _, err := s.Repo.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDishNotFound
		}
		return err
	}
	return s.Repo.Update(id, updates)
}
