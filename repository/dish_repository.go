package repository

import (
	"cerocafe-backend/entity"

	"gorm.io/gorm"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

func (r *DishRepository) List(onlyAvailable bool) ([]entity.Dish, error) {
	db := r.DB.Order("category, name")
	if onlyAvailable {
		db = db.Where("available = ?", true)
	}
	var out []entity.Dish
	err := db.Find(&out).Error
	return out, err
}

func (r *DishRepository) Get(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) Create(d *entity.Dish) error {
	return r.DB.Create(d).Error
}

func (r *DishRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Dish{}).Where("id = ?", id).Updates(updates).Error
}
