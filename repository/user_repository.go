package repository

import (
	"cerocafe-backend/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// ---------------- Accounts ----------------

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByDni(dni string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("dni = ?", dni).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&cnt).Error
	return cnt, err
}

// ---------------- Balance (ledger store) ----------------

// UpdateBalanceGuard writes the new balance only if the stored one still
// matches what the caller read. Rows affected 0 means a concurrent apply
// won the race and the caller must re-read and retry.
func (r *UserRepository) UpdateBalanceGuard(tx *gorm.DB, userID uint, expected, next int64) (bool, error) {
	res := tx.Model(&entity.User{}).
		Where("id = ? AND balance_points = ?", userID, expected).
		Update("balance_points", next)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *UserRepository) CreateTransaction(tx *gorm.DB, t *entity.PointTransaction) error {
	return tx.Create(t).Error
}

func (r *UserRepository) ListTransactions(userID uint, limit int) ([]entity.PointTransaction, error) {
	if limit <= 0 {
		limit = 50
	} else if limit > 200 {
		limit = 200
	}
	var out []entity.PointTransaction
	err := r.DB.Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// ---------------- Leaderboard ----------------

type LeaderboardRow struct {
	Dni              string `json:"dni"`
	Name             string `json:"name"`
	BalancePoints    int64  `json:"balancePoints"`
	TransactionCount int64  `json:"transactionCount"`
}

func (r *UserRepository) TopByBalance(n int) ([]LeaderboardRow, error) {
	if n <= 0 {
		n = 10
	} else if n > 100 {
		n = 100
	}
	var out []LeaderboardRow
	err := r.DB.Model(&entity.User{}).
		Select("dni, name, balance_points").
		Order("balance_points DESC").Limit(n).
		Scan(&out).Error
	return out, err
}

func (r *UserRepository) TopByTransactionCount(n int) ([]LeaderboardRow, error) {
	if n <= 0 {
		n = 10
	} else if n > 100 {
		n = 100
	}
	var out []LeaderboardRow
	err := r.DB.Table("users AS u").
		Select("u.dni, u.name, u.balance_points, COUNT(t.id) AS transaction_count").
		Joins("JOIN point_transactions t ON t.user_id = u.id").
		Where("u.deleted_at IS NULL").
		Group("u.id").
		Order("transaction_count DESC").Limit(n).
		Scan(&out).Error
	return out, err
}
