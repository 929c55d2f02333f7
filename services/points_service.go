package services

import (
	"errors"
	"fmt"

	"cerocafe-backend/entity"
	"cerocafe-backend/repository"

	"gorm.io/gorm"
)

// maxApplyAttempts bounds the compare-and-set retry loop. Each miss means
// some other apply committed in between, so the bound is only ever reached
// under sustained contention on one account.
const maxApplyAttempts = 25

type PointsService struct {
	DB   *gorm.DB
	Repo *repository.UserRepository
}

func NewPointsService(db *gorm.DB, repo *repository.UserRepository) *PointsService {
	return &PointsService{DB: db, Repo: repo}
}

type ApplyResult struct {
	AccountID       uint  `json:"-"`
	PreviousBalance int64 `json:"previousBalance"`
	NewBalance      int64 `json:"newBalance"`
}

// ApplyPoints mutates an account balance and appends the matching ledger
// entry as one transaction. The balance write is guarded on the value read,
// so two concurrent applies can never both base themselves on the same
// balance; the loser re-reads and retries.
func (s *PointsService) ApplyPoints(dni string, amount int64, direction entity.Direction, actor Actor) (*ApplyResult, error) {
	if err := RequireStaff(actor); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if direction != entity.DirectionAdd && direction != entity.DirectionSubtract {
		return nil, fmt.Errorf("%w: unknown direction %q", ErrValidationFailed, direction)
	}

	for attempt := 0; attempt < maxApplyAttempts; attempt++ {
		u, err := s.Repo.FindByDni(dni)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAccountNotFound
			}
			return nil, err
		}

		before := u.BalancePoints
		var after int64
		if direction == entity.DirectionAdd {
			after = before + amount
		} else {
			after = before - amount
			if after < 0 {
				return nil, ErrInsufficientBalance
			}
		}

		var applied bool
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			ok, err := s.Repo.UpdateBalanceGuard(tx, u.ID, before, after)
			if err != nil {
				return err
			}
			if !ok {
				// lost the race; retry with a fresh read
				return nil
			}
			entry := entity.PointTransaction{
				UserID:        u.ID,
				ActorID:       actor.ID,
				ActorName:     actor.Name,
				ActorRole:     actor.Role,
				Points:        amount,
				Direction:     direction,
				BalanceBefore: before,
				BalanceAfter:  after,
			}
			if err := s.Repo.CreateTransaction(tx, &entry); err != nil {
				return err
			}
			applied = true
			return nil
		})
		if err != nil {
			return nil, err
		}
		if applied {
			return &ApplyResult{AccountID: u.ID, PreviousBalance: before, NewBalance: after}, nil
		}
	}
	return nil, fmt.Errorf("apply points: balance contention on account %s, gave up after %d attempts", dni, maxApplyAttempts)
}

// History returns the newest ledger entries for an account.
func (s *PointsService) History(dni string, limit int) ([]entity.PointTransaction, error) {
	u, err := s.Repo.FindByDni(dni)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return s.Repo.ListTransactions(u.ID, limit)
}

const (
	MetricBalance      = "balance"
	MetricTransactions = "transactions"
)

func (s *PointsService) Leaderboard(topN int, metric string) ([]repository.LeaderboardRow, error) {
	if metric == MetricTransactions {
		return s.Repo.TopByTransactionCount(topN)
	}
	return s.Repo.TopByBalance(topN)
}
