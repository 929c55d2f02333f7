package services

import (
	"cerocafe-backend/entity"
)

// allowedTransitions is the whole lifecycle. Anything not listed fails
// with ErrInvalidTransition; completed, delivered and cancelled are
// terminal.
var allowedTransitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.StatusPending:     {entity.StatusConfirmed, entity.StatusCancelled},
	entity.StatusPaidPending: {entity.StatusConfirmed, entity.StatusCancelled},
	entity.StatusConfirmed:   {entity.StatusReady, entity.StatusCancelled},
	entity.StatusReady:       {entity.StatusCompleted, entity.StatusDelivered},
}

func canTransition(from, to entity.OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves an order to newStatus if its persisted state allows it.
// The write is guarded on the status we read, so of two racing transitions
// only one lands; the loser fails like any other invalid transition.
func (s *OrderService) Transition(orderID uint, newStatus entity.OrderStatus) (*entity.Order, error) {
	o, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	if !newStatus.Valid() || !canTransition(o.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	ok, err := s.Repo.UpdateStatusGuard(s.DB, o.ID, o.Status, newStatus)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidTransition
	}
	o.Status = newStatus
	return o, nil
}
