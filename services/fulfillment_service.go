package services

import (
	"context"
	"fmt"

	"cerocafe-backend/entity"
)

// OrderPrinter is the slice of the print service the coordinator needs.
type OrderPrinter interface {
	PrintOrder(ctx context.Context, o *entity.Order) error
}

// FulfillmentService is the staff-facing side of the lifecycle: confirm
// (which requires a kitchen print), reprint, and the later progressions.
type FulfillmentService struct {
	Orders  *OrderService
	Printer OrderPrinter
}

func NewFulfillmentService(orders *OrderService, printer OrderPrinter) *FulfillmentService {
	return &FulfillmentService{Orders: orders, Printer: printer}
}

// ConfirmAndPrint sends the order to the kitchen printer and only then
// confirms it. A confirmed order has always been printed: if the printer
// is down the order stays where it was and the caller gets
// ErrPrintUnavailable.
func (s *FulfillmentService) ConfirmAndPrint(ctx context.Context, orderID uint, actor Actor) (*entity.Order, error) {
	if err := RequireStaff(actor); err != nil {
		return nil, err
	}
	o, err := s.Orders.Get(orderID)
	if err != nil {
		return nil, err
	}
	if err := s.Printer.PrintOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrintUnavailable, err)
	}
	return s.Orders.Transition(orderID, entity.StatusConfirmed)
}

// Reprint resends the ticket without touching the order. Safe to retry.
func (s *FulfillmentService) Reprint(ctx context.Context, orderID uint, actor Actor) error {
	if err := RequireStaff(actor); err != nil {
		return err
	}
	o, err := s.Orders.Get(orderID)
	if err != nil {
		return err
	}
	if err := s.Printer.PrintOrder(ctx, o); err != nil {
		return fmt.Errorf("%w: %v", ErrPrintUnavailable, err)
	}
	return nil
}

// Advance moves an order along the post-confirmation stages, which need no
// printing.
func (s *FulfillmentService) Advance(orderID uint, newStatus entity.OrderStatus, actor Actor) (*entity.Order, error) {
	if err := RequireStaff(actor); err != nil {
		return nil, err
	}
	return s.Orders.Transition(orderID, newStatus)
}
