package services

import (
	"errors"
	"fmt"

	"cerocafe-backend/entity"
	"cerocafe-backend/repository"

	"gorm.io/gorm"
)

// Order numbers come from count+1, so two concurrent creates can collide.
// The unique index on order_number is the real guard; on conflict we just
// regenerate and try again.
const maxNumberAttempts = 5

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

// ----- DTOs from controllers -----

type OrderItemIn struct {
	DishID    uint   `json:"dishId"`
	Name      string `json:"name" binding:"required"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

type CustomerIn struct {
	AccountID *uint  `json:"accountId,omitempty"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
}

type CreateOrderReq struct {
	Items        []OrderItemIn       `json:"items"`
	Total        int64               `json:"total"`
	Customer     CustomerIn          `json:"customer"`
	DeliveryType entity.DeliveryType `json:"deliveryType"`
	Address      string              `json:"address,omitempty"`
}

func (req *CreateOrderReq) Validate() error {
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: items is required", ErrValidationFailed)
	}
	var sum int64
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return fmt.Errorf("%w: item quantity must be >= 1", ErrValidationFailed)
		}
		if it.UnitPrice < 0 {
			return fmt.Errorf("%w: item unitPrice must be >= 0", ErrValidationFailed)
		}
		sum += it.UnitPrice * int64(it.Quantity)
	}
	if req.Total <= 0 {
		return fmt.Errorf("%w: total must be > 0", ErrValidationFailed)
	}
	// points earned derive from the total, so a total that disagrees with
	// the items never reaches the store
	if req.Total != sum {
		return fmt.Errorf("%w: total %d does not match item subtotals %d", ErrValidationFailed, req.Total, sum)
	}
	if req.Customer.Name == "" || req.Customer.Phone == "" {
		return fmt.Errorf("%w: customer name and phone are required", ErrValidationFailed)
	}
	switch req.DeliveryType {
	case entity.DeliveryPickup, entity.DeliveryDelivery:
	default:
		return fmt.Errorf("%w: deliveryType must be pickup or delivery", ErrValidationFailed)
	}
	if req.DeliveryType == entity.DeliveryDelivery && req.Address == "" {
		return fmt.Errorf("%w: address is required for delivery", ErrValidationFailed)
	}
	return nil
}

func (req *CreateOrderReq) toOrder() *entity.Order {
	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entity.OrderItem{
			DishID:    it.DishID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Subtotal:  it.UnitPrice * int64(it.Quantity),
		})
	}
	return &entity.Order{
		Total:         req.Total,
		AccountID:     req.Customer.AccountID,
		CustomerName:  req.Customer.Name,
		CustomerPhone: req.Customer.Phone,
		CustomerEmail: req.Customer.Email,
		DeliveryType:  req.DeliveryType,
		Address:       req.Address,
		Items:         items,
	}
}

// ----- Create -----

// Create persists a direct-checkout order in status pending.
func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.insertNumbered(req, entity.StatusPending, entity.PaymentPending, nil)
}

// MaterializeFromPayment persists the order for an approved gateway payment
// in status paid_pending. Idempotent on paymentID: a second call (or a
// lost insert race) returns the already-stored order.
func (s *OrderService) MaterializeFromPayment(paymentID string, req *CreateOrderReq) (*entity.Order, error) {
	if paymentID == "" {
		return nil, fmt.Errorf("%w: paymentId is required", ErrValidationFailed)
	}
	if existing, err := s.Repo.FindByPaymentID(paymentID); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.insertNumbered(req, entity.StatusPaidPending, entity.PaymentApproved, &paymentID)
}

func (s *OrderService) insertNumbered(req *CreateOrderReq, status entity.OrderStatus, payStatus entity.PaymentStatus, paymentID *string) (*entity.Order, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		count, err := s.Repo.CountOrders()
		if err != nil {
			return nil, err
		}

		o := req.toOrder()
		o.OrderNumber = fmt.Sprintf("ORD-%04d", count+1+int64(attempt))
		o.Status = status
		o.PaymentStatus = payStatus
		o.PaymentID = paymentID

		err = s.DB.Transaction(func(tx *gorm.DB) error {
			return s.Repo.CreateOrder(tx, o)
		})
		if err == nil {
			return o, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		// duplicate key: either our number collided with a concurrent
		// create, or the payment landed twice and the unique payment_id
		// index caught it
		if paymentID != nil {
			if existing, ferr := s.Repo.FindByPaymentID(*paymentID); ferr == nil {
				return existing, nil
			}
		}
	}
	return nil, fmt.Errorf("create order: could not allocate a free order number after %d attempts", maxNumberAttempts)
}

// ----- Queries -----

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) List(status *entity.OrderStatus, limit int) ([]entity.Order, error) {
	if status != nil && *status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidationFailed, *status)
	}
	return s.Repo.ListOrders(status, limit)
}
