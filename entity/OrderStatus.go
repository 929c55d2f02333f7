package entity

type OrderStatus string

const (
	StatusPending     OrderStatus = "pending"
	StatusPaidPending OrderStatus = "paid_pending"
	StatusConfirmed   OrderStatus = "confirmed"
	StatusPreparing   OrderStatus = "preparing"
	StatusReady       OrderStatus = "ready"
	StatusCompleted   OrderStatus = "completed"
	StatusDelivered   OrderStatus = "delivered"
	StatusCancelled   OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPaidPending, StatusConfirmed, StatusPreparing,
		StatusReady, StatusCompleted, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
