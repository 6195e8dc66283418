package domain

type OrderStatus string

const (
	StatusPending        OrderStatus = "Pending"
	StatusPreparing      OrderStatus = "Preparing"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

// statusPipeline is the fixed forward sequence an order moves through.
// Cancelled sits outside the pipeline and is reachable only while the
// order is still Pending or Preparing.
var statusPipeline = []OrderStatus{
	StatusPending,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
}

// Next returns the following pipeline status and true, or the current
// status and false when there is no forward transition.
func (s OrderStatus) Next() (OrderStatus, bool) {
	for i, step := range statusPipeline {
		if step == s && i+1 < len(statusPipeline) {
			return statusPipeline[i+1], true
		}
	}
	return s, false
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s OrderStatus) Cancellable() bool {
	return s == StatusPending || s == StatusPreparing
}

// CancelReasons is the fixed list offered to the user when cancelling.
var CancelReasons = []string{
	"Changed my mind",
	"Wait time is too long",
	"Incorrect items in cart",
	"Found better price elsewhere",
	"Accidental order",
}
