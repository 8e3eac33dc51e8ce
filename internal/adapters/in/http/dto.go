package http

import "time"

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	Items         []CreateOrderItemRequest `json:"items"`
	Street        string                   `json:"street"`
	City          string                   `json:"city"`
	Latitude      *float64                 `json:"latitude,omitempty"`
	Longitude     *float64                 `json:"longitude,omitempty"`
	PaymentMethod string                   `json:"paymentMethod,omitempty"`
	Urgent        bool                     `json:"urgent,omitempty"`
}

// CreateOrderItemRequest is one requested product/quantity pair.
type CreateOrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderResponse is the representation of a created order.
type OrderResponse struct {
	ID                    string     `json:"id"`
	Number                string     `json:"number"`
	Status                string     `json:"status"`
	TotalAmount           float64    `json:"totalAmount"`
	DeliveryFee           float64    `json:"deliveryFee"`
	FinalAmount           float64    `json:"finalAmount"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime,omitempty"`
}

// CancelOrderRequest is the body of POST /api/v1/orders/:id/cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// UpdateStatusRequest is the body of PATCH /api/v1/orders/:id/status.
type UpdateStatusRequest struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// DeliveryStatusRequest is the body of PATCH /api/v1/orders/:id/delivery-status.
type DeliveryStatusRequest struct {
	Status   string  `json:"status"`
	Message  string  `json:"message,omitempty"`
	Location *string `json:"location,omitempty"`
}

// CompleteDeliveryRequest is the body of POST /api/v1/orders/:id/complete.
type CompleteDeliveryRequest struct {
	Note            string `json:"note,omitempty"`
	ProofOfDelivery string `json:"proofOfDelivery,omitempty"`
}

// ReportIssueRequest is the body of POST /api/v1/orders/:id/issues.
type ReportIssueRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// TrackingResponse is the public tracking view of an order.
type TrackingResponse struct {
	Number                string                  `json:"number"`
	Status                string                  `json:"status"`
	TotalAmount           float64                 `json:"totalAmount"`
	DeliveryFee           float64                 `json:"deliveryFee"`
	FinalAmount           float64                 `json:"finalAmount"`
	EstimatedDeliveryTime *time.Time              `json:"estimatedDeliveryTime,omitempty"`
	ActualDeliveryTime    *time.Time              `json:"actualDeliveryTime,omitempty"`
	DeliveryAgentID       *string                 `json:"deliveryAgentId,omitempty"`
	Events                []TrackingEventResponse `json:"events"`
}

// TrackingEventResponse is one entry of the tracking history.
type TrackingEventResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Location  *string   `json:"location,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// EarningsResponse is a delivery agent's earnings ledger.
type EarningsResponse struct {
	AgentID             string  `json:"agentId"`
	TotalEarnings       float64 `json:"totalEarnings"`
	DeliveriesCompleted int     `json:"deliveriesCompleted"`
}

// OverdueDeliveryResponse is one delayed delivery.
type OverdueDeliveryResponse struct {
	OrderID               string    `json:"orderId"`
	Number                string    `json:"number"`
	CustomerID            string    `json:"customerId"`
	DeliveryAgentID       *string   `json:"deliveryAgentId,omitempty"`
	EstimatedDeliveryTime time.Time `json:"estimatedDeliveryTime"`
}

// CartRequest is the body of PUT /api/v1/customers/:id/cart.
type CartRequest struct {
	Items []CartItemRequest `json:"items"`
}

// CartItemRequest is one product/quantity pair in a cart.
type CartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
