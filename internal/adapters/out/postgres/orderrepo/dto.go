// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository side of the order aggregate:
// the order row, its line items, the append-only tracking log, and the issue
// reports, all written within the surrounding unit of work's transaction.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column backs the optimistic-concurrency guard on updates; the
// number column carries a unique index because it is the customer-facing
// lookup key.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number     string     `gorm:"uniqueIndex"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index"`
	AgentID    *uuid.UUID `gorm:"type:uuid;index;column:delivery_agent_id"`

	TotalAmount float64
	DeliveryFee float64
	FinalAmount float64

	PaymentMethod string
	PaymentStatus string

	Street    string
	City      string
	Latitude  *float64
	Longitude *float64

	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time

	Status string `gorm:"index"`

	CancellationReason string
	RefundAmount       *float64
	ProofOfDelivery    *string

	CustomerNote string
	SellerNote   string
	AgentNote    string
	AdminNote    string

	Urgent  bool
	Version int

	Items    []ItemDTO          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Tracking []TrackingEventDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Issues   []IssueDTO         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line item. Line items are immutable after
// creation, so the composite primary key doubles as the write-once guard.
type ItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID  uuid.UUID `gorm:"type:uuid;index"`
	Quantity  int
	UnitPrice float64
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// TrackingEventDTO represents one entry of the order's tracking log.
// Sequence preserves insertion order; rows are insert-only.
type TrackingEventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Sequence  int
	Status    string
	Message   string
	Location  *string
	Timestamp time.Time
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// IssueDTO represents one issue report attached to an order.
type IssueDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	IssueType   string
	Description string
	ReportedBy  uuid.UUID `gorm:"type:uuid"`
	ReportedAt  time.Time
	Open        bool
}

// TableName specifies the database table name for order issues.
func (IssueDTO) TableName() string {
	return "order_issues"
}

// fromDomain converts an order domain aggregate to its database representation.
// The stored version is the version the aggregate was loaded with; the
// repository bumps it atomically on update.
func fromDomain(aggregate *order.Order) OrderDTO {
	var agentID *uuid.UUID
	if id := aggregate.DeliveryAgent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	notes := aggregate.Notes()

	dto := OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		Number:                aggregate.Number().String(),
		CustomerID:            aggregate.CustomerID().Bytes(),
		AgentID:               agentID,
		TotalAmount:           aggregate.TotalAmount(),
		DeliveryFee:           aggregate.DeliveryFee(),
		FinalAmount:           aggregate.FinalAmount(),
		PaymentMethod:         aggregate.PaymentMethod().String(),
		PaymentStatus:         aggregate.PaymentStatus().String(),
		Street:                aggregate.Address().Street(),
		City:                  aggregate.Address().City().String(),
		Latitude:              aggregate.Address().Latitude(),
		Longitude:             aggregate.Address().Longitude(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		ActualDeliveryTime:    aggregate.ActualDeliveryTime(),
		Status:                aggregate.Status().String(),
		CancellationReason:    aggregate.CancellationReason(),
		RefundAmount:          aggregate.RefundAmount(),
		ProofOfDelivery:       aggregate.ProofOfDelivery(),
		CustomerNote:          notes[kernel.RoleCustomer],
		SellerNote:            notes[kernel.RoleSeller],
		AgentNote:             notes[kernel.RoleDeliveryAgent],
		AdminNote:             notes[kernel.RoleAdmin],
		Urgent:                aggregate.Urgent(),
		Version:               aggregate.Version(),
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			OrderID:   dto.ID,
			ProductID: item.ProductID().Bytes(),
			SellerID:  item.SellerID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	for i, event := range aggregate.Tracking() {
		dto.Tracking = append(dto.Tracking, TrackingEventDTO{
			ID:        event.ID().Bytes(),
			OrderID:   dto.ID,
			Sequence:  i,
			Status:    event.Status().String(),
			Message:   event.Message(),
			Location:  event.Location(),
			Timestamp: event.Timestamp(),
		})
	}

	for _, issue := range aggregate.Issues() {
		dto.Issues = append(dto.Issues, IssueDTO{
			ID:          issue.ID().Bytes(),
			OrderID:     dto.ID,
			IssueType:   issue.Type(),
			Description: issue.Description(),
			ReportedBy:  issue.ReportedBy().Bytes(),
			ReportedAt:  issue.ReportedAt(),
			Open:        issue.Open(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the tracking log and issues
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := kernel.OrderNumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &aID
	}

	city, err := kernel.NewCity(dto.City)
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(dto.Street, city, dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.NewPaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	items, err := itemsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	tracking, err := trackingToDomain(dto.Tracking)
	if err != nil {
		return nil, err
	}

	issues, err := issuesToDomain(dto.Issues)
	if err != nil {
		return nil, err
	}

	notes := make(map[kernel.Role]string)
	for role, note := range map[kernel.Role]string{
		kernel.RoleCustomer:      dto.CustomerNote,
		kernel.RoleSeller:        dto.SellerNote,
		kernel.RoleDeliveryAgent: dto.AgentNote,
		kernel.RoleAdmin:         dto.AdminNote,
	} {
		if note != "" {
			notes[role] = note
		}
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                    id,
		Number:                number,
		CustomerID:            customerID,
		Items:                 items,
		PaymentMethod:         paymentMethod,
		PaymentStatus:         order.PaymentStatus(dto.PaymentStatus),
		Address:               address,
		DeliveryAgentID:       agentID,
		EstimatedDeliveryTime: dto.EstimatedDeliveryTime,
		ActualDeliveryTime:    dto.ActualDeliveryTime,
		Status:                status,
		Tracking:              tracking,
		Issues:                issues,
		Notes:                 notes,
		CancellationReason:    dto.CancellationReason,
		RefundAmount:          dto.RefundAmount,
		ProofOfDelivery:       dto.ProofOfDelivery,
		Urgent:                dto.Urgent,
		Version:               dto.Version,
	})
}

func itemsToDomain(dtos []ItemDTO) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
		if err != nil {
			return nil, err
		}
		sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
		if err != nil {
			return nil, err
		}

		item, err := order.NewLineItem(productID, sellerID, dto.Quantity, dto.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func trackingToDomain(dtos []TrackingEventDTO) ([]order.TrackingEvent, error) {
	events := make([]order.TrackingEvent, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		status, err := order.ParseStatus(dto.Status)
		if err != nil {
			return nil, err
		}

		event, err := order.RestoreTrackingEvent(id, status, dto.Message, dto.Timestamp, dto.Location)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func issuesToDomain(dtos []IssueDTO) ([]order.Issue, error) {
	issues := make([]order.Issue, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		reportedBy, err := kernel.UUIDFromBytes(dto.ReportedBy[:])
		if err != nil {
			return nil, err
		}

		issue, err := order.RestoreIssue(id, dto.IssueType, dto.Description, reportedBy, dto.ReportedAt, dto.Open)
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}
	return issues, nil
}
