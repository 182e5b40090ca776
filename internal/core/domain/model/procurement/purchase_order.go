package procurement

import (
	"errors"
	"time"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/pkg/errs"
)

// ErrPurchaseOrderIsNotConstructed is returned when a PurchaseOrder instance
// was not created through NewPurchaseOrder or RestorePurchaseOrder.
var ErrPurchaseOrderIsNotConstructed = errors.New(
	"PurchaseOrder must be created via NewPurchaseOrder or RestorePurchaseOrder constructor",
)

// PurchaseOrder is the root of a declaration lineage: it belongs to one ship
// and owns (at most) one DeclarationRequest, which in turn owns one
// Declaration. The aggregate enforces the order's status machine; the
// cross-aggregate cascade is driven by the workflow command handlers.
//
// PurchaseOrder follows these invariants:
//   - Must have a valid unique identifier and owning ship
//   - Order number and title are required; the order number is unique
//   - Status transitions follow the pending -> requested -> completed table
//   - Can only be created through NewPurchaseOrder or RestorePurchaseOrder
type PurchaseOrder struct {
	id              kernel.UUID
	shipID          kernel.UUID
	orderNumber     string
	title           string
	description     string
	itemName        string
	itemDescription string
	quantity        float64
	unit            string
	orderDate       time.Time
	deliveryDate    *time.Time
	status          Status
	createdBy       kernel.UUID
	createdAt       time.Time

	guard kernel.ConstructorGuard
}

// NewPurchaseOrder creates a new PurchaseOrder in pending status.
//
// Parameters:
//   - id: unique identifier for the order
//   - shipID: the ship this order is issued against
//   - orderNumber: unique business order number
//   - title: human-readable order title
//   - orderDate: date the order was placed
//   - createdBy: the user creating the order
func NewPurchaseOrder(
	id, shipID kernel.UUID,
	orderNumber, title string,
	orderDate time.Time,
	createdBy kernel.UUID,
) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		status:    StatusPending,
		orderDate: orderDate,
		createdAt: time.Now().UTC(),
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		po.setID(id),
		po.setShipID(shipID),
		po.setOrderNumber(orderNumber),
		po.setTitle(title),
		po.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return po, nil
}

// RestorePurchaseOrder reconstructs a PurchaseOrder from persistence with an
// already-validated status.
func RestorePurchaseOrder(
	id, shipID kernel.UUID,
	orderNumber, title, description, itemName, itemDescription string,
	quantity float64,
	unit string,
	orderDate time.Time,
	deliveryDate *time.Time,
	status Status,
	createdBy kernel.UUID,
	createdAt time.Time,
) (*PurchaseOrder, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	po, err := NewPurchaseOrder(id, shipID, orderNumber, title, orderDate, createdBy)
	if err != nil {
		return nil, err
	}

	po.description = description
	po.itemName = itemName
	po.itemDescription = itemDescription
	po.quantity = quantity
	po.unit = unit
	po.deliveryDate = deliveryDate
	po.status = status
	po.createdAt = createdAt
	return po, nil
}

// Validate ensures the PurchaseOrder instance was properly constructed.
func (p *PurchaseOrder) Validate() error {
	if p == nil {
		return ErrPurchaseOrderIsNotConstructed
	}
	return p.guard.Validate(ErrPurchaseOrderIsNotConstructed)
}

// IsEqual compares two purchase orders by their unique identifiers.
func (p *PurchaseOrder) IsEqual(other *PurchaseOrder) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (p *PurchaseOrder) ID() kernel.UUID {
	return p.id
}

// ShipID returns the owning ship's identifier.
func (p *PurchaseOrder) ShipID() kernel.UUID {
	return p.shipID
}

// OrderNumber returns the unique business order number.
func (p *PurchaseOrder) OrderNumber() string {
	return p.orderNumber
}

// Title returns the order title.
func (p *PurchaseOrder) Title() string {
	return p.title
}

// Description returns the free-text description, possibly empty.
func (p *PurchaseOrder) Description() string {
	return p.description
}

// ItemName returns the ordered item's name, possibly empty.
func (p *PurchaseOrder) ItemName() string {
	return p.itemName
}

// ItemDescription returns the ordered item's description, possibly empty.
func (p *PurchaseOrder) ItemDescription() string {
	return p.itemDescription
}

// Quantity returns the ordered quantity, 0 if unspecified.
func (p *PurchaseOrder) Quantity() float64 {
	return p.quantity
}

// Unit returns the quantity unit, possibly empty.
func (p *PurchaseOrder) Unit() string {
	return p.unit
}

// OrderDate returns the date the order was placed.
func (p *PurchaseOrder) OrderDate() time.Time {
	return p.orderDate
}

// DeliveryDate returns the agreed delivery date, or nil.
func (p *PurchaseOrder) DeliveryDate() *time.Time {
	return p.deliveryDate
}

// Status returns the current status of the order.
func (p *PurchaseOrder) Status() Status {
	return p.status
}

// CreatedBy returns the id of the user who created the order.
func (p *PurchaseOrder) CreatedBy() kernel.UUID {
	return p.createdBy
}

// CreatedAt returns the record creation time.
func (p *PurchaseOrder) CreatedAt() time.Time {
	return p.createdAt
}

// SetItemDetails updates the optional item fields.
func (p *PurchaseOrder) SetItemDetails(itemName, itemDescription string, quantity float64, unit string) {
	p.itemName = itemName
	p.itemDescription = itemDescription
	p.quantity = quantity
	p.unit = unit
}

// SetDescription updates the free-text description.
func (p *PurchaseOrder) SetDescription(description string) {
	p.description = description
}

// SetDeliveryDate updates the agreed delivery date.
func (p *PurchaseOrder) SetDeliveryDate(deliveryDate *time.Time) {
	p.deliveryDate = deliveryDate
}

// MarkRequested records that a declaration request has been attached and
// moves the order to requested.
//
// Returns a conflict error if the order already left pending.
func (p *PurchaseOrder) MarkRequested() error {
	newStatus, err := p.status.Request()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// MarkCompleted records approval of the linked declaration and moves the
// order to completed, the terminal success state of the lineage.
//
// Returns a conflict error if the order is not in requested status.
func (p *PurchaseOrder) MarkCompleted() error {
	newStatus, err := p.status.Complete()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

func (p *PurchaseOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *PurchaseOrder) setShipID(shipID kernel.UUID) error {
	if err := shipID.Validate(); err != nil {
		return err
	}
	p.shipID = shipID
	return nil
}

func (p *PurchaseOrder) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("order_number")
	}
	p.orderNumber = orderNumber
	return nil
}

func (p *PurchaseOrder) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	p.title = title
	return nil
}

func (p *PurchaseOrder) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	p.createdBy = createdBy
	return nil
}
