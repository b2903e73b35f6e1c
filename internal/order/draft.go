package order

import (
	"errors"
	"time"
)

var (
	ErrMissingCustomer  = errors.New("customer is required")
	ErrMissingOrderType = errors.New("order type is required")
)

// Draft is the in-memory state of an order being created or edited. The
// pickup/delivery lists are populated for leasing orders only; rental and
// washing orders use the flat Items list. Which of the two is active is
// decided by OrderType, never both.
type Draft struct {
	ID               string
	OrderReferenceID string
	CustomerID       string
	OrderDate        time.Time
	OrderType        OrderType
	DeliveryType     DeliveryType
	PickupDate       *time.Time
	DeliveryDate     *time.Time
	Notes            string

	PickupItems   []LineItem
	DeliveryItems []LineItem
	Items         []LineItem

	copyDeliveryToPickup bool

	// seededFor remembers which customer selection already triggered the
	// delivery-item auto-seed, so emptying the list does not re-seed.
	seededFor string
}

func NewDraft() *Draft {
	return &Draft{OrderDate: time.Now().UTC()}
}

// Hydrate maps a persisted order into a fresh draft. Missing dates stay
// nil, missing item lists become empty slices.
func Hydrate(o Order) *Draft {
	d := &Draft{
		ID:               o.ID,
		OrderReferenceID: o.OrderReferenceID,
		CustomerID:       o.CustomerID,
		OrderDate:        o.OrderDate,
		OrderType:        o.OrderType,
		Notes:            o.Notes,
	}
	if d.OrderDate.IsZero() {
		d.OrderDate = time.Now().UTC()
	}

	switch o.OrderType {
	case TypeLeasing:
		if o.Leasing != nil {
			d.DeliveryType = o.Leasing.LeasingOrderType
			d.PickupDate = o.Leasing.PickupDate
			d.DeliveryDate = o.Leasing.DeliveryDate
			d.PickupItems = cloneItems(o.Leasing.PickupItems)
			d.DeliveryItems = cloneItems(o.Leasing.DeliveryItems)
		}
	case TypeRental:
		if o.Rental != nil {
			d.DeliveryDate = o.Rental.DeliveryDate
			d.Items = cloneItems(o.Rental.Items)
		}
	case TypeWashing:
		if o.Washing != nil {
			d.PickupDate = o.Washing.PickupDate
			d.DeliveryDate = o.Washing.DeliveryDate
			d.Items = cloneItems(o.Washing.Items)
		}
	}

	if d.PickupItems == nil {
		d.PickupItems = []LineItem{}
	}
	if d.DeliveryItems == nil {
		d.DeliveryItems = []LineItem{}
	}
	if d.Items == nil {
		d.Items = []LineItem{}
	}

	// Edits to an existing order must not trigger the auto-seed.
	d.seededFor = d.CustomerID

	return d
}

// Reset returns the draft to its create-empty state. Called after a
// successful create and on dialog close.
func (d *Draft) Reset() {
	*d = *NewDraft()
}

func (d *Draft) SetCustomer(customerID string) {
	d.CustomerID = customerID
}

func (d *Draft) SetOrderType(t OrderType) {
	d.OrderType = t
}

func (d *Draft) SetDeliveryType(t DeliveryType) {
	d.DeliveryType = t
}

// Visibility reports which form sections the current type selection
// reveals. Hidden sections keep their values; they are simply excluded
// from the payload.
type Visibility struct {
	DeliveryType   bool
	PickupDate     bool
	DeliveryDate   bool
	PickupItems    bool
	DeliveryItems  bool
	Items          bool
	RentalDuration bool
	CopyToggle     bool
}

func (d *Draft) Visible() Visibility {
	var v Visibility
	switch d.OrderType {
	case TypeLeasing:
		v.DeliveryType = true
		if d.DeliveryType.includesPickup() {
			v.PickupDate = true
			v.PickupItems = true
		}
		if d.DeliveryType.includesDelivery() {
			v.DeliveryDate = true
			v.DeliveryItems = true
		}
		v.CopyToggle = d.DeliveryType == Both
	case TypeRental:
		v.DeliveryDate = true
		v.Items = true
		v.RentalDuration = true
	case TypeWashing:
		v.PickupDate = true
		v.DeliveryDate = true
		v.Items = true
	}
	return v
}

// SeedDeliveryItems seeds one delivery item per reserved product at
// quantity zero. It fires at most once per customer selection: the list
// must currently be empty and the current customer must not have been
// seeded before. Reports whether seeding happened.
func (d *Draft) SeedDeliveryItems(products []ReservedProduct) bool {
	if d.CustomerID == "" || d.seededFor == d.CustomerID {
		return false
	}
	if d.OrderType != TypeLeasing || !d.DeliveryType.includesDelivery() {
		return false
	}
	if len(products) == 0 || len(d.DeliveryItems) > 0 {
		return false
	}

	items := make([]LineItem, 0, len(products))
	for _, p := range products {
		items = append(items, LineItem{ProductID: p.ID, Quantity: 0, Remarks: ""})
	}
	d.DeliveryItems = items
	d.seededFor = d.CustomerID
	return true
}

// Payload builds the backend shape: common fields plus the detail block
// matching the order type. The draft keeps values of previously selected
// types around; only the active block is emitted.
func (d *Draft) Payload(branchID string) (Order, error) {
	if d.OrderType == "" {
		return Order{}, ErrMissingOrderType
	}
	if d.CustomerID == "" {
		return Order{}, ErrMissingCustomer
	}

	o := Order{
		ID:               d.ID,
		OrderReferenceID: d.OrderReferenceID,
		CustomerID:       d.CustomerID,
		OrderType:        d.OrderType,
		BranchID:         branchID,
		OrderDate:        d.OrderDate,
		Notes:            d.Notes,
	}

	switch d.OrderType {
	case TypeLeasing:
		o.Leasing = &LeasingDetails{
			LeasingOrderType: d.DeliveryType,
			PickupDate:       d.PickupDate,
			DeliveryDate:     d.DeliveryDate,
			PickupItems:      cloneItems(d.PickupItems),
			DeliveryItems:    cloneItems(d.DeliveryItems),
		}
	case TypeRental:
		o.Rental = &RentalDetails{
			DeliveryDate: d.DeliveryDate,
			Items:        cloneItems(d.Items),
		}
	case TypeWashing:
		o.Washing = &WashingDetails{
			PickupDate:   d.PickupDate,
			DeliveryDate: d.DeliveryDate,
			Items:        cloneItems(d.Items),
		}
	}

	return o, nil
}

// IsEdit reports whether the draft was hydrated from a persisted order and
// should route to the update operation instead of create.
func (d *Draft) IsEdit() bool {
	return d.ID != ""
}

func cloneItems(items []LineItem) []LineItem {
	if items == nil {
		return []LineItem{}
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
