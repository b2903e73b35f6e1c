package order

import "time"

type OrderType string

const (
	TypeLeasing OrderType = "LEASING"
	TypeRental  OrderType = "RENTAL"
	TypeWashing OrderType = "WASHING"
)

// DeliveryType is only meaningful for leasing orders; the backend calls it
// leasingOrderType inside leasingOrderDetails.
type DeliveryType string

const (
	DeliveryOnly DeliveryType = "DELIVERY"
	PickupOnly   DeliveryType = "PICKUP"
	Both         DeliveryType = "BOTH"
)

func (d DeliveryType) includesPickup() bool {
	return d == PickupOnly || d == Both
}

func (d DeliveryType) includesDelivery() bool {
	return d == DeliveryOnly || d == Both
}

// LineItem is one row of an order's item table. RentalDuration is used by
// rental orders only and serialized as zero elsewhere.
type LineItem struct {
	ProductID      int64  `json:"productId"`
	Quantity       int    `json:"quantity"`
	Remarks        string `json:"remarks"`
	RentalDuration int    `json:"rentalDuration,omitempty"`
}

// Order is the persistable shape: common fields plus exactly one of the
// type-specific detail blocks, selected by OrderType.
type Order struct {
	ID               string          `json:"id,omitempty"`
	OrderReferenceID string          `json:"orderReferenceId"`
	CustomerID       string          `json:"customerId"`
	CustomerName     string          `json:"customerName,omitempty"`
	OrderType        OrderType       `json:"orderType"`
	BranchID         string          `json:"branchId"`
	OrderDate        time.Time       `json:"orderDate"`
	Notes            string          `json:"notes"`
	Status           string          `json:"status,omitempty"`
	Leasing          *LeasingDetails `json:"leasingOrderDetails,omitempty"`
	Rental           *RentalDetails  `json:"rentalOrderDetails,omitempty"`
	Washing          *WashingDetails `json:"washingOrderDetails,omitempty"`
}

// Clone returns a deep copy: the detail block and its item lists are not
// shared with the receiver.
func (o Order) Clone() Order {
	out := o
	switch {
	case o.Leasing != nil:
		l := *o.Leasing
		l.PickupItems = cloneItems(o.Leasing.PickupItems)
		l.DeliveryItems = cloneItems(o.Leasing.DeliveryItems)
		out.Leasing = &l
	case o.Rental != nil:
		r := *o.Rental
		r.Items = cloneItems(o.Rental.Items)
		out.Rental = &r
	case o.Washing != nil:
		w := *o.Washing
		w.Items = cloneItems(o.Washing.Items)
		out.Washing = &w
	}
	return out
}

type LeasingDetails struct {
	LeasingOrderType DeliveryType `json:"leasingOrderType"`
	PickupDate       *time.Time   `json:"pickupDate"`
	DeliveryDate     *time.Time   `json:"deliveryDate"`
	PickupItems      []LineItem   `json:"pickupItems"`
	DeliveryItems    []LineItem   `json:"deliveryItems"`
}

type RentalDetails struct {
	DeliveryDate *time.Time `json:"deliveryDate"`
	Items        []LineItem `json:"items"`
}

type WashingDetails struct {
	PickupDate   *time.Time `json:"pickupDate"`
	DeliveryDate *time.Time `json:"deliveryDate"`
	Items        []LineItem `json:"items"`
}

// ReservedProduct is what the product service returns for a customer's
// reserved assortment; it seeds leasing delivery items.
type ReservedProduct struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SearchFilter mirrors the POST /api/orders/search request body. Nil and
// empty fields are not applied.
type SearchFilter struct {
	StartDate  *time.Time `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
	Status     string     `json:"status,omitempty"`
	OrderType  OrderType  `json:"orderType,omitempty"`
	CustomerID string     `json:"customerId,omitempty"`
	BranchID   string     `json:"branchId,omitempty"`
}
