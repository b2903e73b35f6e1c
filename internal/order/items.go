package order

import "fmt"

// ItemList names one of the draft's item collections.
type ItemList string

const (
	ListPickup   ItemList = "pickupItems"
	ListDelivery ItemList = "deliveryItems"
	ListFlat     ItemList = "items"
)

func (d *Draft) list(l ItemList) (*[]LineItem, error) {
	switch l {
	case ListPickup:
		return &d.PickupItems, nil
	case ListDelivery:
		return &d.DeliveryItems, nil
	case ListFlat:
		return &d.Items, nil
	default:
		return nil, fmt.Errorf("unknown item list %q", l)
	}
}

// AddItem appends a blank row: no product, quantity 1, empty remarks.
func (d *Draft) AddItem(l ItemList) error {
	items, err := d.list(l)
	if err != nil {
		return err
	}
	d.touch(l)
	*items = append(*items, LineItem{Quantity: 1})
	return nil
}

// UpdateItem applies a field edit to the item at index. Edits keep the
// list order; only the touched row changes.
func (d *Draft) UpdateItem(l ItemList, index int, apply func(*LineItem)) error {
	items, err := d.list(l)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(*items) {
		return fmt.Errorf("item index %d out of range for %s", index, l)
	}
	d.touch(l)
	apply(&(*items)[index])
	return nil
}

// RemoveItem deletes the item at index, shifting the remainder down so
// display order is preserved.
func (d *Draft) RemoveItem(l ItemList, index int) error {
	items, err := d.list(l)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(*items) {
		return fmt.Errorf("item index %d out of range for %s", index, l)
	}
	d.touch(l)
	*items = append((*items)[:index], (*items)[index+1:]...)
	return nil
}

// touch invalidates the copy-delivery-to-pickup flag on any manual pickup
// list mutation. The flag marks the pickup list as a mirror of the
// delivery list; a direct edit breaks that.
func (d *Draft) touch(l ItemList) {
	if l == ListPickup {
		d.copyDeliveryToPickup = false
	}
}

// SetCopyDeliveryToPickup replaces the pickup list with a value copy of
// the delivery list, remarks cleared, when enabled. Disabling leaves the
// pickup list as-is.
func (d *Draft) SetCopyDeliveryToPickup(on bool) {
	d.copyDeliveryToPickup = on
	if !on {
		return
	}

	copied := make([]LineItem, len(d.DeliveryItems))
	for i, item := range d.DeliveryItems {
		item.Remarks = ""
		copied[i] = item
	}
	d.PickupItems = copied
}

// CopyDeliveryToPickup reports whether the pickup list currently mirrors
// the delivery list. While true, pickup editing controls are disabled.
func (d *Draft) CopyDeliveryToPickup() bool {
	return d.copyDeliveryToPickup
}
