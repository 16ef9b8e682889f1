package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPendingPayment  OrderStatus = "PENDING_PAYMENT"
	OrderStatusPendingApproval OrderStatus = "PENDING_APPROVAL"
	OrderStatusApproved        OrderStatus = "APPROVED"
	OrderStatusRejected        OrderStatus = "REJECTED"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// UserGuest marks orders submitted without an authenticated session.
const UserGuest = "guest"

var (
	taxRate      = decimal.MustParse("0.08")
	flatShipping = decimal.MustParse("9.90")
)

type Order struct {
	ID                    uuid.UUID
	Number                string
	UserID                string
	Status                OrderStatus
	RequiresOwnerApproval bool
	OwnerApproved         bool
	OwnerRejected         bool
	OwnerApprovalNotes    string
	OwnerRejectionNotes   string
	ApprovalNotes         string
	PaymentStatus         PaymentStatus
	OwnerEmail            string
	Items                 []OrderItem
	ShippingAddress       Address
	BillingAddress        Address
	Subtotal              decimal.Decimal
	Tax                   decimal.Decimal
	Shipping              decimal.Decimal
	Total                 decimal.Decimal
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// OwnerStagePending reports whether the order still waits for the owner decision.
func (o *Order) OwnerStagePending() bool {
	return o.RequiresOwnerApproval && !o.OwnerApproved && !o.OwnerRejected
}

// Editable reports whether items and addresses may still be mutated in place.
func (o *Order) Editable() bool {
	return o.Status == OrderStatusPendingApproval
}

// Resubmittable reports whether the rejected-order edit window applies.
func (o *Order) Resubmittable() bool {
	return o.Status == OrderStatusRejected
}

// OwnerApprove records the owner stage approval. The owner stage must exist
// and must not be decided yet.
func (o *Order) OwnerApprove(notes string) error {
	if !o.RequiresOwnerApproval {
		return ErrForbidden
	}
	if o.OwnerApproved || o.OwnerRejected || o.Status != OrderStatusPendingApproval {
		return ErrAlreadyDecided
	}

	o.OwnerApproved = true
	o.OwnerApprovalNotes = notes
	return nil
}

// OwnerReject records the owner stage rejection. Terminal for this submission:
// the order never reaches the admin stage.
func (o *Order) OwnerReject(notes string) error {
	if !o.RequiresOwnerApproval {
		return ErrForbidden
	}
	if o.OwnerApproved || o.OwnerRejected || o.Status != OrderStatusPendingApproval {
		return ErrAlreadyDecided
	}
	if notes == "" {
		return ErrMissingRejectionReason
	}

	o.OwnerRejected = true
	o.OwnerRejectionNotes = notes
	o.Status = OrderStatusRejected
	return nil
}

// AdminApprove moves the order to APPROVED and opens the payment window.
// Only allowed once the owner stage (when required) has approved.
func (o *Order) AdminApprove(notes string) error {
	if o.Status != OrderStatusPendingApproval {
		return ErrAlreadyDecided
	}
	if o.OwnerStagePending() {
		return ErrForbidden
	}

	o.Status = OrderStatusApproved
	o.PaymentStatus = PaymentStatusPending
	o.ApprovalNotes = notes
	return nil
}

// AdminReject moves the order to REJECTED with a mandatory reason.
func (o *Order) AdminReject(notes string) error {
	if o.Status != OrderStatusPendingApproval {
		return ErrAlreadyDecided
	}
	if o.OwnerStagePending() {
		return ErrForbidden
	}
	if notes == "" {
		return ErrMissingRejectionReason
	}

	o.Status = OrderStatusRejected
	o.ApprovalNotes = notes
	return nil
}

// Payable reports whether a payment attempt is allowed right now.
// A FAILED attempt may be retried; PAID is final.
func (o *Order) Payable() bool {
	return o.Status == OrderStatusApproved && o.PaymentStatus != PaymentStatusPaid
}

func (o *Order) MarkPaid() error {
	if !o.Payable() {
		return ErrOrderNotPayable
	}
	o.PaymentStatus = PaymentStatusPaid
	return nil
}

func (o *Order) MarkPaymentFailed() error {
	if !o.Payable() {
		return ErrOrderNotPayable
	}
	o.PaymentStatus = PaymentStatusFailed
	return nil
}

// AddItem appends a line for the product, merging quantity into an existing
// line of the same product. Price is snapshotted from the catalog at add time.
func (o *Order) AddItem(product Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	for i := range o.Items {
		if o.Items[i].ProductID == product.ID {
			o.Items[i].Quantity += quantity
			return o.RecomputeTotals()
		}
	}

	o.Items = append(o.Items, OrderItem{
		ID:        uuid.New(),
		ProductID: product.ID,
		Title:     product.Title,
		ImageURL:  product.ImageURL,
		Quantity:  quantity,
		Price:     product.Price,
	})
	return o.RecomputeTotals()
}

func (o *Order) SetItemQuantity(itemID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	for i := range o.Items {
		if o.Items[i].ID == itemID {
			o.Items[i].Quantity = quantity
			return o.RecomputeTotals()
		}
	}
	return ErrDataNotFound
}

func (o *Order) RemoveItem(itemID uuid.UUID) error {
	for i := range o.Items {
		if o.Items[i].ID != itemID {
			continue
		}
		if len(o.Items) == 1 {
			return ErrLastItem
		}
		o.Items = append(o.Items[:i], o.Items[i+1:]...)
		return o.RecomputeTotals()
	}
	return ErrDataNotFound
}

// ReplaceItems swaps the whole item list, keeping insertion order of the new
// list. Used by the rejected-order edit window.
func (o *Order) ReplaceItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrEmptyOrder
	}
	o.Items = items
	return o.RecomputeTotals()
}

// RecomputeTotals derives subtotal, tax, shipping and total from the current
// item list. Runs after every item mutation; clients never supply totals.
func (o *Order) RecomputeTotals() error {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		line, err := item.LineTotal()
		if err != nil {
			return fmt.Errorf("math error:%w", err)
		}
		subtotal, err = subtotal.Add(line)
		if err != nil {
			return fmt.Errorf("math error:%w", err)
		}
	}

	tax, err := subtotal.Mul(taxRate)
	if err != nil {
		return fmt.Errorf("math error:%w", err)
	}
	tax = tax.Round(2)

	shipping := decimal.Zero
	if len(o.Items) > 0 {
		shipping = flatShipping
	}

	total, err := subtotal.Add(tax)
	if err != nil {
		return fmt.Errorf("math error:%w", err)
	}
	total, err = total.Add(shipping)
	if err != nil {
		return fmt.Errorf("math error:%w", err)
	}

	o.Subtotal = subtotal
	o.Tax = tax
	o.Shipping = shipping
	o.Total = total
	return nil
}
