package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PaymentMethod type
type PaymentMethod string

const (
	// PaymentMethodCash const
	PaymentMethodCash PaymentMethod = "cash"
	// PaymentMethodCard const
	PaymentMethodCard PaymentMethod = "card"
	// PaymentMethodBoth const - customer splits between cash and card
	PaymentMethodBoth PaymentMethod = "both"
)

// PhoneNotFoundSentinel is the extractor's "no phone in this text" marker.
// It must never be accepted as a customer phone number.
const PhoneNotFoundSentinel = "000-000-0000"

// SlotField identifies one field of the order record.
type SlotField string

const (
	// SlotOrderItems const
	SlotOrderItems SlotField = "order_items"
	// SlotUserName const
	SlotUserName SlotField = "user_name"
	// SlotUserPhone const
	SlotUserPhone SlotField = "user_phone"
	// SlotUserEmail const
	SlotUserEmail SlotField = "user_email"
	// SlotPaymentMethod const
	SlotPaymentMethod SlotField = "payment_method"
)

// SlotPriority is the fixed order in which missing fields are requested.
var SlotPriority = []SlotField{
	SlotOrderItems,
	SlotUserName,
	SlotUserPhone,
	SlotUserEmail,
	SlotPaymentMethod,
}

// OrderItemLine is one normalized line of the order. UnitPrice and LineTotal
// are populated during menu normalization; lines that fail normalization are
// dropped, never stored.
type OrderItemLine struct {
	ItemName  string  `json:"item_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// OrderSlots is the partially-filled order record. Unset fields are nil,
// matching the slot-filling flow: extractors set fields one at a time as the
// conversation surfaces them.
type OrderSlots struct {
	OrderItems    map[string]OrderItemLine
	UserName      *string
	UserPhone     *string
	UserEmail     *string
	PaymentMethod *PaymentMethod
	OrderTotal    *float64
}

// Complete reports whether every required slot is filled.
// OrderTotal is excluded: it is derived at verification time.
func (o *OrderSlots) Complete() bool {
	return len(o.OrderItems) > 0 &&
		o.UserName != nil &&
		o.UserPhone != nil &&
		o.UserEmail != nil &&
		o.PaymentMethod != nil
}

// MissingFields returns the unset required fields in prompt priority order.
func (o *OrderSlots) MissingFields() []SlotField {
	var missing []SlotField
	for _, field := range SlotPriority {
		switch field {
		case SlotOrderItems:
			if len(o.OrderItems) == 0 {
				missing = append(missing, field)
			}
		case SlotUserName:
			if o.UserName == nil {
				missing = append(missing, field)
			}
		case SlotUserPhone:
			if o.UserPhone == nil {
				missing = append(missing, field)
			}
		case SlotUserEmail:
			if o.UserEmail == nil {
				missing = append(missing, field)
			}
		case SlotPaymentMethod:
			if o.PaymentMethod == nil {
				missing = append(missing, field)
			}
		}
	}
	return missing
}

// Total sums the line totals of the normalized order items.
func (o *OrderSlots) Total() float64 {
	var total float64
	for _, line := range o.OrderItems {
		total += line.LineTotal
	}
	return total
}

// Empty reports whether nothing has been captured yet.
func (o *OrderSlots) Empty() bool {
	return len(o.OrderItems) == 0 &&
		o.UserName == nil &&
		o.UserPhone == nil &&
		o.UserEmail == nil &&
		o.PaymentMethod == nil
}

// Summary renders the human-readable verification summary presented to the
// customer before submission. Line items are sorted by name so the summary
// is stable across renders.
func (o *OrderSlots) Summary() string {
	var b strings.Builder
	b.WriteString("Here is your order:\n")
	names := make([]string, 0, len(o.OrderItems))
	for name := range o.OrderItems {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		line := o.OrderItems[name]
		fmt.Fprintf(&b, "  %d x %s - $%.2f\n", line.Quantity, line.ItemName, line.LineTotal)
	}
	if o.UserName != nil {
		fmt.Fprintf(&b, "Name: %s\n", *o.UserName)
	}
	if o.UserPhone != nil {
		fmt.Fprintf(&b, "Phone: %s\n", *o.UserPhone)
	}
	if o.UserEmail != nil {
		fmt.Fprintf(&b, "Email: %s\n", *o.UserEmail)
	}
	if o.PaymentMethod != nil {
		fmt.Fprintf(&b, "Payment: %s\n", *o.PaymentMethod)
	}
	if o.OrderTotal != nil {
		fmt.Fprintf(&b, "Total: $%.2f", *o.OrderTotal)
	}
	return b.String()
}

// OrderState type - the slot-filling state machine position
type OrderState string

const (
	// OrderStateEmpty const
	OrderStateEmpty OrderState = "EMPTY"
	// OrderStatePartiallyFilled const
	OrderStatePartiallyFilled OrderState = "PARTIALLY_FILLED"
	// OrderStateComplete const - all slots set, awaiting customer confirmation
	OrderStateComplete OrderState = "COMPLETE"
	// OrderStateVerified const - customer confirmed the summary
	OrderStateVerified OrderState = "VERIFIED"
)

// Order struct - Core domain entity, a submitted order
type Order struct {
	ID            *uuid.UUID  `gorm:"type:uuid;primary_key;"`
	UserName      *string     `gorm:"type:varchar(100);not null;"`
	UserPhone     *string     `gorm:"type:varchar(12);not null;"`
	UserEmail     *string     `gorm:"type:varchar(254);not null;"`
	PaymentMethod *string     `gorm:"type:varchar(4);not null;"`
	OrderTotal    *float64    `gorm:"type:numeric(10,2);not null;"`
	Lines         []OrderLine `gorm:"foreignKey:OrderID"`
	CreatedAt     *time.Time  `gorm:"type:timestamp"`
	UpdatedAt     *time.Time  `gorm:"type:timestamp"`
}

// TableName func
func (o *Order) TableName() string {
	return "orders"
}

// BeforeCreate hook - generates UUID before creating
func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID != nil {
		return nil
	}
	id, err := uuid.NewRandom() // v4
	if err != nil {
		return err
	}
	o.ID = &id
	return nil
}

// OrderLine struct - one persisted line of a submitted order
type OrderLine struct {
	ID        *uuid.UUID `gorm:"type:uuid;primary_key;"`
	OrderID   *uuid.UUID `gorm:"type:uuid;not null;index;"`
	ItemName  *string    `gorm:"type:varchar(100);not null;"`
	Quantity  *int       `gorm:"type:integer;not null;"`
	UnitPrice *float64   `gorm:"type:numeric(10,2);not null;"`
	LineTotal *float64   `gorm:"type:numeric(10,2);not null;"`
}

// TableName func
func (l *OrderLine) TableName() string {
	return "order_lines"
}

// BeforeCreate hook
func (l *OrderLine) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID != nil {
		return nil
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	l.ID = &id
	return nil
}

// NewOrderFromSlots packages completed slots into a persistable order record.
// Callers must have verified completeness; the total is recomputed from the
// line totals rather than trusted from the slots.
func NewOrderFromSlots(slots *OrderSlots) (*Order, error) {
	if !slots.Complete() {
		return nil, ErrOrderIncomplete
	}
	total := slots.Total()
	method := string(*slots.PaymentMethod)
	order := &Order{
		UserName:      slots.UserName,
		UserPhone:     slots.UserPhone,
		UserEmail:     slots.UserEmail,
		PaymentMethod: &method,
		OrderTotal:    &total,
	}
	names := make([]string, 0, len(slots.OrderItems))
	for name := range slots.OrderItems {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		line := slots.OrderItems[name]
		itemName := line.ItemName
		qty := line.Quantity
		unit := line.UnitPrice
		lineTotal := line.LineTotal
		order.Lines = append(order.Lines, OrderLine{
			ItemName:  &itemName,
			Quantity:  &qty,
			UnitPrice: &unit,
			LineTotal: &lineTotal,
		})
	}
	return order, nil
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}

	err := db.AutoMigrate(&Order{}, &OrderLine{}, &MenuRecord{}, &FAQEntry{})
	if err != nil {
		panic(err)
	}
	logrus.Info("Database schema migrated")
}
