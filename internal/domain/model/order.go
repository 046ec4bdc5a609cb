package model

import "time"

// OrderStatus classifies a person's place in the current batch.
type OrderStatus string

const (
	// StatusPending means no draft exists for the person yet.
	StatusPending OrderStatus = "pending"
	// StatusOrdered means the draft selects at least one menu item.
	StatusOrdered OrderStatus = "ordered"
	// StatusNoMeal means a draft exists with every menu field explicitly empty.
	StatusNoMeal OrderStatus = "no-meal"
)

type Starter string

const (
	StarterFruit Starter = "fruit"
	StarterSoup  Starter = "soup"
)

type Drink string

const (
	DrinkJuice    Drink = "juice"
	DrinkLemonade Drink = "lemonade"
)

type MainDish string

const (
	MainDishSpaghetti MainDish = "spaghetti"
	MainDishBeef      MainDish = "beef"
	MainDishChicken   MainDish = "chicken"
)

type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "cash"
	PaymentVoucher PaymentMethod = "voucher"
)

// OrderDraft is one person's in-progress selection. Menu fields are pointers:
// nil means the item was explicitly declined, which is not the same thing as
// the draft not existing at all.
type OrderDraft struct {
	PersonID      string        `json:"person_id"`
	PersonName    string        `json:"person_name"`
	PersonPhoto   string        `json:"person_photo"`
	Starter       *Starter      `json:"fruit_or_soup"`
	Drink         *Drink        `json:"juice_or_lemonade"`
	MainDish      *MainDish     `json:"main_dish"`
	Note          string        `json:"observations"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	OrderDate     string        `json:"order_date"`
}

// HasMeal reports whether at least one menu field is selected.
func (d OrderDraft) HasMeal() bool {
	return d.Starter != nil || d.Drink != nil || d.MainDish != nil
}

// Status derives the draft classification. A draft always exists here, so the
// result is ordered or no-meal; pending applies only to absent drafts and is
// decided by the caller.
func (d OrderDraft) Status() OrderStatus {
	if d.HasMeal() {
		return StatusOrdered
	}
	return StatusNoMeal
}

// OrderRecord is a committed order. Person name and photo are copied in at
// commit time so history stays valid even if the roster changes later.
type OrderRecord struct {
	ID            string
	PersonID      string
	PersonName    string
	PersonPhoto   string
	Starter       *Starter
	Drink         *Drink
	MainDish      *MainDish
	Note          string
	PaymentMethod PaymentMethod
	OrderDate     string
	CreatedAt     time.Time
}

// HasMeal reports whether the record represents an actual lunch rather than a
// "no meal today" entry.
func (r OrderRecord) HasMeal() bool {
	return r.Starter != nil || r.Drink != nil || r.MainDish != nil
}

// DateLayout is the calendar-date wire format used everywhere: order dates,
// report dates, filter bounds and export file names. Lexicographic comparison
// of two such strings matches chronological order.
const DateLayout = "2006-01-02"

// FormatDate renders t as a local calendar date.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(DateLayout)
}

// Today returns the current local calendar date.
func Today() string {
	return FormatDate(time.Now())
}
