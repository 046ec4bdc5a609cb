package dto

// OrderDraftRequest is the PUT body for a person's selection. Absent or null
// menu fields mean the item is declined.
type OrderDraftRequest struct {
	FruitOrSoup     *string `json:"fruit_or_soup"`
	JuiceOrLemonade *string `json:"juice_or_lemonade"`
	MainDish        *string `json:"main_dish"`
	Observations    string  `json:"observations"`
	PaymentMethod   string  `json:"payment_method"`
}

// NoMealRequest optionally overrides the note on a declined-meal entry.
type NoMealRequest struct {
	Observations string `json:"observations"`
}

// OrderDraftResponse echoes a stored draft.
type OrderDraftResponse struct {
	PersonID        string  `json:"person_id"`
	PersonName      string  `json:"person_name"`
	FruitOrSoup     *string `json:"fruit_or_soup"`
	JuiceOrLemonade *string `json:"juice_or_lemonade"`
	MainDish        *string `json:"main_dish"`
	Observations    string  `json:"observations"`
	PaymentMethod   string  `json:"payment_method"`
	OrderDate       string  `json:"order_date"`
	Status          string  `json:"status"`
}

// SummaryOrderResponse is one reviewed order line.
type SummaryOrderResponse struct {
	PersonID      string `json:"person_id"`
	Name          string `json:"name"`
	Menu          string `json:"menu"`
	Observations  string `json:"observations"`
	PaymentMethod string `json:"payment_method"`
	OrderDate     string `json:"order_date"`
}

// PersonStatResponse is one per-person aggregate line.
type PersonStatResponse struct {
	Name     string `json:"name"`
	Count    int    `json:"count"`
	Vouchers int    `json:"vouchers"`
	Cash     int    `json:"cash"`
}

// TotalsResponse carries the aggregate counts of a batch or a history range.
type TotalsResponse struct {
	Total        int                  `json:"total"`
	Cash         int                  `json:"cash"`
	Vouchers     int                  `json:"vouchers"`
	VouchersUsed int                  `json:"vouchers_used"`
	PerPerson    []PersonStatResponse `json:"per_person"`
}

// SummaryResponse is the pre-commit review payload.
type SummaryResponse struct {
	Orders []SummaryOrderResponse `json:"orders"`
	Totals TotalsResponse         `json:"totals"`
}

// CommitResponse reports a successful batch commit.
type CommitResponse struct {
	Records int            `json:"records"`
	Report  ReportResponse `json:"report"`
}
