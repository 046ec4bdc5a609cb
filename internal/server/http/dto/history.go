package dto

import "time"

// HistoryOrderResponse is one committed lunch.
type HistoryOrderResponse struct {
	ID            string `json:"id"`
	PersonID      string `json:"person_id"`
	Name          string `json:"name"`
	Menu          string `json:"menu"`
	Observations  string `json:"observations"`
	PaymentMethod string `json:"payment_method"`
	OrderDate     string `json:"order_date"`
}

// HistoryGroupResponse is one date section of the archive.
type HistoryGroupResponse struct {
	Date   string                 `json:"date"`
	Orders []HistoryOrderResponse `json:"orders"`
}

// HistoryResponse is the archive screen payload.
type HistoryResponse struct {
	Groups []HistoryGroupResponse `json:"groups"`
	Totals TotalsResponse         `json:"totals"`
	Source string                 `json:"source"`
}

// ReportResponse is one stored daily rollup.
type ReportResponse struct {
	ID            string    `json:"id"`
	ReportDate    string    `json:"report_date"`
	TotalOrders   int       `json:"total_orders"`
	CashOrders    int       `json:"cash_orders"`
	VoucherOrders int       `json:"voucher_orders"`
	CreatedAt     time.Time `json:"created_at"`
}

// ReportsResponse lists rollups, most recent first.
type ReportsResponse struct {
	Reports []ReportResponse `json:"reports"`
	Source  string           `json:"source"`
}
