package dto

// PersonResponse is one roster entry with its derived batch status.
type PersonResponse struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Photo    string              `json:"photo"`
	Category string              `json:"category"`
	Status   string              `json:"status"`
	Order    *OrderDraftResponse `json:"order,omitempty"`
}

// RosterResponse is the order-entry screen payload.
type RosterResponse struct {
	People   []PersonResponse `json:"people"`
	Source   string           `json:"source"`
	Complete bool             `json:"complete"`
}
