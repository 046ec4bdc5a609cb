package usecase

import (
	"sort"

	"github.com/talleres-esperanza/comedor/internal/domain/model"
)

// VoucherBatchSize is how many voucher-paid lunches one redeemable voucher
// unit covers. Business constant, not configurable.
const VoucherBatchSize = 20

// PersonStat aggregates one person's qualifying orders.
type PersonStat struct {
	Name     string
	Count    int
	Vouchers int
	Cash     int
}

// Summary holds the aggregate counts shown on the summary and history screens.
// Only records with at least one menu item count; "no meal" entries are valid
// history but never totals.
type Summary struct {
	Total        int
	CashCount    int
	VoucherCount int
	VouchersUsed int
	PerPerson    []PersonStat
}

// Aggregate computes totals, payment partition, voucher units used and
// per-person counts over the given records. An empty input yields all-zero
// aggregates.
func Aggregate(records []model.OrderRecord) Summary {
	summary := Summary{PerPerson: []PersonStat{}}

	byName := make(map[string]int)
	for _, r := range records {
		if !r.HasMeal() {
			continue
		}
		summary.Total++
		switch r.PaymentMethod {
		case model.PaymentVoucher:
			summary.VoucherCount++
		default:
			summary.CashCount++
		}

		idx, seen := byName[r.PersonName]
		if !seen {
			idx = len(summary.PerPerson)
			byName[r.PersonName] = idx
			summary.PerPerson = append(summary.PerPerson, PersonStat{Name: r.PersonName})
		}
		summary.PerPerson[idx].Count++
		if r.PaymentMethod == model.PaymentVoucher {
			summary.PerPerson[idx].Vouchers++
		}
	}

	for i := range summary.PerPerson {
		summary.PerPerson[i].Cash = summary.PerPerson[i].Count - summary.PerPerson[i].Vouchers
	}

	// Descending by count; SliceStable keeps first-seen order for ties.
	sort.SliceStable(summary.PerPerson, func(i, j int) bool {
		return summary.PerPerson[i].Count > summary.PerPerson[j].Count
	})

	summary.VouchersUsed = (summary.VoucherCount + VoucherBatchSize - 1) / VoucherBatchSize
	return summary
}

// FilterByDate keeps records that have a meal and whose order date falls
// inside the closed [from, to] range. Empty bounds leave that side open; dates
// compare lexicographically in the YYYY-MM-DD format.
func FilterByDate(records []model.OrderRecord, from, to string) []model.OrderRecord {
	filtered := make([]model.OrderRecord, 0, len(records))
	for _, r := range records {
		if !r.HasMeal() {
			continue
		}
		if from != "" && r.OrderDate < from {
			continue
		}
		if to != "" && r.OrderDate > to {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// DateGroup is one history section: all records sharing an order date.
type DateGroup struct {
	Date    string
	Records []model.OrderRecord
}

// GroupByDate buckets records by order date, most recent date first. Records
// keep their relative order inside each group.
func GroupByDate(records []model.OrderRecord) []DateGroup {
	buckets := make(map[string][]model.OrderRecord)
	dates := make([]string, 0)
	for _, r := range records {
		if _, ok := buckets[r.OrderDate]; !ok {
			dates = append(dates, r.OrderDate)
		}
		buckets[r.OrderDate] = append(buckets[r.OrderDate], r)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	groups := make([]DateGroup, 0, len(dates))
	for _, d := range dates {
		groups = append(groups, DateGroup{Date: d, Records: buckets[d]})
	}
	return groups
}
