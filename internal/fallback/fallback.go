package fallback

import (
	"time"

	"github.com/talleres-esperanza/comedor/internal/domain/model"
)

// Source tells which branch produced a dataset, so callers and tests can
// assert whether live data or the built-in sample was served.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Roster is a sourced roster read result.
type Roster struct {
	People []model.Person
	Source Source
	Reason error
}

// History is a sourced history read result.
type History struct {
	Orders  []model.OrderRecord
	Reports []model.DailyReport
	Source  Source
	Reason  error
}

// LiveRoster wraps a successful gateway read.
func LiveRoster(people []model.Person) Roster {
	return Roster{People: people, Source: SourceLive}
}

// RosterFallback substitutes the sample roster, keeping the reason visible.
func RosterFallback(reason error) Roster {
	return Roster{People: SamplePeople(), Source: SourceFallback, Reason: reason}
}

// LiveHistory wraps a successful gateway read.
func LiveHistory(orders []model.OrderRecord, reports []model.DailyReport) History {
	return History{Orders: orders, Reports: reports, Source: SourceLive}
}

// HistoryFallback substitutes the sample history, keeping the reason visible.
func HistoryFallback(reason error) History {
	orders, reports := SampleHistory()
	return History{Orders: orders, Reports: reports, Source: SourceFallback, Reason: reason}
}

// SamplePeople returns the demo roster used when the store is empty or down.
func SamplePeople() []model.Person {
	now := time.Now()
	return []model.Person{
		{
			ID:        "1",
			Name:      "Ana María González",
			PhotoURL:  "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=300",
			Category:  model.CategoryStudent,
			CreatedAt: now,
		},
		{
			ID:        "2",
			Name:      "Carlos Rodríguez",
			PhotoURL:  "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=300",
			Category:  model.CategoryStudent,
			CreatedAt: now,
		},
		{
			ID:        "3",
			Name:      "María José Silva",
			PhotoURL:  "https://images.pexels.com/photos/1181686/pexels-photo-1181686.jpeg?auto=compress&cs=tinysrgb&w=300",
			Category:  model.CategoryStudent,
			CreatedAt: now,
		},
		{
			ID:        "4",
			Name:      "Prof. Roberto Jiménez",
			PhotoURL:  "https://images.pexels.com/photos/2182970/pexels-photo-2182970.jpeg?auto=compress&cs=tinysrgb&w=300",
			Category:  model.CategoryTeacher,
			CreatedAt: now,
		},
		{
			ID:        "5",
			Name:      "Prof. Carmen Vargas",
			PhotoURL:  "https://images.pexels.com/photos/1181424/pexels-photo-1181424.jpeg?auto=compress&cs=tinysrgb&w=300",
			Category:  model.CategoryTeacher,
			CreatedAt: now,
		},
	}
}

func menu(starter model.Starter, drink model.Drink, dish model.MainDish) (*model.Starter, *model.Drink, *model.MainDish) {
	return &starter, &drink, &dish
}

// SampleHistory returns the demo order history: two lunches today, one
// yesterday, with matching rollups. Both dates come from the same local-time
// derivation as everything else.
func SampleHistory() ([]model.OrderRecord, []model.DailyReport) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	today := model.FormatDate(now)
	yesterdayStr := model.FormatDate(yesterday)

	s1, d1, m1 := menu(model.StarterFruit, model.DrinkJuice, model.MainDishChicken)
	s2, d2, m2 := menu(model.StarterSoup, model.DrinkLemonade, model.MainDishBeef)
	s3, d3, m3 := menu(model.StarterFruit, model.DrinkJuice, model.MainDishSpaghetti)

	orders := []model.OrderRecord{
		{
			ID:            "1",
			PersonID:      "1",
			PersonName:    "Ana María González",
			PersonPhoto:   "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=300",
			Starter:       s1,
			Drink:         d1,
			MainDish:      m1,
			PaymentMethod: model.PaymentCash,
			OrderDate:     today,
			CreatedAt:     now,
		},
		{
			ID:            "2",
			PersonID:      "2",
			PersonName:    "Carlos Rodríguez",
			PersonPhoto:   "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=300",
			Starter:       s2,
			Drink:         d2,
			MainDish:      m2,
			Note:          "Sin cebolla",
			PaymentMethod: model.PaymentVoucher,
			OrderDate:     today,
			CreatedAt:     now,
		},
		{
			ID:            "3",
			PersonID:      "4",
			PersonName:    "Prof. Roberto Jiménez",
			PersonPhoto:   "https://images.pexels.com/photos/2182970/pexels-photo-2182970.jpeg?auto=compress&cs=tinysrgb&w=300",
			Starter:       s3,
			Drink:         d3,
			MainDish:      m3,
			PaymentMethod: model.PaymentCash,
			OrderDate:     yesterdayStr,
			CreatedAt:     yesterday,
		},
	}

	reports := []model.DailyReport{
		{ID: "1", ReportDate: today, TotalOrders: 2, CashOrders: 1, VoucherOrders: 1, CreatedAt: now},
		{ID: "2", ReportDate: yesterdayStr, TotalOrders: 1, CashOrders: 1, VoucherOrders: 0, CreatedAt: yesterday},
	}

	return orders, reports
}
