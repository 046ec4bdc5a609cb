package usecase

import (
	"strings"

	"github.com/talleres-esperanza/comedor/internal/domain/model"
)

// Describe joins the selected menu items in fixed order (starter, drink, main
// dish) through the shared label table, or returns the no-meal sentinel when
// nothing is selected.
func Describe(starter *model.Starter, drink *model.Drink, mainDish *model.MainDish) string {
	parts := make([]string, 0, 3)
	if starter != nil {
		parts = append(parts, starter.Label())
	}
	if drink != nil {
		parts = append(parts, drink.Label())
	}
	if mainDish != nil {
		parts = append(parts, mainDish.Label())
	}
	if len(parts) == 0 {
		return model.NoMealLabel
	}
	return strings.Join(parts, ", ")
}

// DescribeDraft renders the menu line for an in-progress draft.
func DescribeDraft(d model.OrderDraft) string {
	return Describe(d.Starter, d.Drink, d.MainDish)
}

// DescribeRecord renders the menu line for a committed record.
func DescribeRecord(r model.OrderRecord) string {
	return Describe(r.Starter, r.Drink, r.MainDish)
}
