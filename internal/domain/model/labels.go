package model

import "fmt"

// Display labels shared by the editor, the summary, the history view and the
// export sinks. Keeping the single table here means a new menu value that is
// missing a label fails loudly in every consumer at once instead of rendering
// blank in one screen.

// NoMealLabel is the sentinel shown for drafts and records without any menu
// selection.
const NoMealLabel = "Sin almuerzo"

var starterLabels = map[Starter]string{
	StarterFruit: "Fruta",
	StarterSoup:  "Sopa",
}

var drinkLabels = map[Drink]string{
	DrinkJuice:    "Jugo",
	DrinkLemonade: "Limonada",
}

var mainDishLabels = map[MainDish]string{
	MainDishSpaghetti: "Espaguetis",
	MainDishBeef:      "Carne",
	MainDishChicken:   "Pechuga de Pollo",
}

var paymentLabels = map[PaymentMethod]string{
	PaymentCash:    "Efectivo",
	PaymentVoucher: "Voucher",
}

var categoryLabels = map[Category]string{
	CategoryStudent: "Estudiante",
	CategoryTeacher: "Profesor",
}

func (s Starter) Label() string       { return mustLabel(starterLabels, s) }
func (d Drink) Label() string         { return mustLabel(drinkLabels, d) }
func (m MainDish) Label() string      { return mustLabel(mainDishLabels, m) }
func (p PaymentMethod) Label() string { return mustLabel(paymentLabels, p) }
func (c Category) Label() string      { return mustLabel(categoryLabels, c) }

func mustLabel[K comparable](table map[K]string, key K) string {
	label, ok := table[key]
	if !ok {
		panic(fmt.Sprintf("model: no display label for %v", key))
	}
	return label
}
