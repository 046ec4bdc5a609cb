package model

import "time"

// Category splits the roster into the two groups shown on the ordering screen.
type Category string

const (
	CategoryStudent Category = "student"
	CategoryTeacher Category = "teacher"
)

// Person is a roster member eligible for a lunch order.
type Person struct {
	ID        string
	Name      string
	PhotoURL  string
	Category  Category
	CreatedAt time.Time
}
