package models

// Venue is a fixed location with an attendance capacity and a flat rental cost.
type Venue struct {
	Name       string  `yaml:"name" validate:"required"`
	Capacity   int     `yaml:"capacity" validate:"gte=1"`
	RentalCost float64 `yaml:"rental_cost" validate:"gte=0,finite"`
	City       string  `yaml:"city"`
}
