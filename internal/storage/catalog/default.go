package catalog

import "concertPlanner/internal/models"

var defaultVenues = []models.Venue{
	{Name: "Jammin Java", Capacity: 200, RentalCost: 2500, City: "Vienna, VA"},
	{Name: "Pearl Street Warehouse", Capacity: 300, RentalCost: 3000, City: "Washington, DC"},
	{Name: "Rams Head On Stage", Capacity: 300, RentalCost: 3500, City: "Annapolis, MD"},
	{Name: "The Atlantis", Capacity: 450, RentalCost: 5000, City: "Washington, DC"},
	{Name: "Union Stage", Capacity: 450, RentalCost: 4500, City: "Washington, DC"},
	{Name: "The Birchmere", Capacity: 500, RentalCost: 5500, City: "Alexandria, VA"},
	{Name: "Baltimore Soundstage", Capacity: 1000, RentalCost: 8000, City: "Baltimore, MD"},
	{Name: "9:30 Club", Capacity: 1200, RentalCost: 12000, City: "Washington, DC"},
	{Name: "Lincoln Theatre", Capacity: 1225, RentalCost: 12000, City: "Washington, DC"},
	{Name: "Rams Head Live / Nevermore Hall", Capacity: 1500, RentalCost: 14000, City: "Baltimore, MD"},
	{Name: "Warner Theatre", Capacity: 1900, RentalCost: 18000, City: "Washington, DC"},
	{Name: "The Fillmore Silver Spring", Capacity: 2000, RentalCost: 20000, City: "Silver Spring, MD"},
	{Name: "Hippodrome Theatre", Capacity: 2300, RentalCost: 22000, City: "Baltimore, MD"},
	{Name: "Echostage", Capacity: 3000, RentalCost: 24000, City: "Washington, DC"},
	{Name: "MGM National Harbor Theater", Capacity: 3500, RentalCost: 30000, City: "Oxon Hill, MD"},
	{Name: "Pier Six Pavilion", Capacity: 4400, RentalCost: 28000, City: "Baltimore, MD"},
	{Name: "The Anthem", Capacity: 6000, RentalCost: 35000, City: "Washington, DC"},
	{Name: "EagleBank Arena", Capacity: 10000, RentalCost: 100000, City: "Fairfax, VA"},
	{Name: "Merriweather Post Pavilion", Capacity: 19319, RentalCost: 75000, City: "Columbia, MD"},
	{Name: "CFG Bank Arena", Capacity: 20000, RentalCost: 120000, City: "Baltimore, MD"},
	{Name: "Capital One Arena", Capacity: 20000, RentalCost: 150000, City: "Washington, DC"},
	{Name: "M&T Bank Stadium", Capacity: 70000, RentalCost: 350000, City: "Baltimore, MD"},
}

// Default returns the built-in DC/Baltimore area catalog.
func Default() *Catalog {
	c, err := New(defaultVenues...)
	if err != nil {
		panic(err)
	}

	return c
}
