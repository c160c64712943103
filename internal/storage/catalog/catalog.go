package catalog

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"concertPlanner/internal/models"

	"gopkg.in/yaml.v3"
)

var (
	ErrVenueNotFound   = errors.New("venue not found")
	ErrDuplicateVenue  = errors.New("duplicate venue name")
	ErrInvalidVenue    = errors.New("invalid venue")
	ErrIndexOutOfRange = errors.New("venue index out of range")
)

// Catalog is read-only venue reference data. It keeps definition order so that
// capacity ties resolve the same way on every run.
type Catalog struct {
	venues []models.Venue
	byName map[string]int
}

func New(venues ...models.Venue) (*Catalog, error) {
	const op = "storage.catalog.New"

	c := &Catalog{
		venues: make([]models.Venue, 0, len(venues)),
		byName: make(map[string]int, len(venues)),
	}

	for _, v := range venues {
		if err := models.Validate(v); err != nil {
			return nil, fmt.Errorf("%s: %w: %q: %s", op, ErrInvalidVenue, v.Name, err.Error())
		}
		if _, ok := c.byName[v.Name]; ok {
			return nil, fmt.Errorf("%s: %w: %q", op, ErrDuplicateVenue, v.Name)
		}

		c.byName[v.Name] = len(c.venues)
		c.venues = append(c.venues, v)
	}

	return c, nil
}

type catalogFile struct {
	Venues []models.Venue `yaml:"venues"`
}

// Load reads a catalog from a YAML file of the form
//
//	venues:
//	  - name: Echostage
//	    capacity: 3000
//	    rental_cost: 24000
//	    city: Washington, DC
func Load(path string) (*Catalog, error) {
	const op = "storage.catalog.Load"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var f catalogFile
	if err = yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(f.Venues) == 0 {
		return nil, fmt.Errorf("%s: no venues in %s", op, path)
	}

	return New(f.Venues...)
}

func (c *Catalog) Get(name string) (models.Venue, error) {
	const op = "storage.catalog.Get"

	i, ok := c.byName[name]
	if !ok {
		return models.Venue{}, fmt.Errorf("%s: %w: %q", op, ErrVenueNotFound, name)
	}

	return c.venues[i], nil
}

func (c *Catalog) All() []models.Venue {
	return slices.Clone(c.venues)
}

func (c *Catalog) Len() int {
	return len(c.venues)
}

// ByCapacity lists venues smallest first. Equal capacities keep definition order.
func (c *Catalog) ByCapacity() []models.Venue {
	sorted := slices.Clone(c.venues)
	slices.SortStableFunc(sorted, func(a, b models.Venue) int {
		return a.Capacity - b.Capacity
	})

	return sorted
}
