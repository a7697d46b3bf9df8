package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Makepad-fr/restaurant/internal/model"
	"github.com/Makepad-fr/restaurant/internal/restaurant"
)

// JSON-backed restaurant definition. Single file, human-readable, portable.
// No locking; fine for a local single-user CLI.

// DefaultFile is used when neither config nor flags name a file.
const DefaultFile = "restaurant.json"

// Definition is the on-disk shape of a restaurant.
type Definition struct {
	Name        string               `json:"name"`
	Location    string               `json:"location"`
	OpeningTime restaurant.TimeOfDay `json:"opening_time"`
	ClosingTime restaurant.TimeOfDay `json:"closing_time"`
	Menu        []model.Item         `json:"menu"`
}

// Sample is the definition written by `restaurant init`.
func Sample() Definition {
	return Definition{
		Name:        "Amelie's cafe",
		Location:    "Chennai",
		OpeningTime: restaurant.MustTimeOfDay(10, 30, 0),
		ClosingTime: restaurant.MustTimeOfDay(22, 0, 0),
		Menu: []model.Item{
			model.NewItem("Sweet corn soup", 119),
			model.NewItem("Vegetable lasagne", 269),
		},
	}
}

// Restaurant builds a populated restaurant from the definition.
func (d Definition) Restaurant(opts ...restaurant.Option) *restaurant.Restaurant {
	r := restaurant.New(d.Name, d.Location, d.OpeningTime, d.ClosingTime, opts...)
	for _, it := range d.Menu {
		r.AddToMenu(it.Name, it.Price)
	}
	return r
}

// FromRestaurant captures r, including its full menu, as a definition.
func FromRestaurant(r *restaurant.Restaurant) Definition {
	return Definition{
		Name:        r.Name(),
		Location:    r.Location(),
		OpeningTime: r.OpeningTime(),
		ClosingTime: r.ClosingTime(),
		Menu:        r.Items(),
	}
}

// Load reads the definition at path. A missing file yields an error
// matching os.ErrNotExist.
func Load(path string) (Definition, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read file: %w", err)
	}
	var d Definition
	if err := json.Unmarshal(b, &d); err != nil {
		return Definition{}, fmt.Errorf("json unmarshal %s: %w", filepath.Base(path), err)
	}
	if d.Menu == nil {
		d.Menu = []model.Item{}
	}
	return d, nil
}

// Save writes d to path as indented JSON.
func Save(path string, d Definition) error {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
