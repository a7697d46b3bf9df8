// Package restaurant models a single restaurant: its opening hours, its menu
// and the totals of orders placed against that menu.
package restaurant

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/Makepad-fr/restaurant/internal/model"
)

// orderSeparator matches the irregular spacing allowed around commas in an
// order string. Alternatives are tried left to right.
var orderSeparator = regexp.MustCompile(`, | , | ,`)

// Restaurant owns a menu and fixed opening hours. It is not safe for
// concurrent use; callers sharing one instance must serialize access.
type Restaurant struct {
	name        string
	location    string
	openingTime TimeOfDay
	closingTime TimeOfDay
	menu        []model.Item

	clock   Clock
	notices io.Writer
	log     *slog.Logger
}

// Option customizes a Restaurant at construction.
type Option func(*Restaurant)

// WithClock replaces the system clock used by IsOpen.
func WithClock(c Clock) Option {
	return func(r *Restaurant) {
		if c != nil {
			r.clock = c
		}
	}
}

// WithNotices sets where the closed notice is written. Defaults to stdout.
func WithNotices(w io.Writer) Option {
	return func(r *Restaurant) {
		if w != nil {
			r.notices = w
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Restaurant) {
		if l != nil {
			r.log = l
		}
	}
}

// New creates a restaurant with an empty menu.
func New(name, location string, opening, closing TimeOfDay, opts ...Option) *Restaurant {
	r := &Restaurant{
		name:        name,
		location:    location,
		openingTime: opening,
		closingTime: closing,
		menu:        []model.Item{},
		clock:       SystemClock,
		notices:     os.Stdout,
		log:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(slog.String("restaurant", name))
	return r
}

func (r *Restaurant) Name() string           { return r.name }
func (r *Restaurant) Location() string       { return r.location }
func (r *Restaurant) OpeningTime() TimeOfDay { return r.openingTime }
func (r *Restaurant) ClosingTime() TimeOfDay { return r.closingTime }

// IsOpen reports whether the current time lies strictly between opening and
// closing time. Both bounds count as closed.
func (r *Restaurant) IsOpen() bool {
	now := TimeOfDayOf(r.clock.Now())
	return now.After(r.openingTime) && now.Before(r.closingTime)
}

// Menu returns a copy of the menu while open. When closed it writes a notice
// with the opening hours and returns an empty menu.
func (r *Restaurant) Menu() []model.Item {
	if r.IsOpen() {
		return slices.Clone(r.menu)
	}
	fmt.Fprintf(r.notices, "Restaurant is closed! Visit between: %s & %s\n", r.openingTime, r.closingTime)
	return []model.Item{}
}

// Items returns a copy of the whole menu regardless of opening hours.
func (r *Restaurant) Items() []model.Item {
	return slices.Clone(r.menu)
}

// FindItem returns the first menu item called name.
func (r *Restaurant) FindItem(name string) (model.Item, bool) {
	i := r.indexOf(name)
	if i < 0 {
		return model.Item{}, false
	}
	return r.menu[i], true
}

func (r *Restaurant) indexOf(name string) int {
	return slices.IndexFunc(r.menu, func(it model.Item) bool { return it.Name == name })
}

// AddToMenu appends an item. Names need not be unique.
func (r *Restaurant) AddToMenu(name string, price int) {
	r.menu = append(r.menu, model.NewItem(name, price))
	r.log.Debug("menu item added", slog.String("item", name), slog.Int("price", price))
}

// RemoveFromMenu removes the first item called name. The menu is left as is
// when there is no such item.
func (r *Restaurant) RemoveFromMenu(name string) error {
	i := r.indexOf(name)
	if i < 0 {
		r.log.Debug("remove of unknown menu item", slog.String("item", name))
		return &ItemNotFoundError{Name: name}
	}
	r.menu = slices.Delete(r.menu, i, i+1)
	r.log.Debug("menu item removed", slog.String("item", name))
	return nil
}

// OrderAmount sums the prices of items.
func (r *Restaurant) OrderAmount(items []model.Item) int {
	total := 0
	for _, it := range items {
		total += it.Price
	}
	return total
}

// OrderAmountByNames totals a comma separated list of menu item names.
// Spacing around the commas is ignored, names themselves must match exactly.
// Empty entries are skipped; an unknown name fails the whole order.
func (r *Restaurant) OrderAmountByNames(names string) (int, error) {
	items, err := r.resolve(names)
	if err != nil {
		return 0, err
	}
	return r.OrderAmount(items), nil
}

func (r *Restaurant) resolve(names string) ([]model.Item, error) {
	normalized := orderSeparator.ReplaceAllString(names, ",")
	var items []model.Item
	for _, name := range strings.Split(normalized, ",") {
		if name == "" {
			continue
		}
		it, ok := r.FindItem(name)
		if !ok {
			r.log.Debug("order names unknown item", slog.String("item", name))
			return nil, &ItemNotFoundError{Name: name}
		}
		items = append(items, it)
	}
	return items, nil
}

// Details renders the name, location, hours and menu. The menu is read
// through Menu, so a closed restaurant lists no items.
func (r *Restaurant) Details() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Restaurant: %s\n", r.name)
	fmt.Fprintf(&b, "Location: %s\n", r.location)
	fmt.Fprintf(&b, "Opening time: %s\n", r.openingTime)
	fmt.Fprintf(&b, "Closing time: %s\n", r.closingTime)
	b.WriteString("Menu:\n")
	menu := r.Menu()
	if len(menu) == 0 {
		b.WriteString("  (no items)\n")
	}
	for _, it := range menu {
		fmt.Fprintf(&b, "  %s: %d\n", it.Name, it.Price)
	}
	return b.String()
}

// DisplayDetails writes Details to w.
func (r *Restaurant) DisplayDetails(w io.Writer) {
	io.WriteString(w, r.Details())
}
