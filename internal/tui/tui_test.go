package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/restaurant/internal/restaurant"
)

func newCafe(now restaurant.TimeOfDay) *restaurant.Restaurant {
	r := restaurant.New("Amelie's cafe", "Chennai",
		restaurant.MustTimeOfDay(10, 30, 0), restaurant.MustTimeOfDay(22, 0, 0),
		restaurant.WithClock(restaurant.FixedClock(now)), restaurant.WithNotices(io.Discard))
	r.AddToMenu("Sweet corn soup", 119)
	r.AddToMenu("Vegetable lasagne", 269)
	return r
}

var noon = restaurant.MustTimeOfDay(12, 0, 0)

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestToggleOrder(t *testing.T) {
	m := press(t, New(newCafe(noon)), space, down, space)

	res := m.Result()
	if res.Total != 388 || len(res.Order) != 2 {
		t.Fatalf("Result() = %+v, want both dishes totalling 388", res)
	}

	m = press(t, m, space)
	if got := m.Result().Total; got != 119 {
		t.Errorf("total after untoggle = %d, want 119", got)
	}
}

func TestAddDish(t *testing.T) {
	r := newCafe(noon)
	m := press(t, New(r), runes("a"), runes("Pizza, 500"), enter)

	if m.adding {
		t.Fatal("still in add mode")
	}
	if it, ok := r.FindItem("Pizza"); !ok || it.Price != 500 {
		t.Fatalf("Pizza not added to restaurant: %+v %v", it, ok)
	}
	if got := len(m.list.Items()); got != 3 {
		t.Errorf("list has %d items, want 3", got)
	}
	if !m.Result().Changed {
		t.Error("Changed = false after add")
	}
}

func TestAddDish_InvalidInput(t *testing.T) {
	r := newCafe(noon)
	m := press(t, New(r), runes("a"), runes("Pizza"), enter)

	if !m.adding || m.addErr == "" {
		t.Fatalf("adding=%v addErr=%q, want inline error", m.adding, m.addErr)
	}
	if len(r.Items()) != 2 {
		t.Errorf("menu changed on invalid input: %+v", r.Items())
	}
}

func TestRemoveDish(t *testing.T) {
	r := newCafe(noon)
	m := press(t, New(r), space, runes("d"))

	if _, ok := r.FindItem("Sweet corn soup"); ok {
		t.Fatal("Sweet corn soup still on the menu")
	}
	res := m.Result()
	if len(res.Order) != 0 || res.Total != 0 {
		t.Errorf("removed dish still ordered: %+v", res)
	}
	if !res.Changed {
		t.Error("Changed = false after remove")
	}
}

func TestCheckout(t *testing.T) {
	m := New(newCafe(noon))
	next, cmd := m.Update(enter)
	if cmd == nil {
		t.Fatal("enter did not quit")
	}
	if !next.(Model).Result().CheckedOut {
		t.Error("CheckedOut = false after enter")
	}

	next, _ = m.Update(runes("q"))
	if next.(Model).Result().CheckedOut {
		t.Error("CheckedOut = true after q")
	}
}

func TestClosedShowsNoMenu(t *testing.T) {
	r := newCafe(restaurant.MustTimeOfDay(23, 0, 0))
	m := New(r)

	if got := len(m.list.Items()); got != 0 {
		t.Fatalf("closed restaurant lists %d items", got)
	}
	if !strings.Contains(m.View(), "closed") {
		t.Errorf("view does not mention closed:\n%s", m.View())
	}

	m = press(t, m, runes("a"), runes("Pizza, 500"), enter)
	if _, ok := r.FindItem("Pizza"); !ok {
		t.Error("add while closed did not reach the restaurant")
	}
	if got := len(m.list.Items()); got != 0 {
		t.Errorf("closed list shows %d items after add", got)
	}
}

func TestParseEntry(t *testing.T) {
	tests := []struct {
		in      string
		name    string
		price   int
		wantErr bool
	}{
		{in: "Pizza, 500", name: "Pizza", price: 500},
		{in: "Fish, chips, 250", name: "Fish, chips", price: 250},
		{in: "  Tea ,0", name: "Tea", price: 0},
		{in: "Pizza", wantErr: true},
		{in: ", 5", wantErr: true},
		{in: "Pizza, five", wantErr: true},
		{in: "Pizza, -1", wantErr: true},
	}
	for _, tt := range tests {
		name, price, err := parseEntry(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseEntry(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && (name != tt.name || price != tt.price) {
			t.Errorf("parseEntry(%q) = %q, %d", tt.in, name, price)
		}
	}
}

func TestRemoveDish_Last(t *testing.T) {
	r := newCafe(noon)
	m := press(t, New(r), down, runes("d"))

	if got := len(m.list.Items()); got != 1 {
		t.Fatalf("list has %d items, want 1", got)
	}
	if m.list.SelectedItem() == nil {
		t.Fatal("nothing highlighted after removing the bottom dish")
	}

	m = press(t, m, space)
	if res := m.Result(); res.Total != 119 || len(res.Order) != 1 {
		t.Errorf("Result() = %+v, want remaining dish ordered for 119", res)
	}

	m = press(t, m, runes("d"))
	if got := len(r.Items()); got != 0 {
		t.Errorf("menu has %d items, want 0", got)
	}
}

func TestRemoveDish_DuplicateName(t *testing.T) {
	r := newCafe(noon)
	r.AddToMenu("Sweet corn soup", 99)
	m := press(t, New(r), down, down, runes("d"))

	if !strings.Contains(m.status, "119") || !strings.Contains(m.status, "first dish") {
		t.Errorf("status = %q, want the removed price 119 and a first-match note", m.status)
	}
	it, ok := r.FindItem("Sweet corn soup")
	if !ok || it.Price != 99 {
		t.Errorf("FindItem = %+v, %v; want remaining duplicate priced 99", it, ok)
	}
}
