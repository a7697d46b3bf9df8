package tui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/restaurant/internal/model"
	"github.com/Makepad-fr/restaurant/internal/restaurant"
	"github.com/Makepad-fr/restaurant/internal/ui"
)

// Result is what the browser hands back once it quits.
type Result struct {
	Order      []model.Item
	Total      int
	Changed    bool // menu was edited
	CheckedOut bool // quit with enter rather than q/esc
}

// listItem adapts a menu entry to bubbles/list.Item
type listItem struct {
	Item    model.Item
	Ordered bool
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.Item.Name }
func (i listItem) Description() string { return ui.FormatPrice(i.Item.Price) }
func (i listItem) FilterValue() string { return i.Item.Name }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	t := ui.Current()

	box := t.Muted.Render(t.SymAvailable)
	if it.Ordered {
		box = t.Success.Render(t.SymOrdered)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s  %s\n", prefix, box, it.Item.Name, t.Price.Render(ui.FormatPrice(it.Item.Price)))
}

// Model is the Bubble Tea model of the menu browser.
type Model struct {
	rest *restaurant.Restaurant
	list list.Model
	open bool

	changed    bool
	checkedOut bool

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string

	status string
	width  int
	height int
}

var (
	toggleBind   = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "order"))
	addBind      = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	removeBind   = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove"))
	checkoutBind = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "checkout"))
)

// New builds the browser over r. The visible menu follows Restaurant.Menu,
// so a closed restaurant shows no items.
func New(r *restaurant.Restaurant) Model {
	open := r.IsOpen()
	var items []model.Item
	if open {
		items = r.Menu()
	}
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{Item: it})
	}

	l := list.New(li, itemDelegate{}, 0, 0)
	l.Title = r.Name()
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.SetStatusBarItemName("dish", "dishes")
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{toggleBind, addBind, removeBind, checkoutBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{toggleBind, addBind, removeBind, checkoutBind} }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Name, price"
	ti.CharLimit = 200

	m := Model{
		rest:   r,
		list:   l,
		open:   open,
		ti:     ti,
		width:  80,
		height: 24,
	}
	m.resize()
	return m
}

// Run starts the browser on the alternate screen and blocks until it quits.
func Run(r *restaurant.Restaurant) (Result, error) {
	p := tea.NewProgram(New(r), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	fm, ok := final.(Model)
	if !ok {
		return Result{}, errors.New("tui: unexpected final model")
	}
	return fm.Result(), nil
}

// Result reports the current order and whether the menu was edited.
func (m Model) Result() Result {
	order := m.order()
	return Result{
		Order:      order,
		Total:      m.rest.OrderAmount(order),
		Changed:    m.changed,
		CheckedOut: m.checkedOut,
	}
}

func (m Model) order() []model.Item {
	var out []model.Item
	for _, it := range m.list.Items() {
		if li, ok := it.(listItem); ok && li.Ordered {
			out = append(out, li.Item)
		}
	}
	return out
}

func (m *Model) resize() {
	h := m.height - 6
	if m.adding {
		h -= 3
	}
	m.list.SetSize(max(m.width-4, 10), max(h, 3))
}

// Update and View implement Bubble Tea's Model on Model
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		m.status = ""
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "enter":
			m.checkedOut = true
			return m, tea.Quit
		case " ":
			i := m.list.Index()
			if li, ok := m.list.SelectedItem().(listItem); ok {
				li.Ordered = !li.Ordered
				return m, m.list.SetItem(i, li)
			}
			return m, nil
		case "a":
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			m.resize()
			return m, m.ti.Focus()
		case "d":
			return m.removeSelected()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			name, price, err := parseEntry(m.ti.Value())
			if err != nil {
				m.addErr = err.Error()
				return m, nil
			}
			m.rest.AddToMenu(name, price)
			m.changed = true
			m.stopAdding()
			if !m.open {
				m.status = fmt.Sprintf("added %s; menu hidden while closed", name)
				return m, nil
			}
			m.status = "added " + name
			return m, m.list.InsertItem(len(m.list.Items()), listItem{Item: model.NewItem(name, price)})
		case "esc":
			m.stopAdding()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) stopAdding() {
	m.adding = false
	m.addErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

// removeSelected removes the highlighted dish from the menu. The restaurant
// drops the first dish with that name, so the list does the same and the
// status line names the price of the row that actually went.
func (m Model) removeSelected() (tea.Model, tea.Cmd) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return m, nil
	}
	if err := m.rest.RemoveFromMenu(li.Item.Name); err != nil {
		m.status = err.Error()
		return m, nil
	}
	removed := li.Item
	for i, it := range m.list.Items() {
		if x, ok := it.(listItem); ok && x.Item.Name == li.Item.Name {
			removed = x.Item
			m.list.RemoveItem(i)
			break
		}
	}
	if n := len(m.list.Items()); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	m.changed = true
	m.status = fmt.Sprintf("removed %s (%s)", removed.Name, ui.FormatPrice(removed.Price))
	if removed != li.Item {
		m.status += "; first dish with that name"
	}
	return m, nil
}

// parseEntry reads "name, price"; the last comma separates the price.
func parseEntry(s string) (string, int, error) {
	i := strings.LastIndex(s, ",")
	if i < 0 {
		return "", 0, errors.New("use: name, price")
	}
	name := strings.TrimSpace(s[:i])
	if name == "" {
		return "", 0, errors.New("name is required")
	}
	price, err := strconv.Atoi(strings.TrimSpace(s[i+1:]))
	if err != nil {
		return "", 0, fmt.Errorf("price %q is not a number", strings.TrimSpace(s[i+1:]))
	}
	if price < 0 {
		return "", 0, errors.New("price must be >= 0")
	}
	return name, price, nil
}

func (m Model) View() string {
	t := ui.Current()

	hours := fmt.Sprintf("%s - %s", m.rest.OpeningTime(), m.rest.ClosingTime())
	badge := t.Success.Render("open")
	if !m.open {
		badge = t.Error.Render("closed")
	}
	order := m.order()
	header := fmt.Sprintf("%s  %s  %s   %s %d  %s %s",
		t.Muted.Render(m.rest.Location()), hours, badge,
		t.Accent.Render("Items"), len(order),
		t.Accent.Render("Total"), t.Price.Render(ui.FormatPrice(m.rest.OrderAmount(order))),
	)

	parts := []string{header}
	if !m.open {
		parts = append(parts, t.Muted.Render(fmt.Sprintf("Restaurant is closed! Visit between: %s & %s",
			m.rest.OpeningTime(), m.rest.ClosingTime())))
	}
	parts = append(parts, m.list.View())

	if m.adding {
		bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
		title := "Add dish"
		if m.addErr != "" {
			title += ": " + t.Error.Render(m.addErr)
		}
		parts = append(parts, bar.Render(title+"\n"+m.ti.View()))
	}
	if m.status != "" {
		parts = append(parts, t.Muted.Render(m.status))
	}
	return ui.PanelString(strings.Join(parts, "\n"))
}
