package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/restaurant/internal/model"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects everything the helpers print. Nil keeps the current
// writer.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// Stdout is the writer regular output goes to.
func Stdout() io.Writer { return stdout }

// Stderr is the writer failures and hints go to.
func Stderr() io.Writer { return stderr }

func OK(msg string) {
	fmt.Fprintln(stdout, current.Success.Render(current.SymOK+" "+msg))
}

func Fail(msg string) {
	fmt.Fprintln(stderr, current.Error.Render(current.SymFail+" "+msg))
}

// Hint prints a muted follow-up line under a failure.
func Hint(msg string) {
	fmt.Fprintln(stderr, current.Muted.Render(msg))
}

// Panel draws a framed box using the current theme.
func Panel(lines []string) {
	fmt.Fprintln(stdout, PanelString(strings.Join(lines, "\n")))
}

// PanelString frames inner without printing it.
func PanelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1)
	return border.Render(inner)
}

// MenuLines renders one dotted line per item, name on the left and price on
// the right, all lines the same width.
func MenuLines(items []model.Item) []string {
	if len(items) == 0 {
		return []string{current.Muted.Render("no items")}
	}
	nameW, priceW := 0, 0
	for _, it := range items {
		nameW = max(nameW, lipgloss.Width(it.Name))
		priceW = max(priceW, len(FormatPrice(it.Price)))
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := current.Muted.Render(fmt.Sprintf("%2d.", i+1))
		dots := strings.Repeat(".", nameW-lipgloss.Width(it.Name)+2)
		price := fmt.Sprintf("%*s", priceW, FormatPrice(it.Price))
		out = append(out, fmt.Sprintf("%s %s %s %s",
			idx, it.Name, current.Muted.Render(dots), current.Price.Render(price)))
	}
	return out
}

// FormatPrice prints a price in whole currency units.
func FormatPrice(p int) string {
	return fmt.Sprintf("%d", p)
}
