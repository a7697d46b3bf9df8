package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Makepad-fr/restaurant/internal/restaurant"
	"github.com/Makepad-fr/restaurant/internal/store/jsonstore"
	"github.com/Makepad-fr/restaurant/internal/tui"
	"github.com/Makepad-fr/restaurant/internal/ui"
)

// Options tune behavior from root flags and config.
type Options struct {
	File   string       // restaurant definition file
	At     string       // HH:MM to use instead of the wall clock
	Logger *slog.Logger // nil discards logs
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	if opt.File == "" {
		opt.File = jsonstore.DefaultFile
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "init":
		return doInit(opt)

	case "details":
		return withRestaurant(opt, doDetails)

	case "status":
		return withRestaurant(opt, doStatus)

	case "menu":
		return withRestaurant(opt, doMenu)

	case "add":
		if len(a) < 2 {
			ui.Fail("usage: restaurant add <price> <name...>")
			return 2
		}
		price, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("add: price is not a number: " + a[0])
			return 2
		}
		if price < 0 {
			ui.Fail("add: price must be >= 0")
			return 2
		}
		name := strings.TrimSpace(strings.Join(a[1:], " "))
		if name == "" {
			ui.Fail("add: empty name")
			return 2
		}
		return withRestaurant(opt, func(r *restaurant.Restaurant) int { return doAdd(r, opt, name, price) })

	case "rm":
		if len(a) == 0 {
			ui.Fail("usage: restaurant rm <name...>")
			return 2
		}
		name := strings.Join(a, " ")
		return withRestaurant(opt, func(r *restaurant.Restaurant) int { return doRemove(r, opt, name) })

	case "total":
		if len(a) == 0 {
			ui.Fail(`usage: restaurant total "<name>, <name>..."`)
			return 2
		}
		names := strings.Join(a, " ")
		return withRestaurant(opt, func(r *restaurant.Restaurant) int { return doTotal(r, names) })

	case "tui":
		return withRestaurant(opt, func(r *restaurant.Restaurant) int { return doTUI(r, opt) })
	}

	ui.Fail("unknown subcommand: " + cmd)
	ui.Hint("")
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprintf(ui.Stdout(), `restaurant - menu and order totals for a single restaurant

Usage:
  restaurant [-file F] [-theme T] [-at HH:MM] <subcommand> [args]

Subcommands:
  init                 Write a sample restaurant file
  details              Show name, location, hours and menu
  status               Tell whether the restaurant is open
  menu                 List the menu (empty while closed)
  add <price> <name>   Add a dish (name can be multiple words)
  rm <name>            Remove the first dish with that name
  total <names>        Total a comma separated order
  tui                  Browse the menu and build an order interactively

Examples:
  restaurant init
  restaurant add 500 Pizza
  restaurant total "Sweet corn soup , Vegetable lasagne"
  restaurant -at 09:00 menu
`)
}

// withRestaurant loads the definition file and hands the restaurant to fn.
func withRestaurant(opt Options, fn func(*restaurant.Restaurant) int) int {
	d, err := jsonstore.Load(opt.File)
	if err != nil {
		ui.Fail("load: " + err.Error())
		if errors.Is(err, os.ErrNotExist) {
			ui.Hint("Hint: run `restaurant init` to create " + opt.File)
		}
		return 1
	}

	opts := []restaurant.Option{restaurant.WithNotices(ui.Stdout()), restaurant.WithLogger(opt.Logger)}
	if opt.At != "" {
		at, err := restaurant.ParseTimeOfDay(opt.At)
		if err != nil {
			ui.Fail("-at: " + err.Error())
			return 2
		}
		opts = append(opts, restaurant.WithClock(restaurant.FixedClock(at)))
	}
	return fn(d.Restaurant(opts...))
}

func save(r *restaurant.Restaurant, opt Options) bool {
	if err := jsonstore.Save(opt.File, jsonstore.FromRestaurant(r)); err != nil {
		ui.Fail("save: " + err.Error())
		return false
	}
	return true
}

// -------------- subcommand impls ----------------

func doInit(opt Options) int {
	if _, err := os.Stat(opt.File); err == nil {
		ui.Fail("init: " + opt.File + " already exists")
		return 1
	}
	if err := jsonstore.Save(opt.File, jsonstore.Sample()); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("created " + opt.File)
	return 0
}

func doDetails(r *restaurant.Restaurant) int {
	details := strings.TrimRight(r.Details(), "\n")
	ui.Panel(strings.Split(details, "\n"))
	return 0
}

func doStatus(r *restaurant.Restaurant) int {
	hours := fmt.Sprintf("%s - %s", r.OpeningTime(), r.ClosingTime())
	if r.IsOpen() {
		ui.OK(fmt.Sprintf("%s is open (%s)", r.Name(), hours))
		return 0
	}
	fmt.Fprintln(ui.Stdout(), ui.Current().Pending.Render(fmt.Sprintf("%s is closed (%s)", r.Name(), hours)))
	return 0
}

func doMenu(r *restaurant.Restaurant) int {
	items := r.Menu()
	t := ui.Current()
	header := fmt.Sprintf("%s  %s  %s %d",
		t.Title.Render(r.Name()),
		t.Muted.Render(r.Location()),
		t.Accent.Render("Dishes"), len(items),
	)

	lines := []string{header, ""}
	lines = append(lines, ui.MenuLines(items)...)
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: total an order with `restaurant total \"Dish one, Dish two\"`"))
	ui.Panel(lines)
	return 0
}

func doAdd(r *restaurant.Restaurant, opt Options, name string, price int) int {
	r.AddToMenu(name, price)
	if !save(r, opt) {
		return 1
	}
	ui.OK("added " + name)
	return 0
}

func doRemove(r *restaurant.Restaurant, opt Options, name string) int {
	if err := r.RemoveFromMenu(name); err != nil {
		ui.Fail("rm: " + err.Error())
		ui.Hint("Hint: run `restaurant details` to see the dish names")
		return 1
	}
	if !save(r, opt) {
		return 1
	}
	ui.OK("removed " + name)
	return 0
}

func doTotal(r *restaurant.Restaurant, names string) int {
	amount, err := r.OrderAmountByNames(names)
	if err != nil {
		ui.Fail("total: " + err.Error())
		return 1
	}
	fmt.Fprintf(ui.Stdout(), "%s %s\n", ui.Current().Accent.Render("Order total:"), ui.Current().Price.Render(ui.FormatPrice(amount)))
	return 0
}

func doTUI(r *restaurant.Restaurant, opt Options) int {
	res, err := tui.Run(r)
	if err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	if res.Changed {
		if !save(r, opt) {
			return 1
		}
		ui.OK("saved")
	}
	if res.CheckedOut {
		fmt.Fprintf(ui.Stdout(), "%s %d dishes, %s %s\n",
			ui.Current().Accent.Render("Order:"), len(res.Order),
			ui.Current().Accent.Render("total"), ui.Current().Price.Render(ui.FormatPrice(res.Total)))
	}
	return 0
}
