package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/idilsaglam/packsmart/internal/checklist"
	"github.com/idilsaglam/packsmart/internal/config"
	"github.com/idilsaglam/packsmart/internal/dates"
	"github.com/idilsaglam/packsmart/internal/model"
	"github.com/idilsaglam/packsmart/internal/storage"
	"github.com/idilsaglam/packsmart/internal/storage/jsonstore"
	"github.com/idilsaglam/packsmart/internal/storage/sqlitestore"
	"github.com/idilsaglam/packsmart/internal/tui"
	"github.com/idilsaglam/packsmart/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group bool // list grouped by upcoming/past
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		PrintHelp()
		return 0
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		ui.Fail("config: " + err.Error())
		return 1
	}
	slot, err := openSlot(cfg)
	if err != nil {
		ui.Fail("open store: " + err.Error())
		return 1
	}
	defer slot.Close()

	st, err := checklist.New(slot)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}

	switch cmd {
	case "ls":
		return doList(st, opt)

	case "new":
		if len(a) < 4 || len(a) > 5 {
			ui.Fail("usage: packsmart new <name> <destination> <start> <end> [template]")
			return 2
		}
		tplID := ""
		if len(a) == 5 {
			tplID = a[4]
		}
		return doNew(st, a[0], a[1], a[2], a[3], tplID)

	case "templates":
		return doTemplates(st)

	case "show":
		if len(a) != 1 {
			ui.Fail("usage: packsmart show <trip>")
			return 2
		}
		return doShow(st, a[0])

	case "delete":
		if len(a) != 1 {
			ui.Fail("usage: packsmart delete <trip>")
			return 2
		}
		return doDelete(st, a[0])

	case "addcat":
		if len(a) < 2 {
			ui.Fail("usage: packsmart addcat <trip> <name...>")
			return 2
		}
		return doAddCategory(st, a[0], strings.Join(a[1:], " "))

	case "rmcat":
		if len(a) != 2 {
			ui.Fail("usage: packsmart rmcat <trip> <category#>")
			return 2
		}
		return doRemoveCategory(st, a[0], a[1])

	case "add":
		if len(a) < 3 {
			ui.Fail("usage: packsmart add <trip> <category#> <name...> [xN]")
			return 2
		}
		return doAddItem(st, a[0], a[1], a[2:])

	case "rm":
		if len(a) != 3 {
			ui.Fail("usage: packsmart rm <trip> <category#> <item#>")
			return 2
		}
		return doRemoveItem(st, a[0], a[1], a[2])

	case "pack":
		if len(a) != 3 {
			ui.Fail("usage: packsmart pack <trip> <category#> <item#>")
			return 2
		}
		return doToggle(st, a[0], a[1], a[2])

	case "set":
		if len(a) < 5 {
			ui.Fail("usage: packsmart set <trip> <category#> <item#> <field> <value...>")
			return 2
		}
		return doSet(st, a[0], a[1], a[2], a[3], strings.Join(a[4:], " "))

	case "stats":
		return doStats(st)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`packsmart - trip packing checklists

Usage:
  packsmart <subcommand> [args]

Subcommands:
  new <name> <destination> <start> <end> [template]
                                  Create a trip (dates as YYYY-MM-DD)
  ls                              List trips with packing progress
  show <trip>                     Open a trip (interactive)
  delete <trip>                   Delete a trip
  templates                       List available trip templates
  addcat <trip> <name...>         Add a category
  rmcat <trip> <category#>        Remove a category
  add <trip> <category#> <name...> [xN]
                                  Add an item, optionally with quantity
  rm <trip> <category#> <item#>   Remove an item
  pack <trip> <category#> <item#> Toggle packed
  set <trip> <category#> <item#> <field> <value...>
                                  Update name|quantity|notes|priority|packed
  stats                           Overall packing stats

<trip> is a 1-based index from `+"`packsmart ls`"+`, or a checklist id.

Examples:
  packsmart new "Summer in France" "Paris, France" 2026-07-01 2026-07-10 beach-vacation
  packsmart add 1 2 "Sun hat" x2
  packsmart pack 1 2 3
`)
}

func openSlot(cfg *config.Config) (storage.Slot, error) {
	if cfg.Store == config.StoreSQLite {
		return sqlitestore.New(cfg.DataDir)
	}
	return jsonstore.New(cfg.DataDir)
}

// ---------------------------------------------------
// subcommand impls
// ---------------------------------------------------

func doList(st *checklist.Store, opt Options) int {
	cls := st.Checklists()

	header := fmt.Sprintf("%s  %s %d",
		ui.Title.Render("Trips"),
		ui.Accent.Render("Total"), len(cls),
	)

	var lines []string
	lines = append(lines, header, "")
	if opt.Group {
		lines = append(lines, groupLines(st, cls)...)
	} else {
		lines = append(lines, tripLines(st, cls)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.Muted.Render("Tip: open a trip with `packsmart show 1`"))
	ui.Panel(lines)
	return 0
}

func doNew(st *checklist.Store, name, destination, start, end, tplID string) int {
	// Required-field and date checks live here; the store accepts
	// whatever it is given.
	name = strings.TrimSpace(name)
	destination = strings.TrimSpace(destination)
	if name == "" || destination == "" {
		ui.Fail("new: name and destination must not be empty")
		return 2
	}
	for _, d := range []string{start, end} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			ui.Fail("new: not an ISO date (YYYY-MM-DD): " + d)
			return 2
		}
	}

	id := st.CreateChecklist(name, destination, start, end, tplID)
	ui.OK("created " + name)
	fmt.Println(ui.Muted.Render("id: " + id))
	return 0
}

func doTemplates(st *checklist.Store) int {
	var lines []string
	lines = append(lines, ui.Title.Render("Templates"), "")
	for _, t := range st.Templates() {
		items := 0
		for _, c := range t.Categories {
			items += len(c.Items)
		}
		lines = append(lines, fmt.Sprintf("%s  %s — %d categories, %d items",
			ui.Accent.Render(t.ID), t.Name, len(t.Categories), items))
		lines = append(lines, "   "+ui.Muted.Render(t.Description))
	}
	ui.Panel(lines)
	return 0
}

func doShow(st *checklist.Store, tripArg string) int {
	cl, code := resolveTrip(st, tripArg)
	if code != 0 {
		return code
	}
	if err := tui.Run(st, cl.ID); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doDelete(st *checklist.Store, tripArg string) int {
	cl, code := resolveTrip(st, tripArg)
	if code != 0 {
		return code
	}
	st.DeleteChecklist(cl.ID)
	ui.OK("deleted " + cl.Name)
	return 0
}

func doAddCategory(st *checklist.Store, tripArg, name string) int {
	name = strings.TrimSpace(name)
	if name == "" {
		ui.Fail("addcat: empty category name")
		return 2
	}
	cl, code := resolveTrip(st, tripArg)
	if code != 0 {
		return code
	}
	st.AddCategory(cl.ID, name)
	ui.OK("added " + name + " category")
	return 0
}

func doRemoveCategory(st *checklist.Store, tripArg, catArg string) int {
	cl, code := resolveTrip(st, tripArg)
	if code != 0 {
		return code
	}
	cat, code := resolveCategory(cl, catArg)
	if code != 0 {
		return code
	}
	st.RemoveCategory(cl.ID, cat.ID)
	ui.OK("removed " + cat.Name)
	return 0
}

func doAddItem(st *checklist.Store, tripArg, catArg string, rest []string) int {
	cl, code := resolveTrip(st, tripArg)
	if code != 0 {
		return code
	}
	cat, code := resolveCategory(cl, catArg)
	if code != 0 {
		return code
	}

	// A trailing "xN" token sets the quantity: `add 1 2 Socks x3`.
	quantity := 1
	if n := len(rest); n > 1 {
		last := rest[n-1]
		if strings.HasPrefix(last, "x") {
			if q, err := strconv.Atoi(last[1:]); err == nil {
				quantity = q
				rest = rest[:n-1]
			}
		}
	}
	name := strings.TrimSpace(strings.Join(rest, " "))
	if name == "" {
		ui.Fail("add: empty item name")
		return 2
	}
	st.AddItem(cl.ID, cat.ID, name, quantity)
	ui.OK("added " + name)
	return 0
}

func doRemoveItem(st *checklist.Store, tripArg, catArg, itemArg string) int {
	cl, cat, it, code := resolveItem(st, tripArg, catArg, itemArg)
	if code != 0 {
		return code
	}
	st.RemoveItem(cl.ID, cat.ID, it.ID)
	ui.OK("removed " + it.Name)
	return 0
}

func doToggle(st *checklist.Store, tripArg, catArg, itemArg string) int {
	cl, cat, it, code := resolveItem(st, tripArg, catArg, itemArg)
	if code != 0 {
		return code
	}
	st.ToggleItemPacked(cl.ID, cat.ID, it.ID)
	if it.IsPacked {
		ui.OK("unpacked " + it.Name)
	} else {
		ui.OK("packed " + it.Name)
	}
	return 0
}

func doSet(st *checklist.Store, tripArg, catArg, itemArg, field, value string) int {
	cl, cat, it, code := resolveItem(st, tripArg, catArg, itemArg)
	if code != 0 {
		return code
	}

	var upd checklist.ItemUpdate
	switch field {
	case "name":
		if strings.TrimSpace(value) == "" {
			ui.Fail("set: empty name")
			return 2
		}
		upd.Name = &value
	case "quantity":
		q, err := strconv.Atoi(value)
		if err != nil {
			ui.Fail("set: not a number: " + value)
			return 2
		}
		upd.Quantity = &q
	case "notes":
		upd.Notes = &value
	case "priority":
		p := model.Priority(value)
		if p != model.PriorityLow && p != model.PriorityMedium && p != model.PriorityHigh {
			ui.Fail("set: priority must be low, medium or high")
			return 2
		}
		upd.Priority = &p
	case "packed":
		b, err := strconv.ParseBool(value)
		if err != nil {
			ui.Fail("set: not a bool: " + value)
			return 2
		}
		upd.IsPacked = &b
	default:
		ui.Fail("set: unknown field: " + field)
		return 2
	}

	st.UpdateItem(cl.ID, cat.ID, it.ID, upd)
	ui.OK("updated " + it.Name)
	return 0
}

func doStats(st *checklist.Store) int {
	cls := st.Checklists()
	trips, total, packed := len(cls), 0, 0
	for _, cl := range cls {
		for _, cat := range cl.Categories {
			for _, it := range cat.Items {
				total++
				if it.IsPacked {
					packed++
				}
			}
		}
	}
	overall := 0
	if total > 0 {
		overall = packed * 100 / total
	}

	lines := []string{
		ui.Title.Render("Packing stats"),
		"",
		fmt.Sprintf("%s %d", ui.Accent.Render("Trips"), trips),
		fmt.Sprintf("%s %d / %d", ui.Success.Render("Packed"), packed, total),
		ui.Muted.Render(ui.ProgressBar(overall, 28)),
	}
	ui.Panel(lines)
	return 0
}

// ---------------------------------------------------
// argument resolution
// ---------------------------------------------------

// resolveTrip accepts a 1-based index from `ls` or a raw checklist id.
func resolveTrip(st *checklist.Store, arg string) (model.Checklist, int) {
	cls := st.Checklists()
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(cls) {
			ui.Fail(fmt.Sprintf("trip out of range: have %d, got %d", len(cls), n))
			fmt.Fprintln(os.Stderr, ui.Muted.Render("Hint: run `packsmart ls` to see valid indexes"))
			return model.Checklist{}, 2
		}
		return cls[n-1], 0
	}
	if cl, ok := st.GetChecklist(arg); ok {
		return cl, 0
	}
	ui.Fail("no such trip: " + arg)
	return model.Checklist{}, 2
}

func resolveCategory(cl model.Checklist, arg string) (model.Category, int) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		ui.Fail("not a number: " + arg)
		return model.Category{}, 2
	}
	if n < 1 || n > len(cl.Categories) {
		ui.Fail(fmt.Sprintf("category out of range: have %d, got %d", len(cl.Categories), n))
		return model.Category{}, 2
	}
	return cl.Categories[n-1], 0
}

func resolveItem(st *checklist.Store, tripArg, catArg, itemArg string) (model.Checklist, model.Category, model.Item, int) {
	cl, code := resolveTrip(st, tripArg)
	if code != 0 {
		return model.Checklist{}, model.Category{}, model.Item{}, code
	}
	cat, code := resolveCategory(cl, catArg)
	if code != 0 {
		return model.Checklist{}, model.Category{}, model.Item{}, code
	}
	n, err := strconv.Atoi(itemArg)
	if err != nil {
		ui.Fail("not a number: " + itemArg)
		return model.Checklist{}, model.Category{}, model.Item{}, 2
	}
	if n < 1 || n > len(cat.Items) {
		ui.Fail(fmt.Sprintf("item out of range: have %d, got %d", len(cat.Items), n))
		return model.Checklist{}, model.Category{}, model.Item{}, 2
	}
	return cl, cat, cat.Items[n-1], 0
}

// ---------------------------------------------------
// rendering helpers
// ---------------------------------------------------

func tripLines(st *checklist.Store, cls []model.Checklist) []string {
	if len(cls) == 0 {
		return []string{ui.Muted.Render("no trips yet")}
	}
	out := make([]string, 0, len(cls)*2)
	for i, cl := range cls {
		pct := st.PackedPercentage(cl.ID)
		out = append(out, fmt.Sprintf("%s %s  %s",
			ui.Muted.Render(fmt.Sprintf("%2d.", i+1)),
			ui.Title.Render(cl.Name),
			ui.Muted.Render(cl.Destination)))
		out = append(out, fmt.Sprintf("    %s  %s",
			ui.Accent.Render(dates.FormatRange(cl.StartDate, cl.EndDate)),
			ui.ProgressBar(pct, 20)))
	}
	return out
}

func groupLines(st *checklist.Store, cls []model.Checklist) []string {
	today := time.Now().Format("2006-01-02")
	var upcoming, past []model.Checklist
	for _, cl := range cls {
		// ISO dates compare lexically.
		if cl.EndDate >= today {
			upcoming = append(upcoming, cl)
		} else {
			past = append(past, cl)
		}
	}
	var lines []string
	lines = append(lines, ui.Accent.Render("Upcoming"))
	if len(upcoming) == 0 {
		lines = append(lines, ui.Muted.Render("(none)"))
	} else {
		lines = append(lines, tripLines(st, upcoming)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.Accent.Render("Past"))
	if len(past) == 0 {
		lines = append(lines, ui.Muted.Render("(none)"))
	} else {
		lines = append(lines, tripLines(st, past)...)
	}
	return lines
}
