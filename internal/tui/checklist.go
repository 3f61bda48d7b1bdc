// Package tui is the interactive checklist detail view.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"unsafe"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/packsmart/internal/checklist"
	"github.com/idilsaglam/packsmart/internal/model"
	"github.com/idilsaglam/packsmart/internal/ui"
)

// row adapts one display line (category header or item) to bubbles/list.Item.
type row struct {
	header   bool
	catID    string
	itemID   string
	text     string
	quantity int
	isPacked bool
	priority model.Priority
}

func (r row) Title() string       { return r.text }
func (r row) Description() string { return "" }
func (r row) FilterValue() string { return r.text }

type modelTUI struct {
	st          *checklist.Store
	checklistID string
	list        list.Model

	// Inline add (item or category)
	adding    bool
	addingCat bool            // true when the input names a new category
	targetCat string          // category receiving a new item
	ti        textinput.Model // shared text input model
	addErr    string
}

// Custom delegate to control how rows render (single line).
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, _ := item.(row)

	var line string
	if r.header {
		line = ui.Accent.Render("▸ " + r.text)
	} else {
		box := ui.Muted.Render(ui.BoxUnchecked)
		text := r.text
		if r.quantity > 1 {
			text = fmt.Sprintf("%s ×%d", text, r.quantity)
		}
		if r.priority == model.PriorityHigh {
			text = text + " " + ui.Pending.Render("!")
		}
		if r.isPacked {
			box = ui.Success.Render(ui.BoxChecked)
			text = ui.Packed.Render(text)
		}
		line = fmt.Sprintf("  %s %s", box, text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = ui.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// Run opens the detail view for one checklist. Mutations go straight
// through the store, which persists after each one; quitting just
// closes the view.
func Run(st *checklist.Store, checklistID string) error {
	cl, ok := st.GetChecklist(checklistID)
	if !ok {
		return fmt.Errorf("no such checklist: %s", checklistID)
	}

	l := list.New(rows(cl), rowDelegate{}, 0, 0)
	l.Title = titleFor(st, cl)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Title
	l.Styles.HelpStyle = ui.Help
	l.Styles.PaginationStyle = ui.Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("row", "rows")

	// Extend help with our bindings
	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pack"))
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item"))
	catBind := key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "add category"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	extra := func() []key.Binding { return []key.Binding{toggleBind, addBind, catBind, delBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	m := modelTUI{
		st:          st,
		checklistID: checklistID,
		list:        l,
	}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.CharLimit = 200

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// add mode (item or category)
	if m.adding {
		var cmd tea.Cmd
		switch x := msg.(type) {
		case tea.KeyMsg:
			switch x.String() {
			case "enter":
				name := strings.TrimSpace(m.ti.Value())
				if name == "" {
					m.addErr = "Name cannot be empty"
					return m, nil
				}
				if m.addingCat {
					m.st.AddCategory(m.checklistID, name)
				} else {
					m.st.AddItem(m.checklistID, m.targetCat, name, 1)
				}
				m.ti.SetValue("")
				m.ti.Blur()
				m.adding = false
				m.addErr = ""
				m.refresh()
				return m, nil
			case "esc":
				m.adding = false
				m.addErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			if r, ok := m.selectedRow(); ok && !r.header {
				m.st.ToggleItemPacked(m.checklistID, r.catID, r.itemID)
				m.refresh()
			}
			return m, nil
		case "d":
			if r, ok := m.selectedRow(); ok {
				if r.header {
					m.st.RemoveCategory(m.checklistID, r.catID)
				} else {
					m.st.RemoveItem(m.checklistID, r.catID, r.itemID)
				}
				m.refresh()
			}
			return m, nil
		case "a":
			r, ok := m.selectedRow()
			if !ok {
				return m, nil
			}
			m.adding = true
			m.addingCat = false
			m.targetCat = r.catID
			m.ti.SetValue("")
			m.ti.Placeholder = "New item name..."
			m.ti.Focus()
			return m, nil
		case "c":
			m.adding = true
			m.addingCat = true
			m.ti.SetValue("")
			m.ti.Placeholder = "New category name..."
			m.ti.Focus()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) View() string {
	w, h := widthHeight()
	listHeight := h - 4
	if m.adding {
		listHeight = h - 6
	}
	m.list.SetSize(w-2, listHeight)

	content := m.list.View()
	if m.adding {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		title := "Add item"
		if m.addingCat {
			title = "Add category"
		}
		if m.addErr != "" {
			title += " — " + ui.Error.Render(m.addErr)
		}
		content = content + "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return panelString(content)
}

// selectedRow returns the row under the cursor.
func (m modelTUI) selectedRow() (row, bool) {
	i := m.list.Index()
	if i < 0 || i >= len(m.list.Items()) {
		return row{}, false
	}
	r, ok := m.list.Items()[i].(row)
	return r, ok
}

// refresh re-reads the checklist from the store and rebuilds rows,
// keeping the cursor near its old position.
func (m *modelTUI) refresh() {
	cl, ok := m.st.GetChecklist(m.checklistID)
	if !ok {
		return
	}
	idx := m.list.Index()
	items := rows(cl)
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	m.list.Title = titleFor(m.st, cl)
}

// rows flattens categories and items into display order.
func rows(cl model.Checklist) []list.Item {
	var out []list.Item
	for _, cat := range cl.Categories {
		packed := 0
		for _, it := range cat.Items {
			if it.IsPacked {
				packed++
			}
		}
		out = append(out, row{
			header: true,
			catID:  cat.ID,
			text:   fmt.Sprintf("%s (%d/%d)", cat.Name, packed, len(cat.Items)),
		})
		for _, it := range cat.Items {
			out = append(out, row{
				catID:    cat.ID,
				itemID:   it.ID,
				text:     it.Name,
				quantity: it.Quantity,
				isPacked: it.IsPacked,
				priority: it.Priority,
			})
		}
	}
	return out
}

func titleFor(st *checklist.Store, cl model.Checklist) string {
	pct := st.PackedPercentage(cl.ID)
	return fmt.Sprintf("%s  %s  %s",
		ui.Title.Render(cl.Name),
		ui.Muted.Render(cl.Destination),
		ui.Success.Render(fmt.Sprintf("%d%% packed", pct)),
	)
}

// helpers for View
func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}

func widthHeight() (int, int) {
	w, h := 80, 24
	if tw, th, err := termSize(); err == nil {
		w, h = tw, th
	}
	return w, h
}

// portable terminal size
func termSize() (int, int, error) {
	fd := int(os.Stdout.Fd())
	type winsize struct {
		Row, Col, Xpixel, Ypixel uint16
	}
	ws := &winsize{}
	_, _, err := syscall.Syscall(syscall.SYS_IOCTL,
		uintptr(fd), uintptr(syscall.TIOCGWINSZ), uintptr(unsafe.Pointer(ws)))
	if err != 0 {
		return 0, 0, fmt.Errorf("ioctl: %v", err)
	}
	return int(ws.Col), int(ws.Row), nil
}
