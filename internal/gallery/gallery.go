// Package gallery provides the interactive component showcase launched by
// the weft CLI. It drives one of every component through a Bubble Tea
// program so themes and interaction targets can be exercised end to end.
package gallery

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/weftui/weft/components"
	"github.com/weftui/weft/interaction"
	"github.com/weftui/weft/internal/logger"
	"github.com/weftui/weft/theme"
)

// Options configures a gallery session.
type Options struct {
	Theme  theme.Theme
	Target interaction.Target
	Logger *logger.Logger
}

// Model is the Bubble Tea state for the gallery.
type Model struct {
	theme  theme.Theme
	target interaction.Target
	log    *logger.Logger

	width  int
	height int

	button        *components.Button
	alert         *components.Alert
	input         *components.Input
	collapsible   *components.Collapsible
	collapsibleTr *components.CollapsibleTrigger
	dialog        *components.Dialog
	dialogTr      *components.DialogTrigger
	dialogCt      *components.DialogContent
	radio         *components.RadioGroup
	radioItems    []*components.RadioItem
	picker        *components.Select
	pickerTr      *components.SelectTrigger
	pickerItems   []*components.SelectItem
	skeleton      *components.Skeleton

	focusables []focusable
	focusIdx   int

	themeChoice string
	presses     int
	quitting    bool
}

// focusable is any gallery widget that can take keyboard focus.
type focusable interface {
	Focus()
	Blur()
}

// NewModel constructs the gallery model with one of each showcased
// component.
func NewModel(opts Options) *Model {
	m := &Model{
		theme:  opts.Theme.Normalize(),
		target: opts.Target,
		log:    opts.Logger.WithComponent("gallery"),
	}

	m.button = components.NewButton(components.ButtonConfig{
		Label:   "Press me",
		Variant: theme.ButtonPrimary,
		OnPress: func() {
			m.presses++
			m.log.Intent("Button", "activate")
		},
		Target: opts.Target,
	})

	m.alert = components.NewAlert(components.AlertConfig{
		Title:    "Welcome",
		Message:  "tab cycles focus, enter activates, q quits",
		Variant:  theme.AlertInfo,
		Closable: true,
		Target:   opts.Target,
	})

	m.input = components.NewInput(components.InputConfig{
		Label:       "Name",
		Placeholder: "type here",
		OnChange: func(v string) {
			m.log.StateChange("Input", false, v)
		},
	})

	m.collapsible = components.NewCollapsible(components.CollapsibleConfig{
		Target: opts.Target,
		OnOpenChange: func(open bool) {
			m.log.StateChange("Collapsible", false, open)
		},
	})
	m.collapsibleTr = m.collapsible.Trigger("More details")
	m.collapsible.Content(
		components.NewText("Collapsible content mounts only while open."),
	)

	m.dialog = components.NewDialog(components.DialogConfig{Target: opts.Target})
	m.dialogTr = m.dialog.Trigger("Open dialog")
	m.dialogCt = m.dialog.Content(components.NewText("Dialogs gate their content on open state.")).
		WithTitle("About weft").
		WithDescription("A themeable terminal component kit")

	m.themeChoice = "default"
	m.radio = components.NewRadioGroup(components.RadioGroupConfig{
		DefaultValue: "default",
		Target:       opts.Target,
		OnValueChange: func(v string) {
			m.log.StateChange("RadioGroup", false, v)
		},
	})
	m.radioItems = []*components.RadioItem{
		m.radio.Item("default", "Default theme"),
		m.radio.Item("dark", "Dark theme"),
	}

	m.picker = components.NewSelect(components.SelectConfig{
		Placeholder: "Pick a variant",
		Target:      opts.Target,
	})
	m.pickerTr = m.picker.Trigger()
	m.pickerItems = []*components.SelectItem{
		m.picker.Item("primary", "Primary"),
		m.picker.Item("outline", "Outline"),
		m.picker.Item("ghost", "Ghost"),
	}

	m.skeleton = components.NewSkeleton(24, 2).
		WithContent(components.NewText("Loaded content"))

	// Nothing is focused until the first tab. Every interactive part is in
	// the cycle, so keyboard-only sessions can reach all of them.
	m.focusIdx = -1
	m.focusables = []focusable{
		m.button,
		focusFuncs{focus: m.collapsibleTr.Focus, blur: m.collapsibleTr.Blur},
		focusFuncs{focus: m.dialogTr.Focus, blur: m.dialogTr.Blur},
		focusFuncs{focus: m.dialogCt.FocusClose, blur: m.dialogCt.BlurClose},
	}
	for _, item := range m.radioItems {
		m.focusables = append(m.focusables, focusFuncs{focus: item.Focus, blur: item.Blur})
	}
	m.focusables = append(m.focusables, focusFuncs{focus: m.pickerTr.Focus, blur: m.pickerTr.Blur})
	for _, item := range m.pickerItems {
		m.focusables = append(m.focusables, focusFuncs{focus: item.Focus, blur: item.Blur})
	}
	m.focusables = append(m.focusables, focusFuncs{focus: m.alert.FocusClose, blur: m.alert.BlurClose})
	return m
}

// focusFuncs adapts focus-only sub-parts to the focusable interface.
type focusFuncs struct {
	focus func()
	blur  func()
}

func (f focusFuncs) Focus() { f.focus() }
func (f focusFuncs) Blur()  { f.blur() }

// Presses reports how many button activations have been counted.
func (m *Model) Presses() int {
	return m.presses
}

// Init starts the skeleton shimmer.
func (m *Model) Init() tea.Cmd {
	return m.skeleton.Init()
}

// Interactive reports whether stdout is attached to a terminal. The gallery
// refuses to start otherwise.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalSize returns the current terminal dimensions, with a sane fallback
// when the size cannot be determined.
func TerminalSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80, 24
	}
	return width, height
}
