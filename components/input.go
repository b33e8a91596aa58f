package components

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/weftui/weft/state"
	"github.com/weftui/weft/theme"
)

// InputConfig configures an Input at construction. Value decides the state
// mode once: non-nil is controlled, nil is uncontrolled seeded by
// DefaultValue.
type InputConfig struct {
	Value        *string
	DefaultValue string
	Placeholder  string
	Label        string
	Width        int
	CharLimit    int
	Disabled     bool
	OnChange     func(string)
}

// defaultInputWidth is the field width used when neither Width nor a
// placeholder suggests one.
const defaultInputWidth = 20

// Input is a single-line text field backed by the bubbles text input model.
// The rendered buffer always mirrors the reconciled value, so a controlled
// input shows the external value even after the user types.
type Input struct {
	BaseComponent
	value    *state.Value[string]
	model    textinput.Model
	label    string
	disabled bool
}

// NewInput creates a text input from the given config.
func NewInput(cfg InputConfig) *Input {
	in := &Input{
		label:    cfg.Label,
		disabled: cfg.Disabled,
	}

	var opts []state.Option[string]
	if cfg.Value != nil {
		opts = append(opts, state.WithControlled(*cfg.Value))
	} else {
		opts = append(opts, state.WithDefault(cfg.DefaultValue))
	}
	if cfg.OnChange != nil {
		opts = append(opts, state.WithOnChange(cfg.OnChange))
	}
	in.value = state.New(opts...)
	in.value.SetDisabledFunc(func() bool { return in.disabled })

	in.model = textinput.New()
	in.model.Placeholder = cfg.Placeholder
	// The model renders at most one placeholder rune while its width is zero.
	width := cfg.Width
	if width <= 0 {
		width = utf8.RuneCountInString(cfg.Placeholder)
	}
	if width <= 0 {
		width = defaultInputWidth
	}
	in.model.Width = width
	if cfg.CharLimit > 0 {
		in.model.CharLimit = cfg.CharLimit
	}
	in.model.SetValue(in.value.Get())
	return in
}

// Value reports the effective text value.
func (in *Input) Value() string {
	return in.value.Get()
}

// SetValue requests a value change through the reconciler.
func (in *Input) SetValue(v string) {
	in.value.Set(v)
	in.model.SetValue(in.value.Get())
}

// SyncValue feeds a new external value into a controlled input.
func (in *Input) SyncValue(v string) {
	in.value.SyncExternal(v)
	in.model.SetValue(in.value.Get())
}

// SetDisabled updates the disabled state.
func (in *Input) SetDisabled(disabled bool) {
	in.disabled = disabled
	if disabled {
		in.model.Blur()
	}
}

// Focus moves keyboard focus into the field.
func (in *Input) Focus() tea.Cmd {
	if in.disabled {
		return nil
	}
	return in.model.Focus()
}

// Blur removes keyboard focus from the field.
func (in *Input) Blur() {
	in.model.Blur()
}

// Focused reports whether the field has keyboard focus.
func (in *Input) Focused() bool {
	return in.model.Focused()
}

// Update feeds a message to the underlying model, then reconciles the edit.
// A controlled input reports the typed value but snaps back to the external
// one.
func (in *Input) Update(msg tea.Msg) tea.Cmd {
	if in.disabled {
		return nil
	}
	var cmd tea.Cmd
	in.model, cmd = in.model.Update(msg)

	if typed := in.model.Value(); typed != in.value.Get() {
		in.value.Set(typed)
		in.model.SetValue(in.value.Get())
	}
	return cmd
}

// WithAppliers applies theme-aware style modifiers to the field box.
func (in *Input) WithAppliers(appliers ...theme.StyleFunc) *Input {
	in.AddAppliers(appliers...)
	return in
}

// View renders the input with the default theme.
func (in *Input) View() string {
	return in.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label and the themed field.
func (in *Input) ViewWithContext(ctx RenderContext) string {
	st := theme.InputDefault
	switch {
	case in.disabled:
		st = theme.InputDisabled
	case in.model.Focused():
		st = theme.InputFocus
	}
	base := theme.InputStyle(ctx.Theme, st)
	field := in.ComputeStyle(ctx.Theme, base).Render(in.model.View())

	if in.label == "" {
		return field
	}
	label := lipgloss.NewStyle().Bold(true).Render(in.label)
	return lipgloss.JoinVertical(lipgloss.Left, label, field)
}
