package gallery

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/weftui/weft/components"
	"github.com/weftui/weft/interaction"
)

// frameX and frameY are the outer frame's padding offsets. Hit regions are
// laid out in absolute screen cells, so every region accounts for them.
const (
	frameX = 2
	frameY = 1
)

// sectionHeader is the number of lines section prepends before its content
// (blank line, label, separator).
const sectionHeader = 3

// View renders the gallery and lays out the pointer hit regions to match
// what is on screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := components.DefaultContext().WithTheme(m.theme)
	if m.width > 0 {
		ctx.ParentWidth = m.width
		ctx = ctx.WithConstraints(components.WithMaxWidth(m.width - 4))
	}

	y := frameY
	sections := make([]string, 0, 10)
	push := func(view string) int {
		sections = append(sections, view)
		top := y
		y += lipgloss.Height(view)
		return top
	}

	push(components.TitleText("weft component gallery").ViewWithContext(ctx))
	push(components.FaintText(
		"tab: cycle focus · enter: activate · i: edit input · l: toggle skeleton · q: quit",
	).ViewWithContext(ctx))

	alertView := m.alert.ViewWithContext(ctx)
	alertTop := push(alertView)
	m.alert.SetCloseRegion(blockRegion(alertTop, alertView))

	buttonView := m.button.ViewWithContext(ctx)
	top := push(m.section(ctx, "Button", buttonView))
	m.button.SetRegion(blockRegion(top+sectionHeader, buttonView))

	push(m.section(ctx, "Input", m.input.ViewWithContext(ctx)))

	collapsibleView := m.collapsible.ViewWithContext(ctx)
	top = push(m.section(ctx, "Collapsible", collapsibleView))
	// The trigger is the first line of the composite's view.
	m.collapsibleTr.SetRegion(lineRegion(top+sectionHeader, collapsibleView))

	dialogView := m.dialog.ViewWithContext(ctx)
	top = push(m.section(ctx, "Dialog", dialogView))
	m.dialogTr.SetRegion(lineRegion(top+sectionHeader, dialogView))
	if contentHeight := lipgloss.Height(dialogView) - 1; contentHeight > 0 {
		m.dialogCt.SetCloseRegion(interaction.Region{
			X:      frameX,
			Y:      top + sectionHeader + 1,
			Width:  lipgloss.Width(dialogView),
			Height: contentHeight,
		})
	} else {
		m.dialogCt.SetCloseRegion(interaction.Region{})
	}

	radioView := m.radio.ViewWithContext(ctx)
	top = push(m.section(ctx, "Theme", radioView))
	for i, item := range m.radioItems {
		item.SetRegion(lineRegion(top+sectionHeader+i, radioView))
	}

	pickerView := m.picker.ViewWithContext(ctx)
	top = push(m.section(ctx, "Select", pickerView))
	triggerHeight := lipgloss.Height(m.pickerTr.ViewWithContext(ctx))
	m.pickerTr.SetRegion(interaction.Region{
		X:      frameX,
		Y:      top + sectionHeader,
		Width:  lipgloss.Width(pickerView),
		Height: triggerHeight,
	})
	// Options sit inside the list box, one line each, below its top border.
	for i, item := range m.pickerItems {
		if m.picker.Open() {
			item.SetRegion(lineRegion(top+sectionHeader+triggerHeight+1+i, pickerView))
		} else {
			item.SetRegion(interaction.Region{})
		}
	}

	push(m.section(ctx, "Skeleton", m.skeleton.ViewWithContext(ctx)))

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.NewStyle().Padding(frameY, frameX).Render(body)
}

func (m *Model) section(ctx components.RenderContext, title, content string) string {
	if content == "" {
		content = components.FaintText("(empty)").ViewWithContext(ctx)
	}
	label := components.SubtitleText(title).ViewWithContext(ctx)
	sep := components.NewSeparator().WithLength(24).ViewWithContext(ctx)
	return lipgloss.JoinVertical(lipgloss.Left, "", label, sep, content)
}

func blockRegion(y int, view string) interaction.Region {
	return interaction.Region{
		X:      frameX,
		Y:      y,
		Width:  lipgloss.Width(view),
		Height: lipgloss.Height(view),
	}
}

func lineRegion(y int, view string) interaction.Region {
	return interaction.Region{
		X:      frameX,
		Y:      y,
		Width:  lipgloss.Width(view),
		Height: 1,
	}
}
