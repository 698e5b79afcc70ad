package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/crask/mote/core"
)

// UIComponent is the capability shared by the chrome widgets below the text
// area: each one renders itself to a single styled terminal row and reacts
// to terminal resizes. The model holds a fixed set of interface-typed
// handles rather than concrete widgets.
type UIComponent interface {
	Resize(size core.Size)
	Render() string
}

// --- status bar ---

type statusBar struct {
	theme    Theme
	width    int
	fileName string
	status   core.DocumentStatus
}

func newStatusBar(theme Theme) *statusBar {
	return &statusBar{theme: theme, fileName: "[No Name]"}
}

func (s *statusBar) Resize(size core.Size) {
	s.width = size.Width
}

func (s *statusBar) SetFileName(name string) {
	if name != "" {
		s.fileName = name
	}
}

func (s *statusBar) SetStatus(status core.DocumentStatus) {
	s.status = status
}

func (s *statusBar) Render() string {
	modified := ""
	if s.status.Modified {
		modified = " (modified)"
	}
	left := fmt.Sprintf(" %s%s - %d lines", s.fileName, modified, s.status.LineCount)
	right := fmt.Sprintf("%d/%d ", s.status.Position.Row+1, s.status.LineCount)

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return s.theme.StatusBarStyle.Render(left + strings.Repeat(" ", gap) + right)
}

// --- message bar ---

type messageBar struct {
	theme Theme
	width int
	text  string
	err   error
}

func newMessageBar(theme Theme) *messageBar {
	return &messageBar{theme: theme}
}

func (m *messageBar) Resize(size core.Size) {
	m.width = size.Width
}

func (m *messageBar) SetMessage(text string) {
	m.text = text
	m.err = nil
}

func (m *messageBar) SetError(err error) {
	m.err = err
	m.text = ""
}

func (m *messageBar) Clear() {
	m.text = ""
	m.err = nil
}

func (m *messageBar) Render() string {
	var line string
	switch {
	case m.err != nil:
		line = m.theme.ErrorStyle.Render(m.err.Error())
	case m.text != "":
		line = m.theme.MessageStyle.Render(m.text)
	}
	if pad := m.width - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}

// --- command bar (doubles as the search prompt) ---

type commandBar struct {
	theme  Theme
	width  int
	prompt string
	value  string
	hint   string
}

func newCommandBar(theme Theme) *commandBar {
	return &commandBar{theme: theme}
}

func (c *commandBar) Resize(size core.Size) {
	c.width = size.Width
}

func (c *commandBar) SetPrompt(prompt, value, hint string) {
	c.prompt = prompt
	c.value = value
	c.hint = hint
}

func (c *commandBar) Clear() {
	c.prompt = ""
	c.value = ""
	c.hint = ""
}

func (c *commandBar) Active() bool {
	return c.prompt != ""
}

func (c *commandBar) Render() string {
	if !c.Active() {
		return c.theme.CommandBarStyle.Render(strings.Repeat(" ", max(0, c.width)))
	}
	left := c.prompt + c.value
	gap := c.width - lipgloss.Width(left) - lipgloss.Width(c.hint)
	if gap < 0 {
		gap = 0
	}
	return c.theme.CommandBarStyle.Render(left + strings.Repeat(" ", gap) + c.hint)
}
