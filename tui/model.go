package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/crask/mote/core"
)

const chromeRows = 2 // status bar + message/command bar

type prompt int

const (
	promptNone prompt = iota
	promptSearch
	promptSaveAs
)

// Model is the bubbletea adapter around the core editor: it decodes key
// events into core commands, renders the viewport with the theme, and owns
// file I/O and the bottom-bar widgets.
type Model struct {
	editor core.Editor
	keys   KeyMap
	theme  Theme
	config Config

	width  int
	height int

	fileName string
	prompt   prompt
	saveAs   string

	status  *statusBar
	message *messageBar
	command *commandBar
	chrome  []UIComponent

	quitPresses int
}

type messageMsg string

type errMsg struct{ err error }

type clearMsg struct{}

type atottoClipboard struct{}

func (c *atottoClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (c *atottoClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}

// New creates a model with the given configuration.
func New(config Config) Model {
	theme := config.Theme()
	status := newStatusBar(theme)
	message := newMessageBar(theme)
	command := newCommandBar(theme)

	return Model{
		editor:  core.New(&atottoClipboard{}),
		keys:    DefaultKeyMap(),
		theme:   theme,
		config:  config,
		status:  status,
		message: message,
		command: command,
		chrome:  []UIComponent{status, message, command},
	}
}

// Load opens the named file into the editor. A nonexistent file starts an
// empty document that will be created on save.
func (m *Model) Load(path string) error {
	m.fileName = path
	m.status.SetFileName(path)
	content, exists, err := loadFile(path)
	if err != nil {
		return err
	}
	if exists {
		m.editor.SetContent(content)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return m.listenForSignals()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		textSize := core.Size{Width: msg.Width, Height: max(1, msg.Height-chromeRows)}
		m.editor.Resize(textSize)
		barSize := core.Size{Width: msg.Width, Height: 1}
		for _, c := range m.chrome {
			c.Resize(barSize)
		}

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case messageMsg:
		m.message.SetMessage(string(msg))
		cmds = append(cmds, m.dispatchClear(), m.listenForSignals())

	case errMsg:
		m.message.SetError(msg.err)
		cmds = append(cmds, m.dispatchClear(), m.listenForSignals())

	case clearMsg:
		m.message.Clear()
	}

	m.syncBars()
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.prompt {
	case promptSearch:
		return m.handleSearchKey(msg)
	case promptSaveAs:
		return m.handleSaveAsKey(msg)
	}

	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m.handleQuit()

	case key.Matches(msg, keys.Save):
		return m.save()

	case key.Matches(msg, keys.Search):
		m.prompt = promptSearch
		m.editor.EnterSearch()

	case key.Matches(msg, keys.Select):
		m.editor.StartSelection()

	case key.Matches(msg, keys.Copy):
		if err := m.editor.CopySelection(); err != nil {
			m.message.SetError(err)
			return m.dispatchClear()
		}

	case key.Matches(msg, keys.Cancel):
		m.editor.ClearSelection()

	case key.Matches(msg, keys.Left):
		m.editor.Move(core.MoveLeft)
	case key.Matches(msg, keys.Right):
		m.editor.Move(core.MoveRight)
	case key.Matches(msg, keys.Up):
		m.editor.Move(core.MoveUp)
	case key.Matches(msg, keys.Down):
		m.editor.Move(core.MoveDown)
	case key.Matches(msg, keys.Home):
		m.editor.Move(core.MoveStartOfLine)
	case key.Matches(msg, keys.End):
		m.editor.Move(core.MoveEndOfLine)
	case key.Matches(msg, keys.PageUp):
		m.editor.Move(core.MovePageUp)
	case key.Matches(msg, keys.PageDown):
		m.editor.Move(core.MovePageDown)

	case key.Matches(msg, keys.Backspace):
		m.editor.DeleteBackward()
	case key.Matches(msg, keys.Delete):
		m.editor.DeleteForward()
	case key.Matches(msg, keys.Enter):
		m.editor.InsertNewline()

	default:
		for _, r := range inputRunes(msg) {
			m.editor.InsertRune(r)
		}
	}

	m.quitPresses = 0
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Cancel):
		m.editor.CancelSearch()
		m.prompt = promptNone
		m.command.Clear()

	case key.Matches(msg, keys.Enter):
		m.editor.CommitSearch()
		m.prompt = promptNone
		m.command.Clear()

	case key.Matches(msg, keys.NextMatch):
		m.editor.SearchNext()

	case key.Matches(msg, keys.PrevMatch):
		m.editor.SearchPrev()

	case key.Matches(msg, keys.Backspace):
		m.editor.SearchDeleteChar()

	default:
		for _, r := range inputRunes(msg) {
			m.editor.SearchAppend(r)
		}
	}
	return nil
}

func (m *Model) handleSaveAsKey(msg tea.KeyMsg) tea.Cmd {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Cancel):
		m.prompt = promptNone
		m.saveAs = ""
		m.command.Clear()
		m.message.SetMessage("save aborted")
		return m.dispatchClear()

	case key.Matches(msg, keys.Enter):
		if m.saveAs == "" {
			return nil
		}
		m.fileName = m.saveAs
		m.status.SetFileName(m.saveAs)
		m.saveAs = ""
		m.prompt = promptNone
		m.command.Clear()
		return m.save()

	case key.Matches(msg, keys.Backspace):
		if m.saveAs != "" {
			runes := []rune(m.saveAs)
			m.saveAs = string(runes[:len(runes)-1])
		}

	default:
		m.saveAs += string(inputRunes(msg))
	}
	return nil
}

func (m *Model) handleQuit() tea.Cmd {
	if m.editor.Buffer().IsModified() && m.quitPresses+1 < m.config.QuitTimes {
		m.quitPresses++
		remaining := m.config.QuitTimes - m.quitPresses
		m.message.SetMessage(fmt.Sprintf(
			"unsaved changes - press Ctrl+Q %d more time(s) to quit", remaining))
		return m.dispatchClear()
	}
	return tea.Quit
}

func (m *Model) save() tea.Cmd {
	if m.fileName == "" {
		m.prompt = promptSaveAs
		return nil
	}
	if err := saveFile(m.fileName, m.editor.Lines()); err != nil {
		m.message.SetError(err)
		return m.dispatchClear()
	}
	m.editor.Buffer().MarkSaved()
	m.message.SetMessage(core.ChangesSavedMessage)
	return m.dispatchClear()
}

// syncBars pushes the latest editor state into the bottom-bar widgets.
func (m *Model) syncBars() {
	m.status.SetStatus(m.editor.Status())

	switch m.prompt {
	case promptSearch:
		hint := ""
		if count := m.editor.MatchCount(); count > 0 {
			hint = fmt.Sprintf("%d/%d (↑/↓ to navigate, esc to cancel)",
				m.editor.CurrentMatch()+1, count)
		} else if m.editor.SearchQuery() != "" {
			hint = "no matches"
		}
		m.command.SetPrompt("search: ", m.editor.SearchQuery(), hint)
	case promptSaveAs:
		m.command.SetPrompt("save as: ", m.saveAs, "(esc to cancel)")
	default:
		m.command.Clear()
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	textHeight := max(1, m.height-chromeRows)
	rows := m.editor.VisibleRows()
	cursorRow, cursorCol := m.editor.ScreenCursor()

	var sb strings.Builder
	for i := 0; i < textHeight; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if i < len(rows) && rows[i] != nil {
			col := -1
			if i == cursorRow {
				col = cursorCol
			}
			sb.WriteString(m.renderRow(rows[i], col))
		} else {
			sb.WriteString(m.theme.TildeStyle.Render("~"))
		}
	}

	bottom := m.message.Render()
	if m.command.Active() {
		bottom = m.command.Render()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		sb.String(),
		m.status.Render(),
		bottom,
	)
}

// renderRow converts one row of styled spans to a terminal string, overlaying
// the cursor as a reversed cell when cursorCol is within this row.
func (m Model) renderRow(spans []core.StyledSpan, cursorCol int) string {
	var sb strings.Builder
	col := 0
	cursorDrawn := false

	for _, span := range spans {
		style, styled := m.theme.styleFor(span.Type)

		if cursorCol >= 0 && !cursorDrawn {
			width := core.NewLine(span.Text).Width()
			if cursorCol < col+width {
				sb.WriteString(m.renderWithCursor(span, style, styled, cursorCol-col))
				cursorDrawn = true
				col += width
				continue
			}
		}

		if styled {
			sb.WriteString(style.Render(span.Text))
		} else {
			sb.WriteString(span.Text)
		}
		col += core.NewLine(span.Text).Width()
	}

	if cursorCol >= col && cursorCol >= 0 && !cursorDrawn {
		// Cursor rests past the last grapheme, where insertions append.
		sb.WriteString(strings.Repeat(" ", cursorCol-col))
		sb.WriteString(lipgloss.NewStyle().Reverse(true).Render(" "))
	}

	return sb.String()
}

// renderWithCursor splits a span at the cursor's display column and reverses
// the grapheme under the cursor.
func (m Model) renderWithCursor(span core.StyledSpan, style lipgloss.Style, styled bool, offset int) string {
	line := core.NewLine(span.Text)
	idx := line.GraphemeIndexAtColumn(offset)
	fragments := line.Fragments()

	render := func(s string) string {
		if styled {
			return style.Render(s)
		}
		return s
	}

	var sb strings.Builder
	for i, fragment := range fragments {
		if i == idx {
			cursorStyle := lipgloss.NewStyle().Reverse(true)
			if styled {
				cursorStyle = style.Reverse(true)
			}
			sb.WriteString(cursorStyle.Render(fragment.Text()))
			continue
		}
		sb.WriteString(render(fragment.Text()))
	}
	return sb.String()
}

func (m *Model) dispatchClear() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearMsg{}
	})
}

func (m *Model) listenForSignals() tea.Cmd {
	signals := m.editor.Signals()
	return func() tea.Msg {
		switch signal := (<-signals).(type) {
		case core.MessageSignal:
			return messageMsg(signal.Value())
		case core.ErrorSignal:
			return errMsg{err: signal.Value()}
		}
		return nil
	}
}

// inputRunes extracts the printable runes of a key event. Space and tab
// arrive as named keys in bubbletea and are mapped back to their characters.
func inputRunes(msg tea.KeyMsg) []rune {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		return msg.Runes
	case tea.KeySpace:
		return []rune{' '}
	case tea.KeyTab:
		return []rune{'\t'}
	default:
		return nil
	}
}
