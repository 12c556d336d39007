// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/psu-tools/psu/internal/i18n"
	"github.com/psu-tools/psu/internal/logging"
	"github.com/psu-tools/psu/internal/screen"
)

// mainModel adapts a screen.Controller to the Bubble Tea runtime. All state
// changes happen in the controller; the model keeps only layout and the
// last status line.
type mainModel struct {
	ctrl   *screen.Controller
	help   help.Model
	width  int
	height int

	status    string
	statusErr bool
}

func newModel(ctrl *screen.Controller, warnings int) mainModel {
	m := mainModel{ctrl: ctrl, help: help.New()}
	m.help.Styles.ShortKey = helpStyle
	m.help.Styles.ShortDesc = helpStyle
	if warnings > 0 {
		m.status = i18n.T("status.load_warnings", warnings)
		m.statusErr = true
	}
	return m
}

// Init is the first function that will be called by the Bubble Tea runtime.
func (m mainModel) Init() tea.Cmd {
	return nil
}

// Update forwards key presses to the controller and records the outcome.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		out := m.ctrl.HandleKey(msg)
		switch {
		case out.Err != nil:
			m.status = i18n.T("status.error", out.Err)
			m.statusErr = true
		case out.Notice != "":
			m.status = out.Notice
			m.statusErr = false
		}
		if out.Quit {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View draws the current screen with a status line at the bottom.
func (m mainModel) View() string {
	v := m.ctrl.View()
	bodyHeight := m.height - 2

	var body string
	switch v.Screen {
	case screen.Popup:
		body = renderPopup(v, m.width-2, bodyHeight)
	case screen.Help:
		body = m.viewHelp()
	default:
		title := titleStyle.Render(i18n.T("app.title")) + helpStyle.Render(i18n.T("app.subtitle"))
		body = lipgloss.JoinVertical(lipgloss.Left, title, renderTable(v, m.width-2, bodyHeight-1))
	}

	return docStyle.Render(body + "\n" + m.footer(v.Screen))
}

func (m mainModel) viewHelp() string {
	keys := m.ctrl.Keys()
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("help.title")))
	b.WriteString("\n\n")
	h := m.help
	h.ShowAll = true
	b.WriteString(h.View(keys.Main))
	b.WriteString("\n\n")
	b.WriteString(h.View(keys.Popup))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(i18n.T("help.back")))
	return b.String()
}

func (m mainModel) footer(s screen.Screen) string {
	left := ""
	if m.status != "" {
		if m.statusErr {
			left = errorStyle.Render(m.status)
		} else {
			left = statusMessageStyle.Render(m.status)
		}
	}
	right := m.help.View(m.ctrl.Keys().For(s))
	return AlignFooter(left, right, m.width-2)
}

// Run starts the Bubble Tea program on the alternate screen and blocks until
// the user quits. warnings is the number of rows skipped while loading and is
// shown on the first frame.
func Run(ctrl *screen.Controller, warnings int) error {
	p := tea.NewProgram(newModel(ctrl, warnings), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Errorf("Error running program: %v", err)
		return err
	}
	return nil
}
