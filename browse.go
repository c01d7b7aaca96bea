package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"flowpaint/diagrams"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func initialModel(config *Config) model {
	m := model{
		mode:     ModeBrowse,
		diagrams: diagrams.Catalog(),
		outputs:  map[string]string{},
		config:   config,
		renderFn: config.exportDiagram,
		copyFn:   copyToClipboard,
		existsFn: fileExists,
	}
	if len(m.diagrams) == 0 {
		m.selectedIndex = -1
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) renderCmd(d diagrams.Definition) tea.Cmd {
	render := m.renderFn
	return func() tea.Msg {
		start := time.Now()
		path, err := render(d)
		return renderDoneMsg{name: d.Name, path: path, took: time.Since(start), err: err}
	}
}

// startRender renders defs, asking first when an output would be replaced.
func (m model) startRender(defs []diagrams.Definition, action ConfirmAction) (tea.Model, tea.Cmd) {
	if m.config.Confirmations {
		for _, d := range defs {
			if m.existsFn(m.config.OutputPath(d.Output)) {
				m.mode = ModeConfirm
				m.confirmAction = action
				m.pending = defs
				return m, nil
			}
		}
	}
	return m.launch(defs)
}

func (m model) launch(defs []diagrams.Definition) (tea.Model, tea.Cmd) {
	m.clearMessages()
	m.pending = nil
	if len(defs) == 0 {
		m.mode = ModeBrowse
		return m, nil
	}
	m.mode = ModeRendering
	m.rendering += len(defs)
	cmds := make([]tea.Cmd, len(defs))
	for i, d := range defs {
		cmds[i] = m.renderCmd(d)
	}
	return m, tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case renderDoneMsg:
		if m.rendering > 0 {
			m.rendering--
		}
		if msg.err != nil {
			m.errorMessage = fmt.Sprintf("Error exporting %s: %s", msg.name, msg.err.Error())
		} else {
			m.outputs[msg.name] = msg.path
			m.lastPath = msg.path
			m.successMessage = fmt.Sprintf("Exported to %s (%s)", msg.path, msg.took.Round(time.Millisecond))
			if m.config.CopyPath {
				if err := m.copyFn(msg.path); err != nil {
					m.errorMessage = fmt.Sprintf("Error copying path: %s", err.Error())
				}
			}
		}
		if m.rendering == 0 {
			m.mode = ModeBrowse
		}
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		if m.help {
			m.help = false
			return m, nil
		}

		switch m.mode {
		case ModeConfirm:
			switch key {
			case "y", "Y":
				if m.confirmAction == ConfirmQuit {
					return m, tea.Quit
				}
				return m.launch(m.pending)
			case "n", "N", "esc":
				m.mode = ModeBrowse
				if m.rendering > 0 {
					m.mode = ModeRendering
				}
				m.pending = nil
			}
			return m, nil

		case ModeRendering:
			if key == "q" {
				m.mode = ModeConfirm
				m.confirmAction = ConfirmQuit
				return m, nil
			}
			if isNavigationKey(key) {
				m.handleNavigation(key)
			}
			return m, nil
		}

		switch {
		case isNavigationKey(key):
			m.handleNavigation(key)
		case key == "enter" || key == "r":
			if d, ok := m.selected(); ok {
				return m.startRender([]diagrams.Definition{d}, ConfirmOverwriteFile)
			}
		case key == "a":
			return m.startRender(m.diagrams, ConfirmRenderAll)
		case key == "c":
			if m.lastPath == "" {
				m.errorMessage = "Nothing exported yet"
				return m, nil
			}
			if err := m.copyFn(m.lastPath); err != nil {
				m.errorMessage = fmt.Sprintf("Error copying path: %s", err.Error())
				return m, nil
			}
			m.errorMessage = ""
			m.successMessage = fmt.Sprintf("Copied %s", m.lastPath)
		case key == "?":
			m.help = true
		case key == "q" || key == "esc":
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	renderWidth := m.width
	if renderWidth < 1 {
		renderWidth = 40
	}

	var result strings.Builder
	result.WriteString(headerStyle.Render("Select a diagram:"))
	result.WriteString("\n")
	result.WriteString(strings.Repeat("─", renderWidth))
	result.WriteString("\n")

	if len(m.diagrams) == 0 {
		result.WriteString("(No diagrams defined)\n")
	}

	maxItems := m.height - 4 // header, separators and status line
	if maxItems < 1 || m.height == 0 {
		maxItems = len(m.diagrams)
	}
	startIdx := 0
	if m.selectedIndex >= maxItems {
		startIdx = m.selectedIndex - maxItems + 1
	}
	endIdx := startIdx + maxItems
	if endIdx > len(m.diagrams) {
		endIdx = len(m.diagrams)
	}
	for i := startIdx; i < endIdx; i++ {
		d := m.diagrams[i]
		line := fmt.Sprintf("%-10s %s", d.Name, d.Description)
		if path, ok := m.outputs[d.Name]; ok {
			line += faintStyle.Render(" -> " + path)
		}
		if i == m.selectedIndex {
			result.WriteString(selectedStyle.Render("> " + line))
		} else {
			result.WriteString("  " + line)
		}
		result.WriteString("\n")
	}

	result.WriteString(strings.Repeat("─", renderWidth))
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmOverwriteFile:
			if len(m.pending) > 0 {
				message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.config.OutputPath(m.pending[0].Output))
			}
		case ConfirmRenderAll:
			message = "Some images already exist. Overwrite all? (y/n)"
		case ConfirmQuit:
			message = "Renders still running. Quit anyway? (y/n)"
		}
		return fmt.Sprintf("Mode: CONFIRM | %s", message)
	case ModeRendering:
		return fmt.Sprintf("Mode: RENDERING | %d in progress", m.rendering)
	}

	status := "Mode: BROWSE"
	if m.successMessage != "" {
		status += " | " + successStyle.Render(m.successMessage)
	}
	if m.errorMessage != "" {
		status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	} else if m.successMessage == "" {
		status += " | ? for help | q to quit"
	}
	return status
}

func (m model) helpView() string {
	rows := [][2]string{
		{"↑/k, ↓/j", "move selection"},
		{"g, G", "first / last diagram"},
		{"enter, r", "render selected diagram"},
		{"a", "render every diagram"},
		{"c", "copy last exported path"},
		{"q, esc", "quit"},
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render("flowpaint"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %-10s %s\n", r[0], r[1]))
	}
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf("output: %s  dpi: %g", m.config.OutputPath("."), m.config.DPI)))
	b.WriteString("\n\nPress any key to return")
	return b.String()
}
