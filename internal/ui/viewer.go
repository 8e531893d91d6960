package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// RenderFunc renders the tree. It is called again on every reload, so it
// should start a new scripting session each time.
type RenderFunc func() (string, error)

// Border and padding of the panel, and the footer line.
const (
	chromeWidth  = 4
	chromeHeight = 3
)

type keyMap struct {
	Quit   key.Binding
	Reload key.Binding
	Top    key.Binding
	Bottom key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	}
}

func (k keyMap) help() string {
	var parts []string
	for _, b := range []key.Binding{k.Quit, k.Reload, k.Top, k.Bottom} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

type renderedMsg struct {
	content string
	err     error
}

type viewerModel struct {
	viewport  viewport.Model
	render    RenderFunc
	configDir string
	keys      keyMap
	status    string
	err       error
}

func newViewer(render RenderFunc, configDir string) viewerModel {
	w, h := widthHeight()
	return viewerModel{
		viewport:  viewport.New(max(w-chromeWidth, 1), max(h-chromeHeight, 1)),
		render:    render,
		configDir: configDir,
		keys:      newKeyMap(),
	}
}

// View shows the rendered tree in a scrollable full-screen viewer. Changes to
// the configuration in configDir re-render it.
func View(render RenderFunc, configDir string) error {
	p := tea.NewProgram(newViewer(render, configDir), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m viewerModel) renderCmd() tea.Cmd {
	render := m.render
	return func() tea.Msg {
		content, err := render()
		return renderedMsg{content: content, err: err}
	}
}

func (m viewerModel) watchCmd() tea.Cmd {
	if m.configDir == "" {
		return nil
	}
	return WatchConfigCmd(m.configDir)
}

// Init and Update and View implement Bubble Tea's Model on viewerModel
func (m viewerModel) Init() tea.Cmd {
	return tea.Batch(m.renderCmd(), m.watchCmd())
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = max(msg.Width-chromeWidth, 1)
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload):
			m.status = "reloading…"
			return m, m.renderCmd()
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}

	case renderedMsg:
		m.err = msg.err
		m.status = ""
		if msg.err == nil {
			m.viewport.SetContent(msg.content)
		}
		return m, nil

	case ConfigChangedMsg:
		m.status = "config changed: reloading…"
		return m, tea.Batch(m.renderCmd(), m.watchCmd())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m viewerModel) View() string {
	footer := helpStyle.Render(m.keys.help())
	switch {
	case m.err != nil:
		footer = errorStyle.Render(symCross+" "+m.err.Error()) + "  " + footer
	case m.status != "":
		footer = accentStyle.Render(m.status) + "  " + footer
	}
	return panelStyle.Render(m.viewport.View()) + "\n" + footer
}

func widthHeight() (int, int) {
	w, h := 80, 24
	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		w, h = tw, th
	}
	return w, h
}
