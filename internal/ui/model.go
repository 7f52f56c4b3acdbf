// Package ui is the interactive review screen: fetched headlines on the
// left, the live prompt preview on the right, rendering on demand.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goelo/newspanel/internal/fetch"
	"github.com/goelo/newspanel/internal/studio"
)

// HeadlinesLoaded delivers fetched headlines to the model.
type HeadlinesLoaded struct {
	Headlines []fetch.Headline
	Err       error
}

// RenderDone reports the outcome of an image render.
type RenderDone struct {
	Path string
	Err  error
}

// AppConfig injects the model's external effects so the TUI stays testable.
type AppConfig struct {
	// LoadHeadlines fetches headlines asynchronously.
	LoadHeadlines func() tea.Cmd

	// RenderImage turns the finished prompt into an image file.
	RenderImage func(prompt string) tea.Cmd
}

type row struct {
	headline fetch.Headline
	included bool
}

// Model is the bubbletea model for the review screen.
type Model struct {
	cfg     AppConfig
	rows    []row
	cursor  int
	preview viewport.Model
	spin    spinner.Model

	width, height int
	loading       bool
	rendering     bool
	status        string
	err           error
}

// New creates the review model.
func New(cfg AppConfig) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorHighlight)

	return Model{
		cfg:     cfg,
		preview: viewport.New(0, 0),
		spin:    sp,
		loading: true,
		status:  "loading headlines…",
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.cfg.LoadHeadlines != nil {
		cmds = append(cmds, m.cfg.LoadHeadlines())
	}
	return tea.Batch(cmds...)
}

// selectedTitles returns the titles still included, in input order.
func (m Model) selectedTitles() []string {
	var titles []string
	for _, r := range m.rows {
		if r.included {
			titles = append(titles, r.headline.Title)
		}
	}
	return titles
}

// Prompt builds the prompt for the current selection.
func (m Model) Prompt() string {
	return studio.Build(m.selectedTitles())
}

func (m *Model) refreshPreview() {
	m.preview.SetContent(m.Prompt())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.preview.Width = m.width/2 - 4
		m.preview.Height = m.height - 4
		m.refreshPreview()
		return m, nil

	case HeadlinesLoaded:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			m.status = "fetch failed: " + msg.Err.Error()
			return m, nil
		}
		m.rows = make([]row, len(msg.Headlines))
		for i, h := range msg.Headlines {
			m.rows[i] = row{headline: h, included: true}
		}
		m.status = fmt.Sprintf("%d headlines loaded", len(m.rows))
		m.refreshPreview()
		return m, nil

	case RenderDone:
		m.rendering = false
		if msg.Err != nil {
			m.status = "render failed: " + msg.Err.Error()
		} else {
			m.status = "image saved: " + msg.Path
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.rendering {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}

		case " ":
			if m.cursor < len(m.rows) {
				m.rows[m.cursor].included = !m.rows[m.cursor].included
				m.refreshPreview()
			}

		case "g":
			if m.rendering || m.cfg.RenderImage == nil {
				return m, nil
			}
			m.rendering = true
			m.status = "rendering…"
			return m, tea.Batch(m.spin.Tick, m.cfg.RenderImage(m.Prompt()))

		case "pgup":
			m.preview.ScrollUp(3)

		case "pgdown":
			m.preview.ScrollDown(3)
		}
	}

	return m, nil
}

func (m Model) View() string {
	var list strings.Builder
	list.WriteString(TitleBar.Render("newspanel — heutige Schlagzeilen"))
	list.WriteString("\n")

	if m.loading {
		list.WriteString(m.spin.View() + " loading…\n")
	}
	for i, r := range m.rows {
		mark := "[x]"
		style := NormalItem
		if !r.included {
			mark = "[ ]"
			style = ExcludedItem
		}
		if i == m.cursor {
			style = SelectedItem
		}
		list.WriteString(style.Render(mark+" "+r.headline.Title) + "\n")
	}

	status := m.status
	if m.rendering {
		status = m.spin.View() + " " + status
	}
	footer := StatusBar.Render(
		StatusKey.Render("space") + " toggle  " +
			StatusKey.Render("g") + " generate  " +
			StatusKey.Render("q") + " quit  " + status,
	)

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		list.String(),
		PreviewPane.Render(m.preview.View()),
	)
	return body + "\n" + footer
}
