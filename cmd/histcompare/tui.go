package main

import (
	"context"
	"fmt"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mamadfar/histcompare"
	"github.com/mamadfar/histcompare/surface"
	"image/color"
	"log"
	"strings"
)

// Lines taken by everything but the chart: border, status, and help.
const chromeLines = 2 + histcompare.Slots + 3

var (
	// The chart is drawn on a dark grid, so brightness strokes are light.
	cellBackground = color.Black
	cellNeutral    = color.NRGBA{255, 255, 255, 128}

	frameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	slotStyles = [histcompare.Slots]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	}
)

// decodedMsg carries the result of decoding a selected image.
type decodedMsg struct {
	request histcompare.Request
	hist    *histcompare.Histogram
	err     error
}

// model is the interactive viewer. It owns the comparison session and
// redraws the overlay whenever a histogram arrives or the mode changes.
type model struct {
	session  *histcompare.Session
	sampler  *histcompare.Sampler
	renderer *histcompare.Renderer
	cells    *surface.Cells

	// Logical size of the drawing area.
	width, height float64

	initial [histcompare.Slots]string

	// editing is the slot whose locator is being entered or -1.
	editing int
	input   textinput.Model
}

// newModel returns a viewer comparing the configured images.
func newModel(opts options, sampler *histcompare.Sampler) *model {
	input := textinput.New()
	input.Placeholder = "path to image or " + histcompare.ReferencePrefix + "name"
	input.Prompt = "> "

	session := histcompare.NewSession()
	session.SetMode(opts.mode)

	renderer := histcompare.NewRenderer()
	renderer.Neutral = cellNeutral

	return &model{
		session:  session,
		sampler:  sampler,
		renderer: renderer,
		cells:    surface.NewCells(float64(opts.width), float64(opts.height), 64, 12, cellBackground),
		width:    float64(opts.width),
		height:   float64(opts.height),
		initial:  opts.locators,
		editing:  -1,
		input:    input}
}

// runInteractive starts the viewer and blocks until the user quits.
func runInteractive(opts options, sampler *histcompare.Sampler) error {
	_, err := tea.NewProgram(newModel(opts, sampler), tea.WithAltScreen()).Run()
	return err
}

// load selects an image for the slot and returns the command decoding it.
func (m *model) load(slot histcompare.Slot, locator string) tea.Cmd {
	request := m.session.Begin(slot, locator)
	log.Printf("Loading %s (generation %d): %s", slot, request.Generation, locator)

	sampler := m.sampler
	return func() tea.Msg {
		hist, err := sampler.Histogram(context.Background(), request.Locator)
		return decodedMsg{request, hist, err}
	}
}

// Init starts decoding both images.
func (m *model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for index, locator := range m.initial {
		cmds = append(cmds, m.load(histcompare.Slot(index), locator))
	}
	return tea.Batch(cmds...)
}

// Update handles decoding results, resizes, and key presses.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case decodedMsg:
		if !m.session.Complete(msg.request, msg.hist, msg.err) {
			log.Printf("Discarding stale result for %s (generation %d)", msg.request.Slot, msg.request.Generation)
			return m, nil
		}
		if msg.err != nil {
			log.Printf("Decoding %s failed: %v", msg.request.Slot, msg.err)
		}
		return m, nil

	case tea.WindowSizeMsg:
		columns, rows := msg.Width-2, msg.Height-chromeLines
		if columns < 16 {
			columns = 16
		}
		if rows < 4 {
			rows = 4
		}
		m.cells = surface.NewCells(m.width, m.height, columns, rows, cellBackground)
		return m, nil

	case tea.KeyMsg:
		if m.editing >= 0 {
			return m.updateInput(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "b":
			m.session.SetMode(histcompare.Brightness)
		case "c":
			m.session.SetMode(histcompare.Color)
		case "m", "tab":
			m.session.SetMode(m.session.Mode().Toggle())
		case "1", "2":
			m.editing = int(msg.String()[0] - '1')
			m.input.SetValue(m.session.Locator(histcompare.Slot(m.editing)))
			m.input.CursorEnd()
			return m, m.input.Focus()
		}
	}

	return m, nil
}

// updateInput handles key presses while a locator is being entered.
func (m *model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		slot := histcompare.Slot(m.editing)
		locator := strings.TrimSpace(m.input.Value())
		m.stopEditing()
		if locator == "" {
			return m, nil
		}
		return m, m.load(slot, locator)
	case "esc", "ctrl+c":
		m.stopEditing()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// stopEditing leaves locator entry.
func (m *model) stopEditing() {
	m.editing = -1
	m.input.Blur()
	m.input.Reset()
}

// View draws the overlay and the state of both slots.
func (m *model) View() string {
	var chart string
	if m.session.Render(m.renderer, m.cells) {
		chart = m.cells.String()
	} else {
		chart = m.placeholder()
	}

	lines := []string{
		titleStyle.Render(fmt.Sprintf("Histogram: %s", m.session.Mode())),
		frameStyle.Render(chart),
	}
	for index := 0; index < histcompare.Slots; index++ {
		lines = append(lines, m.slotLine(histcompare.Slot(index)))
	}

	if m.editing >= 0 {
		lines = append(lines, fmt.Sprintf("New %s:", histcompare.Slot(m.editing)), m.input.View())
	} else {
		lines = append(lines, helpStyle.Render("b brightness • c color • m/tab toggle • 1/2 change image • q quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// slotLine describes the state of a slot.
func (m *model) slotLine(slot histcompare.Slot) string {
	marker := "◀"
	if slot == histcompare.Second {
		marker = "▶"
	}
	line := slotStyles[slot].Render(fmt.Sprintf("%s %s", marker, slot)) +
		fmt.Sprintf(" [%s] %s", m.session.State(slot), m.session.Locator(slot))
	if err := m.session.Err(slot); err != nil {
		line += " " + errorStyle.Render(err.Error())
	}
	return line
}

// placeholder fills the chart area when there is nothing to draw.
func (m *model) placeholder() string {
	columns, rows := m.cells.Grid()
	blank := strings.Repeat(" ", columns)
	lines := make([]string, rows)
	for index := range lines {
		lines[index] = blank
	}
	message := "no histogram"
	if len(message) <= columns {
		lines[rows/2] = lipgloss.PlaceHorizontal(columns, lipgloss.Center, message)
	}
	return strings.Join(lines, "\n")
}
