package input

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avoronov/waymark/internal/model"
	"github.com/avoronov/waymark/internal/parse"
)

// ErrAborted is returned when the user quits the wizard without
// finishing, so nothing gets written.
var ErrAborted = errors.New("entry aborted")

type wizardStep int

const (
	stepCoordinates wizardStep = iota
	stepName
	stepStartDate
	stepEndDate
)

var wizardPrompts = [...]string{
	stepCoordinates: `Coordinates as "lat, lon"`,
	stepName:        "Name (optional)",
	stepStartDate:   "Start date ddmmyyyy (blank if unknown)",
	stepEndDate:     "End date ddmmyyyy (blank if unknown)",
}

var wizardPlaceholders = [...]string{
	stepCoordinates: "37.7749, -122.4194",
	stepName:        "San Francisco",
	stepStartDate:   "15012024",
	stepEndDate:     "20012024",
}

type wizardModel struct {
	input   textinput.Model
	step    wizardStep
	answers [4]string
	records []model.LocationRecord
	parser  *parse.Parser
	errMsg  string
	done    bool
	aborted bool
}

func newWizard(parser *parse.Parser) wizardModel {
	ti := textinput.New()
	ti.Placeholder = wizardPlaceholders[stepCoordinates]
	ti.CharLimit = 80
	ti.Width = 42
	ti.Focus()

	return wizardModel{
		input:  ti,
		parser: parser,
	}
}

func (m wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit

		case "enter":
			value := strings.TrimSpace(m.input.Value())

			if m.step == stepCoordinates && strings.EqualFold(value, "done") {
				m.done = true
				return m, tea.Quit
			}
			if m.step == stepCoordinates && value == "" {
				return m, nil
			}

			m.answers[m.step] = value
			m.input.SetValue("")

			if m.step < stepEndDate {
				m.step++
				m.input.Placeholder = wizardPlaceholders[m.step]
				return m, nil
			}
			return m.finishRecord(), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// finishRecord validates the answers of the completed cycle. A rejected
// cycle is reported and restarted from the coordinates step, matching
// the plain prompter.
func (m wizardModel) finishRecord() wizardModel {
	fields := recordFields(m.answers[stepCoordinates], m.answers[stepName], m.answers[stepStartDate], m.answers[stepEndDate])

	rec, err := m.parser.ParseFields(fields, len(m.records)+1, 0)
	if err != nil {
		m.errMsg = err.Error()
	} else {
		m.records = append(m.records, rec)
		m.errMsg = ""
	}

	m.answers = [4]string{}
	m.step = stepCoordinates
	m.input.Placeholder = wizardPlaceholders[stepCoordinates]
	return m
}

func (m wizardModel) View() string {
	if m.aborted {
		return "Aborted, nothing written.\n"
	}
	if m.done {
		return fmt.Sprintf("Collected %d record(s).\n", len(m.records))
	}

	// Styles
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FF87")).
		Padding(1, 0)

	addedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5FAF5F"))

	errStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF5F5F"))

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Padding(1, 0)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Waymark Record Entry"))
	b.WriteString("\n")

	for _, rec := range m.records {
		line := fmt.Sprintf("✓ #%d %s (%g, %g), %s", rec.Number, rec.Name, rec.Latitude, rec.Longitude, describeStay(rec))
		b.WriteString(addedStyle.Render(line))
		b.WriteString("\n")
	}
	if len(m.records) > 0 {
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString(errStyle.Render("⚠ " + m.errMsg))
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "Record #%d\n%s\n%s\n", len(m.records)+1, wizardPrompts[m.step], m.input.View())

	controls := `Controls:
  ENTER   - Next field
  'done'  - Finish and write the document
  ESC     - Abort without writing`
	b.WriteString(helpStyle.Render(controls))
	b.WriteString("\n")

	return b.String()
}

// RunWizard collects records through the full-screen entry form and
// returns them once the user finishes. Aborting returns ErrAborted.
// Frames render to out, never to stdout, which may carry the document.
func RunWizard(in io.Reader, out io.Writer, parser *parse.Parser) ([]model.LocationRecord, error) {
	final, err := tea.NewProgram(newWizard(parser), tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return nil, fmt.Errorf("run entry form: %w", err)
	}

	m := final.(wizardModel)
	if m.aborted {
		return nil, ErrAborted
	}
	return m.records, nil
}
