package input

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronov/waymark/internal/model"
	"github.com/avoronov/waymark/internal/parse"
)

// pressEnter types value into the wizard and submits the field.
func pressEnter(t *testing.T, m wizardModel, value string) wizardModel {
	t.Helper()

	m.input.SetValue(value)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	got, ok := next.(wizardModel)
	if !ok {
		t.Fatalf("Update returned %T, want wizardModel", next)
	}
	return got
}

func TestWizardCollectsRecord(t *testing.T) {
	m := newWizard(parse.NewParser("Point"))

	m = pressEnter(t, m, "37.7749, -122.4194")
	m = pressEnter(t, m, "San Francisco")
	m = pressEnter(t, m, "15012024")
	m = pressEnter(t, m, "20012024")

	if len(m.records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(m.records))
	}
	rec := m.records[0]
	if rec.Name != "San Francisco" || rec.DurationDays != 5 || rec.Status != model.StatusVisited {
		t.Errorf("record = %+v", rec)
	}
	if m.step != stepCoordinates {
		t.Errorf("step = %d, want reset to coordinates", m.step)
	}
}

func TestWizardRejectsInvalidCycle(t *testing.T) {
	m := newWizard(parse.NewParser("Point"))

	m = pressEnter(t, m, "91.5, 0")
	m = pressEnter(t, m, "North of the pole")
	m = pressEnter(t, m, "")
	m = pressEnter(t, m, "")

	if len(m.records) != 0 {
		t.Fatalf("len(records) = %d, want 0", len(m.records))
	}
	if m.errMsg == "" {
		t.Error("errMsg should describe the rejected cycle")
	}
	if m.step != stepCoordinates {
		t.Errorf("step = %d, want reset to coordinates", m.step)
	}

	// The next valid cycle clears the error.
	m = pressEnter(t, m, "35.6762, 139.6503")
	m = pressEnter(t, m, "Tokyo")
	m = pressEnter(t, m, "")
	m = pressEnter(t, m, "")

	if len(m.records) != 1 || m.errMsg != "" {
		t.Errorf("records = %d, errMsg = %q; want 1 record and no error", len(m.records), m.errMsg)
	}
	if m.records[0].Number != 1 {
		t.Errorf("Number = %d, want 1 (rejected cycle takes no slot)", m.records[0].Number)
	}
}

func TestWizardDone(t *testing.T) {
	m := newWizard(parse.NewParser("Point"))

	m = pressEnter(t, m, "48.8566, 2.3522")
	m = pressEnter(t, m, "Paris")
	m = pressEnter(t, m, "")
	m = pressEnter(t, m, "")
	m = pressEnter(t, m, "done")

	if !m.done {
		t.Error("done should be set after typing 'done'")
	}
	if m.aborted {
		t.Error("finishing is not an abort")
	}
	if len(m.records) != 1 {
		t.Errorf("len(records) = %d, want 1", len(m.records))
	}
}

func TestWizardAbort(t *testing.T) {
	m := newWizard(parse.NewParser("Point"))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got := next.(wizardModel)

	if !got.aborted {
		t.Error("esc should abort the wizard")
	}
}

func TestRunWizardRendersToGivenWriter(t *testing.T) {
	in := strings.NewReader("48.8566, 2.3522\rParis\r\r\rdone\r")
	var out bytes.Buffer

	records, err := RunWizard(in, &out, parse.NewParser("Point"))
	if err != nil {
		t.Fatalf("RunWizard returned error: %v", err)
	}

	if len(records) != 1 || records[0].Name != "Paris" {
		t.Fatalf("records = %+v, want one record named Paris", records)
	}
	// Every frame must land on the writer the caller provides, keeping
	// stdout free for the document.
	if !strings.Contains(out.String(), "Collected 1 record(s)") {
		t.Errorf("final frame missing from the provided writer:\n%s", out.String())
	}
}

func TestRunWizardAborted(t *testing.T) {
	in := strings.NewReader("\x03")
	var out bytes.Buffer

	if _, err := RunWizard(in, &out, parse.NewParser("Point")); !errors.Is(err, ErrAborted) {
		t.Fatalf("err = %v, want ErrAborted", err)
	}
}

func TestWizardView(t *testing.T) {
	m := newWizard(parse.NewParser("Point"))
	m = pressEnter(t, m, "37.7749, -122.4194")

	view := m.View()
	if !strings.Contains(view, "Name (optional)") {
		t.Errorf("view should show the name prompt:\n%s", view)
	}
	if !strings.Contains(view, "Record #1") {
		t.Errorf("view should show the record number:\n%s", view)
	}
}
