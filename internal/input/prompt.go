package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/avoronov/waymark/internal/model"
	"github.com/avoronov/waymark/internal/parse"
)

// Prompter collects records through plain line-based prompts. It reads
// from r and writes prompts to w, so tests and piped input can drive it
// without a terminal.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	parser *parse.Parser
}

// NewPrompter returns a prompter that validates entries with parser.
func NewPrompter(r io.Reader, w io.Writer, parser *parse.Parser) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(r),
		out:    w,
		parser: parser,
	}
}

// Collect runs entry cycles until the user types "done" or input ends.
// Each cycle asks for coordinates, a name, and the two travel dates,
// then validates the whole record; a failed cycle is reported and
// re-entered from the start.
func (p *Prompter) Collect() ([]model.LocationRecord, error) {
	fmt.Fprintln(p.out, "Interactive mode. One record per cycle; type 'done' to finish.")
	fmt.Fprintln(p.out)

	var records []model.LocationRecord
	for {
		coords, eof, err := p.ask(`Coordinates as "lat, lon" (or 'done' to finish): `)
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(coords, "done") {
			break
		}
		if coords == "" {
			if eof {
				break
			}
			continue
		}

		var name, start, end string
		if !eof {
			name, eof, err = p.ask("  Name (optional, Enter to skip): ")
			if err != nil {
				return nil, err
			}
		}
		if !eof {
			start, eof, err = p.ask("  Start date ddmmyyyy (Enter if unknown): ")
			if err != nil {
				return nil, err
			}
		}
		if !eof {
			end, eof, err = p.ask("  End date ddmmyyyy (Enter if unknown): ")
			if err != nil {
				return nil, err
			}
		}

		rec, perr := p.parser.ParseFields(recordFields(coords, name, start, end), len(records)+1, 0)
		if perr != nil {
			fmt.Fprintf(p.out, "  ⚠ %v\n\n", perr)
			if eof {
				break
			}
			continue
		}

		records = append(records, rec)
		fmt.Fprintf(p.out, "  ✓ Added #%d: %s (%g, %g), %s\n\n", rec.Number, rec.Name, rec.Latitude, rec.Longitude, describeStay(rec))

		if eof {
			break
		}
	}

	return records, nil
}

// recordFields maps prompt answers onto the parser's field order. The
// coordinate answer may carry extra comma parts; only the first two are
// used, matching the file format. Shared by the plain prompter and the
// wizard so both modes produce identical records.
func recordFields(coords, name, start, end string) []string {
	parts := strings.Split(coords, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	lat := parts[0]
	lon := ""
	if len(parts) > 1 {
		lon = parts[1]
	}

	return []string{lat, lon, name, start, end}
}

// ask prints a prompt and reads one trimmed line. eof reports that the
// input ended; the returned value is still usable for the current
// record.
func (p *Prompter) ask(prompt string) (value string, eof bool, err error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return strings.TrimSpace(line), true, nil
		}
		return "", false, fmt.Errorf("read input: %w", err)
	}

	return strings.TrimSpace(line), false, nil
}

func describeStay(rec model.LocationRecord) string {
	switch rec.Status {
	case model.StatusVisited:
		if rec.DurationDays == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", rec.DurationDays)
	case model.StatusSameDayVisit:
		return "same-day visit"
	default:
		return "not visited yet"
	}
}
