package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/parththirwani/tally/internal/models"
	"github.com/parththirwani/tally/internal/timeutil"
)

// Exporter writes a report in one output format.
type Exporter interface {
	Export(r *Report, w io.Writer) error
	Extension() string
}

// NewExporter creates an exporter for the given format.
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "json":
		return &JSONExporter{}, nil
	case "csv":
		return &CSVExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, csv)", format)
	}
}

// JSONExporter exports a report as pretty-printed JSON.
type JSONExporter struct{}

type jsonSession struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	Duration        string `json:"duration"`
	DurationSeconds int64  `json:"durationSeconds"`
	Project         string `json:"project"`
	Tag             string `json:"tag"`
	Note            string `json:"note"`
}

type jsonReport struct {
	Period       string        `json:"period"`
	Sessions     []jsonSession `json:"sessions"`
	TotalSeconds int64         `json:"totalSeconds"`
}

// Export writes the report as indented JSON with RFC 3339 timestamps.
func (e *JSONExporter) Export(r *Report, w io.Writer) error {
	out := jsonReport{
		Period:       r.Label,
		Sessions:     make([]jsonSession, 0, len(r.Sessions)),
		TotalSeconds: r.TotalSeconds,
	}

	for _, s := range r.Sessions {
		out.Sessions = append(out.Sessions, jsonSession{
			Start:           formatTimestamp(&s.StartedAt),
			End:             formatTimestamp(s.EndedAt),
			Duration:        timeutil.FormatDuration(totalOf(&s)),
			DurationSeconds: totalOf(&s),
			Project:         s.Project,
			Tag:             s.Tag,
			Note:            s.Note,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}

// CSVExporter exports a report as comma-separated values with a header row.
type CSVExporter struct{}

// Export writes one row per session.
func (e *CSVExporter) Export(r *Report, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Start", "End", "Duration", "Project", "Tag", "Note"}); err != nil {
		return err
	}

	for _, s := range r.Sessions {
		row := []string{
			formatTimestamp(&s.StartedAt),
			formatTimestamp(s.EndedAt),
			timeutil.FormatDuration(totalOf(&s)),
			s.Project,
			s.Tag,
			s.Note,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Extension returns the file extension for this format
func (e *CSVExporter) Extension() string {
	return "csv"
}

// formatTimestamp renders a timestamp as ISO 8601 with second precision,
// or "" for nil.
func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Truncate(time.Second).Format(time.RFC3339)
}

func totalOf(s *models.Session) int64 {
	if s.TotalSeconds == nil {
		return 0
	}
	return *s.TotalSeconds
}
