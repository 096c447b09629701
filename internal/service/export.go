package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/turkuspot/spotbot/internal/domain"
)

var exportHeader = []string{
	"id", "pseudonym", "submission_type", "standard_selections", "custom_inputs",
	"latitude", "longitude", "venue_title", "venue_address", "additional_info",
	"age", "gender", "occupation", "time_in_turku", "timestamp",
}

// ExportService writes the submission table out as a spreadsheet-friendly
// CSV file.
type ExportService struct {
	submissions domain.SubmissionRepository
}

// NewExportService creates a new ExportService
func NewExportService(subs domain.SubmissionRepository) *ExportService {
	return &ExportService{submissions: subs}
}

// Export writes all submissions to a timestamped CSV file under dir and
// returns the file path. The file is semicolon-delimited with every field
// quoted and starts with a UTF-8 BOM so spreadsheet tools pick the right
// encoding and separator.
func (s *ExportService) Export(dir string) (string, error) {
	rows, err := s.submissions.ExportRows()
	if err != nil {
		return "", fmt.Errorf("failed to read submissions: %w", err)
	}

	var b strings.Builder
	b.WriteString("\uFEFF")
	writeLine(&b, exportHeader)
	for _, row := range rows {
		writeLine(&b, []string{
			fmt.Sprintf("%d", row.ID),
			row.Pseudonym,
			row.Type,
			row.StandardSelections,
			row.CustomInputs,
			row.Latitude,
			row.Longitude,
			row.VenueTitle,
			row.VenueAddress,
			row.AdditionalInfo,
			row.Age,
			row.Gender,
			row.Occupation,
			row.TimeInTurku,
			row.Timestamp,
		})
	}

	name := fmt.Sprintf("city_issue_data_export_%d.csv", time.Now().Unix())
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}

// writeLine quotes every field unconditionally, doubling inner quotes
func writeLine(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
