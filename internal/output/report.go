package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/taxplan/planner/internal/domain"
)

// GenerateReport renders report with the named formatter and writes it to w.
func GenerateReport(w io.Writer, report *domain.TaxReport, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// SaveReport renders report with the named formatter into a timestamped file in dir.
func SaveReport(report *domain.TaxReport, format, dir string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return WriteFormatted(f, report, dir, FileExtension(format))
}
