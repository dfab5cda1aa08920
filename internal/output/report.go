package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// GenerateReport renders the report in the given format and writes it to
// filename, or to w when filename is empty. "all" writes console, CSV and
// JSON files side by side using filename as the base name.
func GenerateReport(w io.Writer, report *Report, format, filename string) error {
	if NormalizeFormatName(format) == "all" {
		return generateAll(report, filename)
	}
	f, err := Lookup(format)
	if err != nil {
		return err
	}
	if filename != "" {
		_, err := WriteFormatted(f, report, filename)
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func generateAll(report *Report, base string) error {
	for _, f := range builtInFormatters {
		name := ""
		if base != "" {
			name = strings.TrimSuffix(base, filepath.Ext(base)) + "." + f.Extension()
		}
		if _, err := WriteFormatted(f, report, name); err != nil {
			return fmt.Errorf("%s output: %w", f.Name(), err)
		}
	}
	return nil
}
