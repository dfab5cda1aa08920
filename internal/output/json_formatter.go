package output

import (
	"encoding/json"
)

// JSONFormatter serializes the report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(report *Report) ([]byte, error) {
	if err := report.validate(); err != nil {
		return nil, err
	}
	return json.MarshalIndent(report, "", "  ")
}
