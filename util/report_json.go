package util

import (
	"encoding/json"
)

// TimeLayout is the timestamp format of the generated field, UTC with
// second precision.
const TimeLayout = "2006-01-02T15:04:05Z"

// reportDocument is the serialized shape of a report. Map keys are sorted
// by encoding/json, so two runs over identical inputs produce identical,
// diffable documents.
type reportDocument struct {
	Generated string                                  `json:"generated"`
	Versions  []EntitySummary                         `json:"versions"`
	Data      map[string]map[string]map[string]int    `json:"data"`
	Files     map[string]map[string]map[string]string `json:"files,omitempty"`
	Templates map[string]map[string]string            `json:"templates"`
	BranchMap map[string]string                       `json:"branchMap,omitempty"`
}

// MarshalJSONReport renders the report as an indented JSON document for the
// status dashboard feed.
func MarshalJSONReport(report *Report) ([]byte, error) {
	doc := reportDocument{
		Generated: report.Generated.Format(TimeLayout),
		Versions:  report.Versions,
		Data:      report.Data,
		Files:     report.Files,
		Templates: report.Templates,
		BranchMap: report.BranchMap,
	}
	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
