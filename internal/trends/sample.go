package trends

import (
	_ "embed"
	"encoding/json"
)

// sampleData is the curated fallback topic list, compiled into the binary
// so the game works offline.
//
//go:embed sample_trends.json
var sampleData []byte

type sampleFile struct {
	Trends []string `json:"trends"`
}

// SampleTrends returns the curated fallback gaming topics in file order.
func SampleTrends() []string {
	var file sampleFile
	if err := json.Unmarshal(sampleData, &file); err != nil {
		// The file is compiled in; a parse failure is a build defect.
		panic("trends: invalid sample_trends.json: " + err.Error())
	}
	return file.Trends
}
