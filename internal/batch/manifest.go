package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame    int     `json:"frame"`
	Angle    float32 `json:"angle"`
	File     string  `json:"file"`
	Thumb    string  `json:"thumb,omitempty"`
	Checksum string  `json:"xxhash"`
}

// Manifest is the document written by WriteManifest.
type Manifest struct {
	RunID  string          `json:"run_id"`
	Frames []ManifestEntry `json:"frames"`
	Failed []int           `json:"failed,omitempty"`
}

// WriteManifest writes manifest.json for one run. Failed frames are listed by
// index only.
func WriteManifest(path, runID string, results []Result) error {
	m := Manifest{RunID: runID, Frames: make([]ManifestEntry, 0, len(results))}
	for _, r := range results {
		if !r.Success {
			m.Failed = append(m.Failed, r.Frame)
			continue
		}
		m.Frames = append(m.Frames, ManifestEntry{
			Frame:    r.Frame,
			Angle:    r.Angle,
			File:     r.File,
			Thumb:    r.Thumb,
			Checksum: fmt.Sprintf("%016x", r.Checksum),
		})
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
