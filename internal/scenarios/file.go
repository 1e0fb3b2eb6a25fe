package scenarios

import (
	"encoding/json"
	"fmt"
	"os"

	service "github.com/adekau/wvwgg-solver/internal/app"
)

// File permission for written scenario files.
const scenarioFilePermission = 0o600

// Load reads one scenario request from a JSON file.
func Load(path string) (service.Request, error) {
	var req service.Request

	data, err := os.ReadFile(path) //nolint:gosec // path is operator-supplied by design
	if err != nil {
		return req, fmt.Errorf("read scenario file: %w", err)
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("decode scenario file %s: %w", path, err)
	}
	return req, nil
}

// Save writes one scenario request to a JSON file, pretty-printed so the
// files stay hand-editable.
func Save(path string, req service.Request) error {
	data, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scenario: %w", err)
	}
	if err := os.WriteFile(path, data, scenarioFilePermission); err != nil {
		return fmt.Errorf("write scenario file: %w", err)
	}
	return nil
}
