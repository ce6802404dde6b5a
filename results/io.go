package results

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes an extraction record to a JSON file
func WriteJSON(extraction *Extraction, filename string) error {
	data, err := json.MarshalIndent(extraction, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal extraction: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// ReadJSON reads an extraction record from a JSON file
func ReadJSON(filename string) (*Extraction, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var extraction Extraction
	if err := json.Unmarshal(data, &extraction); err != nil {
		return nil, fmt.Errorf("unmarshal extraction: %w", err)
	}

	return &extraction, nil
}

// ToJSON converts an extraction record to a JSON string
func ToJSON(extraction *Extraction) (string, error) {
	data, err := json.MarshalIndent(extraction, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FromJSON parses an extraction record from a JSON string
func FromJSON(jsonStr string) (*Extraction, error) {
	var extraction Extraction
	if err := json.Unmarshal([]byte(jsonStr), &extraction); err != nil {
		return nil, err
	}
	return &extraction, nil
}
