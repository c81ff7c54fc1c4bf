package variants

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/promptvary/internal/variantgen"
)

// Write persists records as an indented JSON array at path, written
// once and overwriting any prior file. Records are schema-checked
// before anything touches the disk.
func Write(path string, records []variantgen.Record) error {
	if err := validateRecords(records); err != nil {
		return fmt.Errorf("validate records: %w", err)
	}

	// An empty run still produces a valid file.
	if records == nil {
		records = []variantgen.Record{}
	}

	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	raw = append(raw, '\n')

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Read loads and schema-checks a previously written variant file.
func Read(path string) ([]variantgen.Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records []variantgen.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := validateRecords(records); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
