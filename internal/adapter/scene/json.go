package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"molscene/internal/domain"
)

// Write serializes the scene as indented JSON.
func Write(w io.Writer, s *domain.Scene) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scene: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write scene: %w", err)
	}
	return nil
}

// WriteFile serializes the scene to the file at path.
func WriteFile(path string, s *domain.Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, s)
}
