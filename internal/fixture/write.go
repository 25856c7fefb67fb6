package fixture

import (
	"fmt"
	"os"
	"path/filepath"
)

const artifactMode = 0o644

// Output is one file produced by a generation run.
type Output struct {
	Path string // Path is the final location of the file.
	Data []byte // Data is the complete file content.
}

// WriteFile replaces path with data atomically: data goes to a temporary file
// in the same directory which is then renamed over path. On failure path is
// left untouched and the temporary file is removed.
func WriteFile(path string, data []byte) error {
	return WriteFiles(Output{Path: path, Data: data})
}

// WriteFiles writes every output or none of them. All outputs are staged as
// temporary files before the first rename; if staging fails every temporary
// file is removed and no output is touched. Renames happen in order, so the
// last output only appears once every earlier one is in place.
func WriteFiles(outputs ...Output) error {
	staged := make([]string, 0, len(outputs))

	for _, out := range outputs {
		name, err := stage(out)
		if err != nil {
			removeAll(staged)
			return err
		}
		staged = append(staged, name)
	}

	for i, out := range outputs {
		if err := os.Rename(staged[i], out.Path); err != nil {
			removeAll(staged[i:])
			return fmt.Errorf("failed to replace %s: %w", out.Path, err)
		}
	}

	return nil
}

func stage(out Output) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(out.Path), "."+filepath.Base(out.Path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(out.Data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("failed to write %s: %w", tmpName, err)
	}

	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("failed to close %s: %w", tmpName, err)
	}

	if err = os.Chmod(tmpName, artifactMode); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("failed to set permissions on %s: %w", tmpName, err)
	}

	return tmpName, nil
}

func removeAll(names []string) {
	for _, name := range names {
		_ = os.Remove(name)
	}
}
