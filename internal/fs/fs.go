package fs

import (
	"os"
)

// Load reads the whole file at path into memory.
func Load(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Save overwrites the file at path with content. No backup is kept and the
// write is not atomic; a crash mid-write can leave a partial file.
func Save(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
