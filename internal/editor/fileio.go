package editor

import "os"

// FileIO abstracts buffer persistence so tests can run without
// touching the real filesystem.
type FileIO interface {
	// Read returns the full contents of the file at path.
	Read(path string) (string, error)
	// Write replaces the file at path with text, creating it if
	// needed.
	Write(path, text string) error
}

// OSFileIO is the production FileIO backed by the operating system.
type OSFileIO struct{}

// Read implements FileIO.
func (OSFileIO) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write implements FileIO. Files are created with mode 0644.
func (OSFileIO) Write(path, text string) error {
	return os.WriteFile(path, []byte(text), 0o644)
}
