// ABOUTME: Durable storage for the TrocaMat auth token
// ABOUTME: Keeps a single token file in the XDG config directory

package token

import (
	"os"
	"path/filepath"
	"strings"
)

// File persists the auth token as a plain file on disk.
// Its absence means an anonymous session.
type File struct {
	configDir string
}

// New creates a token store rooted at the given config directory
func New(configDir string) *File {
	return &File{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "trocamat")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "trocamat")
}

// path returns the token file location
func (f *File) path() string {
	return filepath.Join(f.configDir, "token")
}

// Get reads the persisted token. The second return is false when no
// token is stored.
func (f *File) Get() (string, bool) {
	data, err := os.ReadFile(f.path())
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}
	return token, true
}

// Set writes the token to disk, creating the config directory if needed
func (f *File) Set(token string) error {
	if err := os.MkdirAll(f.configDir, 0700); err != nil {
		return err
	}
	return os.WriteFile(f.path(), []byte(token+"\n"), 0600)
}

// Clear removes the persisted token. A missing file is not an error.
func (f *File) Clear() error {
	err := os.Remove(f.path())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
