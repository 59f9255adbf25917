package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// Package session holds the authenticated twin identity between runs,
// the CLI analog of the browser client's stored twinId/authToken. Every
// command that touches the backend requires a session; without one the
// operation aborts before any network call.

// ErrNoSession means no twin is logged in.
var ErrNoSession = errors.New("no active session: please log in again with 'twinctl login'")

// Session identifies the twin all backend calls are scoped to. The twin
// id is the partition key for every entity and is never mutated after
// login.
type Session struct {
	TwinID    string    `json:"twinId"`
	AuthToken string    `json:"authToken,omitempty"`
	SavedAt   time.Time `json:"savedAt"`
}

// DefaultPath returns the session file location, ~/.twinctl/session.json.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".twinctl", "session.json")
	return path, err
}

// Load reads the session file. A missing file or a file without a twin
// id yields ErrNoSession.
func Load(path string) (s Session, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = ErrNoSession
			return s, err
		}
		err = errors.Wrapf(err, "failed to read session file: %s", path)
		return s, err
	}

	err = json.Unmarshal(data, &s)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse session file: %s", path)
		return s, err
	}

	if s.TwinID == "" {
		err = ErrNoSession
		return s, err
	}

	return s, err
}

// Save writes the session file, creating the directory if needed.
func Save(path string, s Session) (err error) {
	if s.TwinID == "" {
		err = errors.New("twin id is required")
		return err
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create session directory: %s", dir)
		return err
	}

	s.SavedAt = time.Now()

	var data []byte
	data, err = json.MarshalIndent(s, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal session")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write session file: %s", path)
		return err
	}

	return err
}

// Clear removes the session file. Clearing a missing session is a
// no-op.
func Clear(path string) (err error) {
	err = os.Remove(path)
	if os.IsNotExist(err) {
		err = nil
		return err
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to remove session file: %s", path)
		return err
	}
	return err
}
