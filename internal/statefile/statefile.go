// Package statefile mirrors the last committed fan speed in a
// runtime text file so a restarted process can recover it. The file
// is a write-through cache: the controller's in-memory value stays
// authoritative while the process lives.
package statefile

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Read returns the persisted speed. Absent, unreadable, corrupt or
// out-of-range content all read as "no prior value".
func (s *Store) Read() (int, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, false
	}
	speed, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || speed < 0 || speed > 100 {
		return 0, false
	}
	return speed, true
}

// Write persists the speed, best effort.
func (s *Store) Write(speed int) error {
	return os.WriteFile(s.path, []byte(fmt.Sprintf("%d\n", speed)), 0o644)
}
