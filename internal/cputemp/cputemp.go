// Package cputemp provides CPU temperature sources. Sources never
// fail: any read problem yields the 0.0 sentinel, since a missing
// reading must not take the control loop down.
package cputemp

import (
	"os"
	"strconv"
	"strings"

	"github.com/oblq/argonfc/internal/exec"
)

// FileSource reads a sysfs thermal zone file holding millidegrees,
// e.g. /sys/class/thermal/thermal_zone0/temp.
type FileSource struct {
	Path string
}

func (s *FileSource) Read() float64 {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return 0
	}
	milli, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0
	}
	return milli / 1000.0
}

// CommandSource runs a command expected to print a temperature in
// number format, the temp_cmd config option.
type CommandSource struct {
	Cmd string
}

func (s *CommandSource) Read() float64 {
	out, err := exec.CommandPipe(s.Cmd)
	if err != nil {
		return 0
	}
	temp, err := strconv.ParseFloat(strings.Trim(out, " ."), 64)
	if err != nil {
		return 0
	}
	return temp
}
