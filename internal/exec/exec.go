// Package exec runs configured shell pipelines, such as the optional
// temp_cmd temperature probe.
package exec

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// CommandPipe runs cmdString through bash so that pipes and
// substitutions work, returning trimmed stdout.
func CommandPipe(cmdString string) (string, error) {
	cmd := exec.Command("bash", "-c", cmdString)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%v: %s", err, stderr.String())
	}

	return strings.TrimSuffix(stdout.String(), "\n"), nil
}
