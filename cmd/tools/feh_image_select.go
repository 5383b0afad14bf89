package tools

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"syscall"
)

// FehSelectImage shows the images of directory in feh. Pressing <ENTER> on
// an image closes feh and returns that image's path. Closing feh without a
// selection yields an empty path.
func FehSelectImage(directory string) (string, error) {
	if _, err := exec.LookPath("feh"); err != nil {
		return "", fmt.Errorf("feh not available: %w", err)
	}

	cmd := exec.Command(
		"feh",
		"--action", "echo %F",
		directory,
	)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", err
	}

	if err := cmd.Start(); err != nil {
		return "", err
	}

	var selected string

	scanner := bufio.NewScanner(stdout)
	if scanner.Scan() {
		selected = strings.TrimSpace(scanner.Text())

		if err := cmd.Process.Signal(syscall.SIGTERM); err != nil {
			return selected, err
		}
	}

	if _, err := io.Copy(io.Discard, stdout); err != nil {
		return selected, err
	}

	// feh exits non-zero when terminated after a selection.
	if err := cmd.Wait(); err != nil && selected == "" {
		return "", err
	}

	return selected, nil
}
