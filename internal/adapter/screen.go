package adapter

import (
	"fmt"
	"os/exec"
	"strings"

	"wallcraft/internal/domain"
)

// DetectResolution queries xrandr for the active display mode. Only the
// first active output is considered.
func DetectResolution() (domain.Resolution, error) {
	out, err := exec.Command("xrandr").Output()
	if err != nil {
		return domain.Resolution{}, fmt.Errorf("unable to determine screen resolution: %w", err)
	}
	return parseXrandr(string(out))
}

// parseXrandr finds the mode line flagged with '*' (the active mode) and
// parses its leading WIDTHxHEIGHT field.
func parseXrandr(out string) (domain.Resolution, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "*") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		res, err := domain.ParseResolution(fields[0])
		if err != nil {
			continue
		}
		return res, nil
	}
	return domain.Resolution{}, fmt.Errorf("no active display mode in xrandr output")
}
