package adapter

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// cronMarker tags the crontab lines this tool owns, so Remove never
// touches entries the user wrote themselves.
const cronMarker = "# wallcraft:auto"

// Crontab manages the automatic-switch entry in the user's crontab.
type Crontab struct {
	logger *slog.Logger
}

func NewCrontab(logger *slog.Logger) *Crontab {
	if logger == nil {
		logger = slog.Default()
	}
	return &Crontab{logger: logger}
}

// InstallHours schedules a switch every n hours.
func (c *Crontab) InstallHours(n int) error {
	return c.install(fmt.Sprintf("0 */%d * * *", n))
}

// InstallMinutes schedules a switch every n minutes.
func (c *Crontab) InstallMinutes(n int) error {
	return c.install(fmt.Sprintf("*/%d * * * *", n))
}

func (c *Crontab) install(schedule string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("cannot locate executable for cron entry: %w", err)
	}

	lines, err := c.readForeignLines()
	if err != nil {
		return err
	}
	entry := fmt.Sprintf("%s DISPLAY=%s %s next-cron %s", schedule, os.Getenv("DISPLAY"), exe, cronMarker)
	lines = append(lines, entry)
	return c.write(lines)
}

// Remove drops every entry this tool installed.
func (c *Crontab) Remove() error {
	lines, err := c.readForeignLines()
	if err != nil {
		return err
	}
	return c.write(lines)
}

// readForeignLines returns the current crontab with our marked entries
// stripped, leaving only lines the user wrote themselves.
func (c *Crontab) readForeignLines() ([]string, error) {
	out, err := exec.Command("crontab", "-l").Output()
	if err != nil {
		// An empty crontab makes `crontab -l` exit non-zero; start fresh.
		c.logger.Debug("no existing crontab", "error", err)
		return nil, nil
	}
	var kept []string
	for _, line := range strings.Split(strings.TrimRight(string(out), "\n"), "\n") {
		if line == "" || strings.Contains(line, cronMarker) {
			continue
		}
		kept = append(kept, line)
	}
	return kept, nil
}

func (c *Crontab) write(lines []string) error {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	cmd := exec.Command("crontab", "-")
	cmd.Stdin = &buf
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to write crontab: %v: %s", err, out)
	}
	return nil
}
