package adapter

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const dbusKey = "DBUS_SESSION_BUS_ADDRESS"

// AdoptSessionBus makes the session D-Bus address available when running
// outside the desktop session (from cron). It scans this user's processes
// for one that carries the variable and copies it into our environment.
func AdoptSessionBus(logger *slog.Logger) {
	if os.Getenv(dbusKey) != "" {
		return
	}

	dirs, err := filepath.Glob("/proc/[0-9]*/environ")
	if err != nil {
		return
	}
	for _, path := range dirs {
		data, err := os.ReadFile(path)
		if err != nil {
			// Not our process; /proc only lets us read our own environs.
			continue
		}
		for _, entry := range strings.Split(string(data), "\x00") {
			if value, ok := strings.CutPrefix(entry, dbusKey+"="); ok && value != "" {
				logger.Debug("adopted session bus address", "from", path)
				os.Setenv(dbusKey, value)
				return
			}
		}
	}
	logger.Warn("no session bus address found; wallpaper change may not apply")
}
