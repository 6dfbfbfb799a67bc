package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallcraft/internal/domain"
)

const xrandrOutput = `Screen 0: minimum 320 x 200, current 1920 x 1080, maximum 16384 x 16384
eDP-1 connected primary 1920x1080+0+0 (normal left inverted right x axis y axis) 344mm x 194mm
   1920x1080     60.01*+  59.97    59.96    59.93
   1680x1050     59.95    59.88
   1280x1024     60.02
HDMI-1 disconnected (normal left inverted right x axis y axis)
`

func TestParseXrandr(t *testing.T) {
	res, err := parseXrandr(xrandrOutput)
	require.NoError(t, err)
	assert.Equal(t, domain.Resolution{Width: 1920, Height: 1080}, res)
}

func TestParseXrandrNoActiveMode(t *testing.T) {
	_, err := parseXrandr("HDMI-1 disconnected (normal left inverted right x axis y axis)\n")
	assert.Error(t, err)

	_, err = parseXrandr("")
	assert.Error(t, err)
}
