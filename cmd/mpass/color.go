package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// resolveColor maps --color to a decision and applies it to fatih/color
// globally so version and diagnostics agree.
func resolveColor(mode string, tty bool) (bool, error) {
	var on bool
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		on = tty
	case "on", "always":
		on = true
	case "off", "never":
		on = false
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
	color.NoColor = !on
	return on, nil
}
