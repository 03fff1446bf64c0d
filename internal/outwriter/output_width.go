package outwriter

import (
	"os"

	"golang.org/x/term"

	"github.com/huangsam/gitpulse/internal/contract"
)

// GetMaxTableEntityWidth calculates the maximum width for entity names in
// table output based on terminal width and table configuration.
func GetMaxTableEntityWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the rank and count columns plus borders and padding
	available := termWidth - 30
	if available < 15 {
		return 15
	}
	if available > 60 {
		return 60
	}
	return available
}
