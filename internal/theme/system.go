package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SystemSetting is the configuration value that defers to the terminal.
const SystemSetting = "system"

// ResolveDefault maps a configured default ("light", "dark" or "system") to
// a concrete Preference. detectDark is consulted only for "system"; pass nil
// to use the terminal background query.
func ResolveDefault(setting string, detectDark func() bool) (Preference, error) {
	if strings.EqualFold(strings.TrimSpace(setting), SystemSetting) {
		if detectDark == nil {
			detectDark = lipgloss.HasDarkBackground
		}
		if detectDark() {
			return Dark, nil
		}
		return Light, nil
	}
	if setting == "" {
		return Dark, nil
	}
	p, ok := Parse(setting)
	if !ok {
		return "", fmt.Errorf("unknown theme %q", setting)
	}
	return p, nil
}
