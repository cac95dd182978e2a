package shell

// Theme is the colour scheme applied to the whole client.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps a stored value to a Theme. Anything unrecognised,
// including the empty string, is light.
func ParseTheme(v string) Theme {
	if Theme(v) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// State is what the shell renders around every page of one device.
type State struct {
	Theme       Theme `json:"theme"`
	SidebarOpen bool  `json:"sidebar_open"`
}
