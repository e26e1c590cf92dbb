package page

// Theme is the page's light/dark presentation mode.
type Theme int

const (
	Dark Theme = iota
	Light
)

// DefaultTheme is the mode a freshly loaded page starts in.
const DefaultTheme = Dark

// Toggle returns the opposite mode.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) IsDark() bool { return t == Dark }

// RootClass is the class set on <html>; styling rules key off "dark".
func (t Theme) RootClass() string {
	if t == Dark {
		return "dark"
	}
	return ""
}

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}
