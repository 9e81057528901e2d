package theme

import (
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultThemeName = "kanagawa"

// --- Kanagawa Dragon (dark) palette ---
const (
	kanagawaDarkGreen              = "#98BB6C"
	kanagawaDarkYellow             = "#FF9E3B"
	kanagawaDarkRed                = "#FF5D62"
	kanagawaDarkOrange             = "#FFA066"
	kanagawaDarkCyan               = "#7E9CD8"
	kanagawaDarkBlue               = "#7FB4CA"
	kanagawaDarkViolet             = "#957FB8"
	kanagawaDarkLightText          = "#DCD7BA"
	kanagawaDarkMutedText          = "#727169"
	kanagawaDarkBorder             = "#363646"
	kanagawaDarkSelectedBackground = "#223249"
	kanagawaDarkSubtleBackground   = "#1F1F28"
)

// --- Kanagawa Wave (light-inspired) palette ---
const (
	kanagawaLightGreen              = "#4E7C5A"
	kanagawaLightYellow             = "#A68A64"
	kanagawaLightRed                = "#C34043"
	kanagawaLightOrange             = "#CC6B4E"
	kanagawaLightCyan               = "#5B8BBE"
	kanagawaLightBlue               = "#4F7CAC"
	kanagawaLightViolet             = "#674D7A"
	kanagawaLightLightText          = "#2B2F42"
	kanagawaLightMutedText          = "#6C7086"
	kanagawaLightBorder             = "#B5BDC5"
	kanagawaLightSelectedBackground = "#E2E6F3"
	kanagawaLightSubtleBackground   = "#F7F7FB"
)

// --- Gruvbox palette ---
const (
	gruvboxDarkGreen               = "#B8BB26"
	gruvboxLightGreen              = "#98971A"
	gruvboxDarkYellow              = "#FABD2F"
	gruvboxLightYellow             = "#D79921"
	gruvboxDarkRed                 = "#FB4934"
	gruvboxLightRed                = "#CC241D"
	gruvboxDarkOrange              = "#FE8019"
	gruvboxLightOrange             = "#D65D0E"
	gruvboxDarkCyan                = "#83A598"
	gruvboxLightCyan               = "#458588"
	gruvboxDarkBlue                = "#458588"
	gruvboxLightBlue               = "#076678"
	gruvboxDarkViolet              = "#B16286"
	gruvboxLightViolet             = "#8F3F71"
	gruvboxDarkLightText           = "#EBDBB2"
	gruvboxLightLightText          = "#3C3836"
	gruvboxDarkMutedText           = "#BDAE93"
	gruvboxLightMutedText          = "#928374"
	gruvboxDarkBorder              = "#504945"
	gruvboxLightBorder             = "#D5C4A1"
	gruvboxDarkSelectedBackground  = "#32302F"
	gruvboxLightSelectedBackground = "#F2E5BC"
	gruvboxDarkSubtleBackground    = "#282828"
	gruvboxLightSubtleBackground   = "#FBF1C7"
)

// --- Terminal (ANSI-friendly) palette ---
const (
	terminalGreen              = "2"
	terminalYellow             = "3"
	terminalRed                = "1"
	terminalOrange             = "208"
	terminalCyan               = "6"
	terminalBlue               = "4"
	terminalViolet             = "5"
	terminalLightText          = "7"
	terminalMutedText          = "8"
	terminalBorder             = "8"
	terminalSelectedBackground = "8"
	terminalSubtleBackground   = "0"
)

// Colors encapsulates the palette used by a theme. lipgloss.TerminalColor
// allows a mix of adaptive and static colors.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Blue               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
	SubtleBackground   lipgloss.TerminalColor
}

// Theme holds the pre-configured styles used to draw a dashboard.
type Theme struct {
	Name   string
	Colors Colors

	// Dashboard chrome
	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Hint      lipgloss.Style

	// Cards
	Card      lipgloss.Style // Bordered container for a single card
	CardTitle lipgloss.Style
	CardError lipgloss.Style // Placeholder card for renderers that could not be created

	// Entity rows
	EntityName lipgloss.Style
	StateOn    lipgloss.Style
	StateOff   lipgloss.Style
	StateOther lipgloss.Style
	Muted      lipgloss.Style

	// Status indicators
	Error   lipgloss.Style
	Warning lipgloss.Style
	Accent  lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"kanagawa": newKanagawaColors,
	"gruvbox":  newGruvboxColors,
	"terminal": newTerminalColors,
}

var themeAliases = map[string]string{
	"default":         defaultThemeName,
	"kanagawa-dark":   "kanagawa",
	"kanagawa-dragon": "kanagawa",
	"kanagawa-wave":   "kanagawa",
	"gruvbox-dark":    "gruvbox",
	"gruvbox-light":   "gruvbox",
	"ansi":            "terminal",
}

// DefaultTheme is the theme used when nothing else has been applied. It
// honours MASONRY_THEME.
var DefaultTheme = NewThemeWithName(getThemeName())

// NewThemeWithName constructs a theme from a built-in palette name. Unknown
// names fall back to the default palette.
func NewThemeWithName(name string) *Theme {
	return NewThemeFromColors(resolveThemeColors(name), NormalizeName(name))
}

// NewThemeFromColors builds the full style set for a palette.
func NewThemeFromColors(colors Colors, name string) *Theme {
	return &Theme{
		Name:   name,
		Colors: colors,

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.LightText).
			MarginBottom(1),

		Tab: lipgloss.NewStyle().
			Foreground(colors.MutedText).
			Padding(0, 1),

		ActiveTab: lipgloss.NewStyle().
			Foreground(colors.LightText).
			Background(colors.SelectedBackground).
			Bold(true).
			Padding(0, 1),

		Hint: lipgloss.NewStyle().
			Foreground(colors.MutedText),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Padding(0, 1),

		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Violet),

		CardError: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Red).
			Foreground(colors.Red).
			Padding(0, 1),

		EntityName: lipgloss.NewStyle().
			Foreground(colors.LightText),

		StateOn: lipgloss.NewStyle().
			Foreground(colors.Yellow).
			Bold(true),

		StateOff: lipgloss.NewStyle().
			Faint(true),

		StateOther: lipgloss.NewStyle().
			Foreground(colors.Cyan),

		Muted: lipgloss.NewStyle().
			Faint(true),

		Error: lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(colors.Yellow).
			Bold(true),

		Accent: lipgloss.NewStyle().
			Foreground(colors.Violet).
			Bold(true),
	}
}

// BuiltinNames lists the palettes that ship with masonry, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func resolveThemeColors(name string) Colors {
	key := NormalizeName(name)
	if alias, ok := themeAliases[key]; ok {
		key = alias
	}
	if builder, ok := themeRegistry[key]; ok {
		return builder()
	}
	return themeRegistry[defaultThemeName]()
}

// NormalizeName lowercases a theme id and folds spaces and underscores to dashes.
func NormalizeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return normalized
}

func getThemeName() string {
	if name := NormalizeName(os.Getenv("MASONRY_THEME")); name != "" {
		return name
	}
	return defaultThemeName
}

func newKanagawaColors() Colors {
	return Colors{
		Green:              lipgloss.AdaptiveColor{Light: kanagawaLightGreen, Dark: kanagawaDarkGreen},
		Yellow:             lipgloss.AdaptiveColor{Light: kanagawaLightYellow, Dark: kanagawaDarkYellow},
		Red:                lipgloss.AdaptiveColor{Light: kanagawaLightRed, Dark: kanagawaDarkRed},
		Orange:             lipgloss.AdaptiveColor{Light: kanagawaLightOrange, Dark: kanagawaDarkOrange},
		Cyan:               lipgloss.AdaptiveColor{Light: kanagawaLightCyan, Dark: kanagawaDarkCyan},
		Blue:               lipgloss.AdaptiveColor{Light: kanagawaLightBlue, Dark: kanagawaDarkBlue},
		Violet:             lipgloss.AdaptiveColor{Light: kanagawaLightViolet, Dark: kanagawaDarkViolet},
		LightText:          lipgloss.AdaptiveColor{Light: kanagawaLightLightText, Dark: kanagawaDarkLightText},
		MutedText:          lipgloss.AdaptiveColor{Light: kanagawaLightMutedText, Dark: kanagawaDarkMutedText},
		Border:             lipgloss.AdaptiveColor{Light: kanagawaLightBorder, Dark: kanagawaDarkBorder},
		SelectedBackground: lipgloss.AdaptiveColor{Light: kanagawaLightSelectedBackground, Dark: kanagawaDarkSelectedBackground},
		SubtleBackground:   lipgloss.AdaptiveColor{Light: kanagawaLightSubtleBackground, Dark: kanagawaDarkSubtleBackground},
	}
}

func newGruvboxColors() Colors {
	return Colors{
		Green:              lipgloss.AdaptiveColor{Light: gruvboxLightGreen, Dark: gruvboxDarkGreen},
		Yellow:             lipgloss.AdaptiveColor{Light: gruvboxLightYellow, Dark: gruvboxDarkYellow},
		Red:                lipgloss.AdaptiveColor{Light: gruvboxLightRed, Dark: gruvboxDarkRed},
		Orange:             lipgloss.AdaptiveColor{Light: gruvboxLightOrange, Dark: gruvboxDarkOrange},
		Cyan:               lipgloss.AdaptiveColor{Light: gruvboxLightCyan, Dark: gruvboxDarkCyan},
		Blue:               lipgloss.AdaptiveColor{Light: gruvboxLightBlue, Dark: gruvboxDarkBlue},
		Violet:             lipgloss.AdaptiveColor{Light: gruvboxLightViolet, Dark: gruvboxDarkViolet},
		LightText:          lipgloss.AdaptiveColor{Light: gruvboxLightLightText, Dark: gruvboxDarkLightText},
		MutedText:          lipgloss.AdaptiveColor{Light: gruvboxLightMutedText, Dark: gruvboxDarkMutedText},
		Border:             lipgloss.AdaptiveColor{Light: gruvboxLightBorder, Dark: gruvboxDarkBorder},
		SelectedBackground: lipgloss.AdaptiveColor{Light: gruvboxLightSelectedBackground, Dark: gruvboxDarkSelectedBackground},
		SubtleBackground:   lipgloss.AdaptiveColor{Light: gruvboxLightSubtleBackground, Dark: gruvboxDarkSubtleBackground},
	}
}

func newTerminalColors() Colors {
	return Colors{
		Green:              lipgloss.Color(terminalGreen),
		Yellow:             lipgloss.Color(terminalYellow),
		Red:                lipgloss.Color(terminalRed),
		Orange:             lipgloss.Color(terminalOrange),
		Cyan:               lipgloss.Color(terminalCyan),
		Blue:               lipgloss.Color(terminalBlue),
		Violet:             lipgloss.Color(terminalViolet),
		LightText:          lipgloss.Color(terminalLightText),
		MutedText:          lipgloss.Color(terminalMutedText),
		Border:             lipgloss.Color(terminalBorder),
		SelectedBackground: lipgloss.Color(terminalSelectedBackground),
		SubtleBackground:   lipgloss.Color(terminalSubtleBackground),
	}
}
