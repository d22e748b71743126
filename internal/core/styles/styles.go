// Package styles provides shared lipgloss v2 styles for the TUI.
package styles

import (
	"image/color"
	"sort"

	lipgloss "charm.land/lipgloss/v2"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    color.Color
	Secondary  color.Color
	Foreground color.Color
	Muted      color.Color
	Background color.Color
	Surface    color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	TitleStyle      lipgloss.Style
	SubtitleStyle   lipgloss.Style
	TextMutedStyle  lipgloss.Style
	TextErrorStyle  lipgloss.Style
	InlineErrStyle  lipgloss.Style
	HelpStyle       lipgloss.Style
	SpinnerStyle    lipgloss.Style
	InputStyle      lipgloss.Style
	InputFocusStyle lipgloss.Style

	// Comment list styles.
	AuthorStyle       lipgloss.Style
	TimestampStyle    lipgloss.Style
	LikeCountStyle    lipgloss.Style
	CommentStyle      lipgloss.Style
	CommentFocusStyle lipgloss.Style
	ReplyStyle        lipgloss.Style

	// Pagination styles.
	PageActiveStyle   lipgloss.Style
	PageInactiveStyle lipgloss.Style

	// Chat transcript styles.
	UserBubbleStyle      lipgloss.Style
	AssistantBubbleStyle lipgloss.Style
	MessageTimeStyle     lipgloss.Style

	// Toast styles.
	ToastInfoStyle    lipgloss.Style
	ToastSuccessStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	SubtitleStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)
	TextMutedStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	TextErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	InlineErrStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Italic(true)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	SpinnerStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)

	InputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	InputFocusStyle = InputStyle.
		BorderForeground(ColorPrimary)

	AuthorStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	TimestampStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	LikeCountStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)
	CommentStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(ColorSurface).
		PaddingLeft(1)
	CommentFocusStyle = CommentStyle.
		BorderForeground(ColorPrimary)
	ReplyStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		PaddingLeft(4)

	PageActiveStyle = lipgloss.NewStyle().
		Foreground(p.Background).
		Background(ColorPrimary).
		Padding(0, 1).
		Bold(true)
	PageInactiveStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 1)

	UserBubbleStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 1)
	AssistantBubbleStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	MessageTimeStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	ToastInfoStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSecondary).
		Padding(0, 1)
	ToastSuccessStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSuccess).
		Padding(0, 1)
	ToastErrorStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorError).
		Padding(0, 1)
}

func init() {
	SetTheme(themes[DefaultTheme])
}
