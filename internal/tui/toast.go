package tui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/tubetui/tubetui/internal/core/styles"
)

const (
	toastTTL          = 2 * time.Second
	maxToasts         = 3
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 40
)

// ToastLevel selects the toast's visual treatment.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastError
)

type toast struct {
	level     ToastLevel
	message   string
	remaining time.Duration
}

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastController manages short-lived notification overlays: push, TTL
// countdown, and eviction of the oldest entries.
type ToastController struct {
	toasts  []toast
	ticking bool
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// Push adds a toast. The stack keeps at most maxToasts entries, evicting the
// oldest first.
func (c *ToastController) Push(level ToastLevel, message string) {
	c.toasts = append(c.toasts, toast{
		level:     level,
		message:   message,
		remaining: toastTTL,
	})
	if len(c.toasts) > maxToasts {
		c.toasts = c.toasts[len(c.toasts)-maxToasts:]
	}
}

// Tick decrements the remaining TTL on all toasts by d and drops any that
// have expired.
func (c *ToastController) Tick(d time.Duration) {
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
}

// HasToasts reports whether any toast is still alive.
func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// Ticking reports whether the tick timer is running.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

// SetTicking records the tick timer state.
func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}

// View renders the toast stack, oldest at top.
func (c *ToastController) View() string {
	if len(c.toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(c.toasts))
	for _, t := range c.toasts {
		rendered = append(rendered, renderToast(t))
	}
	return strings.Join(rendered, "\n")
}

func renderToast(t toast) string {
	var style lipgloss.Style
	switch t.level {
	case ToastSuccess:
		style = styles.ToastSuccessStyle
	case ToastError:
		style = styles.ToastErrorStyle
	default:
		style = styles.ToastInfoStyle
	}
	return style.Width(toastWidth).Render(t.message)
}

// Overlay composites the toast stack over background in the lower-right
// corner.
func (c *ToastController) Overlay(background string, width, height int) string {
	content := c.View()
	if content == "" {
		return background
	}

	bgLayer := lipgloss.NewLayer(background)
	toastLayer := lipgloss.NewLayer(content)

	toastW := lipgloss.Width(content)
	toastH := lipgloss.Height(content)

	rightX := max(width-toastW-1, 0)
	bottomY := max(height-toastH, 0)

	toastLayer.X(rightX).Y(bottomY).Z(2)

	compositor := lipgloss.NewCompositor(bgLayer, toastLayer)
	return compositor.Render()
}
