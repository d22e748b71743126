package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tubetui/tubetui/pkg/tuitest"
)

func TestToastController_Push(t *testing.T) {
	c := NewToastController()

	c.Push(ToastSuccess, "Copied!")

	assert.True(t, c.HasToasts())
	assert.Len(t, c.toasts, 1)
	assert.Equal(t, "Copied!", c.toasts[0].message)
	assert.Equal(t, toastTTL, c.toasts[0].remaining)
}

func TestToastController_Push_evicts_oldest_at_max(t *testing.T) {
	c := NewToastController()

	for i := range maxToasts + 2 {
		c.Push(ToastInfo, fmt.Sprintf("toast %d", i))
	}

	assert.Len(t, c.toasts, maxToasts)
	assert.Equal(t, "toast 2", c.toasts[0].message)
}

func TestToastController_Tick_decrements_TTL(t *testing.T) {
	c := NewToastController()
	c.Push(ToastInfo, "tick")

	c.Tick(1 * time.Second)

	assert.Equal(t, toastTTL-1*time.Second, c.toasts[0].remaining)
}

func TestToastController_Tick_removes_expired(t *testing.T) {
	c := NewToastController()
	c.Push(ToastInfo, "expires")
	c.Push(ToastInfo, "survives")

	c.toasts[0].remaining = 50 * time.Millisecond
	c.Tick(100 * time.Millisecond)

	assert.Len(t, c.toasts, 1)
	assert.Equal(t, "survives", c.toasts[0].message)
}

func TestToastController_View(t *testing.T) {
	c := NewToastController()
	assert.Empty(t, c.View())

	c.Push(ToastSuccess, "Copied!")
	assert.Contains(t, tuitest.StripANSI(c.View()), "Copied!")
}

func TestToastController_Overlay(t *testing.T) {
	c := NewToastController()
	bg := "background content"

	assert.Equal(t, bg, c.Overlay(bg, 80, 24), "no toasts leaves background untouched")

	c.Push(ToastError, "Copy failed")
	out := tuitest.StripANSI(c.Overlay(bg, 80, 24))
	assert.Contains(t, out, "Copy failed")
}

func TestToastController_Ticking(t *testing.T) {
	c := NewToastController()
	assert.False(t, c.Ticking())

	c.SetTicking(true)
	assert.True(t, c.Ticking())

	c.SetTicking(false)
	assert.False(t, c.Ticking())
}
