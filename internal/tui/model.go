// Package tui wires the exploration and chat views into the root Bubble Tea
// program.
package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/tubetui/tubetui/internal/core/auth"
	"github.com/tubetui/tubetui/internal/core/handoff"
	"github.com/tubetui/tubetui/internal/tui/views/chat"
	"github.com/tubetui/tubetui/internal/tui/views/explore"
)

// Screen selects which view owns the display.
type Screen int

const (
	ScreenExplore Screen = iota
	ScreenChat
)

// Options configures the root model.
type Options struct {
	Retriever   explore.CommentRetriever
	Answerer    chat.Answerer
	PageSize    int
	CopyCommand string

	// User is the signed-in account snapshot, or auth.Anonymous().
	User auth.Snapshot

	// InitialRef is a video reference to load immediately.
	InitialRef string

	// InitialSeed, when non-empty, opens the chat screen directly with the
	// draft pre-filled.
	InitialSeed string
	StartInChat bool
}

// Model is the root Bubble Tea model.
type Model struct {
	opts    Options
	screen  Screen
	explore explore.View
	chat    chat.View
	toasts  *ToastController

	width  int
	height int
}

// NewModel creates the root model.
func NewModel(opts Options) Model {
	m := Model{
		opts:    opts,
		explore: explore.New(opts.Retriever, opts.PageSize, opts.InitialRef),
		chat:    chat.New(opts.Answerer, opts.CopyCommand, opts.InitialSeed, opts.User),
		toasts:  NewToastController(),
	}
	if opts.StartInChat {
		m.screen = ScreenChat
	}
	return m
}

// Init starts the active view.
func (m Model) Init() tea.Cmd {
	if m.screen == ScreenChat {
		return m.chat.Init()
	}
	return m.explore.Init()
}

// Update routes messages to the active view and handles cross-view wiring.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.explore.SetSize(msg.Width, msg.Height)
		m.chat.SetSize(msg.Width, msg.Height)
		return m, nil

	case explore.PromoteMsg:
		seed, ok := handoff.Decode(msg.HandoffRef)
		if !ok {
			return m, nil
		}
		m.chat = chat.New(m.opts.Answerer, m.opts.CopyCommand, seed, m.opts.User)
		m.chat.SetSize(m.width, m.height)
		m.screen = ScreenChat
		log.Debug().Str("session", m.chat.SessionID()).Msg("comment promoted to chat")
		return m, m.chat.Init()

	case chat.BackMsg:
		m.screen = ScreenExplore
		return m, nil

	case chat.CopiedMsg:
		m.toasts.Push(ToastSuccess, "Copied!")
		if !m.toasts.Ticking() {
			m.toasts.SetTicking(true)
			return m, scheduleToastTick()
		}
		return m, nil

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if m.toasts.HasToasts() {
			return m, scheduleToastTick()
		}
		m.toasts.SetTicking(false)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m.routeToActive(msg)
}

func (m Model) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Keys go to the active view only; async results are delivered to both
	// so a response still lands after switching screens.
	if _, isKey := msg.(tea.KeyMsg); isKey {
		var cmd tea.Cmd
		if m.screen == ScreenChat {
			m.chat, cmd = m.chat.Update(msg)
		} else {
			m.explore, cmd = m.explore.Update(msg)
		}
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.explore, cmd = m.explore.Update(msg)
	cmds = append(cmds, cmd)
	m.chat, cmd = m.chat.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View renders the active screen with any toast overlays.
func (m Model) View() tea.View {
	var content string
	if m.screen == ScreenChat {
		content = m.chat.View()
	} else {
		content = m.explore.View()
	}
	return tea.NewView(m.toasts.Overlay(content, m.width, m.height))
}
