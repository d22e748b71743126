// Package chat implements the AI chat session view.
package chat

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tubetui/tubetui/internal/core/auth"
	"github.com/tubetui/tubetui/internal/core/chat"
	"github.com/tubetui/tubetui/internal/core/styles"
)

const (
	askTimeout  = 30 * time.Second
	inputHeight = 3
)

// Answerer produces an assistant answer for a question.
type Answerer interface {
	Ask(ctx context.Context, question string) (string, error)
}

// BackMsg asks the root model to leave the chat and return to exploration.
type BackMsg struct{}

// CopiedMsg reports that the latest answer reached the clipboard.
type CopiedMsg struct{}

type answerMsg struct {
	seq  uint64
	text string
	err  error
}

// View is the Bubble Tea sub-model for a chat session.
type View struct {
	session  *chat.Session
	answerer Answerer

	input       textarea.Model
	vp          viewport.Model
	spin        spinner.Model
	copyCommand string
	user        auth.Snapshot
	log         zerolog.Logger

	width  int
	height int
}

// New creates a chat view. A non-empty seed pre-fills the draft so the user
// can edit before sending. The user snapshot only affects message labels.
func New(answerer Answerer, copyCommand, seed string, user auth.Snapshot) View {
	session := chat.NewSession()

	ta := textarea.New()
	ta.Placeholder = "Type your message..."
	ta.SetHeight(inputHeight)
	ta.SetWidth(60)
	ta.Focus()

	if seed != "" && session.SeedDraft(seed) {
		ta.SetValue(seed)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	vp := viewport.New(
		viewport.WithWidth(60),
		viewport.WithHeight(10),
	)

	v := View{
		session:     session,
		answerer:    answerer,
		input:       ta,
		vp:          vp,
		spin:        s,
		copyCommand: copyCommand,
		user:        user,
		log: log.With().
			Str("component", "chat").
			Str("session", session.ID()).
			Logger(),
	}
	v.refreshTranscript()
	return v
}

// SessionID returns the underlying session identifier.
func (v View) SessionID() string {
	return v.session.ID()
}

// Init returns the initial commands for the chat view.
func (v View) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions and reflows the transcript.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height

	transcriptHeight := max(height-inputHeight-4, 3)
	v.vp = viewport.New(viewport.WithWidth(width), viewport.WithHeight(transcriptHeight))
	v.input.SetWidth(max(width-2, 20))
	v.refreshTranscript()
}

// Update handles messages for the chat view.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		return v.handleAnswer(msg)
	case spinner.TickMsg:
		if !v.session.Awaiting() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd
	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v View) handleAnswer(msg answerMsg) (View, tea.Cmd) {
	if msg.err != nil {
		if v.session.FailTransport(msg.seq) {
			v.log.Debug().Err(msg.err).Uint64("seq", msg.seq).Msg("chat request failed")
			v.refreshTranscript()
		}
		return v, nil
	}
	if v.session.Resolve(msg.seq, msg.text) {
		v.refreshTranscript()
	}
	return v, nil
}

func (v View) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg { return BackMsg{} }
	case "enter":
		return v.send()
	case "shift+enter":
		// The draft is locked while a request is outstanding; keep the
		// textarea in step with it.
		if v.session.Awaiting() {
			return v, nil
		}
		v.input.SetValue(v.input.Value() + "\n")
		v.session.SetDraft(v.input.Value())
		return v, nil
	case "ctrl+y":
		return v, v.copyLastAnswer()
	case "ctrl+l":
		v.session.Clear()
		v.input.SetValue("")
		v.refreshTranscript()
		return v, nil
	case "pgup":
		v.vp.ScrollUp(3)
		return v, nil
	case "pgdown":
		v.vp.ScrollDown(3)
		return v, nil
	}

	if v.session.Awaiting() {
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.session.SetDraft(v.input.Value())
	return v, cmd
}

func (v View) send() (View, tea.Cmd) {
	req, ok := v.session.Send()
	if !ok {
		return v, nil
	}

	v.input.SetValue("")
	v.refreshTranscript()
	v.log.Debug().Uint64("seq", req.Seq).Msg("question sent")
	return v, tea.Batch(
		askCmd(v.answerer, req),
		v.spin.Tick,
	)
}

func (v View) copyLastAnswer() tea.Cmd {
	var last string
	for _, m := range v.session.Transcript() {
		if m.Sender == chat.SenderAssistant {
			last = m.Text
		}
	}
	if last == "" || v.copyCommand == "" {
		return nil
	}

	copyCommand := v.copyCommand
	logger := v.log
	return func() tea.Msg {
		parts := strings.Fields(copyCommand)
		cmd := exec.Command(parts[0], parts[1:]...)
		cmd.Stdin = strings.NewReader(last)
		if err := cmd.Run(); err != nil {
			// Clipboard failures are logged, never surfaced.
			logger.Debug().Err(err).Msg("clipboard copy failed")
			return nil
		}
		return CopiedMsg{}
	}
}

func (v *View) refreshTranscript() {
	v.vp.SetContent(v.renderTranscript())
	v.vp.GotoBottom()
}

func (v View) renderTranscript() string {
	var b strings.Builder
	for _, m := range v.session.Transcript() {
		if m.Sender == chat.SenderUser {
			b.WriteString(styles.UserBubbleStyle.Render(v.userLabel()))
			b.WriteString("\n")
			b.WriteString(m.Text)
		} else {
			b.WriteString(styles.AssistantBubbleStyle.Render("AI"))
			b.WriteString("\n")
			b.WriteString(v.renderMarkdown(m.Text))
		}
		b.WriteString("\n")
		b.WriteString(styles.MessageTimeStyle.Render(m.Timestamp.Format("15:04")))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v View) userLabel() string {
	if v.user.LoggedIn && v.user.FirstName != "" {
		return v.user.FirstName
	}
	return "You"
}

func (v View) renderMarkdown(text string) string {
	wrapWidth := 60
	if v.width > 0 {
		wrapWidth = max(v.width-4, 20)
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return text
	}
	rendered, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(rendered, "\n")
}

// View renders the chat view.
func (v View) View() string {
	var sections []string

	sections = append(sections, styles.TitleStyle.Render("AI Chat"))
	sections = append(sections, v.vp.View())

	if v.session.Awaiting() {
		sections = append(sections,
			lipgloss.JoinHorizontal(lipgloss.Left, v.spin.View(), " Thinking..."))
	} else if errText := v.session.LastError(); errText != "" {
		sections = append(sections, styles.InlineErrStyle.Render(errText))
	}

	sections = append(sections, styles.InputFocusStyle.Render(v.input.View()))
	sections = append(sections, styles.HelpStyle.Render(
		"enter send • shift+enter newline • ctrl+y copy answer • ctrl+l clear • esc back"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func askCmd(a Answerer, req chat.Request) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
		defer cancel()

		text, err := a.Ask(ctx, req.Question)
		return answerMsg{seq: req.Seq, text: text, err: err}
	}
}
