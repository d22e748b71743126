package explore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog/log"

	"github.com/tubetui/tubetui/internal/api"
	"github.com/tubetui/tubetui/internal/core/comments"
	"github.com/tubetui/tubetui/internal/core/sanitize"
	"github.com/tubetui/tubetui/internal/core/styles"
)

const fetchTimeout = 30 * time.Second

// CommentRetriever fetches the comment corpus for a video.
type CommentRetriever interface {
	Fetch(ctx context.Context, videoID string) (api.Corpus, error)
}

// PromoteMsg asks the root model to open a chat session seeded from the
// selected comment.
type PromoteMsg struct {
	HandoffRef string
}

type fetchResultMsg struct {
	seq    uint64
	corpus api.Corpus
	err    error
}

// View is the Bubble Tea sub-model for browsing a video's comments.
type View struct {
	ctrl      *Controller
	retriever CommentRetriever

	urlInput    textinput.Model
	searchInput textinput.Model
	searching   bool

	spin   spinner.Model
	width  int
	height int
}

// New creates the explore view. An initial reference, when non-empty, is
// fetched immediately on Init.
func New(retriever CommentRetriever, pageSize int, initialRef string) View {
	url := textinput.New()
	url.Placeholder = "https://www.youtube.com/watch?v=..."
	url.CharLimit = 200
	url.SetWidth(60)
	urlStyles := textinput.DefaultStyles(true)
	urlStyles.Cursor.Color = styles.ColorPrimary
	url.SetStyles(urlStyles)
	url.Focus()

	search := textinput.New()
	search.Placeholder = "Search comments..."
	search.CharLimit = 100
	search.SetWidth(40)
	search.SetStyles(urlStyles)

	if initialRef != "" {
		url.SetValue(initialRef)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	return View{
		ctrl:        NewController(pageSize),
		retriever:   retriever,
		urlInput:    url,
		searchInput: search,
		spin:        s,
	}
}

// Init starts the initial fetch when a reference was supplied.
func (v View) Init() tea.Cmd {
	if v.urlInput.Value() == "" {
		return nil
	}
	return v.submitURL()
}

// Update handles messages for the explore view.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchResultMsg:
		return v.handleFetchResult(msg)
	case spinner.TickMsg:
		if v.ctrl.Phase() != PhaseLoading {
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

// HasEditorFocus reports whether a text input is capturing keystrokes.
func (v View) HasEditorFocus() bool {
	return v.ctrl.Phase() == PhaseIdle || v.searching
}

// SetSize updates the view dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
}

func (v View) handleFetchResult(msg fetchResultMsg) (View, tea.Cmd) {
	if msg.err != nil {
		if v.ctrl.LoadFailed(msg.seq, msg.err.Error()) {
			log.Debug().Err(msg.err).Msg("comment fetch failed")
		}
		return v, nil
	}
	if v.ctrl.Loaded(msg.seq, msg.corpus.Comments, msg.corpus.VideoTitle) {
		v.urlInput.Blur()
	}
	return v, nil
}

func (v View) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch v.ctrl.Phase() {
	case PhaseIdle:
		return v.handleIdleKey(msg)
	case PhaseLoading:
		if msg.String() == "esc" {
			v.ctrl.Close()
			v.urlInput.Focus()
		}
		return v, nil
	case PhaseBrowsing:
		if v.searching {
			return v.handleSearchKey(msg)
		}
		return v.handleBrowseKey(msg)
	}
	return v, nil
}

func (v View) handleIdleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	if msg.String() == "enter" {
		return v, v.submitURL()
	}
	var cmd tea.Cmd
	v.urlInput, cmd = v.urlInput.Update(msg)
	return v, cmd
}

func (v View) handleSearchKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		v.searching = false
		v.searchInput.Blur()
		return v, nil
	case "esc":
		v.searching = false
		v.searchInput.Blur()
		v.searchInput.SetValue("")
		v.ctrl.SetQuery("")
		return v, nil
	default:
		var cmd tea.Cmd
		v.searchInput, cmd = v.searchInput.Update(msg)
		v.ctrl.SetQuery(v.searchInput.Value())
		return v, cmd
	}
}

func (v View) handleBrowseKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		v.ctrl.MoveUp()
	case "down", "j":
		v.ctrl.MoveDown()
	case "left", "h":
		v.ctrl.PrevPage()
	case "right", "l":
		v.ctrl.NextPage()
	case "enter":
		v.ctrl.ToggleReplies()
	case "/":
		v.searching = true
		return v, v.searchInput.Focus()
	case "a":
		if ref, ok := v.ctrl.Promote(); ok {
			return v, func() tea.Msg { return PromoteMsg{HandoffRef: ref} }
		}
	case "esc":
		v.ctrl.Close()
		v.searching = false
		v.searchInput.SetValue("")
		v.urlInput.Focus()
	}
	return v, nil
}

func (v View) submitURL() tea.Cmd {
	_, seq, ok := v.ctrl.StartFetch(v.urlInput.Value())
	if !ok {
		return nil
	}
	return tea.Batch(
		fetchCmd(v.retriever, v.ctrl.VideoID(), seq),
		v.spin.Tick,
	)
}

// View renders the explore view for the current phase.
func (v View) View() string {
	switch v.ctrl.Phase() {
	case PhaseLoading:
		return v.renderLoading()
	case PhaseBrowsing:
		return v.renderBrowsing()
	default:
		return v.renderIdle()
	}
}

func (v View) renderIdle() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("tubetui"))
	b.WriteString("\n\n")
	b.WriteString(styles.SubtitleStyle.Render("Enter a YouTube video URL to explore its comments"))
	b.WriteString("\n\n")
	b.WriteString(styles.InputFocusStyle.Render(v.urlInput.View()))
	b.WriteString("\n")

	if err := v.ctrl.Err(); err != "" {
		b.WriteString("\n")
		b.WriteString(styles.InlineErrStyle.Render(err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("enter load comments • ctrl+c quit"))
	return b.String()
}

func (v View) renderLoading() string {
	line := lipgloss.JoinHorizontal(lipgloss.Left, v.spin.View(), " Loading comments...")
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("tubetui"),
		"",
		line,
		"",
		styles.HelpStyle.Render("esc cancel"),
	)
}

func (v View) renderBrowsing() string {
	var b strings.Builder

	ix := v.ctrl.Index()

	title := v.ctrl.VideoTitle()
	if title == "" {
		title = v.ctrl.VideoID()
	}
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString(" ")
	b.WriteString(styles.TextMutedStyle.Render(fmt.Sprintf("(%d comments)", ix.Len())))
	b.WriteString("\n")

	if v.searching {
		b.WriteString(styles.SubtitleStyle.Render("Search: "))
		b.WriteString(v.searchInput.View())
		b.WriteString("\n")
	} else if ix.Query() != "" {
		b.WriteString(styles.TextMutedStyle.Render(fmt.Sprintf("Search: %s", ix.Query())))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	page := ix.CurrentPage()
	if len(page) == 0 {
		if ix.Query() != "" {
			b.WriteString(styles.TextMutedStyle.Render("  No matching comments"))
		} else {
			b.WriteString(styles.TextMutedStyle.Render("  No comments"))
		}
		b.WriteString("\n")
	}

	for i := range page {
		v.renderComment(&b, &page[i], i == v.ctrl.Cursor())
	}

	b.WriteString("\n")
	b.WriteString(v.renderPagination())
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("↑/↓ navigate • ←/→ page • enter replies • / search • a ask AI • esc back"))
	return b.String()
}

func (v View) renderComment(b *strings.Builder, c *comments.Comment, selected bool) {
	marker := "  "
	if selected {
		marker = styles.CommentFocusStyle.Render("┃") + " "
	}

	header := styles.AuthorStyle.Render(c.Author.AuthorName()) +
		" " + styles.TimestampStyle.Render(comments.FormatPublished(c.PublishedAt)) +
		" " + styles.LikeCountStyle.Render(fmt.Sprintf("♥ %d", c.LikeCount))
	b.WriteString(marker)
	b.WriteString(header)
	b.WriteString("\n")

	textStyle := styles.CommentStyle
	if selected {
		textStyle = styles.CommentFocusStyle
	}
	for _, line := range strings.Split(sanitize.Clean(c.DisplayText()), "\n") {
		b.WriteString("  ")
		b.WriteString(textStyle.Render(line))
		b.WriteString("\n")
	}

	if len(c.Replies) > 0 {
		if v.ctrl.Expanded(c.ID) {
			for i := range c.Replies {
				v.renderReply(b, &c.Replies[i])
			}
		} else {
			b.WriteString("  ")
			b.WriteString(styles.TextMutedStyle.Render(fmt.Sprintf("▸ %d replies", len(c.Replies))))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
}

func (v View) renderReply(b *strings.Builder, r *comments.Reply) {
	b.WriteString("    ")
	b.WriteString(styles.AuthorStyle.Render(r.Author.AuthorName()))
	b.WriteString(" ")
	b.WriteString(styles.TimestampStyle.Render(comments.FormatPublished(r.PublishedAt)))
	b.WriteString("\n")
	for _, line := range strings.Split(sanitize.CleanReply(r.DisplayText()), "\n") {
		b.WriteString("    ")
		b.WriteString(styles.ReplyStyle.Render(line))
		b.WriteString("\n")
	}
}

func (v View) renderPagination() string {
	ix := v.ctrl.Index()
	total := ix.TotalPages()
	if total <= 1 {
		return styles.TextMutedStyle.Render("page 1 of 1")
	}

	var parts []string
	for _, n := range ix.PaginationRange() {
		label := fmt.Sprintf(" %d ", n)
		if n == ix.Page() {
			parts = append(parts, styles.PageActiveStyle.Render(label))
		} else {
			parts = append(parts, styles.PageInactiveStyle.Render(label))
		}
	}
	bar := strings.Join(parts, " ")
	return bar + " " + styles.TextMutedStyle.Render(fmt.Sprintf("page %d of %d", ix.Page(), total))
}

func fetchCmd(r CommentRetriever, videoID string, seq uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		corpus, err := r.Fetch(ctx, videoID)
		return fetchResultMsg{seq: seq, corpus: corpus, err: err}
	}
}
