package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/urfave/cli/v3"

	"github.com/tubetui/tubetui/internal/tui"
)

// BrowseCmd opens the interactive comment explorer.
type BrowseCmd struct {
	flags *Flags
}

// NewBrowseCmd creates a new browse command.
func NewBrowseCmd(flags *Flags) *BrowseCmd {
	return &BrowseCmd{flags: flags}
}

// Register adds the browse command to the application.
func (cmd *BrowseCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "browse",
		Usage:     "Explore the comments of a YouTube video",
		UsageText: "tubetui browse [video-url]",
		Description: `Opens the interactive comment explorer. A video URL or bare 11-character
video ID may be given to load its comments immediately; otherwise the
explorer starts with a URL prompt.`,
		Action: cmd.Run,
	})
	return app
}

// Run executes the browse TUI. Exported for use as the default command.
func (cmd *BrowseCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(c.Args().First())
}

func (cmd *BrowseCmd) run(initialRef string) error {
	cfg := cmd.flags.Config

	m := tui.NewModel(tui.Options{
		Retriever:   cmd.flags.CommentsClient(),
		Answerer:    cmd.flags.ChatClient(),
		PageSize:    cfg.TUI.PageSize,
		CopyCommand: cfg.TUI.CopyCommand,
		User:        cmd.flags.AuthClient().Snapshot(),
		InitialRef:  initialRef,
	})

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
