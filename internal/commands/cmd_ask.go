package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/urfave/cli/v3"

	"github.com/tubetui/tubetui/internal/core/handoff"
	"github.com/tubetui/tubetui/internal/tui"
)

// AskCmd opens an AI chat session directly.
type AskCmd struct {
	flags *Flags

	message string
}

// NewAskCmd creates a new ask command.
func NewAskCmd(flags *Flags) *AskCmd {
	return &AskCmd{flags: flags}
}

// Register adds the ask command to the application.
func (cmd *AskCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ask",
		Usage:     "Open an AI chat session",
		UsageText: "tubetui ask [--message <text>] [handoff-ref]",
		Description: `Opens the AI chat screen directly. The draft can be seeded either with
--message or with a handoff reference produced by the comment explorer
(tubetui://ask?message=...). An explicit --message wins over the reference.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "message",
				Aliases:     []string{"m"},
				Usage:       "pre-fill the chat draft with this text",
				Destination: &cmd.message,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *AskCmd) run(ctx context.Context, c *cli.Command) error {
	seed := cmd.message
	if seed == "" {
		if ref := c.Args().First(); ref != "" {
			decoded, ok := handoff.Decode(ref)
			if !ok {
				return fmt.Errorf("invalid handoff reference %q", ref)
			}
			seed = decoded
		}
	}

	cfg := cmd.flags.Config
	m := tui.NewModel(tui.Options{
		Retriever:   cmd.flags.CommentsClient(),
		Answerer:    cmd.flags.ChatClient(),
		PageSize:    cfg.TUI.PageSize,
		CopyCommand: cfg.TUI.CopyCommand,
		User:        cmd.flags.AuthClient().Snapshot(),
		InitialSeed: seed,
		StartInChat: true,
	})

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
