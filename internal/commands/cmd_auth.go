package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/tubetui/tubetui/internal/core/auth"
)

// AuthCmd groups the account commands: login, signup, logout, whoami.
type AuthCmd struct {
	flags *Flags

	email     string
	password  string
	firstName string
	lastName  string
}

// NewAuthCmd creates the auth command group.
func NewAuthCmd(flags *Flags) *AuthCmd {
	return &AuthCmd{flags: flags}
}

// Register adds the account commands to the application.
func (cmd *AuthCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		cmd.loginCmd(),
		cmd.signupCmd(),
		cmd.logoutCmd(),
		cmd.whoamiCmd(),
	)
	return app
}

func (cmd *AuthCmd) credentialFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "email",
			Usage:       "account email (prompted when omitted)",
			Destination: &cmd.email,
		},
		&cli.StringFlag{
			Name:        "password",
			Usage:       "account password (prompted when omitted)",
			Destination: &cmd.password,
		},
	}
}

func (cmd *AuthCmd) loginCmd() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Sign in to the answering service",
		Flags: cmd.credentialFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			creds, err := cmd.readCredentials(false)
			if err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return err
			}

			snapshot, err := cmd.flags.AuthClient().Login(ctx, creds)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			fmt.Printf("Logged in as %s\n", displayName(snapshot))
			return nil
		},
	}
}

func (cmd *AuthCmd) signupCmd() *cli.Command {
	flags := cmd.credentialFlags()
	flags = append(flags,
		&cli.StringFlag{
			Name:        "first-name",
			Usage:       "first name",
			Destination: &cmd.firstName,
		},
		&cli.StringFlag{
			Name:        "last-name",
			Usage:       "last name",
			Destination: &cmd.lastName,
		},
	)

	return &cli.Command{
		Name:  "signup",
		Usage: "Create an account on the answering service",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			creds, err := cmd.readCredentials(true)
			if err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return err
			}

			snapshot, err := cmd.flags.AuthClient().Signup(ctx, auth.SignupData{
				FirstName: cmd.firstName,
				LastName:  cmd.lastName,
				Email:     creds.Email,
				Password:  creds.Password,
			})
			if err != nil {
				return fmt.Errorf("signup: %w", err)
			}

			fmt.Printf("Account created for %s\n", displayName(snapshot))
			return nil
		},
	}
}

func (cmd *AuthCmd) logoutCmd() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Discard the cached session token",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := cmd.flags.AuthClient().Logout(); err != nil {
				return fmt.Errorf("logout: %w", err)
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func (cmd *AuthCmd) whoamiCmd() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the signed-in account",
		Action: func(ctx context.Context, c *cli.Command) error {
			client := cmd.flags.AuthClient()
			if !client.IsAuthenticated() {
				fmt.Println("Not logged in")
				return nil
			}
			fmt.Println(displayName(client.Snapshot()))
			return nil
		},
	}
}

// readCredentials collects whatever the flags did not supply through an
// interactive form. The password field is masked.
func (cmd *AuthCmd) readCredentials(withNames bool) (auth.Credentials, error) {
	var fields []huh.Field
	if cmd.email == "" {
		fields = append(fields,
			huh.NewInput().
				Title("Email").
				Validate(validateRequired("email")).
				Value(&cmd.email))
	}
	if cmd.password == "" {
		fields = append(fields,
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(validateRequired("password")).
				Value(&cmd.password))
	}
	if withNames {
		if cmd.firstName == "" {
			fields = append(fields,
				huh.NewInput().
					Title("First name").
					Value(&cmd.firstName))
		}
		if cmd.lastName == "" {
			fields = append(fields,
				huh.NewInput().
					Title("Last name").
					Value(&cmd.lastName))
		}
	}

	if len(fields) > 0 {
		if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
			return auth.Credentials{}, err
		}
	}

	email := strings.TrimSpace(cmd.email)
	if email == "" || cmd.password == "" {
		return auth.Credentials{}, fmt.Errorf("email and password are required")
	}
	return auth.Credentials{Email: email, Password: cmd.password}, nil
}

func validateRequired(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func displayName(s auth.Snapshot) string {
	name := strings.TrimSpace(s.FirstName + " " + s.LastName)
	if name == "" {
		return s.Email
	}
	return fmt.Sprintf("%s <%s>", name, s.Email)
}
