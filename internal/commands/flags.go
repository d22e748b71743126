// Package commands implements the CLI commands for tubetui.
package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/tubetui/tubetui/internal/api"
	"github.com/tubetui/tubetui/internal/core/config"
)

// Flags holds global flag values shared by all commands.
type Flags struct {
	LogLevel   string
	LogFile    string
	APIURL     string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands.
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tubetui", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tubetui")
}

func (f *Flags) apiTimeout() time.Duration {
	return time.Duration(f.Config.API.TimeoutSeconds) * time.Second
}

// CommentsClient builds the comment retrieval client from the loaded config.
func (f *Flags) CommentsClient() *api.CommentsClient {
	return api.NewCommentsClient(f.Config.API.BaseURL, f.apiTimeout())
}

// ChatClient builds the answering client from the loaded config.
func (f *Flags) ChatClient() *api.ChatClient {
	return api.NewChatClient(f.Config.API.BaseURL, f.apiTimeout())
}

// AuthClient builds the auth client from the loaded config.
func (f *Flags) AuthClient() *api.AuthClient {
	return api.NewAuthClient(f.Config.API.BaseURL, f.Config.DataDir, f.apiTimeout())
}
