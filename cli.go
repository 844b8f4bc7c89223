package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"runtime"
	"strings"

	"github.com/mutasim/xfer/internal/config"
	xfererrors "github.com/mutasim/xfer/internal/errors"
	"github.com/mutasim/xfer/internal/location"
	"github.com/mutasim/xfer/internal/transfer"
)

// version is set at build time via -ldflags
var version = "dev"

// Config holds the global flags shared by all commands
type Config struct {
	Verbose bool
	DryRun  bool
}

// SendCommand handles local-to-remote (or local-to-local) transfers
type SendCommand struct {
	*Config
	Source      string
	Destination string
}

// GetCommand handles remote-to-local transfers
type GetCommand struct {
	*Config
	Source      string
	Destination string
	Recursive   bool
}

// SyncCommand handles directory synchronization
type SyncCommand struct {
	*Config
	Source      string
	Destination string
}

// ListCommand lists a remote directory
type ListCommand struct {
	*Config
	Target string
}

// ServerAddCommand interactively adds a server entry
type ServerAddCommand struct {
	*Config
}

// ServerListCommand prints all configured servers
type ServerListCommand struct {
	*Config
}

// ServerRemoveCommand deletes a server entry
type ServerRemoveCommand struct {
	*Config
	Alias string
}

// ServerDefaultCommand sets the default server
type ServerDefaultCommand struct {
	*Config
	Alias string
}

// VersionCommand shows version information
type VersionCommand struct {
	*Config
	Short bool
}

// Run executes the send command
func (c *SendCommand) Run(ctx context.Context) error {
	return runTransfer(ctx, c.Config, "Sending", c.Source, c.Destination, false)
}

// Run executes the get command
func (c *GetCommand) Run(ctx context.Context) error {
	return runTransfer(ctx, c.Config, "Getting", c.Source, c.Destination, c.Recursive)
}

// Run executes the sync command
func (c *SyncCommand) Run(ctx context.Context) error {
	return runTransfer(ctx, c.Config, "Syncing", c.Source, c.Destination, false)
}

// runTransfer is the shared dispatch path behind send, get, and sync
func runTransfer(ctx context.Context, cfg *Config, verb, source, destination string, recursive bool) error {
	store, err := loadConfigOnboarding(cfg)
	if err != nil {
		return err
	}

	src, err := location.Parse(source, store)
	if err != nil {
		return xfererrors.NewLocationError(source, err)
	}
	dst, err := location.Parse(destination, store)
	if err != nil {
		return xfererrors.NewLocationError(destination, err)
	}

	fmt.Println(successStyle.Render(verb) + " " + source + successStyle.Render(" to ") + destination)

	dispatcher := transfer.NewDispatcher(getLogger(cfg.Verbose), cfg.DryRun)
	if err := dispatcher.Transfer(ctx, src, dst, recursive); err != nil {
		// Verbose runs get the classified error before fang renders it
		xfererrors.NewErrorHandler(getLogger(cfg.Verbose), cfg.Verbose).Handle(err)
		return err
	}

	if !cfg.DryRun {
		fmt.Println(successStyle.Render("✓ Done"))
	}
	return nil
}

// Run executes the list command
func (c *ListCommand) Run(ctx context.Context) error {
	store, err := loadConfigOnboarding(c.Config)
	if err != nil {
		return err
	}

	target := c.Target
	if target == "" {
		if store.DefaultServer == "" {
			return fmt.Errorf("no default server configured; use 'xfer list alias[:path]' or 'xfer server default alias'")
		}
		target = store.DefaultServer
	}

	// A bare alias means the server's base directory
	if !strings.Contains(target, ":") {
		target += ":"
	}

	loc, err := location.Parse(target, store)
	if err != nil {
		return xfererrors.NewLocationError(target, err)
	}
	if !loc.IsRemote() {
		return fmt.Errorf("listing requires a remote location (alias:/path)")
	}

	fmt.Println(successStyle.Render("Listing ") + loc.Path + successStyle.Render(" on ") + loc.Alias)

	dispatcher := transfer.NewDispatcher(getLogger(c.Verbose), c.DryRun)
	if err := dispatcher.List(ctx, loc); err != nil {
		xfererrors.NewErrorHandler(getLogger(c.Verbose), c.Verbose).Handle(err)
		return err
	}
	return nil
}

// Run executes the server add command
func (c *ServerAddCommand) Run(ctx context.Context) error {
	store, err := config.Load()
	if err != nil {
		return err
	}
	return addServerInteractive(store, getLogger(c.Verbose))
}

// Run executes the server list command
func (c *ServerListCommand) Run(ctx context.Context) error {
	store, err := config.Load()
	if err != nil {
		return err
	}

	if len(store.Servers) == 0 {
		fmt.Println(warningStyle.Render("No servers configured. Add one with 'xfer server add'."))
		return nil
	}

	fmt.Println(headerStyle.Render("Configured Servers"))
	for _, alias := range store.Aliases() {
		srv := store.Servers[alias]
		line := "  " + warningStyle.Render(alias) + " - " + infoStyle.Render(srv.User+"@"+srv.Host)
		if srv.Port != 0 {
			line += infoStyle.Render(fmt.Sprintf(":%d", srv.Port))
		}
		fmt.Println(line)
		if srv.DefaultRemotePath != "" {
			fmt.Println("    path: " + srv.DefaultRemotePath)
		}
		if store.DefaultServer == alias {
			fmt.Println("    " + successStyle.Render("DEFAULT"))
		}
	}
	return nil
}

// Run executes the server remove command
func (c *ServerRemoveCommand) Run(ctx context.Context) error {
	store, err := config.Load()
	if err != nil {
		return err
	}
	if err := store.RemoveServer(c.Alias); err != nil {
		return err
	}
	if err := store.Save(); err != nil {
		return err
	}
	fmt.Println(successStyle.Render("Removed server " + c.Alias))
	return nil
}

// Run executes the server default command
func (c *ServerDefaultCommand) Run(ctx context.Context) error {
	store, err := config.Load()
	if err != nil {
		return err
	}
	if err := store.SetDefault(c.Alias); err != nil {
		return err
	}
	if err := store.Save(); err != nil {
		return err
	}
	fmt.Println(successStyle.Render("Default server set to " + c.Alias))
	return nil
}

// Run executes the version command
func (c *VersionCommand) Run(ctx context.Context) error {
	if c.Short {
		fmt.Println(version)
		return nil
	}

	fmt.Printf("%s %s\n", AppName, version)
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Printf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}

// loadConfigOnboarding loads the config store and, on a first run with no
// servers, walks the user through adding one
func loadConfigOnboarding(cfg *Config) (*config.Config, error) {
	store, err := config.Load()
	if err != nil {
		return nil, err
	}

	if len(store.Servers) == 0 {
		if err := runOnboarding(store, getLogger(cfg.Verbose)); err != nil {
			return nil, err
		}
	}

	return store, nil
}

func getLogger(verbose bool) *log.Logger {
	if verbose {
		return log.Default()
	}
	return log.New(io.Discard, "", 0)
}
