package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/mutasim/xfer/internal/config"
	xfererrors "github.com/mutasim/xfer/internal/errors"
	"github.com/mutasim/xfer/internal/security"
)

// runOnboarding walks a first-time user through adding a server entry before
// the requested command proceeds
func runOnboarding(store *config.Config, logger *log.Logger) error {
	fmt.Println(warningStyle.Render("No server configurations found. Let's add one now."))
	return addServerInteractive(store, logger)
}

// addServerInteractive prompts for a server entry, validates it, and saves
// the config. Used by both onboarding and 'xfer server add'.
func addServerInteractive(store *config.Config, logger *log.Logger) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf(ErrNotATerminal)
	}

	var (
		alias       string
		host        string
		user        string
		keyPath     string
		portStr     string
		defaultPath string
		setDefault  bool
	)

	// Suggest a discovered key so most users can just hit Enter
	if home, err := os.UserHomeDir(); err == nil {
		keyPath = discoverSSHKey(home, logger)
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("Server alias").
			Description("Short name used in location strings, e.g. 'gcp' or 'aws-ec2'").
			Value(&alias).
			Validate(security.ValidateAlias),
		huh.NewInput().
			Title("Host address").
			Description("Hostname or IP, e.g. 'example.com' or '10.0.0.1'").
			Value(&host).
			Validate(security.ValidateHostname),
		huh.NewInput().
			Title("Username").
			Value(&user).
			Validate(security.ValidateUsername),
		huh.NewInput().
			Title("SSH key path").
			Description("Optional, leave blank for none").
			Value(&keyPath),
		huh.NewInput().
			Title("SSH port").
			Description("Optional, default is 22").
			Value(&portStr).
			Validate(validatePortInput),
		huh.NewInput().
			Title("Default remote path").
			Description("Optional base directory for relative remote paths").
			Value(&defaultPath),
	}

	if store.DefaultServer == "" {
		fields = append(fields,
			huh.NewConfirm().
				Title("Set as default server?").
				Value(&setDefault),
		)
	}

	form := huh.NewForm(huh.NewGroup(fields...).
		Title(headerStyle.Render("Adding a new server configuration")))

	if err := form.Run(); err != nil {
		return xfererrors.NewUserInputError("server_add", err)
	}

	port := 0
	if portStr != "" {
		port, _ = strconv.Atoi(portStr)
	}

	srv := config.ServerConfig{
		Host:              host,
		User:              user,
		KeyPath:           keyPath,
		Port:              port,
		DefaultRemotePath: defaultPath,
	}

	if err := store.AddServer(alias, srv); err != nil {
		return xfererrors.NewValidationError("server_add", err)
	}
	if setDefault {
		store.DefaultServer = alias
	}

	if err := store.Save(); err != nil {
		return err
	}

	logger.Printf("added server %s (%s@%s)", alias, user, host)
	fmt.Println(successStyle.Render("Server configuration added successfully!"))
	return nil
}

// validatePortInput adapts the numeric port validator to the form's string
// input; blank means "use the ssh default"
func validatePortInput(s string) error {
	if s == "" {
		return nil
	}
	port, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be numeric")
	}
	return security.ValidatePort(port)
}
