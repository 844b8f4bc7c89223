package main

import (
	"context"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Style definitions using lipgloss
var (
	// Theme colors
	primaryColor = lipgloss.Color("#04B575")
	errorColor   = lipgloss.Color("#FF4B4B")
	warningColor = lipgloss.Color("#FFA500")
	infoColor    = lipgloss.Color("#3B82F6")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	infoStyle = lipgloss.NewStyle().
			Foreground(infoColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Underline(true)
)

// NewRootCmd creates the root command with Cobra/Fang integration
func NewRootCmd() *cobra.Command {
	config := &Config{}

	rootCmd := &cobra.Command{
		Use:   "xfer",
		Short: "Move files to and from aliased remote servers",
		Long: titleStyle.Render("xfer") + " - a thin wrapper around scp, rsync, and ssh.\n\n" +
			"Servers are configured once under a short alias; locations are then\n" +
			"written as 'alias:/path' or plain local paths.",
		Example: `  xfer send report.pdf work:projects/
  xfer get work:/var/log/app.log .
  xfer sync ./site work:/var/www/site
  xfer list work:projects
  xfer server add`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&config.Verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&config.DryRun, "dry-run", false, "Print the command instead of running it")

	// Add subcommands
	rootCmd.AddCommand(
		newSendCmd(config),
		newGetCmd(config),
		newSyncCmd(config),
		newListCmd(config),
		newServerCmd(config),
		newVersionCmd(config),
	)

	return rootCmd
}

// newSendCmd creates the send subcommand
func newSendCmd(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "send source destination",
		Short: "Send a file or directory",
		Long:  "Send a file or directory. Directories go through rsync, files through scp or cp.",
		Example: `  xfer send notes.txt work:
  xfer send ./build work:releases/v2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sendCmd := &SendCommand{
				Config:      config,
				Source:      args[0],
				Destination: args[1],
			}
			return sendCmd.Run(cmd.Context())
		},
	}
}

// newGetCmd creates the get subcommand
func newGetCmd(config *Config) *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "get [-r] source destination",
		Short: "Get a file or directory",
		Long:  "Get a file or directory from a remote server via scp.",
		Example: `  xfer get work:report.pdf .
  xfer get -r work:/etc/nginx ./nginx-backup`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			getCmd := &GetCommand{
				Config:      config,
				Source:      args[0],
				Destination: args[1],
				Recursive:   recursive,
			}
			return getCmd.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Recursively copy directories")

	return cmd
}

// newSyncCmd creates the sync subcommand
func newSyncCmd(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "sync source destination",
		Short: "Sync directories",
		Long:  "Sync directories between local and remote locations.",
		Example: `  xfer sync ./site work:/var/www/site`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			syncCmd := &SyncCommand{
				Config:      config,
				Source:      args[0],
				Destination: args[1],
			}
			return syncCmd.Run(cmd.Context())
		},
	}
}

// newListCmd creates the list subcommand
func newListCmd(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:     "list [alias[:path]]",
		Aliases: []string{"ls"},
		Short:   "List files on a remote server",
		Long:    "List files on a remote server with ls -la. With no argument, lists the default server's base directory.",
		Example: `  xfer list work
  xfer list work:projects/app`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listCmd := &ListCommand{Config: config}
			if len(args) > 0 {
				listCmd.Target = args[0]
			}
			return listCmd.Run(cmd.Context())
		},
	}
}

// newServerCmd creates the server subcommand tree
func newServerCmd(config *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Manage server configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add",
			Short: "Add a new server configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				addCmd := &ServerAddCommand{Config: config}
				return addCmd.Run(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all server configurations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				listCmd := &ServerListCommand{Config: config}
				return listCmd.Run(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "remove alias",
			Short: "Remove a server configuration",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				removeCmd := &ServerRemoveCommand{Config: config, Alias: args[0]}
				return removeCmd.Run(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "default alias",
			Short: "Set the default server",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				defaultCmd := &ServerDefaultCommand{Config: config, Alias: args[0]}
				return defaultCmd.Run(cmd.Context())
			},
		},
	)

	return cmd
}

// newVersionCmd creates the version subcommand
func newVersionCmd(config *Config) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			versionCmd := &VersionCommand{Config: config, Short: short}
			return versionCmd.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Show short version only")

	return cmd
}

// ExecuteWithFang runs the CLI with Fang enhancements
func ExecuteWithFang(ctx context.Context) error {
	rootCmd := NewRootCmd()
	return fang.Execute(ctx, rootCmd)
}
