package transfer

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	xfererrors "github.com/mutasim/xfer/internal/errors"
	"github.com/mutasim/xfer/internal/location"
)

// Command is an assembled external command, ready to spawn
type Command struct {
	Bin  string
	Args []string
}

// String renders the command the way it would look typed into a shell,
// used for dry-run and verbose output
func (c Command) String() string {
	return strings.Join(append([]string{c.Bin}, c.Args...), " ")
}

// Dispatcher picks a transfer mode for a pair of resolved locations and
// shells out to the matching system binary, streaming its output
type Dispatcher struct {
	Logger *log.Logger
	DryRun bool

	// Stdout and Stderr default to the process streams; tests redirect them
	Stdout io.Writer
	Stderr io.Writer
}

// NewDispatcher creates a dispatcher writing child output to the console
func NewDispatcher(logger *log.Logger, dryRun bool) *Dispatcher {
	return &Dispatcher{
		Logger: logger,
		DryRun: dryRun,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Transfer moves src to dst, choosing cp, rsync, or scp based on the
// local/remote split and whether the source is a directory
func (d *Dispatcher) Transfer(ctx context.Context, src, dst location.Location, recursive bool) error {
	srcIsDir := false
	if !src.IsRemote() {
		if info, err := os.Stat(src.Path); err == nil && info.IsDir() {
			srcIsDir = true
		}
	}

	cmd, err := BuildTransfer(src, dst, srcIsDir, recursive)
	if err != nil {
		return xfererrors.NewTransferError(src.String(), dst.String(), err)
	}

	return d.run(ctx, cmd)
}

// List runs ls -la on the remote side of an aliased location
func (d *Dispatcher) List(ctx context.Context, loc location.Location) error {
	cmd, err := BuildList(loc)
	if err != nil {
		return xfererrors.NewListingError(loc.Alias, err)
	}
	return d.run(ctx, cmd)
}

func (d *Dispatcher) run(ctx context.Context, cmd Command) error {
	if d.DryRun {
		fmt.Fprintln(d.Stdout, cmd.String())
		return nil
	}

	d.Logger.Printf("running: %s", cmd.String())

	proc := exec.CommandContext(ctx, cmd.Bin, cmd.Args...)
	proc.Stdout = d.Stdout
	proc.Stderr = d.Stderr
	proc.Stdin = os.Stdin

	if err := proc.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			code := exitErr.ExitCode()
			return xfererrors.NewProcessExecError(cmd.Bin, code,
				fmt.Errorf("%s exited with code %d", cmd.Bin, code))
		}
		return xfererrors.NewProcessExecError(cmd.Bin, -1,
			fmt.Errorf("failed to execute %s: %w", cmd.Bin, err))
	}
	return nil
}

// BuildTransfer assembles the command line for one of the four transfer
// modes. Remote-to-remote is rejected before anything is spawned.
func BuildTransfer(src, dst location.Location, srcIsDir, recursive bool) (Command, error) {
	switch {
	case !src.IsRemote() && !dst.IsRemote():
		return buildLocalToLocal(src, dst, srcIsDir), nil

	case !src.IsRemote() && dst.IsRemote():
		return buildLocalToRemote(src, dst, srcIsDir), nil

	case src.IsRemote() && !dst.IsRemote():
		return buildRemoteToLocal(src, dst, recursive), nil

	default:
		return Command{}, fmt.Errorf("direct remote-to-remote transfers are not supported")
	}
}

// BuildList assembles the ssh command that lists a remote directory
func BuildList(loc location.Location) (Command, error) {
	if !loc.IsRemote() {
		return Command{}, fmt.Errorf("listing requires a remote location (alias:/path)")
	}

	args := sshIdentityArgs(loc, "-p")
	args = append(args, loc.HostArg(), "ls -la "+loc.Path)
	return Command{Bin: "ssh", Args: args}, nil
}

func buildLocalToLocal(src, dst location.Location, srcIsDir bool) Command {
	if srcIsDir {
		return Command{Bin: "rsync", Args: []string{"-av", "--progress", src.Path, dst.Path}}
	}
	return Command{Bin: "cp", Args: []string{src.Path, dst.Path}}
}

func buildLocalToRemote(src, dst location.Location, srcIsDir bool) Command {
	if srcIsDir {
		args := []string{"-avz", "--progress"}
		if transport := rsyncTransport(dst); transport != "" {
			args = append(args, "-e", transport)
		}
		// Trailing slash: sync the directory contents into the destination
		args = append(args, strings.TrimSuffix(src.Path, "/")+"/", dst.SCPArg())
		return Command{Bin: "rsync", Args: args}
	}

	args := sshIdentityArgs(dst, "-P")
	args = append(args, src.Path, dst.SCPArg())
	return Command{Bin: "scp", Args: args}
}

func buildRemoteToLocal(src, dst location.Location, recursive bool) Command {
	var args []string
	if recursive {
		args = append(args, "-r")
	}
	args = append(args, sshIdentityArgs(src, "-P")...)
	args = append(args, src.SCPArg(), dst.Path)
	return Command{Bin: "scp", Args: args}
}

// sshIdentityArgs builds the identity and port flags shared by scp and ssh.
// scp spells the port flag -P, ssh spells it -p.
func sshIdentityArgs(loc location.Location, portFlag string) []string {
	var args []string
	if loc.Server.KeyPath != "" {
		args = append(args, "-i", loc.Server.KeyPath)
	}
	if loc.Server.Port != 0 {
		args = append(args, portFlag, strconv.Itoa(loc.Server.Port))
	}
	return args
}

// rsyncTransport builds the -e value when the server needs a non-default
// identity or port. rsync parses the value itself; it is a single argv
// element here, never shell-interpreted by us.
func rsyncTransport(loc location.Location) string {
	parts := []string{"ssh"}
	if loc.Server.KeyPath != "" {
		parts = append(parts, "-i", loc.Server.KeyPath)
	}
	if loc.Server.Port != 0 {
		parts = append(parts, "-p", strconv.Itoa(loc.Server.Port))
	}
	if len(parts) == 1 {
		return ""
	}
	return strings.Join(parts, " ")
}
