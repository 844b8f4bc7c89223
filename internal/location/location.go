package location

import (
	"fmt"
	"strings"

	"github.com/mutasim/xfer/internal/config"
	"github.com/mutasim/xfer/internal/security"
)

// Location is a resolved transfer endpoint: either a bare local path or an
// aliased remote server plus an absolute remote path
type Location struct {
	Alias  string
	Path   string
	Server config.ServerConfig // zero value when local
}

// IsRemote reports whether the location refers to an aliased server
func (l Location) IsRemote() bool {
	return l.Alias != ""
}

// HostArg renders the user@host fragment for ssh-family command lines
func (l Location) HostArg() string {
	return l.Server.User + "@" + l.Server.Host
}

// SCPArg renders the location as an scp/rsync endpoint argument
func (l Location) SCPArg() string {
	if !l.IsRemote() {
		return l.Path
	}
	return l.HostArg() + ":" + l.Path
}

func (l Location) String() string {
	if !l.IsRemote() {
		return l.Path
	}
	return l.Alias + ":" + l.Path
}

// Parse classifies a location string as local or alias:path and resolves
// relative remote paths against the server's configured base directory
func Parse(raw string, cfg *config.Config) (Location, error) {
	if raw == "" {
		return Location{}, fmt.Errorf("location cannot be empty")
	}

	alias, path, ok := splitAlias(raw)
	if !ok {
		return Location{Path: raw}, nil
	}

	srv, found := cfg.Server(alias)
	if !found {
		return Location{}, fmt.Errorf("unknown server alias %q, add it with 'xfer server add'", alias)
	}

	resolved := ResolveRemotePath(path, srv)
	if err := security.ValidateRemotePath(resolved); err != nil {
		return Location{}, err
	}

	return Location{Alias: alias, Path: resolved, Server: srv}, nil
}

// ResolveRemotePath makes a remote path absolute. Relative paths are joined
// onto the server's default remote path, falling back to the /home/<user>
// convention. An empty path means the base directory itself.
func ResolveRemotePath(path string, srv config.ServerConfig) string {
	if strings.HasPrefix(path, "/") {
		return path
	}

	base := srv.DefaultRemotePath
	if base == "" {
		base = "/home/" + srv.User
	}
	if path == "" {
		return base
	}
	return strings.TrimSuffix(base, "/") + "/" + path
}

// splitAlias splits alias:path, treating single-letter prefixes as Windows
// drive letters (C:\x stays local)
func splitAlias(raw string) (alias, path string, ok bool) {
	idx := strings.Index(raw, ":")
	if idx <= 0 {
		return "", "", false
	}
	if idx == 1 {
		// Windows drive letter, e.g. C:\Users\me
		return "", "", false
	}
	return raw[:idx], raw[idx+1:], true
}
