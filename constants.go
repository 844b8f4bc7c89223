package main

// Application identifiers
const (
	AppName = "xfer"
)

// SSH defaults
const (
	DefaultSSHPort = 22
)

// Error messages constants
const (
	ErrEmptyLocation   = "location cannot be empty"
	ErrNoServers       = "no server configurations found"
	ErrRemoteToRemote  = "direct remote-to-remote transfers are not supported"
	ErrNotATerminal    = "standard input is not a terminal; run 'xfer server add' from an interactive shell"
)
