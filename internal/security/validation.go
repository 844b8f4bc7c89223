package security

import (
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// InputValidator provides input validation for values that end up on the
// command line of scp, rsync, and ssh
type InputValidator struct {
	MaxHostnameLength int
	MaxPathLength     int
	AllowedHostChars  *regexp.Regexp
}

// Security constants for input validation
const (
	MaxHostnameLength = 253  // RFC 1035 limit
	MaxPathLength     = 4096 // Common filesystem limit
	MaxPortNumber     = 65535
	MinPortNumber     = 1
	MaxUsernameLength = 32
	MaxAliasLength    = 64
)

// NewInputValidator creates a new input validator with secure defaults
func NewInputValidator() *InputValidator {
	return &InputValidator{
		MaxHostnameLength: MaxHostnameLength,
		MaxPathLength:     MaxPathLength,
		// Simple hostname validation to prevent ReDoS attacks
		AllowedHostChars: regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9.-]*[a-zA-Z0-9]$`),
	}
}

// ValidateHostname validates hostnames against RFC standards and guards
// against shell metacharacters
func (iv *InputValidator) ValidateHostname(hostname string) error {
	if hostname == "" {
		return fmt.Errorf("hostname cannot be empty")
	}

	if len(hostname) > iv.MaxHostnameLength {
		return fmt.Errorf("hostname too long: %d characters (max %d)", len(hostname), iv.MaxHostnameLength)
	}

	// Check for dangerous characters that could be used for injection
	dangerousChars := ";|&`$(){}[]<>\\\"'!*? "
	if strings.ContainsAny(hostname, dangerousChars) {
		return fmt.Errorf("hostname contains invalid characters")
	}

	// Check if it's a valid IP address first (IPv4 or IPv6)
	if net.ParseIP(hostname) != nil {
		return nil
	}

	if strings.HasPrefix(hostname, "-") || strings.HasSuffix(hostname, "-") {
		return fmt.Errorf("hostname cannot start or end with hyphen")
	}

	if !iv.AllowedHostChars.MatchString(hostname) {
		return fmt.Errorf("hostname format invalid (must comply with RFC 1123)")
	}

	// Validate each label in the hostname
	labels := strings.Split(hostname, ".")
	for _, label := range labels {
		if len(label) == 0 {
			return fmt.Errorf("hostname contains empty label")
		}
		if len(label) > 63 {
			return fmt.Errorf("hostname label too long: %s (max 63 characters)", label)
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return fmt.Errorf("hostname label cannot start or end with hyphen: %s", label)
		}
	}

	return nil
}

// ValidateRemotePath validates a remote path before it is handed to scp or
// embedded in an ssh remote command. Relative paths and dots are fine; shell
// metacharacters and control characters are not.
func (iv *InputValidator) ValidateRemotePath(path string) error {
	if path == "" {
		return fmt.Errorf("remote path cannot be empty")
	}

	if len(path) > iv.MaxPathLength {
		return fmt.Errorf("remote path too long: %d characters (max %d)", len(path), iv.MaxPathLength)
	}

	// The listing path is interpreted by the remote shell, so reject anything
	// that could terminate or extend the command
	dangerousChars := ";|&`$(){}<>\\\"'!"
	if strings.ContainsAny(path, dangerousChars) {
		return fmt.Errorf("remote path contains invalid characters")
	}

	if strings.Contains(path, "\x00") {
		return fmt.Errorf("remote path contains null byte")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("remote path contains control character: %U", r)
		}
	}

	return nil
}

// ValidateUsername validates remote usernames
func (iv *InputValidator) ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) > MaxUsernameLength {
		return fmt.Errorf("username too long: %d characters (max %d)", len(username), MaxUsernameLength)
	}

	validUserRegex := regexp.MustCompile(`^[a-zA-Z0-9_\-]+$`)
	if !validUserRegex.MatchString(username) {
		return fmt.Errorf("username contains invalid characters (only alphanumeric, hyphen, underscore allowed)")
	}

	if strings.HasPrefix(username, "-") || unicode.IsDigit(rune(username[0])) {
		return fmt.Errorf("username cannot start with hyphen or number")
	}

	return nil
}

// ValidatePort validates network port numbers. Zero means "unset" and is
// accepted; the ssh default applies.
func (iv *InputValidator) ValidatePort(port int) error {
	if port == 0 {
		return nil
	}
	if port < MinPortNumber || port > MaxPortNumber {
		return fmt.Errorf("port number out of range: %d (must be %d-%d)", port, MinPortNumber, MaxPortNumber)
	}
	return nil
}

// ValidateAlias validates server aliases used as config keys and in
// location strings
func (iv *InputValidator) ValidateAlias(alias string) error {
	if alias == "" {
		return fmt.Errorf("alias cannot be empty")
	}

	if len(alias) > MaxAliasLength {
		return fmt.Errorf("alias too long: %d characters (max %d)", len(alias), MaxAliasLength)
	}

	// Aliases double as the left side of alias:path location strings, so a
	// colon can never appear. Single letters collide with Windows drive
	// prefixes and are rejected.
	validAliasRegex := regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_\-]+$`)
	if !validAliasRegex.MatchString(alias) {
		return fmt.Errorf("alias must be at least two characters of alphanumeric, hyphen, or underscore")
	}

	return nil
}

// SanitizeShellArg safely escapes an argument embedded in a remote shell
// command to prevent injection
func (iv *InputValidator) SanitizeShellArg(arg string) string {
	// strconv.Quote handles all edge cases with double quotes and proper
	// escaping of dangerous characters
	return strconv.Quote(arg)
}

// Global validator instance
var DefaultValidator = NewInputValidator()

// Convenience functions using the default validator
func ValidateHostname(hostname string) error {
	return DefaultValidator.ValidateHostname(hostname)
}

func ValidateRemotePath(path string) error {
	return DefaultValidator.ValidateRemotePath(path)
}

func ValidateUsername(username string) error {
	return DefaultValidator.ValidateUsername(username)
}

func ValidatePort(port int) error {
	return DefaultValidator.ValidatePort(port)
}

func ValidateAlias(alias string) error {
	return DefaultValidator.ValidateAlias(alias)
}

func SanitizeShellArg(arg string) string {
	return DefaultValidator.SanitizeShellArg(arg)
}
