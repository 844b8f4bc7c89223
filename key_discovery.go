package main

import (
	"log"
	"os"
	"path/filepath"
)

// Modern SSH key types in order of preference (most secure first)
var modernKeyTypes = []string{
	"id_ed25519", // Ed25519 - fastest, most secure, smallest
	"id_ecdsa",   // ECDSA - good performance, secure
	"id_rsa",     // RSA - legacy, still supported but deprecated
}

// discoverSSHKey finds the best available SSH private key in the user's .ssh
// directory. The path is only ever handed to scp/ssh via -i; the key itself
// is never read. Returns empty string when nothing suitable exists.
func discoverSSHKey(homeDir string, logger *log.Logger) string {
	if homeDir == "" {
		if logger != nil {
			logger.Printf("Cannot discover SSH keys: home directory unknown")
		}
		return ""
	}

	sshDir := filepath.Join(homeDir, ".ssh")

	if _, err := os.Stat(sshDir); os.IsNotExist(err) {
		if logger != nil {
			logger.Printf("SSH directory %s does not exist", sshDir)
		}
		return ""
	}

	// Try each key type in order of preference
	for _, keyType := range modernKeyTypes {
		keyPath := filepath.Join(sshDir, keyType)

		if info, err := os.Stat(keyPath); err == nil && !info.IsDir() {
			// Skip keys that group or others can read; ssh would reject them anyway
			if info.Mode().Perm()&0044 == 0 {
				if logger != nil {
					logger.Printf("Found SSH key: %s (type: %s)", keyPath, keyType)
				}
				return keyPath
			}
			if logger != nil {
				logger.Printf("Warning: SSH key %s has overly permissive permissions (%o), skipping", keyPath, info.Mode().Perm())
			}
		}
	}

	if logger != nil {
		logger.Printf("No suitable SSH private keys found in %s (searched: %v)", sshDir, modernKeyTypes)
	}

	return ""
}
