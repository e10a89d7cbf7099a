package server

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/charmbracelet/ssh"
	gossh "golang.org/x/crypto/ssh"

	"workspace/internal/logging"
)

// publicKeyHandler admits a session when the client's key appears in the
// server user's ~/.ssh/authorized_keys. Every decision is logged with the
// key fingerprint.
func publicKeyHandler(ctx ssh.Context, key ssh.PublicKey) bool {
	fingerprint := gossh.FingerprintSHA256(key)

	home, err := os.UserHomeDir()
	if err != nil {
		logging.Logger.Error("Failed to resolve home directory",
			"error", err, "user", ctx.User(), "fingerprint", fingerprint)
		return false
	}

	if !isKeyAuthorized(key, filepath.Join(home, ".ssh", "authorized_keys")) {
		logging.Logger.Warn("Unauthorized SSH key",
			"user", ctx.User(), "fingerprint", fingerprint, "key_type", key.Type())
		return false
	}

	logging.Logger.Info("SSH key authenticated",
		"user", ctx.User(), "fingerprint", fingerprint, "key_type", key.Type())
	return true
}

// isKeyAuthorized reports whether clientKey appears in the authorized_keys
// file at path. Comments, blank lines, and unparseable entries are skipped.
func isKeyAuthorized(clientKey ssh.PublicKey, path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		logging.Logger.Warn("Failed to read authorized_keys", "error", err, "path", path)
		return false
	}

	want := clientKey.Marshal()
	for len(data) > 0 {
		authorized, _, _, rest, err := gossh.ParseAuthorizedKey(data)
		if err != nil {
			// No further keys in the file
			break
		}
		if bytes.Equal(want, authorized.Marshal()) {
			return true
		}
		data = rest
	}

	return false
}
