package paths

import (
	"os"
	"path/filepath"
)

const envHome = "SHOPLIST_HOME"

// Home returns the base directory for shoplist configuration and logs.
// Defaults to ~/.shoplist, can be overridden via SHOPLIST_HOME.
func Home() string {
	if v := os.Getenv(envHome); v != "" {
		return v
	}
	hd, err := os.UserHomeDir()
	if err != nil || hd == "" {
		return ".shoplist"
	}
	return filepath.Join(hd, ".shoplist")
}

func EnsureHome() (string, error) {
	h := Home()
	if err := os.MkdirAll(h, 0o755); err != nil {
		return "", err
	}
	return h, nil
}
