package ui

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenBrowser opens url with the platform's default handler. It returns once
// the handler has started.
func OpenBrowser(url string) error {
	cmd, err := browserCommand(runtime.GOOS, url)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}

func browserCommand(platform, url string) (*exec.Cmd, error) {
	switch platform {
	case "darwin":
		return exec.Command("open", url), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", url), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", url), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", platform)
	}
}
