//go:build windows

// video_backend_terminal_windows.go - The terminal host needs a POSIX tty

package main

// NewTerminalOutput reports that the half-block host is unavailable; the
// nonblocking raw stdin reader has no Windows console equivalent here.
func NewTerminalOutput() (VideoOutput, error) {
	return nil, &VideoError{
		Operation: "initialization",
		Details:   "terminal host requires a POSIX terminal; use the window or -headless",
	}
}
