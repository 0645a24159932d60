//go:build windows

// Package stderr does nothing on Windows, where the audio backend keeps
// quiet on file descriptor 2.
package stderr

import (
	"os"

	"github.com/charmbracelet/log"
)

func Start(*log.Logger) error { return nil }

func Stop() {}

func WriteOriginal(msg string) { _, _ = os.Stderr.WriteString(msg) }
