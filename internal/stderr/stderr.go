//go:build !windows

// Package stderr captures stderr output from C libraries (ALSA, the
// decoders) that write directly to file descriptor 2, bypassing Go's
// os.Stderr. Captured lines go to the log file instead of the terminal.
package stderr

import (
	"os"
	"sync"
	"syscall"

	"github.com/charmbracelet/log"
)

var (
	mu         sync.Mutex
	origStderr = -1
	pipeRead   *os.File
	pipeWrite  *os.File
	done       chan struct{}
)

// Start begins capturing stderr output and forwards each line to logger.
// Must be called early in main(), before any C library initialization.
// On error the program can continue; output just goes to the real stderr.
func Start(logger *log.Logger) error {
	mu.Lock()
	defer mu.Unlock()

	if pipeRead != nil {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	// Redirect stderr (fd 2) to the pipe's write end
	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return err
	}

	origStderr = orig
	pipeRead = r
	pipeWrite = w
	done = make(chan struct{})

	go func(d chan struct{}) {
		defer close(d)
		forward(r, logger)
	}(done)

	return nil
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
// Used for fatal errors that must be visible after the UI exits.
func WriteOriginal(msg string) {
	mu.Lock()
	fd := origStderr
	mu.Unlock()

	if fd < 0 {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = syscall.Write(fd, []byte(msg))
}

// Stop restores the original stderr and waits for the forwarder to drain.
func Stop() {
	mu.Lock()
	defer mu.Unlock()

	if pipeRead == nil {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)
	origStderr = -1

	// Closing the write end ends the scanner with EOF
	pipeWrite.Close()
	<-done
	pipeRead.Close()

	pipeRead = nil
	pipeWrite = nil
}
