package stderr

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// forward logs every non-blank line read from r until EOF.
func forward(r io.Reader, logger *log.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		logger.Warn(line, "source", "stderr")
	}
}
