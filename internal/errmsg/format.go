// Package errmsg turns errors into the one-line messages of the status bar.
package errmsg

import "fmt"

// Op names the operation that failed, phrased to follow "Failed to".
type Op string

const (
	OpLibraryScan Op = "scan library"
	OpLibraryLoad Op = "load library"
	OpArtistLoad  Op = "load artist"
	OpStateLoad   Op = "load saved state"

	OpPlaybackStart  Op = "start playback"
	OpPlaybackToggle Op = "toggle playback"
	OpPlaybackSeek   Op = "seek"
	OpPlaybackSkip   Op = "skip track"
)

// Format returns "Failed to <op>: <err>", or "" for a nil error.
func Format(op Op, err error) string {
	return FormatWith(op, "", err)
}

// FormatWith is Format naming the subject of the operation, usually a
// file, in quotes after the operation.
func FormatWith(op Op, subject string, err error) string {
	switch {
	case err == nil:
		return ""
	case subject == "":
		return fmt.Sprintf("Failed to %s: %v", op, err)
	default:
		return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
	}
}
