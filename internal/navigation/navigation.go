// Package navigation describes the screens of the application and the
// back stack between them.
package navigation

import "fmt"

// Screen is a navigation destination.
type Screen interface {
	screen()
	// Name identifies the screen kind in logs.
	Name() string
}

// Artists is the root artist list.
type Artists struct{}

// ArtistDetails shows one artist's albums and tracks.
type ArtistDetails struct {
	ID int64
}

func (Artists) screen()       {}
func (ArtistDetails) screen() {}

func (Artists) Name() string         { return "artists" }
func (a ArtistDetails) Name() string { return fmt.Sprintf("artist/%d", a.ID) }

// NavigateMsg asks the app to push a screen.
type NavigateMsg struct {
	Screen Screen
}

// BackMsg asks the app to pop the current screen.
type BackMsg struct{}

// Stack is the back stack. Its bottom entry is the root and is never popped.
type Stack struct {
	screens []Screen
}

// NewStack creates a stack holding only root.
func NewStack(root Screen) *Stack {
	return &Stack{screens: []Screen{root}}
}

// Push makes s the current screen.
func (s *Stack) Push(screen Screen) {
	s.screens = append(s.screens, screen)
}

// Pop removes the current screen and reports whether it did. The root
// stays put.
func (s *Stack) Pop() bool {
	if len(s.screens) <= 1 {
		return false
	}
	s.screens = s.screens[:len(s.screens)-1]
	return true
}

// Current returns the screen on top.
func (s *Stack) Current() Screen {
	return s.screens[len(s.screens)-1]
}

// Depth returns the number of screens, root included.
func (s *Stack) Depth() int {
	return len(s.screens)
}
