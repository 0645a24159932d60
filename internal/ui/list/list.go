// Package list is a generic scrollable selection used by the screens.
// It owns the cursor and input handling; rendering stays with the parent,
// which draws the rows in VisibleRange.
package list

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cuteplay/internal/ui"
	"github.com/llehouerou/cuteplay/internal/ui/cursor"
)

// Action tells the parent what an Update did.
type Action int

const (
	ActionNone Action = iota
	ActionMoved
	ActionClick
)

// Result of an Update. Index is -1 when Action is ActionNone.
type Result struct {
	Action Action
	Index  int
}

var none = Result{Index: -1}

type Model[T any] struct {
	ui.Base
	items  []T
	cursor cursor.Cursor

	overhead int // rows of the component that are not items
	topRow   int // screen row of the first item
}

func New[T any](margin int) Model[T] {
	return Model[T]{cursor: cursor.New(margin)}
}

// SetLayout sets the chrome height and the screen row where items start.
func (m *Model[T]) SetLayout(overhead, topRow int) {
	m.overhead, m.topRow = overhead, topRow
}

// SetItems replaces the items, keeping the cursor in range and visible.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.ClampToBounds(len(items))
	m.cursor.EnsureVisible(len(items), m.Height())
}

func (m Model[T]) Items() []T { return m.items }

func (m Model[T]) Selected() (T, bool) {
	if i := m.cursor.Pos(); i < len(m.items) {
		return m.items[i], true
	}
	var zero T
	return zero, false
}

func (m Model[T]) SelectedIndex() int { return m.cursor.Pos() }

func (m *Model[T]) Select(i int) { m.cursor.Jump(i, len(m.items), m.Height()) }

// Height is the number of rows available to items.
func (m Model[T]) Height() int { return m.ListHeight(m.overhead) }

// VisibleRange returns the [start, end) item indices on screen.
func (m Model[T]) VisibleRange() (start, end int) {
	return m.cursor.VisibleRange(len(m.items), m.Height())
}

func (m *Model[T]) Cursor() *cursor.Cursor { return &m.cursor }

// Update applies navigation keys and mouse input. It does nothing while
// the list is unfocused.
func (m *Model[T]) Update(msg tea.Msg) Result {
	if !m.IsFocused() {
		return none
	}
	n, h := len(m.items), m.Height()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.cursor.HandleKey(msg.String(), n, h) {
			return Result{Action: ActionMoved, Index: m.cursor.Pos()}
		}
	case tea.MouseMsg:
		switch res, row := m.cursor.HandleMouse(msg, n, h, m.topRow); res {
		case cursor.MouseScrolled:
			return Result{Action: ActionMoved, Index: m.cursor.Pos()}
		case cursor.MouseClicked:
			return Result{Action: ActionClick, Index: row}
		case cursor.MouseNone:
		}
	}
	return none
}
