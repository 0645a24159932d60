package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_PushPop(t *testing.T) {
	s := NewStack(Artists{})

	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, Artists{}, s.Current())

	s.Push(ArtistDetails{ID: 3})
	assert.Equal(t, 2, s.Depth())
	assert.Equal(t, ArtistDetails{ID: 3}, s.Current())

	assert.True(t, s.Pop())
	assert.Equal(t, Artists{}, s.Current())
}

func TestStack_NeverPopsRoot(t *testing.T) {
	s := NewStack(Artists{})

	assert.False(t, s.Pop())
	assert.False(t, s.Pop())
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, Artists{}, s.Current())
}

func TestScreen_Name(t *testing.T) {
	tests := []struct {
		screen Screen
		want   string
	}{
		{Artists{}, "artists"},
		{ArtistDetails{ID: 42}, "artist/42"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.screen.Name())
	}
}
