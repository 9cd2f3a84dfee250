package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateStartsAtSelect(t *testing.T) {
	assert.Equal(t, Select, NewState().Active())
}

func TestChangeTwiceReturnsToSelect(t *testing.T) {
	for _, tl := range All {
		s := NewState()
		s.Change(tl)
		s.Change(tl)
		assert.Equal(t, Select, s.Active(), "tool %s", tl)
	}
}

func TestChangeSwitchesBetweenTools(t *testing.T) {
	s := NewState()
	s.Change(Shapes)
	assert.Equal(t, Shapes, s.Active())
	s.Change(Fill)
	assert.Equal(t, Fill, s.Active())
}

func TestClearSelection(t *testing.T) {
	for _, tl := range All {
		s := NewState()
		s.Change(tl)
		s.ClearSelection()
		if IsSelectDependent(tl) {
			assert.Equal(t, Select, s.Active(), "tool %s", tl)
		} else {
			assert.Equal(t, tl, s.Active(), "tool %s", tl)
		}
	}
}

func TestListener(t *testing.T) {
	type change struct{ from, to Tool }
	var got []change
	s := NewState(WithListener(func(from, to Tool) {
		got = append(got, change{from, to})
	}))

	s.Change(StrokeColor)
	s.ClearSelection()
	s.ClearSelection()
	s.Change(Select)

	assert.Equal(t, []change{{Select, StrokeColor}, {StrokeColor, Select}}, got)
}

func TestParse(t *testing.T) {
	for _, tl := range All {
		got, err := Parse(tl.String())
		require.NoError(t, err)
		assert.Equal(t, tl, got)
	}

	_, err := Parse("lasso")
	assert.ErrorIs(t, err, ErrUnknownTool)
	assert.Equal(t, "unknown", Tool(42).String())
}
