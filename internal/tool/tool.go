// Package tool tracks the editing tool the user has picked.
package tool

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Tool types
type Tool int

const (
	Select Tool = iota
	Shapes
	Fill
	StrokeColor
	StrokeWidth
	Draw
	Text
	Image
	Export
	Settings
)

// All lists every tool in toolbar order
var All = []Tool{Select, Shapes, Fill, StrokeColor, StrokeWidth, Draw, Text, Image, Export, Settings}

var names = []string{"select", "shapes", "fill", "stroke-color", "stroke-width", "draw", "text", "image", "export", "settings"}

// ErrUnknownTool is returned by Parse for names outside the tool set
var ErrUnknownTool = errors.New("unknown tool")

func (t Tool) String() string {
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "unknown"
}

// Parse returns the tool with the given name
func Parse(name string) (Tool, error) {
	for i, n := range names {
		if n == name {
			return Tool(i), nil
		}
	}
	return Select, fmt.Errorf("%w: %q", ErrUnknownTool, name)
}

// IsSelectDependent reports whether t only makes sense with objects
// selected. Such tools are dropped when the selection is cleared.
func IsSelectDependent(t Tool) bool {
	switch t {
	case Fill, StrokeColor, StrokeWidth:
		return true
	}
	return false
}

// State holds the active tool. The zero value is not usable; call
// NewState.
type State struct {
	active   Tool
	onChange func(from, to Tool)
	log      *logrus.Entry
}

// Option configures a State
type Option func(*State)

// WithListener registers fn to run after every effective transition
func WithListener(fn func(from, to Tool)) Option {
	return func(s *State) { s.onChange = fn }
}

// WithLogger sets the entry transitions are logged to
func WithLogger(log *logrus.Entry) Option {
	return func(s *State) { s.log = log }
}

// NewState returns a state with Select active
func NewState(opts ...Option) *State {
	s := &State{
		active: Select,
		log:    logrus.WithField("component", "tool"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Active returns the current tool
func (s *State) Active() Tool {
	return s.active
}

// Change switches to t. Picking the active tool again turns it off
// and returns to Select.
func (s *State) Change(t Tool) {
	if t == s.active {
		s.set(Select)
		return
	}
	s.set(t)
}

// ClearSelection reacts to the canvas selection becoming empty
func (s *State) ClearSelection() {
	if IsSelectDependent(s.active) {
		s.set(Select)
	}
}

func (s *State) set(t Tool) {
	from := s.active
	if from == t {
		return
	}
	s.active = t
	s.log.WithFields(logrus.Fields{"from": from.String(), "to": t.String()}).Debug("Tool changed")
	if s.onChange != nil {
		s.onChange(from, t)
	}
}
