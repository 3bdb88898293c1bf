package flyweight

import "fmt"

// StyleKey is the intrinsic state identifying a text style. It is the intern
// key: equal keys mean one shared style.
type StyleKey struct {
	Font string
	Size int
	Bold bool
}

// TextStyle is the worked flyweight example: an immutable rendering style
// shared by every span of text that uses it. Extrinsic state (the text
// content, its position) stays with the caller.
type TextStyle struct {
	key StyleKey
}

// NewTextStyle builds a style from its intrinsic key. Normally reached
// through a Pool rather than called directly.
func NewTextStyle(key StyleKey) *TextStyle {
	return &TextStyle{key: key}
}

func (s *TextStyle) Font() string { return s.key.Font }
func (s *TextStyle) Size() int    { return s.key.Size }
func (s *TextStyle) Bold() bool   { return s.key.Bold }

// CSS renders the style as a CSS fragment.
func (s *TextStyle) CSS() string {
	weight := "normal"
	if s.key.Bold {
		weight = "bold"
	}
	return fmt.Sprintf("font-family:%s;font-size:%dpx;font-weight:%s", s.key.Font, s.key.Size, weight)
}

// StylePool returns a pool pre-wired with the TextStyle factory.
func StylePool() *Pool[StyleKey, *TextStyle] {
	return NewPool(NewTextStyle)
}
