package priority

import (
	"fmt"
	"strings"
)

// Entry is a single item on the priority list.
type Entry struct {
	Title    string
	Date     string
	Duration string
	Tag      Tag
}

// Tag is the color label used to group and filter entries.
type Tag string

const (
	// NoTag marks entries that were never categorized.
	NoTag  Tag = "no tag"
	Red    Tag = "red"
	Orange Tag = "orange"
	Yellow Tag = "yellow"
	Green  Tag = "green"
	Blue   Tag = "blue"
	Purple Tag = "purple"
)

var palette = []Tag{NoTag, Red, Orange, Yellow, Green, Blue, Purple}

// Palette lists the tags a user can pick from, NoTag first.
func Palette() []Tag {
	out := make([]Tag, len(palette))
	copy(out, palette)
	return out
}

// ParseTag resolves a user supplied tag name against the palette.
func ParseTag(value string) (Tag, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	switch name {
	case "", "none", "untagged":
		return NoTag, nil
	}
	for _, tag := range palette {
		if string(tag) == name {
			return tag, nil
		}
	}
	return NoTag, fmt.Errorf("%w %q (expected one of %s)", ErrUnknownTag, value, paletteNames())
}

// Normalize maps the zero Tag to NoTag.
func (t Tag) Normalize() Tag {
	if t == "" {
		return NoTag
	}
	return t
}

// Next returns the tag after t in palette order, wrapping around.
func (t Tag) Next() Tag {
	t = t.Normalize()
	for i, tag := range palette {
		if tag == t {
			return palette[(i+1)%len(palette)]
		}
	}
	return NoTag
}

// Tagged reports whether the entry carries a tag other than NoTag.
func (e Entry) Tagged() bool {
	return e.Tag.Normalize() != NoTag
}

func paletteNames() string {
	names := make([]string, 0, len(palette))
	for _, tag := range palette[1:] {
		names = append(names, string(tag))
	}
	return strings.Join(names, "|") + "|none"
}
