package validkit

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SegmentKind distinguishes the kinds of path segments.
type SegmentKind uint8

const (
	// SegmentField names a field of a structure.
	SegmentField SegmentKind = iota
	// SegmentIndex addresses an element of an ordered collection.
	SegmentIndex
	// SegmentLabel names a nested structure.
	SegmentLabel
)

// Segment is one step of a context path.
type Segment struct {
	Kind  SegmentKind
	Name  string
	Index int
}

// String renders the segment as it appears inside a path.
func (s Segment) String() string {
	if s.Kind == SegmentIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Name
}

type segmentJSON struct {
	Field *string `json:"field,omitempty"`
	Index *int    `json:"index,omitempty"`
	Label *string `json:"label,omitempty"`
}

// MarshalJSON encodes the segment as a single-key object keyed by its kind.
func (s Segment) MarshalJSON() ([]byte, error) {
	var out segmentJSON
	switch s.Kind {
	case SegmentField:
		out.Field = &s.Name
	case SegmentIndex:
		out.Index = &s.Index
	case SegmentLabel:
		out.Label = &s.Name
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a single-key segment object.
func (s *Segment) UnmarshalJSON(data []byte) error {
	var in segmentJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch {
	case in.Field != nil:
		*s = Segment{Kind: SegmentField, Name: *in.Field}
	case in.Index != nil:
		*s = Segment{Kind: SegmentIndex, Index: *in.Index}
	case in.Label != nil:
		*s = Segment{Kind: SegmentLabel, Name: *in.Label}
	default:
		return fmt.Errorf("segment must carry a field, index or label key")
	}
	return nil
}

// Context carries the path of a value through nested validations so that a
// violation can be attributed to "field password, element 2" rather than to
// the input as a whole. Context is an immutable value: deriving a child
// clones the path, so sibling validations never observe each other's
// segments.
type Context struct {
	segments []Segment
	payload  any
}

// Root returns the empty context.
func Root() Context {
	return Context{}
}

// Field returns a root context holding a single field segment. It is the
// common entry point for validating one value.
func Field(name string) Context {
	return Root().Field(name)
}

// Field derives a child context naming a field of the current path.
func (c Context) Field(name string) Context {
	return c.child(Segment{Kind: SegmentField, Name: name})
}

// Index derives a child context addressing a collection element.
func (c Context) Index(i int) Context {
	return c.child(Segment{Kind: SegmentIndex, Index: i})
}

// Label derives a child context naming a nested structure.
func (c Context) Label(name string) Context {
	return c.child(Segment{Kind: SegmentLabel, Name: name})
}

// WithPayload attaches a free-form payload available to custom validation
// code. The path is unchanged.
func (c Context) WithPayload(payload any) Context {
	return Context{segments: c.segments, payload: payload}
}

// Payload returns the attached payload, if any.
func (c Context) Payload() any {
	return c.payload
}

// Segments returns a copy of the path segments.
func (c Context) Segments() []Segment {
	if len(c.segments) == 0 {
		return nil
	}
	segments := make([]Segment, len(c.segments))
	copy(segments, c.segments)
	return segments
}

// Path renders the context path, e.g. "profile.tags[2]".
func (c Context) Path() string {
	return renderPath(c.segments)
}

func (c Context) child(s Segment) Context {
	segments := make([]Segment, len(c.segments)+1)
	copy(segments, c.segments)
	segments[len(c.segments)] = s
	return Context{segments: segments, payload: c.payload}
}

func renderPath(segments []Segment) string {
	var b strings.Builder
	for i, s := range segments {
		if i > 0 && s.Kind != SegmentIndex {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}
