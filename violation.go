package validkit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Param is one named parameter of a violation, e.g. min → 3.
type Param struct {
	Name  string
	Value Value
}

// Violation is one structured failure record for a single constraint check:
// a stable machine-readable code, the attributing path and an ordered list
// of named parameters. It carries no natural-language text.
type Violation struct {
	Code     string
	Segments []Segment
	Params   []Param
}

// Path renders the violation's attributing path.
func (v Violation) Path() string {
	return renderPath(v.Segments)
}

// Param returns the named parameter's value, if present.
func (v Violation) Param(name string) (Value, bool) {
	for _, p := range v.Params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return Value{}, false
}

type paramJSON struct {
	Name  string `json:"name"`
	Value Value  `json:"value"`
}

type violationJSON struct {
	Code   string      `json:"code"`
	Path   []Segment   `json:"path,omitempty"`
	Params []paramJSON `json:"params,omitempty"`
}

// MarshalJSON encodes the violation with its structured path and ordered
// parameters.
func (v Violation) MarshalJSON() ([]byte, error) {
	out := violationJSON{Code: v.Code, Path: v.Segments}
	for _, p := range v.Params {
		out.Params = append(out.Params, paramJSON{Name: p.Name, Value: p.Value})
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a violation, preserving parameter order.
func (v *Violation) UnmarshalJSON(data []byte) error {
	var in violationJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	out := Violation{Code: in.Code, Segments: in.Path}
	for _, p := range in.Params {
		out.Params = append(out.Params, Param{Name: p.Name, Value: p.Value})
	}
	*v = out
	return nil
}

// ValidationError maps context paths to the non-empty ordered sequences of
// violations recorded at those paths. Both path insertion order and per-path
// violation order are preserved; accumulating never drops or reorders an
// entry. A ValidationError always contains at least one violation: absence
// of violations is represented as a nil error, not as an empty value.
type ValidationError struct {
	order  []string
	byPath map[string][]Violation
}

// newValidationError builds a ValidationError from at least one violation.
func newValidationError(violations ...Violation) *ValidationError {
	e := &ValidationError{byPath: make(map[string][]Violation, len(violations))}
	for _, v := range violations {
		e.add(v)
	}
	return e
}

// fail is the single construction point used by constraint checks: one
// violation with the given code and parameters, attributed to ctx.
func fail(ctx Context, code string, params ...Param) *ValidationError {
	return newValidationError(Violation{
		Code:     code,
		Segments: ctx.Segments(),
		Params:   params,
	})
}

func (e *ValidationError) add(v Violation) {
	path := v.Path()
	if _, ok := e.byPath[path]; !ok {
		e.order = append(e.order, path)
	}
	e.byPath[path] = append(e.byPath[path], v)
}

// Error implements the error interface with a terse code-per-path summary.
func (e *ValidationError) Error() string {
	if e == nil || len(e.order) == 0 {
		return "validation failed"
	}
	var parts []string
	for _, v := range e.All() {
		if path := v.Path(); path != "" {
			parts = append(parts, path+": "+v.Code)
		} else {
			parts = append(parts, v.Code)
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Paths returns the recorded paths in insertion order.
func (e *ValidationError) Paths() []string {
	if e == nil {
		return nil
	}
	paths := make([]string, len(e.order))
	copy(paths, e.order)
	return paths
}

// Has reports whether any violation is recorded at the given path.
func (e *ValidationError) Has(path string) bool {
	if e == nil {
		return false
	}
	return len(e.byPath[path]) > 0
}

// Violations returns the violations recorded at the given path, in order.
func (e *ValidationError) Violations(path string) []Violation {
	if e == nil {
		return nil
	}
	vs := e.byPath[path]
	out := make([]Violation, len(vs))
	copy(out, vs)
	return out
}

// All returns every violation in evaluation order: paths in insertion order,
// violations within a path in recording order.
func (e *ValidationError) All() []Violation {
	if e == nil {
		return nil
	}
	var out []Violation
	for _, path := range e.order {
		out = append(out, e.byPath[path]...)
	}
	return out
}

// Len returns the total number of recorded violations.
func (e *ValidationError) Len() int {
	if e == nil {
		return 0
	}
	n := 0
	for _, vs := range e.byPath {
		n += len(vs)
	}
	return n
}

// Merge combines two accumulated results into a new one. The receiver's
// entries come first; the other's violations are appended under their own
// paths, never overwriting existing entries. Either operand may be nil, in
// which case the other is returned unchanged.
func (e *ValidationError) Merge(other *ValidationError) *ValidationError {
	if e == nil {
		return other
	}
	if other == nil {
		return e
	}
	merged := newValidationError(e.All()...)
	for _, v := range other.All() {
		merged.add(v)
	}
	return merged
}

// MarshalJSON encodes the error as an object mapping each path to its
// ordered violation list, with keys emitted in insertion order.
func (e *ValidationError) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, path := range e.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(path)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		vs, err := json.Marshal(e.byPath[path])
		if err != nil {
			return nil, err
		}
		buf.Write(vs)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the path-to-violations mapping, preserving the key
// order of the document.
func (e *ValidationError) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("validation error document must be an object")
	}
	out := ValidationError{byPath: make(map[string][]Violation)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		path, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("validation error document has a non-string key")
		}
		var vs []Violation
		if err := dec.Decode(&vs); err != nil {
			return err
		}
		if len(vs) == 0 {
			return fmt.Errorf("path %q carries no violations", path)
		}
		if _, seen := out.byPath[path]; !seen {
			out.order = append(out.order, path)
		}
		out.byPath[path] = append(out.byPath[path], vs...)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if len(out.order) == 0 {
		return fmt.Errorf("validation error document must not be empty")
	}
	*e = out
	return nil
}

// AsValidationError extracts a *ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// IsValidationError reports whether the error chain contains a
// *ValidationError.
func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}
