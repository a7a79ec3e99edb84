// Package block implements block states: a resource id plus an
// unordered set of string properties, the unit stored in a region's
// palette.
package block

import (
	"maps"
	"sort"
	"strings"

	"github.com/brinewood/ritematica/resource"
)

// State is a block state: an identifier plus zero or more properties.
type State struct {
	id         resource.ID
	properties map[string]string
}

// New builds a State from an id and an optional property set. The
// supplied map is copied; the caller's copy is never retained.
func New(id resource.ID, properties map[string]string) State {
	return State{id: id, properties: cloneProps(properties)}
}

// ID returns the block's resource id.
func (s State) ID() resource.ID { return s.id }

// Properties returns a copy of the block's properties.
func (s State) Properties() map[string]string { return cloneProps(s.properties) }

// SetID replaces the block's identifier.
func (s *State) SetID(id resource.ID) { s.id = id }

// SetProperties discards the existing properties and replaces them
// with a copy of props.
func (s *State) SetProperties(props map[string]string) {
	s.properties = cloneProps(props)
}

// AddProperties merges props into the existing set, overwriting any
// keys already present.
func (s *State) AddProperties(props map[string]string) {
	if len(props) == 0 {
		return
	}
	if s.properties == nil {
		s.properties = make(map[string]string, len(props))
	}
	maps.Copy(s.properties, props)
}

// RemoveProperty deletes a single property, if present.
func (s *State) RemoveProperty(name string) {
	delete(s.properties, name)
}

// ClearProperties removes every property.
func (s *State) ClearProperties() {
	s.properties = nil
}

// Equal reports whether two states have the same id and property set.
func (s State) Equal(other State) bool {
	if s.id != other.id {
		return false
	}
	if len(s.properties) != len(other.properties) {
		return false
	}
	for k, v := range s.properties {
		if ov, ok := other.properties[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Key returns a canonical string representation suitable for hashing
// and exact-match lookups: the id followed by its properties sorted by
// key.
func (s State) Key() string {
	var b strings.Builder
	b.WriteString(s.id.String())
	if len(s.properties) == 0 {
		return b.String()
	}
	keys := make([]string, 0, len(s.properties))
	for k := range s.properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(';')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(s.properties[k])
	}
	return b.String()
}

// Matches implements Pattern: a State matches only states structurally
// equal to itself.
func (s State) Matches(other *State) bool {
	return other != nil && s.Equal(*other)
}

func cloneProps(props map[string]string) map[string]string {
	if len(props) == 0 {
		return nil
	}
	return maps.Clone(props)
}

// Builder constructs a State incrementally.
type Builder struct {
	state State
}

// NewBuilder starts building a State with the given id and no
// properties.
func NewBuilder(id resource.ID) *Builder {
	return &Builder{state: State{id: id}}
}

// Properties merges props into the builder's property set, overwriting
// any keys already present.
func (b *Builder) Properties(props map[string]string) *Builder {
	b.state.AddProperties(props)
	return b
}

// Build returns the finished State.
func (b *Builder) Build() State {
	return New(b.state.id, b.state.properties)
}

// Pattern is anything that can test a State for a match. A State value
// is itself a Pattern (equality match); PatternFunc adapts any
// predicate function.
type Pattern interface {
	Matches(*State) bool
}

// PatternFunc adapts a plain predicate function into a Pattern.
type PatternFunc func(*State) bool

// Matches calls f.
func (f PatternFunc) Matches(s *State) bool { return f(s) }
