package block

import (
	"testing"

	"github.com/brinewood/ritematica/resource"
)

func stoneID(t *testing.T) resource.ID {
	t.Helper()
	id, err := resource.Minecraft("stone")
	if err != nil {
		t.Fatalf("resource.Minecraft: %v", err)
	}
	return id
}

func TestBuilderAndMutators(t *testing.T) {
	id := stoneID(t)
	s := NewBuilder(id).Properties(map[string]string{"snowy": "true"}).Build()

	if s.ID() != id {
		t.Fatalf("ID() = %v, want %v", s.ID(), id)
	}
	if got := s.Properties()["snowy"]; got != "true" {
		t.Fatalf("Properties()[snowy] = %q, want true", got)
	}

	s.AddProperties(map[string]string{"waterlogged": "false"})
	if len(s.Properties()) != 2 {
		t.Fatalf("expected 2 properties after AddProperties, got %d", len(s.Properties()))
	}

	s.RemoveProperty("snowy")
	if _, ok := s.Properties()["snowy"]; ok {
		t.Fatalf("snowy still present after RemoveProperty")
	}

	s.SetProperties(map[string]string{"facing": "north"})
	if len(s.Properties()) != 1 || s.Properties()["facing"] != "north" {
		t.Fatalf("SetProperties did not replace: %v", s.Properties())
	}

	s.ClearProperties()
	if len(s.Properties()) != 0 {
		t.Fatalf("expected no properties after ClearProperties, got %v", s.Properties())
	}
}

func TestEqualAndKey(t *testing.T) {
	id := stoneID(t)
	a := New(id, map[string]string{"a": "1", "b": "2"})
	b := New(id, map[string]string{"b": "2", "a": "1"})

	if !a.Equal(b) {
		t.Fatalf("expected equal states regardless of property insertion order")
	}
	if a.Key() != b.Key() {
		t.Fatalf("Key() differs for equal states: %q vs %q", a.Key(), b.Key())
	}

	c := New(id, map[string]string{"a": "1"})
	if a.Equal(c) {
		t.Fatalf("expected unequal states for differing property sets")
	}
}

func TestPatternMatching(t *testing.T) {
	id := stoneID(t)
	target := New(id, nil)

	if !target.Matches(&target) {
		t.Fatalf("a state should match itself")
	}

	other := New(id, map[string]string{"snowy": "true"})
	if target.Matches(&other) {
		t.Fatalf("states with differing properties should not match")
	}

	var p Pattern = target
	if !p.Matches(&target) {
		t.Fatalf("State used as Pattern interface value should match itself")
	}

	anyStone := PatternFunc(func(s *State) bool {
		return s != nil && s.ID() == id
	})
	if !anyStone.Matches(&other) {
		t.Fatalf("PatternFunc predicate should match on id alone")
	}
}
