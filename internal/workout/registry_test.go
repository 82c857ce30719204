package workout

import "testing"

// TestRegistryBijectivity verifies that no two symbolic names in a
// registry share a protocol code, so that any code can be decoded back to
// exactly one name.
func TestRegistryBijectivity(t *testing.T) {
	c := Registries()

	seen := map[int]string{}
	for name, code := range c.StepKinds {
		if prev, dup := seen[code.ID]; dup {
			t.Errorf("step kinds %q and %q share id %d", prev, name, code.ID)
		}
		seen[code.ID] = name
	}

	seen = map[int]string{}
	for name, code := range c.GoalTypes {
		if prev, dup := seen[code.ID]; dup {
			t.Errorf("goal types %q and %q share id %d", prev, name, code.ID)
		}
		seen[code.ID] = name
	}

	seen = map[int]string{}
	for name, code := range c.TargetTypes {
		if prev, dup := seen[code.ID]; dup {
			t.Errorf("target types %q and %q share id %d", prev, name, code.ID)
		}
		seen[code.ID] = name
	}

	seen = map[int]string{}
	for name, code := range c.SportTypes {
		if prev, dup := seen[code.ID]; dup {
			t.Errorf("sport types %q and %q share id %d", prev, name, code.ID)
		}
		seen[code.ID] = name
	}
}

// TestRegistryRoundTrip verifies that encoding a name to its code and
// scanning the registry for that code recovers the original name, for
// every key in every table.
func TestRegistryRoundTrip(t *testing.T) {
	c := Registries()

	for name, code := range c.SportTypes {
		var recovered string
		for n, sc := range c.SportTypes {
			if sc.ID == code.ID {
				recovered = n
			}
		}
		if recovered != name {
			t.Errorf("sport id %d decodes to %q, want %q", code.ID, recovered, name)
		}
	}

	for name, code := range c.GoalTypes {
		var recovered string
		for n, gc := range c.GoalTypes {
			if gc.ID == code.ID {
				recovered = n
			}
		}
		if recovered != name {
			t.Errorf("goal id %d decodes to %q, want %q", code.ID, recovered, name)
		}
	}

	for name, code := range c.TargetTypes {
		var recovered string
		for n, tc := range c.TargetTypes {
			if tc.ID == code.ID {
				recovered = n
			}
		}
		if recovered != name {
			t.Errorf("target id %d decodes to %q, want %q", code.ID, recovered, name)
		}
	}
}

// TestRepeatNotARegularKind verifies that "repeat" resolves only through
// the group assembler, never the regular step registry.
func TestRepeatNotARegularKind(t *testing.T) {
	if _, ok := Registries().StepKinds[KindRepeat]; ok {
		t.Error("repeat must not appear in the executable step kind registry")
	}
	if repeatStepType.ID != 6 || repeatStepType.Key != "repeat" {
		t.Errorf("repeat step type = %+v, want id 6 key \"repeat\"", repeatStepType)
	}
}
