package theme

import "testing"

func TestArchetypeColorsCoverAllArchetypes(t *testing.T) {
	names := []string{"Architect", "Maverick", "Zen Master", "Sleeper", "Explorer", "Firefighter"}
	for _, name := range names {
		if ArchetypeColors[name] == nil {
			t.Errorf("no accent color for %q", name)
		}
	}
	if ArchetypeColors["Unknown"] != nil {
		t.Error("unknown archetype should have no accent color")
	}
}

func TestPhaseColorsCoverAllPhases(t *testing.T) {
	for phase := 1; phase <= 5; phase++ {
		if PhaseColors[phase] == nil {
			t.Errorf("no accent color for phase %d", phase)
		}
	}
	if PhaseColors[0] != nil {
		t.Error("phase 0 should have no accent color")
	}
}
