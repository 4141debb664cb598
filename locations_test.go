package busfeed

import (
	"testing"

	"github.com/campus-transit/busfeed/nextbus"
)

func TestLocationKeyRounding(t *testing.T) {
	a := nextbus.Stop{Tag: "a", Lat: 36.98501, Lon: -86.45502}
	b := nextbus.Stop{Tag: "b", Lat: 36.98499, Lon: -86.45498}

	if a.LocationKey() != b.LocationKey() {
		t.Errorf("stops ~11m apart should share a location key: %q vs %q",
			a.LocationKey(), b.LocationKey())
	}
	if !SameStop(a, b) {
		t.Error("SameStop should treat the pair as one physical stop")
	}

	far := nextbus.Stop{Tag: "c", Lat: 36.99, Lon: -86.45498}
	if SameStop(a, far) {
		t.Error("distinct locations must not share a key")
	}
}

func TestStopsByLocation(t *testing.T) {
	routes := []nextbus.Route{
		{Tag: "red", Stops: []nextbus.Stop{
			{Tag: "main-r", Lat: 36.98501, Lon: -86.45502},
			{Tag: "lib-r", Lat: 36.99000, Lon: -86.44000},
		}},
		{Tag: "blue", Stops: []nextbus.Stop{
			{Tag: "main-b", Lat: 36.98499, Lon: -86.45498},
		}},
	}

	grouped := StopsByLocation(routes)
	if len(grouped) != 2 {
		t.Fatalf("expected 2 physical stops, got %d", len(grouped))
	}

	key := nextbus.Stop{Lat: 36.98501, Lon: -86.45502}.LocationKey()
	shared := grouped[key]
	if len(shared) != 2 {
		t.Fatalf("expected both routes' copies at the shared stop, got %d", len(shared))
	}
	if shared[0].Tag != "main-r" || shared[1].Tag != "main-b" {
		t.Errorf("unexpected grouping: %+v", shared)
	}
}
