package garden

import (
	"math"
	"reflect"
	"testing"
	"time"

	"remember/internal/contact"
)

var layoutNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

// leafContact builds a contact last touched days ago. days < 0 means never.
func leafContact(id string, days, freq int) contact.Contact {
	c := contact.Contact{ID: id, Name: "c-" + id, TargetFrequencyDays: freq}
	if days >= 0 {
		last := layoutNow.Add(-time.Duration(days) * 24 * time.Hour)
		c.LastInteractionAt = &last
	}
	return c
}

func leafRadius(p LeafPosition, canvasRadius float64) float64 {
	return math.Hypot(p.X-canvasRadius, p.Y-canvasRadius)
}

func TestLayoutDeterminism(t *testing.T) {
	contacts := []contact.Contact{
		leafContact("a", 3, 30),
		leafContact("b", 20, 30),
		leafContact("c", 60, 90),
		leafContact("d", -1, 0),
		leafContact("e", 10, 7),
	}

	first := Layout(contacts, 400, layoutNow)
	second := Layout(contacts, 400, layoutNow)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("two layout passes over the same snapshot differ")
	}
}

func TestLayoutEmptyAndSingle(t *testing.T) {
	if got := Layout(nil, 400, layoutNow); len(got) != 0 {
		t.Fatalf("empty input produced %d positions", len(got))
	}

	// A one-contact ring must not divide by zero.
	out := Layout([]contact.Contact{leafContact("solo", 5, 30)}, 400, layoutNow)
	if len(out) != 1 {
		t.Fatalf("got %d positions, want 1", len(out))
	}
	p := out[0]
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		t.Fatalf("degenerate position: %+v", p)
	}

	// normalizedPosition 0 puts the leaf at its band's inner edge, mod jitter.
	r := leafRadius(p, 400)
	band := ringBands[RingHigh]
	width := (band.max - band.min) * 400
	if r < band.min*400-radiusJitterFrac*width || r > band.min*400+radiusJitterFrac*width {
		t.Errorf("solo radius = %.1f, want near inner edge %.1f", r, band.min*400)
	}
}

func TestLayoutRingSeparation(t *testing.T) {
	var contacts []contact.Contact
	contacts = append(contacts,
		leafContact("h1", 2, 7), leafContact("h2", 10, 14),
		leafContact("m1", 30, 30), leafContact("m2", 45, 45),
		leafContact("l1", 200, 90), leafContact("l2", -1, 0),
	)

	const canvas = 400.0
	out := Layout(contacts, canvas, layoutNow)

	lowMin := ringBands[RingLow].min * canvas
	for _, p := range out {
		r := leafRadius(p, canvas)
		if p.Ring == RingHigh && r >= lowMin {
			t.Errorf("high-ring leaf %s at radius %.1f crosses the low band start %.1f", p.ID, r, lowMin)
		}
		if r > canvas {
			t.Errorf("leaf %s at radius %.1f escapes the canvas", p.ID, r)
		}
	}
}

func TestLayoutRecencyOrderingWithinRing(t *testing.T) {
	// All three land in the medium ring; jitter is bounded to 15% of the band
	// width, so with three leaves the radius ordering must hold strictly.
	contacts := []contact.Contact{
		leafContact("old", 45, 60),
		leafContact("mid", 30, 60),
		leafContact("new", 16, 60),
	}

	const canvas = 400.0
	out := Layout(contacts, canvas, layoutNow)

	radii := map[string]float64{}
	for _, p := range out {
		if p.Ring != RingMedium {
			t.Fatalf("leaf %s in ring %s, want medium", p.ID, p.Ring)
		}
		radii[p.ID] = leafRadius(p, canvas)
	}

	if !(radii["new"] < radii["mid"] && radii["mid"] < radii["old"]) {
		t.Errorf("radius ordering new=%.1f mid=%.1f old=%.1f, want new < mid < old",
			radii["new"], radii["mid"], radii["old"])
	}
}

func TestLayoutNeverContactedSortsOutermost(t *testing.T) {
	contacts := []contact.Contact{
		leafContact("stale", 200, 90),
		leafContact("never", -1, 90),
	}

	const canvas = 400.0
	out := Layout(contacts, canvas, layoutNow)

	radii := map[string]float64{}
	for _, p := range out {
		radii[p.ID] = leafRadius(p, canvas)
	}
	if radii["never"] <= radii["stale"] {
		t.Errorf("never=%.1f stale=%.1f: never-contacted should sit outside", radii["never"], radii["stale"])
	}
}

func TestLayoutBucketsScenario(t *testing.T) {
	contacts := []contact.Contact{
		leafContact("a", 5, 0),
		leafContact("b", 40, 0),
		leafContact("c", 200, 0),
	}

	out := Layout(contacts, 400, layoutNow)

	want := map[string]struct {
		bucket HealthBucket
		ring   RingBucket
	}{
		"a": {HealthHealthy, RingHigh},
		"b": {HealthDying, RingMedium},
		"c": {HealthDormant, RingLow},
	}

	for _, p := range out {
		w := want[p.ID]
		if p.Bucket != w.bucket {
			t.Errorf("%s bucket = %s, want %s", p.ID, p.Bucket, w.bucket)
		}
		if p.Ring != w.ring {
			t.Errorf("%s ring = %s, want %s", p.ID, p.Ring, w.ring)
		}
	}
}

func TestLayoutCrowdScale(t *testing.T) {
	few := Layout([]contact.Contact{leafContact("a", 5, 30)}, 400, layoutNow)
	if few[0].Scale != leafScale {
		t.Errorf("scale = %v, want %v", few[0].Scale, leafScale)
	}

	var crowd []contact.Contact
	for i := 0; i < crowdThreshold+1; i++ {
		crowd = append(crowd, leafContact(string(rune('a'+i%26))+string(rune('0'+i/26)), i%80, 30))
	}
	out := Layout(crowd, 400, layoutNow)
	for _, p := range out {
		if p.Scale != crowdedScale {
			t.Fatalf("crowded scale = %v, want %v", p.Scale, crowdedScale)
		}
	}
}

func TestPolyHash(t *testing.T) {
	// 'a'*31^2 + 'b'*31 + 'c' = 96354. The hash is a wire-level contract for
	// layout reproducibility, so pin an exact value.
	if got := polyHash("abc"); got != 96354 {
		t.Errorf("polyHash(abc) = %d, want 96354", got)
	}

	if polyHash("") != 0 {
		t.Error("polyHash of empty string should be 0")
	}
}

func TestHashUnit(t *testing.T) {
	ids := []string{"a", "b", "contact-123", "550e8400-e29b-41d4-a716-446655440000"}
	for _, id := range ids {
		u := hashUnit(id, "radius")
		if u < 0 || u >= 1 {
			t.Errorf("hashUnit(%q) = %v, out of [0,1)", id, u)
		}
		if u != hashUnit(id, "radius") {
			t.Errorf("hashUnit(%q) not stable", id)
		}
	}

	// Salts separate the jitter streams.
	if hashUnit("a", "radius") == hashUnit("a", "rotation") {
		t.Error("radius and rotation jitter should differ for the same id")
	}
}
