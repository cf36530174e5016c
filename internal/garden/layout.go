package garden

import (
	"math"
	"sort"
	"time"

	"remember/internal/contact"
)

// GoldenAngle is 137.5 degrees in radians, the phyllotaxis spacing angle
// between successively placed leaves.
const GoldenAngle = 137.5 * math.Pi / 180

// ringBands gives each ring's radius band as fractions of the canvas radius.
// Presentation tuning; the invariant that matters is that bands increase
// outward and do not overlap.
var ringBands = [3]struct{ min, max float64 }{
	{0.07, 0.20},
	{0.23, 0.35},
	{0.38, 0.47},
}

const (
	radiusJitterFrac  = 0.15 // of the band width
	rotationJitterDeg = 15.0

	// Past this many leaves the garden gets cramped; shrink everything.
	crowdThreshold = 100
	leafScale      = 1.0
	crowdedScale   = 0.6
)

// LeafPosition is where and how one contact renders on the garden map.
// Coordinates are relative to a square canvas of side 2*canvasRadius with the
// garden centered in it. Recomputed on every pass, never persisted.
type LeafPosition struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	X               float64      `json:"x"`
	Y               float64      `json:"y"`
	RotationDegrees float64      `json:"rotation_degrees"`
	Scale           float64      `json:"scale"`
	Bucket          HealthBucket `json:"bucket"`
	Ring            RingBucket   `json:"ring"`
}

// Layout places contacts as leaves on the radial garden map: three concentric
// rings by urgency, golden-angle spirals within each ring, recently contacted
// leaves toward each ring's inner edge. Deterministic for a fixed input set
// and now; never errors. Output order does not track input order.
func Layout(contacts []contact.Contact, canvasRadius float64, now time.Time) []LeafPosition {
	if len(contacts) == 0 {
		return nil
	}

	type leaf struct {
		c    contact.Contact
		days int
	}
	var rings [3][]leaf
	for _, c := range contacts {
		days := c.DaysSinceContact(now)
		// Ring placement uses the cadence only when the user set one; an
		// unset cadence must not pull a stale contact inward.
		r := Ring(days, c.TargetFrequencyDays)
		rings[r] = append(rings[r], leaf{c, days})
	}

	// Recency-ascending within each ring; never-contacted counts as oldest and
	// lands at the outer edge. Ties break on id so the arrangement reproduces.
	for r := range rings {
		members := rings[r]
		sort.SliceStable(members, func(i, j int) bool {
			di, dj := sortDays(members[i].days), sortDays(members[j].days)
			if di != dj {
				return di < dj
			}
			return members[i].c.ID < members[j].c.ID
		})
	}

	scale := leafScale
	if len(contacts) > crowdThreshold {
		scale = crowdedScale
	}

	out := make([]LeafPosition, 0, len(contacts))

	// Each ring's spiral starts where the previous ring's left off so that
	// radial spokes never align across rings.
	ringStart := 0.0

	for r, members := range rings {
		rMin := ringBands[r].min * canvasRadius
		rMax := ringBands[r].max * canvasRadius
		width := rMax - rMin

		for i, m := range members {
			norm := float64(i) / float64(max(1, len(members)-1))
			radius := rMin + width*norm
			radius += jitter(m.c.ID, "radius") * radiusJitterFrac * width

			angle := float64(i)*GoldenAngle + ringStart

			rot := angle * 180 / math.Pi
			rot += jitter(m.c.ID, "rotation") * rotationJitterDeg

			out = append(out, LeafPosition{
				ID:              m.c.ID,
				Name:            m.c.Name,
				X:               canvasRadius + math.Cos(angle)*radius,
				Y:               canvasRadius + math.Sin(angle)*radius,
				RotationDegrees: rot,
				Scale:           scale,
				Bucket:          Health(m.days),
				Ring:            RingBucket(r),
			})
		}
		ringStart += float64(len(members)) * GoldenAngle
	}
	return out
}

// sortDays orders never-contacted after everything else.
func sortDays(d int) int {
	if d < 0 {
		return math.MaxInt32
	}
	return d
}
