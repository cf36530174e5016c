package garden

// HealthBucket is the four-state freshness classification that drives leaf
// color: how long since the user last talked to this person.
type HealthBucket string

const (
	HealthHealthy HealthBucket = "healthy"
	HealthWarning HealthBucket = "warning"
	HealthDying   HealthBucket = "dying"
	HealthDormant HealthBucket = "dormant"
)

// RingBucket is the coarser three-state urgency classification used only for
// ring placement on the garden map. It is a separate scheme from HealthBucket
// with its own thresholds; the two must not be collapsed into one function.
type RingBucket int

const (
	RingHigh RingBucket = iota
	RingMedium
	RingLow
)

func (r RingBucket) String() string {
	switch r {
	case RingHigh:
		return "high"
	case RingMedium:
		return "medium"
	default:
		return "low"
	}
}

// Health maps days since last contact to a freshness bucket. daysSince < 0
// means never contacted and classifies as dormant.
func Health(daysSince int) HealthBucket {
	switch {
	case daysSince < 0:
		return HealthDormant
	case daysSince <= 7:
		return HealthHealthy
	case daysSince <= 21:
		return HealthWarning
	case daysSince <= 90:
		return HealthDying
	default:
		return HealthDormant
	}
}

// Ring assigns a contact to one of the three concentric garden rings from its
// cadence and recency. Unknown or invalid input fails open to the outermost
// (low urgency) ring.
func Ring(daysSince, targetFrequencyDays int) RingBucket {
	if targetFrequencyDays > 0 && targetFrequencyDays <= 14 {
		return RingHigh
	}
	if daysSince >= 0 && daysSince <= 14 {
		return RingHigh
	}
	if targetFrequencyDays >= 15 && targetFrequencyDays <= 45 {
		return RingMedium
	}
	if daysSince >= 15 && daysSince <= 45 {
		return RingMedium
	}
	return RingLow
}
