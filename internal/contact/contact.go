package contact

import "time"

// Importance ranks how much the user wants to stay close to someone.
type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

// DefaultFrequencyDays is the cadence assumed when a contact has none set.
const DefaultFrequencyDays = 30

// NeverContacted is the DaysSince sentinel for contacts with no interactions.
const NeverContacted = -1

// Contact is one person in the garden.
type Contact struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	Email               string      `json:"email,omitempty"`
	Phone               string      `json:"phone,omitempty"`
	Company             string      `json:"company,omitempty"`
	Notes               string      `json:"notes,omitempty"`
	Importance          Importance  `json:"importance,omitempty"`
	TargetFrequencyDays int         `json:"target_frequency_days,omitempty"` // 0 = unset, see Frequency()
	LastInteractionAt   *time.Time  `json:"last_interaction_at,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// Frequency returns the target cadence in days, defaulted when unset.
func (c *Contact) Frequency() int {
	if c.TargetFrequencyDays <= 0 {
		return DefaultFrequencyDays
	}
	return c.TargetFrequencyDays
}

// DaysSince returns whole days between last and now. Returns NeverContacted
// when last is nil or in the future.
func DaysSince(now time.Time, last *time.Time) int {
	if last == nil {
		return NeverContacted
	}
	d := int(now.Sub(*last).Hours() / 24)
	if d < 0 {
		return NeverContacted
	}
	return d
}

// DaysSinceContact is DaysSince applied to the contact's last interaction.
func (c *Contact) DaysSinceContact(now time.Time) int {
	return DaysSince(now, c.LastInteractionAt)
}
