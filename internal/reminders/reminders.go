// Package reminders turns overdue contacts into an iCalendar feed that any
// calendar app can subscribe to.
package reminders

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"

	"remember/internal/contact"
)

// DefaultTrigger fires the display alarm at the event itself.
const DefaultTrigger = "-PT0S"

// iCalendar property and component names, per RFC 5545.
const (
	propVersion     = "VERSION"
	propProdID      = "PRODID"
	propMethod      = "METHOD"
	propUID         = "UID"
	propSummary     = "SUMMARY"
	propDTStamp     = "DTSTAMP"
	propDTStart     = "DTSTART"
	propAction      = "ACTION"
	propDescription = "DESCRIPTION"
	propTrigger     = "TRIGGER"
	compAlarm       = "VALARM"
)

const prodID = "-//remember//reminders//EN"

// emptyCalendar keeps the feed valid for clients when nothing is overdue.
const emptyCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + prodID + "\r\nEND:VCALENDAR\r\n"

// Overdue returns the contacts whose silence has outrun their target cadence.
// Never-contacted counts as overdue.
func Overdue(contacts []contact.Contact, now time.Time) []contact.Contact {
	var out []contact.Contact
	for _, c := range contacts {
		d := c.DaysSinceContact(now)
		if d < 0 || d > c.Frequency() {
			out = append(out, c)
		}
	}
	return out
}

// Calendar builds an ICS feed with one reach-out event per overdue contact,
// scheduled for tomorrow. UIDs derive from contact ids so events stay stable
// across refreshes. trigger is an ISO 8601 alarm offset; empty means
// DefaultTrigger.
func Calendar(contacts []contact.Contact, now time.Time, trigger string) ([]byte, error) {
	if trigger == "" {
		trigger = DefaultTrigger
	}

	overdue := Overdue(contacts, now)
	if len(overdue) == 0 {
		return []byte(emptyCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(propVersion, "2.0")
	cal.Props.SetText(propProdID, prodID)
	cal.Props.SetText(propMethod, "PUBLISH")

	// Reach-out events land on the user's local tomorrow.
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	for _, c := range overdue {
		summary := fmt.Sprintf("Reach out to %s", c.Name)

		event := ical.NewEvent()
		event.Props.SetText(propUID, fmt.Sprintf("reachout-%s@remember.local", c.ID))
		event.Props.SetText(propSummary, summary)

		dtStamp := ical.NewProp(propDTStamp)
		dtStamp.SetDateTime(now.UTC())
		event.Props.Set(dtStamp)

		dtStart := ical.NewProp(propDTStart)
		dtStart.SetDate(tomorrow)
		event.Props.Set(dtStart)

		addAlarm(event, trigger, summary)
		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

// addAlarm appends a DISPLAY alarm to the event. The trigger prop is set
// manually to avoid a VALUE=TEXT param on the duration.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(compAlarm)
	alarm.Props.SetText(propAction, "DISPLAY")
	alarm.Props.SetText(propDescription, description)

	triggerProp := ical.NewProp(propTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
