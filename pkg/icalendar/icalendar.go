package icalendar

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
)

// floatingLayout renders a local date-time without zone, e.g. 20260204T150000.
const floatingLayout = "20060102T150405"

// ErrNoEvents is returned by Encode for an empty event list.
var ErrNoEvents = errors.New("icalendar: no events to encode")

// Event is one VEVENT. Start and End are written as floating local times.
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
}

// Encode writes a VCALENDAR holding events to w. stamp becomes every event's DTSTAMP.
func Encode(w io.Writer, prodID string, stamp time.Time, events []Event) error {
	if len(events) == 0 {
		return ErrNoEvents
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, prodID)

	for _, e := range events {
		vevent := ical.NewComponent(ical.CompEvent)
		vevent.Props.SetText(ical.PropUID, e.UID)
		vevent.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
		vevent.Props.SetText(ical.PropSummary, e.Summary)
		if e.Description != "" {
			vevent.Props.SetText(ical.PropDescription, e.Description)
		}
		if e.Location != "" {
			vevent.Props.SetText(ical.PropLocation, e.Location)
		}
		vevent.Props.Set(floating(ical.PropDateTimeStart, e.Start))
		vevent.Props.Set(floating(ical.PropDateTimeEnd, e.End))

		cal.Children = append(cal.Children, vevent)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode iCalendar: %w", err)
	}
	return nil
}

func floating(name string, t time.Time) *ical.Prop {
	p := ical.NewProp(name)
	p.Value = t.Format(floatingLayout)
	return p
}
