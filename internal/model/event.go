package model

import "time"

// EventType is the kind of beacon event reported by the website
type EventType string

const (
	EventPageView EventType = "pageview"
	EventSection  EventType = "section"
	EventCTA      EventType = "cta"
	EventForm     EventType = "form"
	EventArticle  EventType = "article"
)

// UTMParams are the campaign parameters captured on first page view
type UTMParams struct {
	Source   string `json:"source,omitempty" bson:"source,omitempty"`
	Medium   string `json:"medium,omitempty" bson:"medium,omitempty"`
	Campaign string `json:"campaign,omitempty" bson:"campaign,omitempty"`
}

// BeaconEvent is one page-engagement telemetry event. The beacon is
// privacy-first: no cookies, no PII, only a coarse fingerprint hash.
type BeaconEvent struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Type        EventType `json:"type" bson:"type"`
	Path        string    `json:"path" bson:"path"`
	DeviceType  string    `json:"deviceType,omitempty" bson:"deviceType,omitempty"` // desktop, mobile, tablet
	Referrer    string    `json:"referrer,omitempty" bson:"referrer,omitempty"`
	UTM         UTMParams `json:"utm,omitempty" bson:"utm,omitempty"`
	VisitorHash string    `json:"visitorHash,omitempty" bson:"visitorHash,omitempty"`

	// Section / article dwell
	Section     string  `json:"section,omitempty" bson:"section,omitempty"`
	DwellMS     int     `json:"dwellMs,omitempty" bson:"dwellMs,omitempty"`
	ScrollDepth float64 `json:"scrollDepth,omitempty" bson:"scrollDepth,omitempty"` // 0-1

	// CTA / form
	CTA   string `json:"cta,omitempty" bson:"cta,omitempty"`
	Field string `json:"field,omitempty" bson:"field,omitempty"`

	ReceivedAt time.Time `json:"receivedAt" bson:"receivedAt"`
}

// BeaconBatch is the request body of the beacon endpoint
type BeaconBatch struct {
	Events []BeaconEvent `json:"events"`
}

// DailySummary aggregates one day of beacon counters
type DailySummary struct {
	Date           string           `json:"date"` // YYYY-MM-DD
	PageViews      map[string]int64 `json:"pageViews"`
	CTAClicks      map[string]int64 `json:"ctaClicks"`
	Devices        map[string]int64 `json:"devices"`
	UniqueVisitors int64            `json:"uniqueVisitors"`
}
