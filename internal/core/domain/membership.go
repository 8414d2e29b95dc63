package domain

import "time"

// SubscriptionPackage defines how long a membership stays valid once started.
type SubscriptionPackage struct {
	ID          string    `json:"name" bson:"_id"`
	PackageName string    `json:"package_name" bson:"package_name"`
	Duration    int64     `json:"duration" bson:"duration"` // seconds
	Price       float64   `json:"price,omitempty" bson:"price,omitempty"`
	Currency    string    `json:"currency,omitempty" bson:"currency,omitempty"`
	CreatedAt   time.Time `json:"creation" bson:"created_at"`
}

// DurationValue returns the package duration as a time.Duration.
func (p *SubscriptionPackage) DurationValue() time.Duration {
	return time.Duration(p.Duration) * time.Second
}

// Membership grants a client access for the window [Start, End].
type Membership struct {
	ID                  string     `json:"name" bson:"_id"`
	Client              string     `json:"client" bson:"client"`
	SubscriptionPackage string     `json:"subscription_package,omitempty" bson:"subscription_package,omitempty"`
	Start               *time.Time `json:"start" bson:"start,omitempty"`
	End                 *time.Time `json:"end" bson:"end,omitempty"`
	Enabled             bool       `json:"enabled" bson:"enabled"`
	CreatedAt           time.Time  `json:"creation" bson:"created_at"`
	UpdatedAt           time.Time  `json:"modified" bson:"updated_at"`
}

// NeedsWindow reports whether saving m over prev must recompute Start/End.
// A nil prev means m has never been saved.
func (m *Membership) NeedsWindow(prev *Membership) bool {
	return prev == nil || prev.SubscriptionPackage != m.SubscriptionPackage
}

// Refresh is the pre-save hook. When NeedsWindow holds and pkg carries a
// positive duration the window restarts at now; otherwise Start/End keep
// their previous values. Enabled is always re-evaluated against now.
func (m *Membership) Refresh(prev *Membership, pkg *SubscriptionPackage, now time.Time) {
	if m.NeedsWindow(prev) && m.SubscriptionPackage != "" && pkg != nil && pkg.Duration > 0 {
		start := now
		end := now.Add(pkg.DurationValue())
		m.Start = &start
		m.End = &end
	}
	m.Enabled = m.ActiveAt(now)
}

// ActiveAt reports whether now falls inside the window, bounds inclusive.
func (m *Membership) ActiveAt(now time.Time) bool {
	if m.Start == nil || m.End == nil {
		return false
	}
	return !now.Before(*m.Start) && !now.After(*m.End)
}

// Clone returns a deep copy of m.
func (m *Membership) Clone() *Membership {
	if m == nil {
		return nil
	}
	out := *m
	if m.Start != nil {
		s := *m.Start
		out.Start = &s
	}
	if m.End != nil {
		e := *m.End
		out.End = &e
	}
	return &out
}
