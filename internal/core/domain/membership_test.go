package domain

import (
	"testing"
	"time"
)

var thirtyDays = &SubscriptionPackage{ID: "pkg-30", Duration: 2592000}

func TestMembershipRefresh_NewDocumentOpensWindow(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	m := &Membership{Client: "c1", SubscriptionPackage: "pkg-30"}

	m.Refresh(nil, thirtyDays, now)

	if m.Start == nil || !m.Start.Equal(now) {
		t.Fatalf("start: expected %v, got %v", now, m.Start)
	}
	if m.End == nil || !m.End.Equal(now.Add(2592000*time.Second)) {
		t.Fatalf("end: expected start+30d, got %v", m.End)
	}
	if !m.Enabled {
		t.Fatalf("expected membership enabled at creation")
	}
}

func TestMembershipRefresh_ExpiresAfterEnd(t *testing.T) {
	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	m := &Membership{Client: "c1", SubscriptionPackage: "pkg-30"}
	m.Refresh(nil, thirtyDays, created)

	prev := m.Clone()
	atEnd := created.Add(2592000 * time.Second)
	m.Refresh(prev, thirtyDays, atEnd)
	if !m.Enabled {
		t.Fatalf("window end is inclusive")
	}

	prev = m.Clone()
	m.Refresh(prev, thirtyDays, atEnd.Add(time.Second))
	if m.Enabled {
		t.Fatalf("expected membership disabled one second after end")
	}
	if !m.Start.Equal(created) {
		t.Fatalf("start must not move on a plain re-save, got %v", m.Start)
	}
}

func TestMembershipRefresh_PackageChangeRestartsWindow(t *testing.T) {
	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	m := &Membership{Client: "c1", SubscriptionPackage: "pkg-30"}
	m.Refresh(nil, thirtyDays, created)

	later := created.Add(10 * 24 * time.Hour)
	weekly := &SubscriptionPackage{ID: "pkg-7", Duration: 7 * 86400}
	prev := m.Clone()
	m.SubscriptionPackage = "pkg-7"
	m.Refresh(prev, weekly, later)

	if !m.Start.Equal(later) {
		t.Fatalf("start: expected %v, got %v", later, m.Start)
	}
	if !m.End.Equal(later.Add(7 * 24 * time.Hour)) {
		t.Fatalf("end: expected %v, got %v", later.Add(7*24*time.Hour), m.End)
	}
}

func TestMembershipRefresh_OtherFieldChangeKeepsWindow(t *testing.T) {
	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	m := &Membership{Client: "c1", SubscriptionPackage: "pkg-30"}
	m.Refresh(nil, thirtyDays, created)

	prev := m.Clone()
	m.Client = "c2"
	if m.NeedsWindow(prev) {
		t.Fatalf("client change must not require a new window")
	}
	m.Refresh(prev, thirtyDays, created.Add(time.Hour))

	if !m.Start.Equal(created) {
		t.Fatalf("start changed on non-package edit: %v", m.Start)
	}
}

func TestMembershipRefresh_ClearedPackageKeepsDates(t *testing.T) {
	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	m := &Membership{Client: "c1", SubscriptionPackage: "pkg-30"}
	m.Refresh(nil, thirtyDays, created)
	start, end := *m.Start, *m.End

	prev := m.Clone()
	m.SubscriptionPackage = ""
	m.Refresh(prev, nil, created.Add(time.Hour))

	if !m.Start.Equal(start) || !m.End.Equal(end) {
		t.Fatalf("dates must be kept when package is cleared")
	}
	if !m.Enabled {
		t.Fatalf("still inside the old window, expected enabled")
	}
}

func TestMembershipRefresh_ZeroDurationLeavesUnset(t *testing.T) {
	m := &Membership{Client: "c1", SubscriptionPackage: "free"}
	m.Refresh(nil, &SubscriptionPackage{ID: "free"}, time.Now())

	if m.Start != nil || m.End != nil {
		t.Fatalf("expected no window for zero duration")
	}
	if m.Enabled {
		t.Fatalf("membership without a window is never enabled")
	}
}
