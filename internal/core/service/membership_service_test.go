package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
	"github.com/ptcoach/personal-trainer/internal/core/ports"
)

const thirtyDaysSeconds = 2592000

type membershipFixture struct {
	svc         *MembershipService
	memberships *stubMembershipRepo
	packages    *stubPackageRepo
	clients     *stubClientRepo
	now         time.Time
}

func newMembershipFixture() *membershipFixture {
	f := &membershipFixture{
		memberships: newStubMembershipRepo(),
		packages: newStubPackageRepo(
			&domain.SubscriptionPackage{ID: "monthly", PackageName: "Monthly", Duration: thirtyDaysSeconds},
			&domain.SubscriptionPackage{ID: "weekly", PackageName: "Weekly", Duration: 7 * 86400},
			&domain.SubscriptionPackage{ID: "trial", PackageName: "Trial"},
		),
		clients: newStubClientRepo(),
		now:     time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	seedClient(f.clients, "c1", 72)
	seedClient(f.clients, "c2")
	f.svc = NewMembershipService(f.memberships, f.packages, f.clients, zerolog.Nop())
	f.svc.now = fixedClock(&f.now)
	return f
}

func TestMembershipService_Create_OpensWindow(t *testing.T) {
	f := newMembershipFixture()
	created := f.now

	m, err := f.svc.CreateMembership(context.Background(), ports.CreateMembershipInput{Client: "c1", SubscriptionPackage: "monthly"})
	if err != nil {
		t.Fatalf("CreateMembership: %v", err)
	}

	if !m.Start.Equal(created) || !m.End.Equal(created.Add(thirtyDaysSeconds*time.Second)) {
		t.Fatalf("unexpected window: %v - %v", m.Start, m.End)
	}
	if !m.Enabled {
		t.Fatalf("expected enabled at creation")
	}

	f.now = created.Add((thirtyDaysSeconds + 1) * time.Second)
	m, err = f.svc.RefreshMembership(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("RefreshMembership: %v", err)
	}
	if m.Enabled {
		t.Fatalf("expected disabled after end")
	}
	if !m.Start.Equal(created) {
		t.Fatalf("refresh must not move the window")
	}
}

func TestMembershipService_Create_UnknownClientOrPackage(t *testing.T) {
	f := newMembershipFixture()

	_, err := f.svc.CreateMembership(context.Background(), ports.CreateMembershipInput{Client: "ghost", SubscriptionPackage: "monthly"})
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}

	_, err = f.svc.CreateMembership(context.Background(), ports.CreateMembershipInput{Client: "c1", SubscriptionPackage: "nope"})
	if !errors.Is(err, domain.ErrPackageNotFound) {
		t.Fatalf("expected ErrPackageNotFound, got %v", err)
	}
	if len(f.memberships.byID) != 0 {
		t.Fatalf("nothing should be stored on failure")
	}
}

func TestMembershipService_Update_PackageChangeRecomputes(t *testing.T) {
	f := newMembershipFixture()
	m, _ := f.svc.CreateMembership(context.Background(), ports.CreateMembershipInput{Client: "c1", SubscriptionPackage: "monthly"})

	f.now = f.now.Add(48 * time.Hour)
	weekly := "weekly"
	updated, err := f.svc.UpdateMembership(context.Background(), m.ID, ports.UpdateMembershipInput{SubscriptionPackage: &weekly})
	if err != nil {
		t.Fatalf("UpdateMembership: %v", err)
	}

	if !updated.Start.Equal(f.now) || !updated.End.Equal(f.now.Add(7*24*time.Hour)) {
		t.Fatalf("window not recomputed: %v - %v", updated.Start, updated.End)
	}
}

func TestMembershipService_Update_ClientChangeKeepsWindow(t *testing.T) {
	f := newMembershipFixture()
	m, _ := f.svc.CreateMembership(context.Background(), ports.CreateMembershipInput{Client: "c1", SubscriptionPackage: "monthly"})
	start, end := *m.Start, *m.End
	lookups := f.packages.lookups

	f.now = f.now.Add(time.Hour)
	other := "c2"
	updated, err := f.svc.UpdateMembership(context.Background(), m.ID, ports.UpdateMembershipInput{Client: &other})
	if err != nil {
		t.Fatalf("UpdateMembership: %v", err)
	}

	if updated.Client != "c2" {
		t.Fatalf("client not updated")
	}
	if !updated.Start.Equal(start) || !updated.End.Equal(end) {
		t.Fatalf("window must not change on client edit")
	}
	if f.packages.lookups != lookups {
		t.Fatalf("package must not be loaded when the window is kept")
	}
}

func TestMembershipService_Update_ClearPackageKeepsDates(t *testing.T) {
	f := newMembershipFixture()
	m, _ := f.svc.CreateMembership(context.Background(), ports.CreateMembershipInput{Client: "c1", SubscriptionPackage: "monthly"})
	start := *m.Start

	empty := ""
	updated, err := f.svc.UpdateMembership(context.Background(), m.ID, ports.UpdateMembershipInput{SubscriptionPackage: &empty})
	if err != nil {
		t.Fatalf("UpdateMembership: %v", err)
	}
	if updated.Start == nil || !updated.Start.Equal(start) {
		t.Fatalf("dates must be kept when package is cleared")
	}
}

func TestMembershipService_Create_NoDurationNeverEnabled(t *testing.T) {
	f := newMembershipFixture()

	m, err := f.svc.CreateMembership(context.Background(), ports.CreateMembershipInput{Client: "c1", SubscriptionPackage: "trial"})
	if err != nil {
		t.Fatalf("CreateMembership: %v", err)
	}
	if m.Start != nil || m.End != nil || m.Enabled {
		t.Fatalf("expected unset window and disabled membership: %+v", m)
	}
}

func TestMembershipService_Authenticate(t *testing.T) {
	f := newMembershipFixture()
	m, _ := f.svc.CreateMembership(context.Background(), ports.CreateMembershipInput{Client: "c1", SubscriptionPackage: "monthly"})

	got, err := f.svc.Authenticate(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got == nil || got.Client.ID != "c1" || got.Membership.ID != m.ID {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestMembershipService_Authenticate_DisabledReturnsNil(t *testing.T) {
	f := newMembershipFixture()
	m, _ := f.svc.CreateMembership(context.Background(), ports.CreateMembershipInput{Client: "c1", SubscriptionPackage: "trial"})

	got, err := f.svc.Authenticate(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("expected no error for disabled membership, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for disabled membership, got %+v", got)
	}
}

func TestMembershipService_Authenticate_UnknownIDErrors(t *testing.T) {
	f := newMembershipFixture()

	got, err := f.svc.Authenticate(context.Background(), "does-not-exist")
	if !errors.Is(err, domain.ErrMembershipNotFound) {
		t.Fatalf("expected ErrMembershipNotFound, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil result")
	}
}

func TestMembershipService_Authenticate_UsesStoredFlag(t *testing.T) {
	f := newMembershipFixture()
	m, _ := f.svc.CreateMembership(context.Background(), ports.CreateMembershipInput{Client: "c1", SubscriptionPackage: "monthly"})

	// Past the window but never re-saved: the stored flag still says enabled.
	f.now = f.now.Add(60 * 24 * time.Hour)
	got, err := f.svc.Authenticate(context.Background(), m.ID)
	if err != nil || got == nil {
		t.Fatalf("expected stale enabled membership to authenticate, got %+v, %v", got, err)
	}
}
