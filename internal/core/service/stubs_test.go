package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
	"github.com/ptcoach/personal-trainer/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubClientRepo struct {
	mu      sync.Mutex
	byID    map[string]*domain.Client
	saves   int
	saveErr error
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{byID: make(map[string]*domain.Client)}
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.Revision == 0 {
		c.Revision = 1
	}
	r.byID[c.ID] = c.Clone()
	return nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return c.Clone(), nil
}

func (r *stubClientRepo) Save(_ context.Context, c *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	stored, ok := r.byID[c.ID]
	if !ok {
		return domain.ErrClientNotFound
	}
	if stored.Revision != c.Revision {
		return domain.ErrConflict
	}
	r.saves++
	c.Revision++
	r.byID[c.ID] = c.Clone()
	return nil
}

func (r *stubClientRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubClientRepo) List(_ context.Context, f ports.ListClientsFilter) ([]*domain.Client, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*domain.Client
	for _, c := range r.byID {
		if f.Goal != "" && string(c.Goal) != f.Goal {
			continue
		}
		if f.Search != "" {
			q := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(c.ClientName), q) && !strings.Contains(strings.ToLower(c.Email), q) {
				continue
			}
		}
		matched = append(matched, c.Clone())
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ClientName < matched[j].ClientName })

	total := int64(len(matched))
	skip := (f.Page - 1) * f.Limit
	if skip > len(matched) {
		return []*domain.Client{}, total, nil
	}
	end := skip + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

type stubMembershipRepo struct {
	byID map[string]*domain.Membership
}

func newStubMembershipRepo() *stubMembershipRepo {
	return &stubMembershipRepo{byID: make(map[string]*domain.Membership)}
}

func (r *stubMembershipRepo) Create(_ context.Context, m *domain.Membership) error {
	r.byID[m.ID] = m.Clone()
	return nil
}

func (r *stubMembershipRepo) FindByID(_ context.Context, id string) (*domain.Membership, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMembershipNotFound
	}
	return m.Clone(), nil
}

func (r *stubMembershipRepo) Save(_ context.Context, m *domain.Membership) error {
	if _, ok := r.byID[m.ID]; !ok {
		return domain.ErrMembershipNotFound
	}
	r.byID[m.ID] = m.Clone()
	return nil
}

func (r *stubMembershipRepo) ListByClient(_ context.Context, clientID string) ([]*domain.Membership, error) {
	out := []*domain.Membership{}
	for _, m := range r.byID {
		if m.Client == clientID {
			out = append(out, m.Clone())
		}
	}
	return out, nil
}

type stubPackageRepo struct {
	byID    map[string]*domain.SubscriptionPackage
	lookups int
}

func newStubPackageRepo(pkgs ...*domain.SubscriptionPackage) *stubPackageRepo {
	r := &stubPackageRepo{byID: make(map[string]*domain.SubscriptionPackage)}
	for _, p := range pkgs {
		r.byID[p.ID] = p
	}
	return r
}

func (r *stubPackageRepo) Create(_ context.Context, p *domain.SubscriptionPackage) error {
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPackageRepo) FindByID(_ context.Context, id string) (*domain.SubscriptionPackage, error) {
	r.lookups++
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPackageNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPackageRepo) List(_ context.Context) ([]*domain.SubscriptionPackage, error) {
	out := make([]*domain.SubscriptionPackage, 0, len(r.byID))
	for _, p := range r.byID {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

type stubDedup struct {
	dupResult bool
	dupErr    error
	markErr   error
	marked    []string
}

func (d *stubDedup) IsDuplicate(_ context.Context, clientID, key string) (bool, error) {
	return d.dupResult, d.dupErr
}

func (d *stubDedup) Mark(_ context.Context, clientID, key string) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.marked = append(d.marked, clientID+":"+key)
	return nil
}

// fixedClock returns a clock that reports *t, so tests can move time forward.
func fixedClock(t *time.Time) func() time.Time {
	return func() time.Time { return *t }
}
