package handler

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
	"github.com/ptcoach/personal-trainer/internal/core/ports"
)

// errNotStubbed is returned by stub methods whose function is unset.
var errNotStubbed = errors.New("stub: call not configured")

// stubClientService returns canned results.
type stubClientService struct {
	createFn      func(ctx context.Context, in ports.CreateClientInput) (*domain.Client, error)
	getFn         func(ctx context.Context, id string) (*domain.Client, error)
	listFn        func(ctx context.Context, in ports.ListClientsInput) (*ports.ListClientsResult, error)
	updateFn      func(ctx context.Context, id string, in ports.UpdateClientInput) (*domain.Client, error)
	deleteFn      func(ctx context.Context, id string) error
	updateFieldFn func(ctx context.Context, id, field, value string) error
	appendFn      func(ctx context.Context, in ports.WeightSampleInput) (*domain.Client, bool, error)
}

func (s *stubClientService) CreateClient(ctx context.Context, in ports.CreateClientInput) (*domain.Client, error) {
	if s.createFn == nil {
		return nil, errNotStubbed
	}
	return s.createFn(ctx, in)
}

func (s *stubClientService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	if s.getFn == nil {
		return nil, errNotStubbed
	}
	return s.getFn(ctx, id)
}

func (s *stubClientService) ListClients(ctx context.Context, in ports.ListClientsInput) (*ports.ListClientsResult, error) {
	if s.listFn == nil {
		return nil, errNotStubbed
	}
	return s.listFn(ctx, in)
}

func (s *stubClientService) UpdateClient(ctx context.Context, id string, in ports.UpdateClientInput) (*domain.Client, error) {
	if s.updateFn == nil {
		return nil, errNotStubbed
	}
	return s.updateFn(ctx, id, in)
}

func (s *stubClientService) DeleteClient(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return errNotStubbed
	}
	return s.deleteFn(ctx, id)
}

func (s *stubClientService) UpdateField(ctx context.Context, id, field, value string) error {
	if s.updateFieldFn == nil {
		return errNotStubbed
	}
	return s.updateFieldFn(ctx, id, field, value)
}

func (s *stubClientService) AppendWeight(ctx context.Context, in ports.WeightSampleInput) (*domain.Client, bool, error) {
	if s.appendFn == nil {
		return nil, false, errNotStubbed
	}
	return s.appendFn(ctx, in)
}

type stubMembershipService struct {
	createFn       func(ctx context.Context, in ports.CreateMembershipInput) (*domain.Membership, error)
	getFn          func(ctx context.Context, id string) (*domain.Membership, error)
	updateFn       func(ctx context.Context, id string, in ports.UpdateMembershipInput) (*domain.Membership, error)
	refreshFn      func(ctx context.Context, id string) (*domain.Membership, error)
	listByClientFn func(ctx context.Context, clientID string) ([]*domain.Membership, error)
	authFn         func(ctx context.Context, id string) (*ports.AuthenticatedMembership, error)
}

func (s *stubMembershipService) CreateMembership(ctx context.Context, in ports.CreateMembershipInput) (*domain.Membership, error) {
	if s.createFn == nil {
		return nil, errNotStubbed
	}
	return s.createFn(ctx, in)
}

func (s *stubMembershipService) GetMembership(ctx context.Context, id string) (*domain.Membership, error) {
	if s.getFn == nil {
		return nil, errNotStubbed
	}
	return s.getFn(ctx, id)
}

func (s *stubMembershipService) UpdateMembership(ctx context.Context, id string, in ports.UpdateMembershipInput) (*domain.Membership, error) {
	if s.updateFn == nil {
		return nil, errNotStubbed
	}
	return s.updateFn(ctx, id, in)
}

func (s *stubMembershipService) RefreshMembership(ctx context.Context, id string) (*domain.Membership, error) {
	if s.refreshFn == nil {
		return nil, errNotStubbed
	}
	return s.refreshFn(ctx, id)
}

func (s *stubMembershipService) ListClientMemberships(ctx context.Context, clientID string) ([]*domain.Membership, error) {
	if s.listByClientFn == nil {
		return nil, errNotStubbed
	}
	return s.listByClientFn(ctx, clientID)
}

func (s *stubMembershipService) Authenticate(ctx context.Context, id string) (*ports.AuthenticatedMembership, error) {
	if s.authFn == nil {
		return nil, errNotStubbed
	}
	return s.authFn(ctx, id)
}

type stubDispatcher struct {
	batches [][]ports.WeightSampleInput
}

func (d *stubDispatcher) Enqueue(s ports.WeightSampleInput) {
	d.batches = append(d.batches, []ports.WeightSampleInput{s})
}

func (d *stubDispatcher) EnqueueBatch(s []ports.WeightSampleInput) {
	d.batches = append(d.batches, s)
}

// newTestContext builds an echo context with the validator installed. A
// non-empty body is sent as JSON.
func newTestContext(method, target, body string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}
