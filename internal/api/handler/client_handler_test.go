package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
	"github.com/ptcoach/personal-trainer/internal/core/ports"
)

func TestClientHandler_Create(t *testing.T) {
	var got ports.CreateClientInput
	svc := &stubClientService{
		createFn: func(ctx context.Context, in ports.CreateClientInput) (*domain.Client, error) {
			got = in
			return &domain.Client{ID: "C-1", ClientName: in.Profile.ClientName, Goal: domain.Goal(in.Profile.Goal)}, nil
		},
	}
	h := NewClientHandler(svc)

	_, c, rec := newTestContext(http.MethodPost, "/v1/clients",
		`{"client_name":"Ana","goal":"Weight Loss","date_of_birth":"1990-05-01","weight":82.5,"multiplier":1.1}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.InitialWeight == nil || *got.InitialWeight != 82.5 {
		t.Fatalf("initial weight not passed: %+v", got)
	}
	if got.Profile.DateOfBirth == nil || !got.Profile.DateOfBirth.Equal(time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date of birth not parsed: %v", got.Profile.DateOfBirth)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["name"] != "C-1" {
		t.Fatalf("expected record id under name, got %v", resp)
	}
}

func TestClientHandler_Create_ValidationErrors(t *testing.T) {
	svc := &stubClientService{
		createFn: func(ctx context.Context, in ports.CreateClientInput) (*domain.Client, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewClientHandler(svc)

	for name, body := range map[string]string{
		"missing name":  `{"goal":"Weight Loss"}`,
		"unknown goal":  `{"client_name":"Ana","goal":"Bulk"}`,
		"zero weight":   `{"client_name":"Ana","weight":0}`,
		"bad email":     `{"client_name":"Ana","email":"nope"}`,
		"negative mult": `{"client_name":"Ana","multiplier":-1}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, c, _ := newTestContext(http.MethodPost, "/v1/clients", body)
			err := h.Create(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %v", err)
			}
		})
	}
}

func TestClientHandler_Create_BadDateOfBirth(t *testing.T) {
	h := NewClientHandler(&stubClientService{})

	_, c, _ := newTestContext(http.MethodPost, "/v1/clients", `{"client_name":"Ana","date_of_birth":"01/05/1990"}`)
	if err := h.Create(c); !errors.Is(err, domain.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestClientHandler_List(t *testing.T) {
	var got ports.ListClientsInput
	svc := &stubClientService{
		listFn: func(ctx context.Context, in ports.ListClientsInput) (*ports.ListClientsResult, error) {
			got = in
			return &ports.ListClientsResult{Total: 0, Page: 2, Limit: 5}, nil
		},
	}
	h := NewClientHandler(svc)

	_, c, rec := newTestContext(http.MethodGet, "/v1/clients?page=2&limit=5&search=an&goal=Weight+Gain", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Page != 2 || got.Limit != 5 || got.Search != "an" || got.Goal != "Weight Gain" {
		t.Fatalf("query not bound: %+v", got)
	}

	var resp listClientsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Data == nil || resp.Pagination.Page != 2 {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}
}

func TestClientHandler_List_LimitTooLarge(t *testing.T) {
	h := NewClientHandler(&stubClientService{})

	_, c, _ := newTestContext(http.MethodGet, "/v1/clients?limit=500", "")
	var he *echo.HTTPError
	if err := h.List(c); !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestClientHandler_Update_Partial(t *testing.T) {
	var got ports.UpdateClientInput
	svc := &stubClientService{
		updateFn: func(ctx context.Context, id string, in ports.UpdateClientInput) (*domain.Client, error) {
			got = in
			return &domain.Client{ID: id}, nil
		},
	}
	h := NewClientHandler(svc)

	_, c, rec := newTestContext(http.MethodPatch, "/v1/clients/C-1", `{"goal":"Muscle Building","height":181}`)
	c.SetParamNames("id")
	c.SetParamValues("C-1")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Goal == nil || *got.Goal != "Muscle Building" || got.Height == nil || *got.Height != 181 {
		t.Fatalf("unexpected input: %+v", got)
	}
	if got.ClientName != nil || got.Multiplier != nil {
		t.Fatalf("absent fields must stay nil")
	}
}

func TestClientHandler_AddWeight(t *testing.T) {
	for _, replayed := range []bool{false, true} {
		var got ports.WeightSampleInput
		svc := &stubClientService{
			appendFn: func(ctx context.Context, in ports.WeightSampleInput) (*domain.Client, bool, error) {
				got = in
				return &domain.Client{ID: in.ClientID}, replayed, nil
			},
		}
		h := NewClientHandler(svc)

		_, c, rec := newTestContext(http.MethodPost, "/v1/clients/C-1/weights", `{"weight":80.4}`)
		c.Request().Header.Set("Idempotency-Key", "scale-7")
		c.SetParamNames("id")
		c.SetParamValues("C-1")
		if err := h.AddWeight(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}

		want := http.StatusCreated
		if replayed {
			want = http.StatusOK
		}
		if rec.Code != want {
			t.Fatalf("replayed=%v: expected %d, got %d", replayed, want, rec.Code)
		}
		if got.ClientID != "C-1" || got.Weight != 80.4 || got.IdempotencyKey != "scale-7" {
			t.Fatalf("unexpected input: %+v", got)
		}
	}
}

func TestClientHandler_GetAndDelete_PropagateErrors(t *testing.T) {
	svc := &stubClientService{
		getFn:    func(ctx context.Context, id string) (*domain.Client, error) { return nil, domain.ErrClientNotFound },
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}
	h := NewClientHandler(svc)

	_, c, _ := newTestContext(http.MethodGet, "/v1/clients/x", "")
	if err := h.Get(c); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}

	_, c, rec := newTestContext(http.MethodDelete, "/v1/clients/x", "")
	if err := h.Delete(c); err != nil || rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d (%v)", rec.Code, err)
	}
}
