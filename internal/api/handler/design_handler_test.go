package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/teedesigner/design-api/internal/api/middleware"
	"github.com/teedesigner/design-api/internal/core/domain"
	"github.com/teedesigner/design-api/internal/core/ports"
)

// stubDesignService is an in-memory ports.DesignService for handler tests.
type stubDesignService struct {
	designs map[string]*domain.Design
	nextID  int
}

func newStubDesignService() *stubDesignService {
	return &stubDesignService{designs: make(map[string]*domain.Design)}
}

func (s *stubDesignService) Create(_ context.Context, in ports.CreateDesignInput) (*domain.Design, error) {
	s.nextID++
	d := &domain.Design{
		ID:       fmt.Sprintf("d%d", s.nextID),
		OwnerID:  in.OwnerID,
		Name:     in.Name,
		IsPublic: in.IsPublic,
	}
	s.designs[d.ID] = d
	clone := *d
	return &clone, nil
}

func (s *stubDesignService) GetByID(_ context.Context, id string) (*domain.Design, error) {
	d, ok := s.designs[id]
	if !ok {
		return nil, domain.ErrDesignNotFound
	}
	clone := *d
	return &clone, nil
}

func (s *stubDesignService) ListByOwner(_ context.Context, ownerID string) ([]*domain.Design, error) {
	out := make([]*domain.Design, 0)
	for _, d := range s.designs {
		if d.OwnerID == ownerID {
			clone := *d
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *stubDesignService) ListPublic(_ context.Context) ([]*domain.Design, error) {
	out := make([]*domain.Design, 0)
	for _, d := range s.designs {
		if d.IsPublic {
			clone := *d
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *stubDesignService) Search(_ context.Context, query string) ([]*domain.Design, error) {
	out := make([]*domain.Design, 0)
	for _, d := range s.designs {
		if d.IsPublic && strings.Contains(d.Name, query) {
			clone := *d
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *stubDesignService) Update(_ context.Context, id string, patch ports.DesignPatch) (*domain.Design, error) {
	d, ok := s.designs[id]
	if !ok {
		return nil, domain.ErrDesignNotFound
	}
	if patch.Name != nil {
		d.Name = *patch.Name
	}
	if patch.IsPublic != nil {
		d.IsPublic = *patch.IsPublic
	}
	clone := *d
	return &clone, nil
}

func (s *stubDesignService) Delete(_ context.Context, id string) error {
	if _, ok := s.designs[id]; !ok {
		return domain.ErrDesignNotFound
	}
	delete(s.designs, id)
	return nil
}

func seedDesign(svc *stubDesignService, ownerID, name string, isPublic bool) *domain.Design {
	d, _ := svc.Create(context.Background(), ports.CreateDesignInput{
		OwnerID:  ownerID,
		Name:     name,
		IsPublic: isPublic,
	})
	return d
}

func newDesignContext(e *echo.Echo, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func asActor(c echo.Context, id, role string) {
	c.Set(middleware.CtxUserID, id)
	c.Set(middleware.CtxEmail, id+"@example.com")
	c.Set(middleware.CtxRole, role)
}

func TestDesignHandler_Create_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	svc := newStubDesignService()
	h := NewDesignHandler(svc)

	c, rec := newDesignContext(e, http.MethodPost, "/api/designs", `{"name":"T1"}`)
	asActor(c, "u1", domain.RoleUser)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "success" {
		t.Fatalf("unexpected envelope: %v", resp)
	}
	data := resp["data"].(map[string]any)
	design := data["design"].(map[string]any)
	if design["owner_id"] != "u1" {
		t.Fatalf("owner not taken from actor: %v", design)
	}
	if design["is_public"] != false {
		t.Fatalf("visibility must default to private: %v", design)
	}
}

func TestDesignHandler_Create_MissingName(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewDesignHandler(newStubDesignService())

	c, _ := newDesignContext(e, http.MethodPost, "/api/designs", `{"base_color":"#FF0000"}`)
	asActor(c, "u1", domain.RoleUser)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestDesignHandler_Create_Anonymous(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewDesignHandler(newStubDesignService())

	c, _ := newDesignContext(e, http.MethodPost, "/api/designs", `{"name":"T1"}`)

	if err := h.Create(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestDesignHandler_Get_PublicAnonymous(t *testing.T) {
	e := echo.New()
	svc := newStubDesignService()
	seeded := seedDesign(svc, "u1", "Pub", true)
	h := NewDesignHandler(svc)

	c, rec := newDesignContext(e, http.MethodGet, "/api/designs/"+seeded.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(seeded.ID)

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestDesignHandler_Get_PrivateForeign(t *testing.T) {
	e := echo.New()
	svc := newStubDesignService()
	seeded := seedDesign(svc, "u1", "Priv", false)
	h := NewDesignHandler(svc)

	c, _ := newDesignContext(e, http.MethodGet, "/api/designs/"+seeded.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(seeded.ID)
	asActor(c, "u2", domain.RoleUser)

	if err := h.Get(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDesignHandler_Get_PrivateOwner(t *testing.T) {
	e := echo.New()
	svc := newStubDesignService()
	seeded := seedDesign(svc, "u1", "Priv", false)
	h := NewDesignHandler(svc)

	c, rec := newDesignContext(e, http.MethodGet, "/api/designs/"+seeded.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(seeded.ID)
	asActor(c, "u1", domain.RoleUser)

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

// A missing design reports NotFound before any visibility check.
func TestDesignHandler_Get_Missing(t *testing.T) {
	e := echo.New()
	h := NewDesignHandler(newStubDesignService())

	c, _ := newDesignContext(e, http.MethodGet, "/api/designs/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrDesignNotFound) {
		t.Fatalf("expected ErrDesignNotFound, got %v", err)
	}
}

func TestDesignHandler_Update_ForeignDesign(t *testing.T) {
	e := echo.New()
	svc := newStubDesignService()
	seeded := seedDesign(svc, "u1", "Priv", false)
	h := NewDesignHandler(svc)

	c, _ := newDesignContext(e, http.MethodPut, "/api/designs/"+seeded.ID, `{"name":"stolen"}`)
	c.SetParamNames("id")
	c.SetParamValues(seeded.ID)
	asActor(c, "u2", domain.RoleUser)

	if err := h.Update(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if stored, _ := svc.GetByID(context.Background(), seeded.ID); stored.Name != "Priv" {
		t.Fatalf("design mutated despite denial: %+v", stored)
	}
}

// Admins get no update override: delete-only.
func TestDesignHandler_Update_AdminDenied(t *testing.T) {
	e := echo.New()
	svc := newStubDesignService()
	seeded := seedDesign(svc, "u1", "Priv", false)
	h := NewDesignHandler(svc)

	c, _ := newDesignContext(e, http.MethodPut, "/api/designs/"+seeded.ID, `{"name":"admin-edit"}`)
	c.SetParamNames("id")
	c.SetParamValues(seeded.ID)
	asActor(c, "adm", domain.RoleAdmin)

	if err := h.Update(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for admin update, got %v", err)
	}
}

func TestDesignHandler_Update_Owner(t *testing.T) {
	e := echo.New()
	svc := newStubDesignService()
	seeded := seedDesign(svc, "u1", "T1", false)
	h := NewDesignHandler(svc)

	c, rec := newDesignContext(e, http.MethodPut, "/api/designs/"+seeded.ID, `{"name":"T1 v2","is_public":true}`)
	c.SetParamNames("id")
	c.SetParamValues(seeded.ID)
	asActor(c, "u1", domain.RoleUser)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	stored, _ := svc.GetByID(context.Background(), seeded.ID)
	if stored.Name != "T1 v2" || !stored.IsPublic {
		t.Fatalf("update not applied: %+v", stored)
	}
}

func TestDesignHandler_Delete_Admin(t *testing.T) {
	e := echo.New()
	svc := newStubDesignService()
	seeded := seedDesign(svc, "u1", "T1", false)
	h := NewDesignHandler(svc)

	c, rec := newDesignContext(e, http.MethodDelete, "/api/designs/"+seeded.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(seeded.ID)
	asActor(c, "adm", domain.RoleAdmin)

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, err := svc.GetByID(context.Background(), seeded.ID); !errors.Is(err, domain.ErrDesignNotFound) {
		t.Fatalf("design not removed")
	}
}

func TestDesignHandler_Delete_Stranger(t *testing.T) {
	e := echo.New()
	svc := newStubDesignService()
	seeded := seedDesign(svc, "u1", "T1", false)
	h := NewDesignHandler(svc)

	c, _ := newDesignContext(e, http.MethodDelete, "/api/designs/"+seeded.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(seeded.ID)
	asActor(c, "u2", domain.RoleUser)

	if err := h.Delete(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDesignHandler_Delete_TwiceSecondNotFound(t *testing.T) {
	e := echo.New()
	svc := newStubDesignService()
	seeded := seedDesign(svc, "u1", "T1", false)
	h := NewDesignHandler(svc)

	for i, wantErr := range []error{nil, domain.ErrDesignNotFound} {
		c, _ := newDesignContext(e, http.MethodDelete, "/api/designs/"+seeded.ID, "")
		c.SetParamNames("id")
		c.SetParamValues(seeded.ID)
		asActor(c, "u1", domain.RoleUser)

		err := h.Delete(c)
		if wantErr == nil && err != nil {
			t.Fatalf("call %d: unexpected error %v", i, err)
		}
		if wantErr != nil && !errors.Is(err, wantErr) {
			t.Fatalf("call %d: expected %v, got %v", i, wantErr, err)
		}
	}
}

func TestDesignHandler_ListPublic_ExcludesPrivate(t *testing.T) {
	e := echo.New()
	svc := newStubDesignService()
	seedDesign(svc, "u1", "Pub", true)
	seedDesign(svc, "u1", "Priv", false)
	h := NewDesignHandler(svc)

	c, rec := newDesignContext(e, http.MethodGet, "/api/designs/public", "")

	if err := h.ListPublic(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	designs := resp["data"].(map[string]any)["designs"].([]any)
	if len(designs) != 1 {
		t.Fatalf("expected 1 public design, got %d", len(designs))
	}
	if designs[0].(map[string]any)["name"] != "Pub" {
		t.Fatalf("private design leaked: %v", designs)
	}
}

func TestDesignHandler_Search_MissingQuery(t *testing.T) {
	e := echo.New()
	h := NewDesignHandler(newStubDesignService())

	c, _ := newDesignContext(e, http.MethodGet, "/api/designs/search", "")

	err := h.Search(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestDesignHandler_Search_PublicOnly(t *testing.T) {
	e := echo.New()
	svc := newStubDesignService()
	seedDesign(svc, "u1", "Summer Tee", true)
	seedDesign(svc, "u1", "Summer Secret", false)
	h := NewDesignHandler(svc)

	c, rec := newDesignContext(e, http.MethodGet, "/api/designs/search?query=Summer", "")
	asActor(c, "u1", domain.RoleUser) // even the owner gets public-only search results

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	designs := resp["data"].(map[string]any)["designs"].([]any)
	if len(designs) != 1 {
		t.Fatalf("expected 1 result, got %d", len(designs))
	}
}

func TestDesignHandler_ListMine(t *testing.T) {
	e := echo.New()
	svc := newStubDesignService()
	seedDesign(svc, "u1", "Pub", true)
	seedDesign(svc, "u1", "Priv", false)
	seedDesign(svc, "u2", "Other", true)
	h := NewDesignHandler(svc)

	c, rec := newDesignContext(e, http.MethodGet, "/api/designs/user/mine", "")
	asActor(c, "u1", domain.RoleUser)

	if err := h.ListMine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	designs := resp["data"].(map[string]any)["designs"].([]any)
	if len(designs) != 2 {
		t.Fatalf("expected own 2 designs, got %d", len(designs))
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
