package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/courtflow/case-management/internal/core/domain"
	"github.com/courtflow/case-management/internal/core/ports"
)

// stubCaseService implements ports.CaseService with overridable functions.
// Unset functions fail the test when called.
type stubCaseService struct {
	t          *testing.T
	createFn   func(ctx context.Context, input ports.CreateCaseInput) (*domain.Case, error)
	approveFn  func(ctx context.Context, id, registrarName string) (*domain.Case, error)
	endorseFn  func(ctx context.Context, id string, input ports.EndorseCaseInput) (*ports.EndorseResult, error)
	registerFn func(ctx context.Context, id string, input ports.RegisterCaseInput) (*domain.Case, error)
}

func (s *stubCaseService) Create(ctx context.Context, input ports.CreateCaseInput) (*domain.Case, error) {
	if s.createFn == nil {
		s.t.Fatal("Create should not be called")
	}
	return s.createFn(ctx, input)
}

func (s *stubCaseService) Get(context.Context, string) (*domain.Case, error) {
	s.t.Fatal("Get should not be called")
	return nil, nil
}

func (s *stubCaseService) List(context.Context, ports.ListCasesFilter) ([]*domain.Case, error) {
	s.t.Fatal("List should not be called")
	return nil, nil
}

func (s *stubCaseService) Delete(context.Context, string) error {
	s.t.Fatal("Delete should not be called")
	return nil
}

func (s *stubCaseService) Stats(context.Context) (*ports.CaseStats, error) {
	s.t.Fatal("Stats should not be called")
	return nil, nil
}

func (s *stubCaseService) Register(ctx context.Context, id string, input ports.RegisterCaseInput) (*domain.Case, error) {
	if s.registerFn == nil {
		s.t.Fatal("Register should not be called")
	}
	return s.registerFn(ctx, id, input)
}

func (s *stubCaseService) Submit(context.Context, string, ports.SubmitCaseInput) (*domain.Case, error) {
	s.t.Fatal("Submit should not be called")
	return nil, nil
}

func (s *stubCaseService) Approve(ctx context.Context, id, registrarName string) (*domain.Case, error) {
	if s.approveFn == nil {
		s.t.Fatal("Approve should not be called")
	}
	return s.approveFn(ctx, id, registrarName)
}

func (s *stubCaseService) Disapprove(context.Context, string, string) (*domain.Case, error) {
	s.t.Fatal("Disapprove should not be called")
	return nil, nil
}

func (s *stubCaseService) Endorse(ctx context.Context, id string, input ports.EndorseCaseInput) (*ports.EndorseResult, error) {
	if s.endorseFn == nil {
		s.t.Fatal("Endorse should not be called")
	}
	return s.endorseFn(ctx, id, input)
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCaseHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubCaseService{
		t: t,
		createFn: func(ctx context.Context, input ports.CreateCaseInput) (*domain.Case, error) {
			if input.Title != "Doe v. Acme" || input.FiledByName != "John Doe" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Case{ID: "case-1", Title: input.Title, FiledByName: input.FiledByName, Status: domain.StatusFiled}, nil
		},
	}
	handler := NewCaseHandler(stub)

	c, rec := postJSON(e, "/v1/cases", `{"title":"Doe v. Acme","filedByName":"John Doe"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "Filed" {
		t.Fatalf("expected Filed, got %v", resp["status"])
	}
}

func TestCaseHandler_Create_MissingTitle(t *testing.T) {
	e := newTestEcho()
	handler := NewCaseHandler(&stubCaseService{t: t})

	c, _ := postJSON(e, "/v1/cases", `{"filedByName":"John Doe"}`)
	err := handler.Create(c)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCaseHandler_Register_PropagatesTransitionError(t *testing.T) {
	e := newTestEcho()
	stub := &stubCaseService{
		t: t,
		registerFn: func(ctx context.Context, id string, input ports.RegisterCaseInput) (*domain.Case, error) {
			return nil, domain.ErrInvalidTransition
		},
	}
	handler := NewCaseHandler(stub)

	c, _ := postJSON(e, "/v1/cases/case-1/register", `{"clerkName":"Alice Clerk"}`)
	c.SetParamNames("id")
	c.SetParamValues("case-1")

	err := handler.Register(c)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestCaseHandler_Approve_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubCaseService{
		t: t,
		approveFn: func(ctx context.Context, id, registrarName string) (*domain.Case, error) {
			if id != "case-1" || registrarName != "Sam Registrar" {
				t.Fatalf("unexpected args: %s %s", id, registrarName)
			}
			return &domain.Case{ID: id, Title: "Doe v. Acme", Status: domain.StatusApproved}, nil
		},
	}
	handler := NewCaseHandler(stub)

	c, rec := postJSON(e, "/v1/cases/case-1/approve", `{"registrarName":"Sam Registrar"}`)
	c.SetParamNames("id")
	c.SetParamValues("case-1")

	if err := handler.Approve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCaseHandler_Endorse_ReturnsNotification(t *testing.T) {
	e := newTestEcho()
	stub := &stubCaseService{
		t: t,
		endorseFn: func(ctx context.Context, id string, input ports.EndorseCaseInput) (*ports.EndorseResult, error) {
			return &ports.EndorseResult{
				Case: &domain.Case{ID: id, Title: "Doe v. Acme", Status: domain.StatusAssigned},
				Notification: &domain.Notification{
					ID: "notif-1", UserID: input.JudgeID, CaseID: id,
					Status: domain.NotificationUnread,
				},
			}, nil
		},
	}
	handler := NewCaseHandler(stub)

	c, rec := postJSON(e, "/v1/cases/case-1/endorse", `{"judgeId":"judge-1","registrarName":"Sam Registrar"}`)
	c.SetParamNames("id")
	c.SetParamValues("case-1")

	if err := handler.Endorse(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	notif, ok := resp["notification"].(map[string]any)
	if !ok {
		t.Fatalf("expected notification in response: %v", resp)
	}
	if notif["status"] != "Unread" {
		t.Fatalf("expected Unread notification, got %v", notif["status"])
	}
}

func TestCaseHandler_Endorse_MissingJudge(t *testing.T) {
	e := newTestEcho()
	handler := NewCaseHandler(&stubCaseService{t: t})

	c, _ := postJSON(e, "/v1/cases/case-1/endorse", `{"registrarName":"Sam Registrar"}`)
	c.SetParamNames("id")
	c.SetParamValues("case-1")

	err := handler.Endorse(c)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
