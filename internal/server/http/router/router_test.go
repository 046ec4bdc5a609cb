package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/talleres-esperanza/comedor/internal/app"
	"github.com/talleres-esperanza/comedor/internal/domain/model"
	"github.com/talleres-esperanza/comedor/internal/fallback"
	"github.com/talleres-esperanza/comedor/internal/server/http/handlers"
	"github.com/talleres-esperanza/comedor/internal/usecase"
)

type routerFacadeStub struct{}

func (routerFacadeStub) Roster(context.Context) (*app.RosterView, error) {
	return &app.RosterView{
		Entries: []app.PersonEntry{
			{Person: model.Person{ID: "1", Name: "Ana María González", Category: model.CategoryStudent}, Status: model.StatusPending},
		},
		Source: fallback.SourceLive,
	}, nil
}

func (routerFacadeStub) UpsertDraft(_ context.Context, personID string, _ app.DraftInput) (*model.OrderDraft, error) {
	soup := model.StarterSoup
	return &model.OrderDraft{PersonID: personID, Starter: &soup, PaymentMethod: model.PaymentCash, OrderDate: "2025-01-15"}, nil
}

func (routerFacadeStub) DeclineMeal(_ context.Context, personID, note string) (*model.OrderDraft, error) {
	return &model.OrderDraft{PersonID: personID, Note: note, PaymentMethod: model.PaymentCash, OrderDate: "2025-01-15"}, nil
}

func (routerFacadeStub) Summary(context.Context) (*app.SummaryView, error) {
	soup := model.StarterSoup
	drafts := []model.OrderDraft{{PersonID: "1", PersonName: "Ana María González", Starter: &soup, PaymentMethod: model.PaymentCash, OrderDate: "2025-01-15"}}
	return &app.SummaryView{Drafts: drafts, Totals: usecase.Aggregate(usecase.RecordsFromDrafts(drafts))}, nil
}

func (routerFacadeStub) Commit(context.Context) (*usecase.CommitResult, error) {
	return &usecase.CommitResult{Records: 1, Report: model.DailyReport{ReportDate: "2025-01-15", TotalOrders: 1, CashOrders: 1}}, nil
}

func (routerFacadeStub) ExportSummary(context.Context, string) (*app.ExportArtifact, error) {
	return &app.ExportArtifact{Filename: "pedidos_2025-01-15.xlsx", ContentType: "application/octet-stream", Data: []byte("stub")}, nil
}

func (routerFacadeStub) History(context.Context, string, string) (*app.HistoryView, error) {
	return &app.HistoryView{Source: fallback.SourceLive}, nil
}

func (routerFacadeStub) ExportHistory(context.Context, string, string) (*app.ExportArtifact, error) {
	return &app.ExportArtifact{Filename: "historial_pedidos_2025-01-15.xlsx", ContentType: "application/octet-stream", Data: []byte("stub")}, nil
}

func (routerFacadeStub) Reports(context.Context) ([]model.DailyReport, fallback.Source, error) {
	return nil, fallback.SourceLive, nil
}

func (routerFacadeStub) Health(context.Context) app.HealthStatus {
	return app.HealthStatus{Status: "ok", Database: "ok"}
}

var _ handlers.ComedorFacade = routerFacadeStub{}

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(routerFacadeStub{}, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for health, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/people", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for people, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Ana María González") {
		t.Fatalf("expected roster entry in response, got %s", resp.Body.String())
	}

	body, _ := json.Marshal(map[string]any{"fruit_or_soup": "soup", "payment_method": "cash"})
	req = httptest.NewRequest(http.MethodPut, "/api/session/orders/1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for upsert, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/session/orders/1/no-meal", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for no-meal, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/session/commit", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for commit, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/history", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for history, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/session/export", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for export, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Disposition"); !strings.Contains(got, "pedidos_2025-01-15.xlsx") {
		t.Fatalf("unexpected disposition %q", got)
	}
}

func TestSetupUnknownRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(routerFacadeStub{}, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}
