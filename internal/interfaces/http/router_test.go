package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CRM-api/internal/application/analytics"
	"github.com/jhoicas/CRM-api/internal/application/auth"
	"github.com/jhoicas/CRM-api/internal/application/dto"
	"github.com/jhoicas/CRM-api/internal/application/export"
	"github.com/jhoicas/CRM-api/internal/application/followup"
	"github.com/jhoicas/CRM-api/internal/application/leads"
	"github.com/jhoicas/CRM-api/internal/application/usecase"
	"github.com/jhoicas/CRM-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/CRM-api/internal/interfaces/http"
)

// newAPI arma la API completa sobre un store con los datos demo.
func newAPI(t *testing.T) *fiber.App {
	t.Helper()
	s := memory.NewStore()
	hash, err := memory.HashPassword("password")
	require.NoError(t, err)
	memory.SeedUsers(s, hash)
	memory.SeedDemoData(s)

	leadRepo := memory.NewLeadRepository(s)
	followUpRepo := memory.NewFollowUpRepository(s)
	projectRepo := memory.NewProjectRepository(s)
	tx := memory.NewTxRunner(s)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(memory.NewDemoIdentityProvider(s), memory.NewUserRepository(s), memory.NewSessionRepository(s),
			auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		LeadUC:      leads.NewLeadUseCase(leadRepo, tx, nil, nil),
		FollowUpUC:  followup.NewFollowUpUseCase(followUpRepo, tx, nil),
		ProjectUC:   usecase.NewProjectUseCase(projectRepo, tx),
		DashboardUC: analytics.NewDashboardUseCase(leadRepo, projectRepo, followUpRepo),
		ExportUC:    export.NewExportUseCase(leadRepo, nil, export.Options{Location: time.UTC}),
		JWTSecret:   testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func login(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", `{"email":"`+email+`","password":"password"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.LoginResponse](t, resp)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestRouter_LoginYMe(t *testing.T) {
	app := newAPI(t)

	resp := call(t, app, http.MethodPost, "/api/auth/login", "", `{"email":"admin@crm.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", decode[dto.ErrorResponse](t, resp).Code)

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", `{"email":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	token := login(t, app, memory.DemoAdminEmail)
	me := decode[dto.UserResponse](t, call(t, app, http.MethodGet, "/api/auth/me", token, ""))
	assert.Equal(t, memory.DemoAdminID, me.ID)
	assert.Equal(t, "admin", me.Role)
}

func TestRouter_LogoutInvalidaElToken(t *testing.T) {
	app := newAPI(t)
	token := login(t, app, memory.DemoSalesEmail)

	resp := call(t, app, http.MethodPost, "/api/auth/logout", token, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodGet, "/api/leads", token, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SESSION_CLOSED", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRouter_RutaDesconocida(t *testing.T) {
	app := newAPI(t)
	resp := call(t, app, http.MethodGet, "/api/no-existe", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "ROUTE_NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRouter_LeadsRequiereToken(t *testing.T) {
	app := newAPI(t)
	resp := call(t, app, http.MethodGet, "/api/leads", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestRouter_FlujoDeLead(t *testing.T) {
	app := newAPI(t)
	sales := login(t, app, memory.DemoSalesEmail)
	admin := login(t, app, memory.DemoAdminEmail)

	resp := call(t, app, http.MethodPost, "/api/leads", admin, `{"name":"Liam","company":"Orbit","email":"liam@orbit.io","requirements":"ERP"}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "solo sales crea leads")
	resp.Body.Close()

	resp = call(t, app, http.MethodPost, "/api/leads", sales, `{"name":"Liam","company":"Orbit","email":"liam@orbit.io","priority":8,"requirements":"ERP"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.LeadResponse](t, resp)
	assert.Equal(t, "pending", created.Status)

	resp = call(t, app, http.MethodPatch, "/api/leads/"+created.ID+"/status", admin, `{"status":"approved","notes":"good fit"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	changed := decode[dto.LeadStatusResponse](t, resp)
	assert.Equal(t, "approved", changed.Lead.Status)
	require.Len(t, changed.Lead.StatusHistory, 1)
	require.NotNil(t, changed.Project)
	assert.Equal(t, "Orbit - Liam", changed.Project.Name)

	resp = call(t, app, http.MethodPatch, "/api/leads/"+created.ID+"/status", admin, `{"status":"approved"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INVALID_TRANSITION", decode[dto.ErrorResponse](t, resp).Code)

	list := decode[dto.LeadListResponse](t, call(t, app, http.MethodGet, "/api/leads?status=approved", sales, ""))
	assert.Equal(t, 2, list.Total)

	resp = call(t, app, http.MethodDelete, "/api/leads/"+created.ID, sales, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodDelete, "/api/leads/"+created.ID, admin, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodGet, "/api/leads/"+created.ID, admin, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestRouter_FiltroInvalido(t *testing.T) {
	app := newAPI(t)
	token := login(t, app, memory.DemoAdminEmail)

	resp := call(t, app, http.MethodGet, "/api/leads?priority=urgent", token, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRouter_Seguimientos(t *testing.T) {
	app := newAPI(t)
	token := login(t, app, memory.DemoSalesEmail)

	resp := call(t, app, http.MethodPost, "/api/leads/3/follow-ups", token, `{"notes":"llamar"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPost, "/api/leads/3/follow-ups", token, `{"scheduled_date":"2030-05-01T10:00:00Z","notes":"llamar"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	scheduled := decode[dto.FollowUpResponse](t, resp)
	assert.Equal(t, "3", scheduled.LeadID)

	lead := decode[dto.LeadResponse](t, call(t, app, http.MethodGet, "/api/leads/3", token, ""))
	require.NotNil(t, lead.FollowUpDate)
	assert.Equal(t, "2030-05-01T10:00:00Z", lead.FollowUpDate.UTC().Format(time.RFC3339))

	resp = call(t, app, http.MethodPost, "/api/follow-ups/"+scheduled.ID+"/complete", token, `{"notes":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPost, "/api/follow-ups/"+scheduled.ID+"/complete", token, `{"notes":"Hablamos"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[dto.FollowUpResponse](t, resp).Completed)

	resp = call(t, app, http.MethodPost, "/api/follow-ups/"+scheduled.ID+"/complete", token, `{"notes":"Otra vez"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	overdue := decode[dto.FollowUpListResponse](t, call(t, app, http.MethodGet, "/api/follow-ups?state=overdue", token, ""))
	assert.Equal(t, 4, overdue.Total)
}

func TestRouter_ExportCSV(t *testing.T) {
	app := newAPI(t)
	token := login(t, app, memory.DemoAdminEmail)

	resp := call(t, app, http.MethodGet, "/api/leads/export?format=csv&status=rejected", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `attachment; filename="crm-leads-`)
	body, _ := io.ReadAll(resp.Body)
	lines := strings.Split(string(body), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "Ethan Wilson,Summit Inc,"))

	resp = call(t, app, http.MethodGet, "/api/leads/export?format=xml", token, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestRouter_ProyectosYDashboard(t *testing.T) {
	app := newAPI(t)
	sales := login(t, app, memory.DemoSalesEmail)
	admin := login(t, app, memory.DemoAdminEmail)

	projects := decode[dto.ProjectListResponse](t, call(t, app, http.MethodGet, "/api/projects", sales, ""))
	assert.Equal(t, 1, projects.Total)

	resp := call(t, app, http.MethodPut, "/api/projects/1", sales, `{"status":"completed"}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPut, "/api/projects/1", admin, `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "completed", decode[dto.ProjectResponse](t, resp).Status)

	summary := decode[dto.DashboardSummaryDTO](t, call(t, app, http.MethodGet, "/api/dashboard/summary", admin, ""))
	assert.Equal(t, 5, summary.TotalLeads)
	assert.Equal(t, 20, summary.ConversionRate)
}
