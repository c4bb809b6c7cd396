package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockCategoryService struct {
	listFn   func(ctx context.Context, identity models.Identity) ([]models.Category, error)
	getFn    func(ctx context.Context, identity models.Identity, id int64) (models.Category, error)
	createFn func(ctx context.Context, identity models.Identity, input models.CategoryInput) (models.Category, error)
	updateFn func(ctx context.Context, identity models.Identity, id int64, input models.CategoryInput) (models.Category, error)
	deleteFn func(ctx context.Context, identity models.Identity, id int64) error
}

func (m *mockCategoryService) ListCategories(ctx context.Context, identity models.Identity) ([]models.Category, error) {
	return m.listFn(ctx, identity)
}

func (m *mockCategoryService) GetCategory(ctx context.Context, identity models.Identity, id int64) (models.Category, error) {
	return m.getFn(ctx, identity, id)
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, identity models.Identity, input models.CategoryInput) (models.Category, error) {
	return m.createFn(ctx, identity, input)
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, identity models.Identity, id int64, input models.CategoryInput) (models.Category, error) {
	return m.updateFn(ctx, identity, id, input)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, identity models.Identity, id int64) error {
	return m.deleteFn(ctx, identity, id)
}

type mockContactService struct {
	listFn   func(ctx context.Context, identity models.Identity, query models.ListQuery) (models.ContactPage, error)
	getFn    func(ctx context.Context, identity models.Identity, id int64) (models.Contact, error)
	createFn func(ctx context.Context, identity models.Identity, fields models.ContactFields) (models.Contact, error)
	updateFn func(ctx context.Context, identity models.Identity, id int64, fields models.ContactFields) (models.Contact, error)
	deleteFn func(ctx context.Context, identity models.Identity, id int64) error
}

func (m *mockContactService) ListContacts(ctx context.Context, identity models.Identity, query models.ListQuery) (models.ContactPage, error) {
	return m.listFn(ctx, identity, query)
}

func (m *mockContactService) GetContact(ctx context.Context, identity models.Identity, id int64) (models.Contact, error) {
	return m.getFn(ctx, identity, id)
}

func (m *mockContactService) CreateContact(ctx context.Context, identity models.Identity, fields models.ContactFields) (models.Contact, error) {
	return m.createFn(ctx, identity, fields)
}

func (m *mockContactService) UpdateContact(ctx context.Context, identity models.Identity, id int64, fields models.ContactFields) (models.Contact, error) {
	return m.updateFn(ctx, identity, id, fields)
}

func (m *mockContactService) DeleteContact(ctx context.Context, identity models.Identity, id int64) error {
	return m.deleteFn(ctx, identity, id)
}

type mockSummaryService struct {
	getFn func(ctx context.Context, identity models.Identity) (models.Summary, error)
}

func (m *mockSummaryService) GetSummary(ctx context.Context, identity models.Identity) (models.Summary, error) {
	return m.getFn(ctx, identity)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppInfo(_ context.Context) models.VersionResponse {
	return models.VersionResponse{Version: m.version, BuildCommit: "abc123"}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testBearer = "Bearer good-token"

var (
	testAlice = models.Identity{UserID: "0190a7e4-alice", UserName: "alice"}
	testBob   = models.Identity{UserID: "0190a7e4-bob", UserName: "bob"}
)

// tokenAuth accepts "good-token" as alice and "bob-token" as bob.
func tokenAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			switch tokenString {
			case "good-token":
				return models.Token{UserID: testAlice.UserID, UserName: testAlice.UserName}, nil
			case "bob-token":
				return models.Token{UserID: testBob.UserID, UserName: testBob.UserName}, nil
			default:
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
		},
	}
}

// newTestRouter builds the full router over the given services. Unset
// services are filled with an accepting AuthService and a fixed version.
func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = tokenAuth()
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return NewHandler(svcs, config.Server{}, logger.Nop()).Init()
}

// do sends a request through h with the given bearer header (may be empty).
func do(t *testing.T, h http.Handler, method, target, authorization string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp
}
