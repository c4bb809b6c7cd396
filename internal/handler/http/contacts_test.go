package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

func newContactRouter(t *testing.T, svc *mockContactService) http.Handler {
	t.Helper()
	return newTestRouter(t, &service.Services{ContactService: svc})
}

func int64Ptr(v int64) *int64 { return &v }

// ─────────────────────────────────────────────
// listContacts
// ─────────────────────────────────────────────

func TestListContacts_QueryParsing(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  models.ListQuery
	}{
		{name: "no parameters", query: "", want: models.ListQuery{}},
		{
			name:  "all parameters",
			query: "?search=lee&categoryId=3&sort=nameDesc&page=2&pageSize=5",
			want:  models.ListQuery{Search: "lee", CategoryID: int64Ptr(3), Sort: models.SortNameDesc, Page: 2, PageSize: 5},
		},
		{
			name:  "malformed numbers are ignored",
			query: "?categoryId=abc&page=two&pageSize=1.5",
			want:  models.ListQuery{},
		},
		{
			name:  "non-positive category is ignored",
			query: "?categoryId=0",
			want:  models.ListQuery{},
		},
		{
			name:  "negative paging is passed on for clamping",
			query: "?page=-1&pageSize=-10",
			want:  models.ListQuery{Page: -1, PageSize: -10},
		},
		{
			name:  "legacy sort token and encoded search",
			query: "?sort=date_desc&search=O%27Brien",
			want:  models.ListQuery{Search: "O'Brien", Sort: "date_desc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.ListQuery
			svc := &mockContactService{
				listFn: func(_ context.Context, identity models.Identity, query models.ListQuery) (models.ContactPage, error) {
					assert.Equal(t, testAlice, identity)
					got = query
					return models.ContactPage{}, nil
				},
			}

			rec := do(t, newContactRouter(t, svc), http.MethodGet, "/api/contacts"+tt.query, testBearer, nil)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListContacts_Body(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc := &mockContactService{
		listFn: func(context.Context, models.Identity, models.ListQuery) (models.ContactPage, error) {
			return models.ContactPage{
				Items: []models.Contact{{
					ID: 1, FirstName: "Ann", LastName: "Lee", CreatedAt: createdAt,
					CategoryID: 3, CategoryName: "Work", OwnerUserID: testAlice.UserID, OwnerUserName: "alice",
				}},
				TotalCount: 11,
				TotalPages: 2,
				Sort:       models.SortNameAsc,
				Page:       1,
				PageSize:   10,
			}, nil
		},
	}

	rec := do(t, newContactRouter(t, svc), http.MethodGet, "/api/contacts", testBearer, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"items": [{
			"id": 1, "first_name": "Ann", "last_name": "Lee",
			"created_at": "2026-01-02T03:04:05Z",
			"category_id": 3, "category_name": "Work", "owner_user_name": "alice"
		}],
		"total_count": 11,
		"total_pages": 2,
		"categories": [],
		"sort": "nameAsc",
		"page": 1,
		"page_size": 10
	}`, rec.Body.String())
}

func TestListContacts_StoreUnavailable(t *testing.T) {
	svc := &mockContactService{
		listFn: func(context.Context, models.Identity, models.ListQuery) (models.ContactPage, error) {
			return models.ContactPage{}, store.ErrStoreUnavailable
		},
	}

	rec := do(t, newContactRouter(t, svc), http.MethodGet, "/api/contacts", testBearer, nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

// ─────────────────────────────────────────────
// create / update
// ─────────────────────────────────────────────

func TestCreateContact(t *testing.T) {
	var gotFields models.ContactFields
	svc := &mockContactService{
		createFn: func(_ context.Context, identity models.Identity, fields models.ContactFields) (models.Contact, error) {
			gotFields = fields
			c := models.Contact{ID: 10, OwnerUserID: identity.UserID, OwnerUserName: identity.UserName}
			fields.Apply(&c)
			return c, nil
		},
	}

	body := `{"first_name":"Ann","last_name":"Lee","email":"ann@example.com","category_id":3}`
	rec := do(t, newContactRouter(t, svc), http.MethodPost, "/api/contacts", testBearer, strings.NewReader(body))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, gotFields.Email)
	assert.Equal(t, "ann@example.com", *gotFields.Email)
	assert.Nil(t, gotFields.Phone)

	var created models.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, "alice", created.OwnerUserName)
}

func TestCreateContact_ServerFieldsInBodyAreRejected(t *testing.T) {
	svc := &mockContactService{}

	for _, body := range []string{
		`{"first_name":"Ann","last_name":"Lee","category_id":3,"created_at":"2001-01-01T00:00:00Z"}`,
		`{"first_name":"Ann","last_name":"Lee","category_id":3,"id":99}`,
		`{"first_name":"Ann","last_name":"Lee","category_id":3,"owner_user_name":"bob"}`,
	} {
		rec := do(t, newContactRouter(t, svc), http.MethodPost, "/api/contacts", testBearer, strings.NewReader(body))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestCreateContact_ValidationErrors(t *testing.T) {
	svc := &mockContactService{
		createFn: func(context.Context, models.Identity, models.ContactFields) (models.Contact, error) {
			verr := &validators.ValidationError{}
			verr.Add(validators.FieldFirstName, validators.MsgRequired)
			verr.Add(validators.FieldEmail, validators.MsgInvalidEmail)
			return models.Contact{}, verr
		},
	}

	rec := do(t, newContactRouter(t, svc), http.MethodPost, "/api/contacts", testBearer, strings.NewReader(`{"email":"x"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, []models.FieldErrorResponse{
		{Field: "first_name", Message: "is required"},
		{Field: "email", Message: "must be a valid email address"},
	}, resp.Fields)
}

func TestUpdateContact(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
	}{
		{name: "success", path: "/api/contacts/4", wantStatus: http.StatusOK},
		{name: "not owned", path: "/api/contacts/4", err: store.ErrContactNotFound, wantStatus: http.StatusNotFound},
		{
			name:       "foreign category",
			path:       "/api/contacts/4",
			err:        validators.NewValidationError(store.ErrInvalidCategory, validators.FieldCategoryID, validators.MsgInvalidCategory),
			wantStatus: http.StatusBadRequest,
		},
		{name: "malformed id", path: "/api/contacts/4x", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockContactService{
				updateFn: func(_ context.Context, _ models.Identity, id int64, fields models.ContactFields) (models.Contact, error) {
					assert.Equal(t, int64(4), id)
					if tt.err != nil {
						return models.Contact{}, tt.err
					}
					c := models.Contact{ID: id}
					fields.Apply(&c)
					return c, nil
				},
			}

			body := `{"first_name":"Ann","last_name":"Lee","category_id":3}`
			rec := do(t, newContactRouter(t, svc), http.MethodPut, tt.path, testBearer, strings.NewReader(body))

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

// ─────────────────────────────────────────────
// get / delete
// ─────────────────────────────────────────────

func TestGetContact_OtherUserGetsNotFound(t *testing.T) {
	svc := &mockContactService{
		getFn: func(_ context.Context, identity models.Identity, id int64) (models.Contact, error) {
			if identity.UserID != testAlice.UserID {
				return models.Contact{}, store.ErrContactNotFound
			}
			return models.Contact{ID: id, FirstName: "Ann"}, nil
		},
	}
	router := newContactRouter(t, svc)

	rec := do(t, router, http.MethodGet, "/api/contacts/1", testBearer, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/contacts/1", "Bearer bob-token", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "contact not found", decodeErrorResponse(t, rec).Error)
}

func TestDeleteContact_Twice(t *testing.T) {
	deleted := false
	svc := &mockContactService{
		deleteFn: func(context.Context, models.Identity, int64) error {
			if deleted {
				return store.ErrContactNotFound
			}
			deleted = true
			return nil
		},
	}
	router := newContactRouter(t, svc)

	rec := do(t, router, http.MethodDelete, "/api/contacts/2", testBearer, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodDelete, "/api/contacts/2", testBearer, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
