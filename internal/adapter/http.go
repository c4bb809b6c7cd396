package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// credentials is the body of the register and login requests.
type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. adapterCfg.HTTPAddress may omit the scheme, in which case
// http is assumed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register creates the account and keeps the issued bearer token.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) error {
	return h.authenticate(ctx, "/api/user/register", user)
}

// Login keeps the bearer token issued for the credentials.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) error {
	return h.authenticate(ctx, "/api/user/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials{Login: user.Login, Password: user.Password}).
		Post(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("login", user.Login).Msg("authenticated")
	return nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var version models.VersionResponse
	if err := h.get(ctx, "/api/version/", nil, &version); err != nil {
		return "", err
	}
	return version.Version, nil
}

func (h *httpServerAdapter) Summary(ctx context.Context) (models.Summary, error) {
	var summary models.Summary
	err := h.get(ctx, "/api/home/summary", nil, &summary)
	return summary, err
}

func (h *httpServerAdapter) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := h.get(ctx, "/api/categories", nil, &categories)
	return categories, err
}

func (h *httpServerAdapter) CreateCategory(ctx context.Context, input models.CategoryInput) (models.Category, error) {
	var category models.Category
	err := h.post(ctx, "/api/categories", input, &category)
	return category, err
}

func (h *httpServerAdapter) ListContacts(ctx context.Context, query models.ListQuery) (models.ContactPage, error) {
	var page models.ContactPage
	err := h.get(ctx, "/api/contacts", listQueryParams(query), &page)
	return page, err
}

func (h *httpServerAdapter) CreateContact(ctx context.Context, fields models.ContactFields) (models.Contact, error) {
	var contact models.Contact
	err := h.post(ctx, "/api/contacts", fields, &contact)
	return contact, err
}

func (h *httpServerAdapter) DeleteContact(ctx context.Context, contactID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(contactID, 10)).
		Delete("/api/contacts/{id}")
	if err != nil {
		return fmt.Errorf("delete contact request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) get(ctx context.Context, path string, params map[string]string, result any) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(params).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s request: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) post(ctx context.Context, path string, body, result any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(result).
		Post(path)
	if err != nil {
		return fmt.Errorf("POST %s request: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// listQueryParams renders the non-zero fields of query with the parameter
// names of GET /api/contacts.
func listQueryParams(query models.ListQuery) map[string]string {
	params := make(map[string]string)
	if query.Search != "" {
		params["search"] = query.Search
	}
	if query.CategoryID != nil {
		params["categoryId"] = strconv.FormatInt(*query.CategoryID, 10)
	}
	if query.Sort != "" {
		params["sort"] = string(query.Sort)
	}
	if query.Page > 0 {
		params["page"] = strconv.Itoa(query.Page)
	}
	if query.PageSize > 0 {
		params["pageSize"] = strconv.Itoa(query.PageSize)
	}
	return params
}
