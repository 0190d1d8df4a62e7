package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-contacts-book/internal/logger"
	"github.com/MKhiriev/go-contacts-book/internal/utils"
	"github.com/MKhiriev/go-contacts-book/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu     sync.RWMutex
	tokens models.TokenPair

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. address may omit the scheme ("localhost:8000").
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(address string, requestTimeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, requestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
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

func (h *httpServerAdapter) SetTokens(pair models.TokenPair) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tokens = pair
}

func (h *httpServerAdapter) Tokens() models.TokenPair {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tokens
}

func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode register response: %w", err)
	}
	return user, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/auth/login")
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("login request: %w", err)
	}

	return h.storeTokenPair(resp)
}

func (h *httpServerAdapter) Refresh(ctx context.Context) (models.TokenPair, error) {
	refreshToken := h.Tokens().RefreshToken
	if refreshToken == "" {
		return models.TokenPair{}, ErrNoRefreshToken
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
		Post("/api/auth/refresh")
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("refresh request: %w", err)
	}

	return h.storeTokenPair(resp)
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetTokens(models.TokenPair{})
	return nil
}

func (h *httpServerAdapter) DeleteAccount(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/auth/me")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetTokens(models.TokenPair{})
	return nil
}

func (h *httpServerAdapter) ListContacts(ctx context.Context) ([]models.Contact, error) {
	resp, err := h.authedRequest(ctx).Get("/api/contacts/")
	if err != nil {
		return nil, fmt.Errorf("list contacts request: %w", err)
	}
	return decodeContacts(resp)
}

func (h *httpServerAdapter) FindContact(ctx context.Context, contactID int64) (models.Contact, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(contactID, 10)).
		Get("/api/contacts/find/{id}")
	if err != nil {
		return models.Contact{}, fmt.Errorf("find contact request: %w", err)
	}
	return decodeContact(resp)
}

func (h *httpServerAdapter) AddContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(contact).
		Post("/api/contacts/")
	if err != nil {
		return models.Contact{}, fmt.Errorf("add contact request: %w", err)
	}
	return decodeContact(resp)
}

func (h *httpServerAdapter) UpdateContact(ctx context.Context, contactID int64, update models.ContactUpdate) (models.Contact, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(contactID, 10)).
		SetBody(update).
		Patch("/api/contacts/{id}")
	if err != nil {
		return models.Contact{}, fmt.Errorf("update contact request: %w", err)
	}
	return decodeContact(resp)
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

func (h *httpServerAdapter) SearchContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	params := map[string]string{}
	if filter.Name != "" {
		params["name"] = filter.Name
	}
	if filter.Surename != "" {
		params["surename"] = filter.Surename
	}
	if filter.Email != "" {
		params["email"] = filter.Email
	}

	resp, err := h.authedRequest(ctx).
		SetQueryParams(params).
		Get("/api/contacts/search")
	if err != nil {
		return nil, fmt.Errorf("search contacts request: %w", err)
	}
	return decodeContacts(resp)
}

func (h *httpServerAdapter) UpcomingBirthdays(ctx context.Context) ([]models.Contact, error) {
	resp, err := h.authedRequest(ctx).Get("/api/contacts/upcoming-birthdays")
	if err != nil {
		return nil, fmt.Errorf("upcoming birthdays request: %w", err)
	}
	return decodeContacts(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Tokens().AccessToken; token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpServerAdapter) storeTokenPair(resp *resty.Response) (models.TokenPair, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.TokenPair{}, err
	}

	var pair models.TokenPair
	if err := json.Unmarshal(resp.Body(), &pair); err != nil {
		return models.TokenPair{}, fmt.Errorf("decode token pair: %w", err)
	}

	h.SetTokens(pair)
	h.logger.Debug().Msg("token pair stored")
	return pair, nil
}

func decodeContact(resp *resty.Response) (models.Contact, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}

	var contact models.Contact
	if err := json.Unmarshal(resp.Body(), &contact); err != nil {
		return models.Contact{}, fmt.Errorf("decode contact: %w", err)
	}
	return contact, nil
}

func decodeContacts(resp *resty.Response) ([]models.Contact, error) {
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	var contacts []models.Contact
	if err := json.Unmarshal(resp.Body(), &contacts); err != nil {
		return nil, fmt.Errorf("decode contacts: %w", err)
	}
	return contacts, nil
}
