package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-employee-registry/internal/config"
	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/internal/utils"
	"github.com/MKhiriev/go-employee-registry/models"
)

// Backend collection paths.
const (
	pathUsers        = "/users"
	pathEmployee     = "/employee"
	pathActivityLogs = "/activityLogs"
	pathVersion      = "/version"

	headerTraceID = "X-Trace-ID"
)

type httpBackendAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and bounds every request by adapterCfg.RequestTimeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPBackendAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpBackendAdapter{client: client, logger: logger}, nil
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

// request starts a resty request bound to ctx and forwards the trace id, if any.
func (h *httpBackendAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(headerTraceID, traceID)
	}
	return req
}

func (h *httpBackendAdapter) jsonRequest(ctx context.Context, body any) *resty.Request {
	return h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

// FindUsersByEmail implements [BackendAdapter].
func (h *httpBackendAdapter) FindUsersByEmail(ctx context.Context, email string) ([]models.User, error) {
	var users []models.User

	resp, err := h.request(ctx).
		SetQueryParam("email", email).
		SetResult(&users).
		Get(pathUsers)
	if err != nil {
		return nil, transportError("find users", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// CreateUser implements [BackendAdapter].
func (h *httpBackendAdapter) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var created models.User

	resp, err := h.jsonRequest(ctx, user).
		SetResult(&created).
		Post(pathUsers)
	if err != nil {
		return models.User{}, transportError("create user", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

// PatchUser implements [BackendAdapter].
func (h *httpBackendAdapter) PatchUser(ctx context.Context, id string, patch models.UserPatch) (models.User, error) {
	var updated models.User

	resp, err := h.jsonRequest(ctx, patch).
		SetPathParam("id", id).
		SetResult(&updated).
		Patch(pathUsers + "/{id}")
	if err != nil {
		return models.User{}, transportError("patch user", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return updated, nil
}

// ListEmployees implements [BackendAdapter].
func (h *httpBackendAdapter) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee

	resp, err := h.request(ctx).
		SetResult(&employees).
		Get(pathEmployee)
	if err != nil {
		return nil, transportError("list employees", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetEmployee implements [BackendAdapter].
func (h *httpBackendAdapter) GetEmployee(ctx context.Context, id string) (models.Employee, error) {
	var employee models.Employee

	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetResult(&employee).
		Get(pathEmployee + "/{id}")
	if err != nil {
		return models.Employee{}, transportError("get employee", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	return employee, nil
}

// CreateEmployee implements [BackendAdapter].
func (h *httpBackendAdapter) CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	var created models.Employee

	resp, err := h.jsonRequest(ctx, employee).
		SetResult(&created).
		Post(pathEmployee)
	if err != nil {
		return models.Employee{}, transportError("create employee", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	return created, nil
}

// UpdateEmployee implements [BackendAdapter].
func (h *httpBackendAdapter) UpdateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	var updated models.Employee

	resp, err := h.jsonRequest(ctx, employee).
		SetPathParam("id", employee.ID).
		SetResult(&updated).
		Put(pathEmployee + "/{id}")
	if err != nil {
		return models.Employee{}, transportError("update employee", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	return updated, nil
}

// DeleteEmployee implements [BackendAdapter].
func (h *httpBackendAdapter) DeleteEmployee(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete(pathEmployee + "/{id}")
	if err != nil {
		return transportError("delete employee", err)
	}

	return mapHTTPError(resp)
}

// ListActivityLogs implements [BackendAdapter].
func (h *httpBackendAdapter) ListActivityLogs(ctx context.Context) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog

	resp, err := h.request(ctx).
		SetResult(&entries).
		Get(pathActivityLogs)
	if err != nil {
		return nil, transportError("list activity logs", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return entries, nil
}

// CreateActivityLog implements [BackendAdapter].
func (h *httpBackendAdapter) CreateActivityLog(ctx context.Context, entry models.ActivityLog) (models.ActivityLog, error) {
	var created models.ActivityLog

	resp, err := h.jsonRequest(ctx, entry).
		SetResult(&created).
		Post(pathActivityLogs)
	if err != nil {
		return models.ActivityLog{}, transportError("create activity log", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ActivityLog{}, err
	}

	return created, nil
}

// DeleteActivityLog implements [BackendAdapter].
func (h *httpBackendAdapter) DeleteActivityLog(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete(pathActivityLogs + "/{id}")
	if err != nil {
		return transportError("delete activity log", err)
	}

	return mapHTTPError(resp)
}

// Version implements [BackendAdapter].
func (h *httpBackendAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := h.request(ctx).
		SetResult(&info).
		Get(pathVersion)
	if err != nil {
		return models.AppBuildInfo{}, transportError("version", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}
