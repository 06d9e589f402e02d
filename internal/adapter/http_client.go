package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/employee-service/models"
	"github.com/go-resty/resty/v2"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpEmployeeClient struct {
	client *resty.Client
}

func NewHTTPEmployeeClient(cfg HTTPClientConfig) EmployeeClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpEmployeeClient{client: cli}
}

func (h *httpEmployeeClient) List(ctx context.Context) ([]models.Employee, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/employees")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var employees []models.Employee
	if err = json.Unmarshal(resp.Body(), &employees); err != nil {
		return nil, fmt.Errorf("list decode response: %w", err)
	}
	return employees, nil
}

func (h *httpEmployeeClient) Create(ctx context.Context, draft models.EmployeeDraft) (models.Employee, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Post("/employees")
	if err != nil {
		return models.Employee{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	var employee models.Employee
	if err = json.Unmarshal(resp.Body(), &employee); err != nil {
		return models.Employee{}, fmt.Errorf("create decode response: %w", err)
	}
	return employee, nil
}

func (h *httpEmployeeClient) Get(ctx context.Context, id int64) (models.Employee, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/employees/%d", id))
	if err != nil {
		return models.Employee{}, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	var employee models.Employee
	if err = json.Unmarshal(resp.Body(), &employee); err != nil {
		return models.Employee{}, fmt.Errorf("get decode response: %w", err)
	}
	return employee, nil
}

func (h *httpEmployeeClient) Replace(ctx context.Context, id int64, draft models.EmployeeDraft) (models.Employee, bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Put(fmt.Sprintf("/employees/%d", id))
	if err != nil {
		return models.Employee{}, false, fmt.Errorf("replace request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, false, err
	}

	var employee models.Employee
	if err = json.Unmarshal(resp.Body(), &employee); err != nil {
		return models.Employee{}, false, fmt.Errorf("replace decode response: %w", err)
	}

	created := resp.StatusCode() == http.StatusCreated
	return employee, created, nil
}

func (h *httpEmployeeClient) Delete(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/employees/%d", id))
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return mapHTTPError(resp)
}
