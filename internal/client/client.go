// Package client provides an HTTP client for the register REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avvvet/signin-register/internal/registersvc/models"
	log "github.com/sirupsen/logrus"
)

// ErrNotFound is returned when the server answers 404.
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Client is an HTTP client for the register API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListVisitors returns every visitor record.
func (c *Client) ListVisitors(ctx context.Context) ([]models.Visitor, error) {
	var visitors []models.Visitor
	if err := c.do(ctx, http.MethodGet, "/api/visitor", nil, &visitors); err != nil {
		return nil, err
	}
	return visitors, nil
}

// CreateVisitor submits a visitor and returns the stored record.
func (c *Client) CreateVisitor(ctx context.Context, v models.Visitor) (*models.Visitor, error) {
	var created models.Visitor
	if err := c.do(ctx, http.MethodPost, "/api/visitor", v, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListContractors returns every contractor record.
func (c *Client) ListContractors(ctx context.Context) ([]models.Contractor, error) {
	var contractors []models.Contractor
	if err := c.do(ctx, http.MethodGet, "/api/contractor", nil, &contractors); err != nil {
		return nil, err
	}
	return contractors, nil
}

// CreateContractor submits a contractor and returns the stored record.
func (c *Client) CreateContractor(ctx context.Context, ct models.Contractor) (*models.Contractor, error) {
	var created models.Contractor
	if err := c.do(ctx, http.MethodPost, "/api/contractor", ct, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateContractor replaces the fields of the contractor with the given id.
func (c *Client) UpdateContractor(ctx context.Context, id string, ct models.Contractor) (*models.Contractor, error) {
	ct.ID = ""
	var updated models.Contractor
	path := "/api/contractor/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPut, path, ct, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// do sends body as JSON and decodes the answer into result.
func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Warnf("closing response body: %v", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var errResp struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil {
			switch {
			case errResp.Error != "":
				apiErr.Message = errResp.Error
			case errResp.Message != "":
				apiErr.Message = errResp.Message
			}
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
