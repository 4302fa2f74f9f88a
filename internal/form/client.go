package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	appDomain "scholarhub-backend/internal/domain/application"
)

// Client talks to the submission service over its REST surface. It is both
// the wizard's RemoteStore (draft tier) and its Submitter.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

var (
	_ RemoteStore = (*Client)(nil)
	_ Submitter   = (*Client)(nil)
)

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// errorBody mirrors the server's ErrorResponse envelope.
type errorBody struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Error   string                 `json:"error"`
	Details []appDomain.FieldError `json:"details"`
}

type submitBody struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID string `json:"applicationId"`
}

type draftData struct {
	ScholarshipID string            `json:"scholarshipId"`
	Payload       appDomain.Payload `json:"payload"`
	SavedAt       time.Time         `json:"savedAt"`
}

type draftBody struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    *draftData `json:"data"`
}

type saveDraftBody struct {
	ScholarshipID string            `json:"scholarshipId"`
	Payload       appDomain.Payload `json:"payload"`
}

// Submit posts the completed payload. Non-2xx responses decode into a
// ServerError carrying the server's code and message; a 409 additionally
// carries the existing application's id.
func (c *Client) Submit(ctx context.Context, p appDomain.Payload) (*SubmitResult, error) {
	resp, err := c.do(ctx, http.MethodPost, "/applications", p)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, decodeServerError(resp)
	}

	var body submitBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode submit response: %w", err)
	}
	return &SubmitResult{ApplicationID: body.ApplicationID, Message: body.Message}, nil
}

// Load fetches the server-side draft; a missing draft is (nil, nil).
func (c *Client) Load(ctx context.Context, scholarshipID string) (*Snapshot, error) {
	resp, err := c.do(ctx, http.MethodGet, "/applications/draft/"+scholarshipID, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeServerError(resp)
	}

	var body draftBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode draft response: %w", err)
	}
	if body.Data == nil {
		return nil, nil
	}
	return &Snapshot{
		Payload:   body.Data.Payload,
		StepIndex: -1,
		SavedAt:   body.Data.SavedAt,
	}, nil
}

func (c *Client) Save(ctx context.Context, scholarshipID string, s Snapshot) error {
	resp, err := c.do(ctx, http.MethodPost, "/applications/draft", saveDraftBody{
		ScholarshipID: scholarshipID,
		Payload:       s.Payload,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeServerError(resp)
	}
	var body draftBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode draft response: %w", err)
	}
	if !body.Success {
		return fmt.Errorf("draft not saved: %s", body.Message)
	}
	return nil
}

func (c *Client) Clear(ctx context.Context, scholarshipID string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/applications/draft/"+scholarshipID, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeServerError(resp)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return c.http.Do(req)
}

func decodeServerError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		return &ServerError{
			Code:    "INTERNAL",
			Message: fmt.Sprintf("unexpected response (status %d)", resp.StatusCode),
		}
	}

	se := &ServerError{Code: body.Error, Message: body.Message}
	for _, d := range body.Details {
		if d.Field == "applicationId" {
			se.ExistingApplicationID = d.Message
		}
	}
	return se
}
