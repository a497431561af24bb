// Package status talks to the remote status-tracking service's REST API.
package status

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"statbot/internal/core/domain"
	"strings"

	"github.com/rs/zerolog/log"
)

type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{},
	}
}

type createStatusRequest struct {
	Nick    string `json:"nick"`
	Project string `json:"project"`
	Text    string `json:"text"`
}

type createStatusResponse struct {
	ID int64 `json:"id"`
}

type updateUserRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
	By    string `json:"by"`
}

// CreateStatus posts a status update. The returned outcome resolves with the
// created status ID, or with the HTTP code and body on failure.
func (c *Client) CreateStatus(ctx context.Context, nick, project, text string) *domain.Outcome[int64] {
	outcome := domain.NewOutcome[int64]()

	go func() {
		body, code, err := c.do(ctx, http.MethodPost, "/statuses", createStatusRequest{
			Nick:    nick,
			Project: project,
			Text:    text,
		})
		if err != nil {
			outcome.Fail(0, err.Error())
			return
		}
		if code != http.StatusOK && code != http.StatusCreated {
			outcome.Fail(code, strings.TrimSpace(string(body)))
			return
		}

		var result createStatusResponse
		if err := json.Unmarshal(body, &result); err != nil {
			outcome.Fail(0, fmt.Sprintf("error unmarshalling status response: %s", err))
			return
		}

		log.Debug().Int64("id", result.ID).Str("project", project).Msg("status created")
		outcome.Succeed(result.ID)
	}()

	return outcome
}

// DeleteStatus removes a status on behalf of nick. A 403 from the service
// means nick is not the original author.
func (c *Client) DeleteStatus(ctx context.Context, id int64, nick string) *domain.Outcome[struct{}] {
	outcome := domain.NewOutcome[struct{}]()

	go func() {
		path := fmt.Sprintf("/statuses/%d?nick=%s", id, url.QueryEscape(nick))
		body, code, err := c.do(ctx, http.MethodDelete, path, nil)
		if err != nil {
			outcome.Fail(0, err.Error())
			return
		}
		if code != http.StatusOK && code != http.StatusNoContent {
			outcome.Fail(code, strings.TrimSpace(string(body)))
			return
		}

		log.Debug().Int64("id", id).Msg("status deleted")
		outcome.Succeed(struct{}{})
	}()

	return outcome
}

// UpdateUser sets one profile field on target, recording nick as the
// requester.
func (c *Client) UpdateUser(ctx context.Context, nick, field, value, target string) *domain.Outcome[struct{}] {
	outcome := domain.NewOutcome[struct{}]()

	go func() {
		path := "/users/" + url.PathEscape(target)
		body, code, err := c.do(ctx, http.MethodPost, path, updateUserRequest{
			Field: field,
			Value: value,
			By:    nick,
		})
		if err != nil {
			outcome.Fail(0, err.Error())
			return
		}
		if code != http.StatusOK && code != http.StatusNoContent {
			outcome.Fail(code, strings.TrimSpace(string(body)))
			return
		}

		log.Debug().Str("target", target).Str("field", field).Msg("user updated")
		outcome.Succeed(struct{}{})
	}()

	return outcome
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(payload); err != nil {
			return nil, 0, fmt.Errorf("error encoding request: %w", err)
		}
		reqBody = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("status service request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("error reading response: %w", err)
	}

	return body, resp.StatusCode, nil
}
