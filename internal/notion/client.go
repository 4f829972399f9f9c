package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// apiVersion pins the Notion-Version header. Data-source queries exist from
// this version onward.
const apiVersion = "2025-09-03"

const defaultPageSize = 100

type Client struct {
	apiKey string
	base   string
	http   *http.Client
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey: apiKey,
		base:   "https://api.notion.com/v1",
		http:   &http.Client{Timeout: timeout},
	}
}

// RetrieveDatabase fetches database metadata, including its icon and the
// data sources a query must address.
func (c *Client) RetrieveDatabase(ctx context.Context, databaseID string) (*Database, error) {
	var db Database
	if err := c.do(ctx, http.MethodGet, "/databases/"+url.PathEscape(databaseID), nil, &db); err != nil {
		return nil, err
	}
	return &db, nil
}

type queryRequest struct {
	PageSize    int    `json:"page_size"`
	StartCursor string `json:"start_cursor,omitempty"`
}

type queryResponse struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

// QueryDataSource returns every row of the data source, following the
// cursor until the listing is exhausted.
func (c *Client) QueryDataSource(ctx context.Context, dataSourceID string) ([]Page, error) {
	var pages []Page
	cursor := ""
	for {
		req := queryRequest{PageSize: defaultPageSize, StartCursor: cursor}
		var resp queryResponse
		if err := c.do(ctx, http.MethodPost, "/data_sources/"+url.PathEscape(dataSourceID)+"/query", req, &resp); err != nil {
			return nil, err
		}
		pages = append(pages, resp.Results...)
		if !resp.HasMore || resp.NextCursor == "" {
			return pages, nil
		}
		cursor = resp.NextCursor
	}
}

type blockListResponse struct {
	Results    []json.RawMessage `json:"results"`
	HasMore    bool              `json:"has_more"`
	NextCursor string            `json:"next_cursor"`
}

// ListBlockChildren returns the raw child content blocks of a page, in
// order, without transformation.
func (c *Client) ListBlockChildren(ctx context.Context, blockID string) ([]json.RawMessage, error) {
	var blocks []json.RawMessage
	cursor := ""
	for {
		path := fmt.Sprintf("/blocks/%s/children?page_size=%d", url.PathEscape(blockID), defaultPageSize)
		if cursor != "" {
			path += "&start_cursor=" + url.QueryEscape(cursor)
		}
		var resp blockListResponse
		if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
			return nil, err
		}
		blocks = append(blocks, resp.Results...)
		if !resp.HasMore || resp.NextCursor == "" {
			return blocks, nil
		}
		cursor = resp.NextCursor
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	r, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	r.Header.Set("Authorization", "Bearer "+c.apiKey)
	r.Header.Set("Notion-Version", apiVersion)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(r)
	if err != nil {
		return fmt.Errorf("notion request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(bodyBytes, apiErr); err != nil || apiErr.Message == "" {
			return fmt.Errorf("notion api error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(bodyBytes, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
