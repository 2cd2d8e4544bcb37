// Package grammartool talks to a LanguageTool-compatible HTTP server.
// Its findings get the LT_ rule prefix so the fixer knows never to
// apply them automatically.
package grammartool

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kotolint/kotolint/internal/domain"
)

// DefaultURL is the endpoint a locally running LanguageTool serves.
const DefaultURL = "http://localhost:8010/v2/check"

// Client queries the /v2/check endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultURL
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Available probes the server with a trivial request. A scan only
// enables the grammar detector when this succeeds.
func (c *Client) Available(ctx context.Context) bool {
	_, err := c.check(ctx, "テスト")
	return err == nil
}

type ltResponse struct {
	Matches []ltMatch `json:"matches"`
}

type ltMatch struct {
	Message      string `json:"message"`
	Offset       int    `json:"offset"`
	Length       int    `json:"length"`
	Replacements []struct {
		Value string `json:"value"`
	} `json:"replacements"`
	Rule struct {
		ID string `json:"id"`
	} `json:"rule"`
}

func (c *Client) check(ctx context.Context, text string) (*ltResponse, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("language", "ja-JP")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building grammar request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("grammar service request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("grammar service returned %s", resp.Status)
	}

	var lr ltResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, fmt.Errorf("decoding grammar response: %w", err)
	}
	return &lr, nil
}

// Detector adapts the client to the detector interface. A failed
// request yields no issues rather than failing the scan; availability
// was probed up front.
type Detector struct {
	client *Client
}

func NewDetector(client *Client) *Detector {
	return &Detector{client: client}
}

func (d *Detector) ID() string { return "grammar" }

func (d *Detector) Scan(text string) []domain.Issue {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	lr, err := d.client.check(ctx, text)
	if err != nil {
		return nil
	}

	runes := []rune(text)
	var issues []domain.Issue
	for _, m := range lr.Matches {
		// Offsets from the server are codepoint counts.
		start, end := m.Offset, m.Offset+m.Length
		if start < 0 || end > len(runes) || start >= end {
			continue
		}
		var suggestion *string
		if len(m.Replacements) > 0 {
			suggestion = domain.Suggest(m.Replacements[0].Value)
		}
		issues = append(issues, domain.Issue{
			Start:      start,
			End:        end,
			Snippet:    string(runes[start:end]),
			Message:    m.Message,
			Suggestion: suggestion,
			Severity:   domain.SeverityInfo,
			RuleID:     "LT_" + m.Rule.ID,
		})
	}
	return issues
}
