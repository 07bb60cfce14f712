package narrativeclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
)

func (c *NarrativeClient) GenerateInsights(params GenerateInsightsParams) (*GenerateInsightsResponse, error) {
	endpoint, err := url.Parse(c.config.Generator.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing generator base URL: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/generate-insights")

	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encoding generation request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating generation request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// The client timeout covers connect, request and body read; a slow
	// generator surfaces here as an error, never as a partial narrative.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling narrative generator: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("narrative generator answered status: %s", resp.Status)
	}

	var response GenerateInsightsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decoding generator response: %w", err)
	}

	return &response, nil
}
