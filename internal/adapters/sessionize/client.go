package sessionize

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"speakerexport/internal/domain"
)

type sessionizeHTTPFetcher struct {
	client  *http.Client
	baseURL string
	eventID string
}

// NewHTTPFetcher returns a fetcher that calls the Sessionize API for the
// given event. baseURL has no trailing slash (e.g.
// "https://sessionize.com/api/v2").
func NewHTTPFetcher(client *http.Client, baseURL, eventID string) domain.ScheduleFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &sessionizeHTTPFetcher{client: client, baseURL: baseURL, eventID: eventID}
}

// FetchSpeakers retrieves the Speakers view: a flat list of speaker documents.
func (f *sessionizeHTTPFetcher) FetchSpeakers(ctx context.Context) ([]map[string]any, error) {
	return f.fetchView(ctx, "Speakers")
}

// FetchSessions retrieves the Sessions view. The view groups sessions by
// track ({groupName, sessions: [...]}), so each group is flattened into its
// session documents; a document without a sessions list is passed through
// as a session itself.
func (f *sessionizeHTTPFetcher) FetchSessions(ctx context.Context) ([]map[string]any, error) {
	groups, err := f.fetchView(ctx, "Sessions")
	if err != nil {
		return nil, err
	}
	var sessions []map[string]any
	for _, group := range groups {
		nested, ok := group["sessions"].([]any)
		if !ok {
			sessions = append(sessions, group)
			continue
		}
		for _, v := range nested {
			if session, ok := v.(map[string]any); ok {
				sessions = append(sessions, session)
			}
		}
	}
	return sessions, nil
}

func (f *sessionizeHTTPFetcher) fetchView(ctx context.Context, view string) ([]map[string]any, error) {
	url := fmt.Sprintf("%s/%s/view/%s", f.baseURL, f.eventID, view)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from sessionize: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sessionize api returned status: %d", resp.StatusCode)
	}

	var data []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode sessionize response: %w", err)
	}
	return data, nil
}
