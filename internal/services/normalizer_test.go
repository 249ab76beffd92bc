package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speakerexport/internal/domain"
)

func TestNormalizeSpeaker(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want domain.SpeakerRecord
	}{
		{
			name: "full record",
			raw: map[string]any{
				"id":       "1e0a598b",
				"fullName": "Alex Shershebnev",
				"links": []any{
					map[string]any{"title": "LinkedIn", "url": "https://linkedin.com/in/shershebnev", "linkType": "LinkedIn"},
					map[string]any{"title": "Instagram", "url": "https://instagram.com/shershebnev", "linkType": "Instagram"},
				},
				"sessions": []any{
					map[string]any{"id": float64(826253), "name": "Developing production-ready apps"},
				},
			},
			want: domain.SpeakerRecord{
				ID:       "1e0a598b",
				FullName: "Alex Shershebnev",
				Links: []domain.Link{
					{Title: "LinkedIn", URL: "https://linkedin.com/in/shershebnev"},
					{Title: "Instagram", URL: "https://instagram.com/shershebnev"},
				},
				SessionIDs: []string{"826253"},
			},
		},
		{
			name: "empty document",
			raw:  map[string]any{},
			want: domain.SpeakerRecord{},
		},
		{
			name: "wrong types default instead of failing",
			raw: map[string]any{
				"id":       float64(42),
				"fullName": float64(7),
				"links":    "not a list",
				"sessions": map[string]any{"id": "t1"},
			},
			want: domain.SpeakerRecord{ID: "42"},
		},
		{
			name: "link title falls back to linkType",
			raw: map[string]any{
				"id": "s1",
				"links": []any{
					map[string]any{"url": "https://bsky.app/profile/x", "linkType": "Bluesky"},
					"not an object",
				},
			},
			want: domain.SpeakerRecord{
				ID:    "s1",
				Links: []domain.Link{{Title: "Bluesky", URL: "https://bsky.app/profile/x"}},
			},
		},
		{
			name: "session ids given as plain values",
			raw: map[string]any{
				"id":       "s1",
				"sessions": []any{"826253", float64(834677), nil},
			},
			want: domain.SpeakerRecord{
				ID:         "s1",
				SessionIDs: []string{"826253", "834677"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSpeaker(tt.raw)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSession(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want domain.SessionRecord
	}{
		{
			name: "full record",
			raw: map[string]any{
				"id":           "826253",
				"title":        "Developing production-ready apps",
				"recordingUrl": "https://www.youtube.com/embed/abc123",
				"speakers": []any{
					map[string]any{"id": "1e0a598b", "name": "Alex Shershebnev"},
				},
			},
			want: domain.SessionRecord{
				ID:           "826253",
				Title:        "Developing production-ready apps",
				RecordingURL: "https://www.youtube.com/embed/abc123",
				SpeakerIDs:   []string{"1e0a598b"},
			},
		},
		{
			name: "no recording is a normal state",
			raw: map[string]any{
				"id":           "834677",
				"title":        "Yes you can run LLMs on Kubernetes",
				"recordingUrl": nil,
				"speakers":     []any{"f2e1dff5"},
			},
			want: domain.SessionRecord{
				ID:         "834677",
				Title:      "Yes you can run LLMs on Kubernetes",
				SpeakerIDs: []string{"f2e1dff5"},
			},
		},
		{
			name: "liveUrl on a video host used as fallback",
			raw: map[string]any{
				"id":      "1",
				"title":   "Talk",
				"liveUrl": "https://youtu.be/xyz",
			},
			want: domain.SessionRecord{ID: "1", Title: "Talk", RecordingURL: "https://youtu.be/xyz"},
		},
		{
			name: "liveUrl on a non-video host is ignored",
			raw: map[string]any{
				"id":      "1",
				"title":   "Talk",
				"liveUrl": "https://zoom.us/j/123",
			},
			want: domain.SessionRecord{ID: "1", Title: "Talk"},
		},
		{
			name: "numeric id coerced to the same key as the speakers view",
			raw: map[string]any{
				"id":    float64(826253),
				"title": "Talk",
			},
			want: domain.SessionRecord{ID: "826253", Title: "Talk"},
		},
		{
			name: "empty document",
			raw:  map[string]any{},
			want: domain.SessionRecord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSession(tt.raw)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifySocialLinks(t *testing.T) {
	tests := []struct {
		name  string
		links []domain.Link
		want  domain.SocialLinks
	}{
		{
			name:  "empty links yield no platforms",
			links: nil,
			want:  domain.SocialLinks{},
		},
		{
			name: "linkedin matched regardless of position",
			links: []domain.Link{
				{Title: "Company Website", URL: "https://example.com"},
				{Title: "LinkedIn", URL: "https://linkedin.com/in/ada"},
			},
			want: domain.SocialLinks{LinkedIn: "https://linkedin.com/in/ada"},
		},
		{
			name: "first match per platform wins",
			links: []domain.Link{
				{Title: "Twitter", URL: "https://twitter.com/ada"},
				{Title: "X", URL: "https://x.com/ada2"},
			},
			want: domain.SocialLinks{Twitter: "https://twitter.com/ada"},
		},
		{
			name: "x.com url classifies as twitter",
			links: []domain.Link{
				{Title: "X", URL: "https://x.com/ada"},
			},
			want: domain.SocialLinks{Twitter: "https://x.com/ada"},
		},
		{
			name: "matching is case-insensitive on title and url",
			links: []domain.Link{
				{Title: "BLUESKY", URL: "https://example.com/me"},
				{Title: "Photos", URL: "https://INSTAGRAM.com/ada"},
			},
			want: domain.SocialLinks{BlueSky: "https://example.com/me", Instagram: "https://INSTAGRAM.com/ada"},
		},
		{
			name: "bsky domain classifies as bluesky",
			links: []domain.Link{
				{Title: "Social", URL: "https://bsky.app/profile/ada.bsky.social"},
			},
			want: domain.SocialLinks{BlueSky: "https://bsky.app/profile/ada.bsky.social"},
		},
		{
			name: "link matching several predicates goes to the first in table order",
			links: []domain.Link{
				{Title: "LinkedIn and Twitter", URL: "https://example.com/both"},
				{Title: "Twitter", URL: "https://twitter.com/ada"},
			},
			want: domain.SocialLinks{
				LinkedIn: "https://example.com/both",
				Twitter:  "https://twitter.com/ada",
			},
		},
		{
			name: "unmatched links are ignored",
			links: []domain.Link{
				{Title: "Blog", URL: "https://ada.dev"},
				{Title: "GitHub", URL: "https://github.com/ada"},
			},
			want: domain.SocialLinks{},
		},
		{
			name: "all four platforms",
			links: []domain.Link{
				{Title: "LinkedIn", URL: "https://www.linkedin.com/in/sabdelfettah/"},
				{Title: "X (Twitter)", URL: "https://www.twitter.com/boredabdel"},
				{Title: "Bluesky", URL: "https://bsky.app/profile/abdel.bsky.social"},
				{Title: "Instagram", URL: "https://instagram.com/abdel"},
			},
			want: domain.SocialLinks{
				LinkedIn:  "https://www.linkedin.com/in/sabdelfettah/",
				Twitter:   "https://www.twitter.com/boredabdel",
				BlueSky:   "https://bsky.app/profile/abdel.bsky.social",
				Instagram: "https://instagram.com/abdel",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifySocialLinks(tt.links)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifySocialLinksIsIdempotent(t *testing.T) {
	links := []domain.Link{
		{Title: "LinkedIn", URL: "https://linkedin.com/in/ada"},
		{Title: "X", URL: "https://x.com/ada"},
	}
	first := ClassifySocialLinks(links)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, ClassifySocialLinks(links))
	}
}
