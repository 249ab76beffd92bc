package services

import (
	"math"
	"strconv"
	"strings"

	"speakerexport/internal/domain"
)

// The Sessionize views are not validated against a schema before they reach
// this package, so every field access below goes through a total accessor:
// absent keys, nulls, and unexpected types default instead of failing, and a
// record is always returned whole.

// stringField returns m[key] as a string, or "" when absent or not a string.
func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// listField returns m[key] as a slice, or nil when absent or not a list.
func listField(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	if l, ok := m[key].([]any); ok {
		return l
	}
	return nil
}

// mapValue returns v as an object, or nil when it is anything else.
func mapValue(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return nil
}

// idString coerces an identifier to its canonical string form. The Speakers
// view carries session ids as JSON numbers while the Sessions view carries
// them as strings; both sides must land on the same join key.
func idString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		if id == math.Trunc(id) {
			return strconv.FormatInt(int64(id), 10)
		}
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}

// NormalizeSpeaker extracts a SpeakerRecord from a raw Speakers view document.
func NormalizeSpeaker(raw map[string]any) domain.SpeakerRecord {
	speaker := domain.SpeakerRecord{
		ID:       idString(raw["id"]),
		FullName: stringField(raw, "fullName"),
	}
	for _, v := range listField(raw, "links") {
		link := mapValue(v)
		if link == nil {
			continue
		}
		title := stringField(link, "title")
		if title == "" {
			title = stringField(link, "linkType")
		}
		speaker.Links = append(speaker.Links, domain.Link{
			Title: title,
			URL:   stringField(link, "url"),
		})
	}
	for _, v := range listField(raw, "sessions") {
		var id string
		if session := mapValue(v); session != nil {
			id = idString(session["id"])
		} else {
			id = idString(v)
		}
		if id != "" {
			speaker.SessionIDs = append(speaker.SessionIDs, id)
		}
	}
	return speaker
}

// NormalizeSession extracts a SessionRecord from a raw Sessions view document.
func NormalizeSession(raw map[string]any) domain.SessionRecord {
	session := domain.SessionRecord{
		ID:           idString(raw["id"]),
		Title:        stringField(raw, "title"),
		RecordingURL: recordingURL(raw),
	}
	for _, v := range listField(raw, "speakers") {
		var id string
		if speaker := mapValue(v); speaker != nil {
			id = idString(speaker["id"])
		} else {
			id = idString(v)
		}
		if id != "" {
			session.SpeakerIDs = append(session.SpeakerIDs, id)
		}
	}
	return session
}

// videoHosts are the domains accepted when falling back to liveUrl for a
// recording link.
var videoHosts = []string{"youtube.com", "youtu.be", "vimeo.com"}

// recordingURL returns the session's recording link, or "" when no recording
// exists yet. recordingUrl is authoritative; liveUrl is used only when it
// points at a known video platform.
func recordingURL(raw map[string]any) string {
	if url := stringField(raw, "recordingUrl"); url != "" {
		return url
	}
	live := stringField(raw, "liveUrl")
	lower := strings.ToLower(live)
	for _, host := range videoHosts {
		if strings.Contains(lower, host) {
			return live
		}
	}
	return ""
}

// linkRules is the classification table. Order matters twice: a link matching
// several predicates is claimed by the first predicate, and the first link to
// match a platform wins over later duplicates.
var linkRules = []struct {
	platform string
	needles  []string
}{
	{"linkedin", []string{"linkedin"}},
	{"twitter", []string{"twitter", "x.com"}},
	{"bluesky", []string{"bsky", "bluesky"}},
	{"instagram", []string{"instagram"}},
}

// ClassifySocialLinks assigns each of a speaker's links to a social platform
// by case-insensitive substring matching on title and url. Unmatched links
// are ignored. The result depends only on the input sequence.
func ClassifySocialLinks(links []domain.Link) domain.SocialLinks {
	found := make(map[string]string, len(linkRules))
	for _, link := range links {
		title := strings.ToLower(link.Title)
		url := strings.ToLower(link.URL)
		for _, rule := range linkRules {
			if !matchesAny(title, url, rule.needles) {
				continue
			}
			if _, ok := found[rule.platform]; !ok {
				found[rule.platform] = link.URL
			}
			break // link is claimed by the first matching predicate
		}
	}
	return domain.SocialLinks{
		LinkedIn:  found["linkedin"],
		BlueSky:   found["bluesky"],
		Twitter:   found["twitter"],
		Instagram: found["instagram"],
	}
}

func matchesAny(title, url string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(title, needle) || strings.Contains(url, needle) {
			return true
		}
	}
	return false
}
