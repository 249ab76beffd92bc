package domain

// SessionRecord represents one scheduled talk, normalized from the Sessionize
// Sessions view. SpeakerIDs keeps the upstream presenter order; a
// co-presented session yields one output row per presenter.
type SessionRecord struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	SpeakerIDs   []string `json:"speaker_ids"`
	RecordingURL string   `json:"recording_url"`
}
