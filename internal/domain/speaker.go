package domain

// Link is one entry from a speaker's free-form link list. Title carries the
// upstream title (or link type when no title is present); no classification
// is stored here.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// SpeakerRecord represents one conference speaker, normalized from the
// Sessionize Speakers view. Records are built once per run and never mutated.
type SpeakerRecord struct {
	ID         string   `json:"id"`
	FullName   string   `json:"full_name"`
	Links      []Link   `json:"links"`
	SessionIDs []string `json:"session_ids"`
}

// SocialLinks holds the per-platform URLs classified from a speaker's link
// list. An empty string means no link of that platform was found.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin_url"`
	BlueSky   string `json:"bluesky_url"`
	Twitter   string `json:"twitter_url"`
	Instagram string `json:"instagram_url"`
}
