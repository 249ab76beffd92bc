package services

import "speakerexport/internal/domain"

// JoinStats reports what the join absorbed without failing.
type JoinStats struct {
	DuplicateSpeakerIDs   int
	MissingSpeakerRefs    int
	SessionsWithRecording int
}

// Join cross-references sessions against speakers and produces one OutputRow
// per (speaker, session) pairing. Sessions drive row generation: a speaker
// with no sessions yields no rows. Row order is sessions in input order, then
// presenters in each session's order, so identical inputs always produce
// identical output.
//
// A session referencing an unknown speaker id is skipped and counted rather
// than emitted with a placeholder name. Duplicate speaker ids keep the first
// record seen and are counted.
func Join(speakers []domain.SpeakerRecord, sessions []domain.SessionRecord) ([]domain.OutputRow, JoinStats) {
	var stats JoinStats

	index := make(map[string]domain.SpeakerRecord, len(speakers))
	for _, speaker := range speakers {
		if _, ok := index[speaker.ID]; ok {
			stats.DuplicateSpeakerIDs++
			continue
		}
		index[speaker.ID] = speaker
	}

	rows := []domain.OutputRow{}
	for _, session := range sessions {
		if session.RecordingURL != "" {
			stats.SessionsWithRecording++
		}
		for _, speakerID := range session.SpeakerIDs {
			speaker, ok := index[speakerID]
			if !ok {
				stats.MissingSpeakerRefs++
				continue
			}
			social := ClassifySocialLinks(speaker.Links)
			rows = append(rows, domain.OutputRow{
				FullName:     speaker.FullName,
				SessionTitle: session.Title,
				RecordingURL: session.RecordingURL,
				LinkedIn:     social.LinkedIn,
				BlueSky:      social.BlueSky,
				Twitter:      social.Twitter,
				Instagram:    social.Instagram,
			})
		}
	}
	return rows, stats
}
