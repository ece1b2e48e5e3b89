// Package rlvrc ingests the RLVRC v2 event-listing API: a JSON feed of
// Chinese-language VRChat events with flat day/time string pairs, free-text
// tags and join targets.
package rlvrc

// Body is the listing API response.
type Body struct {
	Data   Data   `json:"data"`
	Inform string `json:"inform"`
}

// Data partitions the listing into three buckets. All three are normalized
// identically and concatenated.
type Data struct {
	UnknownStartTime []EventItem `json:"unknownStartTime"`
	ShortTerm        []EventItem `json:"shortTerm"`
	LongTerm         []EventItem `json:"longTerm"`
}

// EventItem is one raw listing entry as served by the API. Optional upstream
// fields decode to their zero values.
type EventItem struct {
	ID              int64    `json:"id"`
	UUID            string   `json:"uuid"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Tags            []string `json:"tags"`
	StartDay        string   `json:"start_day"`
	StartTime       string   `json:"start_time"`
	EndDay          string   `json:"end_day"`
	EndTime         string   `json:"end_time"`
	Location        string   `json:"location"`
	JoinLink        string   `json:"join_link"`
	EventType       string   `json:"event_type"`
	MaxParticipants int      `json:"max_participants"`
	IsPublic        bool     `json:"is_public"`
	PosterID        int64    `json:"poster_id"`
	PosterURL       string   `json:"poster_url"`
	VRCPosterURL    string   `json:"vrc_poster_url"`
	Uploader        string   `json:"uploader"`
	VRCGroupName    string   `json:"vrc_group_name"`
	VRCGroupID      string   `json:"vrc_group_id"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}
