package models

// FeedEntry is one row of a user's activity feed, newest first.
type FeedEntry struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
	XP        int    `json:"xp"`
}

// FeedResponse is the body of a feed listing.
type FeedResponse struct {
	Total int         `json:"total"`
	Items []FeedEntry `json:"items"`
}

// ActivityValue wraps a raw key-value blob stored for the presentation layer.
type ActivityValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
