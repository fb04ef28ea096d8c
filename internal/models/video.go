package models

import "time"

// VideoContext is the normalized bundle of video and channel facts that
// drives suggestion generation. Every field is optional: consumers treat
// missing values as empty/zero and never fail on absence.
type VideoContext struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Category    string       `json:"category,omitempty"`
	Stats       VideoStats   `json:"stats"`
	Channel     ChannelFacts `json:"channel"`
	Video       VideoFacts   `json:"video"`
}

type VideoStats struct {
	Views          int64   `json:"views"`
	Likes          int64   `json:"likes"`
	Comments       int64   `json:"comments"`
	EngagementRate float64 `json:"engagementRate"`
}

type ChannelFacts struct {
	Title       string `json:"title,omitempty"`
	Country     string `json:"country,omitempty"`
	Subscribers int64  `json:"subscribers,omitempty"`
}

type VideoFacts struct {
	ID          string    `json:"id,omitempty"`
	Duration    string    `json:"duration,omitempty"` // ISO 8601, e.g. "PT4M13S"
	PublishedAt time.Time `json:"publishedAt,omitempty"`
	Language    string    `json:"language,omitempty"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
}
