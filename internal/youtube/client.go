package youtube

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"seo-assistant/internal/models"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// ErrVideoNotFound is returned when the video ID resolves to nothing. It
// is one of the few errors surfaced to the user.
var ErrVideoNotFound = errors.New("video not found")

// ErrNoResults is returned when a title search matches no videos.
var ErrNoResults = errors.New("no videos found")

// Client wraps the YouTube Data API v3 for public, read-only metadata:
// video details, channel details and title search. Only an API key is
// needed; no user-scoped resources are touched.
type Client struct {
	service *youtube.Service
}

func NewClient(apiKey string) (*Client, error) {
	ctx := context.Background()

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{service: service}, nil
}

var (
	videoIDPattern  = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
	videoURLPattern = regexp.MustCompile(`(?:youtube\.com/watch\?.*v=|youtu\.be/|youtube\.com/embed/|youtube\.com/shorts/)([a-zA-Z0-9_-]{11})`)
)

// ExtractVideoID pulls the 11-character video ID out of a raw ID or any
// of the common YouTube URL shapes.
func ExtractVideoID(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if videoIDPattern.MatchString(input) {
		return input, true
	}
	if m := videoURLPattern.FindStringSubmatch(input); m != nil {
		return m[1], true
	}
	return "", false
}

// GetVideoContext fetches video and channel metadata and assembles the
// normalized Video Context. The channel lookup is best-effort: its failure
// degrades the context, never the call.
func (c *Client) GetVideoContext(ctx context.Context, videoID string) (*models.VideoContext, error) {
	call := c.service.Videos.
		List([]string{"snippet", "statistics", "contentDetails", "status"}).
		Id(videoID).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video %s: %w", videoID, err)
	}
	if len(resp.Items) == 0 {
		return nil, ErrVideoNotFound
	}

	item := resp.Items[0]
	vc := &models.VideoContext{
		Title: item.Snippet.Title,
		Video: models.VideoFacts{ID: item.Id},
	}
	vc.Description = item.Snippet.Description
	vc.Tags = item.Snippet.Tags
	vc.Category = item.Snippet.CategoryId
	vc.Channel.Title = item.Snippet.ChannelTitle

	vc.Video.Language = item.Snippet.DefaultLanguage
	if vc.Video.Language == "" {
		vc.Video.Language = item.Snippet.DefaultAudioLanguage
	}
	if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
		vc.Video.Thumbnail = item.Snippet.Thumbnails.High.Url
	}
	if publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
		vc.Video.PublishedAt = publishedAt
	}

	if item.ContentDetails != nil {
		vc.Video.Duration = item.ContentDetails.Duration
	}
	if item.Statistics != nil {
		vc.Stats.Views = int64(item.Statistics.ViewCount)
		vc.Stats.Likes = int64(item.Statistics.LikeCount)
		vc.Stats.Comments = int64(item.Statistics.CommentCount)
		vc.Stats.EngagementRate = EngagementRate(vc.Stats.Views, vc.Stats.Likes, vc.Stats.Comments)
	}

	if channel, err := c.getChannel(ctx, item.Snippet.ChannelId); err != nil {
		log.Printf("Warning: channel lookup failed for %s: %v", item.Snippet.ChannelId, err)
	} else if channel != nil {
		vc.Channel.Country = channel.Country
		vc.Channel.Subscribers = channel.Subscribers
	}

	return vc, nil
}

type channelFacts struct {
	Country     string
	Subscribers int64
}

func (c *Client) getChannel(ctx context.Context, channelID string) (*channelFacts, error) {
	if channelID == "" {
		return nil, nil
	}

	call := c.service.Channels.
		List([]string{"statistics", "snippet"}).
		Id(channelID).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel %s: %w", channelID, err)
	}
	if len(resp.Items) == 0 {
		return nil, nil
	}

	item := resp.Items[0]
	facts := &channelFacts{Country: item.Snippet.Country}
	if item.Statistics != nil {
		facts.Subscribers = int64(item.Statistics.SubscriberCount)
	}
	return facts, nil
}

// Search finds up to 10 videos matching a title query.
func (c *Client) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	call := c.service.Search.
		List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(10).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("search failed for %q: %w", query, err)
	}
	if len(resp.Items) == 0 {
		return nil, ErrNoResults
	}

	results := make([]models.SearchResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		result := models.SearchResult{
			VideoID:      item.Id.VideoId,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  item.Snippet.PublishedAt,
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Medium != nil {
			result.Thumbnail = item.Snippet.Thumbnails.Medium.Url
		}
		results = append(results, result)
	}
	if len(results) == 0 {
		return nil, ErrNoResults
	}
	return results, nil
}

// EngagementRate is (likes+comments)/views as a percentage, rounded to two
// decimal places. Zero views yields zero.
func EngagementRate(views, likes, comments int64) float64 {
	if views == 0 {
		return 0
	}
	rate := float64(likes+comments) / float64(views) * 100
	return math.Round(rate*100) / 100
}

var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseDurationSeconds converts an ISO 8601 duration ("PT2H15M30S") to
// total seconds. Unparseable input yields zero.
func ParseDurationSeconds(duration string) int {
	if duration == "" {
		return 0
	}

	matches := durationPattern.FindStringSubmatch(duration)
	if len(matches) == 0 {
		return 0
	}

	total := 0
	for i, mult := range []int{3600, 60, 1} {
		if matches[i+1] == "" {
			continue
		}
		if v, err := strconv.Atoi(matches[i+1]); err == nil {
			total += v * mult
		}
	}
	return total
}

// FormatDuration renders an ISO 8601 duration as "H:MM:SS" or "M:SS".
func FormatDuration(duration string) string {
	total := ParseDurationSeconds(duration)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatCount renders large counts compactly: 1.2K, 3.4M, 5.6B.
func FormatCount(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	}
	return strconv.FormatInt(n, 10)
}
