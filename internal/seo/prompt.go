package seo

import (
	"fmt"
	"strings"

	"seo-assistant/internal/models"
)

// buildPrompt renders the single structured prompt sent to every model
// candidate. It instructs the model to answer with exactly the Suggestion
// Bundle JSON shape; anything around the object is stripped by the caller.
func buildPrompt(ctx *models.VideoContext) string {
	return fmt.Sprintf(`You are an expert YouTube SEO specialist with 10+ years of experience in ranking algorithms, CTR psychology, and viral content dynamics.

IMPORTANT: Take your time to thoroughly analyze ALL aspects of this video. Quality is more important than speed.

Perform DEEP ANALYSIS on:

Title: %s
Description: %s
Tags: %s
Category: %s
Channel: %s (%s)
Stats: views=%d, likes=%d, comments=%d, engagementRate=%.2f
Video: duration=%s, publishedAt=%s, language=%s

Your goal:
- Maximize click-through rate (CTR) with curiosity-driven but accurate title
- Improve search ranking with keyword-rich description and tags
- Boost engagement and watch time with actionable tips
- Ensure everything matches the actual content and audience intent

Provide:
1) Optimized Title (45-60 chars, no emojis, high CTR, relevant, unique)
2) SEO Description (200-300 words, strong hook first 150 chars, CTAs, related keywords)
3) Best Tags (25-35 search-optimized tags, mix of head/long-tail, no '#')
4) Trending Hashtags (8-12, relevant and viral-ready)
5) SEO Score (1-100 considering title, desc, tags, stats, engagement)
6) Improvement Tips (5-8 specific, actionable, prioritized)

Output JSON only, no extra text:
{
  "optimizedTitle": "string",
  "seoDescription": "string",
  "bestTags": ["tag1", "tag2", ...],
  "trendingHashtags": ["#hashtag1", "#hashtag2", ...],
  "seoScore": number,
  "improvementTips": ["tip1", "tip2", ...]
}`,
		orDefault(ctx.Title, "Untitled"),
		orDefault(truncateString(ctx.Description, 1000), "No description"),
		orDefault(strings.Join(ctx.Tags, ", "), "No tags"),
		orDefault(ctx.Category, "General"),
		orDefault(ctx.Channel.Title, "Unknown"),
		orDefault(ctx.Channel.Country, "Unknown"),
		ctx.Stats.Views,
		ctx.Stats.Likes,
		ctx.Stats.Comments,
		ctx.Stats.EngagementRate,
		orDefault(ctx.Video.Duration, "N/A"),
		formatPublished(ctx),
		orDefault(ctx.Video.Language, "N/A"),
	)
}

func formatPublished(ctx *models.VideoContext) string {
	if ctx.Video.PublishedAt.IsZero() {
		return "N/A"
	}
	return ctx.Video.PublishedAt.Format("2006-01-02 15:04")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength] + "..."
}
