package seo

import (
	"sort"
	"strings"
	"time"

	"seo-assistant/internal/models"
)

var stopWords = map[string]bool{
	"this": true, "that": true, "with": true, "from": true,
	"have": true, "will": true, "your": true, "about": true,
	"them": true, "their": true, "what": true, "when": true,
	"where": true, "which": true,
}

var powerWords = []string{
	"ultimate", "complete", "best", "top", "secret", "proven", "easy",
	"fast", "new", "free", "pro", "expert", "master",
}

var actionWords = []string{
	"challenge", "vs", "secret", "trick", "hack", "win", "best", "top",
	"only", "ultimate",
}

// categoryKeywords is ordered: ties in match counts resolve to the
// earliest declared category.
var categoryKeywords = []struct {
	name     string
	keywords []string
}{
	{"tutorial", []string{"how to", "tutorial", "guide", "learn", "easy", "step by step", "diy", "make"}},
	{"entertainment", []string{"funny", "comedy", "entertainment", "fun", "viral", "trending", "challenge", "prank"}},
	{"review", []string{"review", "unboxing", "comparison", "vs", "best", "worth it", "honest"}},
	{"gaming", []string{"gameplay", "gaming", "game", "playthrough", "walkthrough", "let's play", "stream"}},
	{"tech", []string{"tech", "technology", "smartphone", "computer", "software", "app", "gadget", "device"}},
	{"educational", []string{"education", "study", "class", "lesson", "course", "explain", "science", "history"}},
	{"lifestyle", []string{"vlog", "daily", "routine", "lifestyle", "travel", "food", "cooking"}},
	{"business", []string{"business", "money", "earn", "passive income", "invest", "entrepreneur"}},
}

// contentAnalysis holds everything the synthesis steps derive from a
// Video Context before any text is produced.
type contentAnalysis struct {
	titleWords     []string
	descWords      []string
	topKeywords    []string
	primaryKeyword string
	mainTopic      string
	category       string
	contentLower   string
	viralScore     int
}

func analyzeContent(ctx *models.VideoContext, now time.Time) *contentAnalysis {
	a := &contentAnalysis{}

	a.titleWords = significantWords(ctx)
	for _, w := range strings.Fields(strings.ToLower(ctx.Description)) {
		if len(w) > 4 {
			a.descWords = append(a.descWords, w)
		}
	}

	a.topKeywords = rankKeywords(a.titleWords, a.descWords)
	a.primaryKeyword = joinFirst(a.titleWords, 3)
	if len(a.topKeywords) > 0 {
		a.primaryKeyword = a.topKeywords[0]
	}
	a.mainTopic = joinFirst(a.titleWords, 5)
	a.contentLower = strings.ToLower(ctx.Title + " " + ctx.Description)
	a.category = classifyCategory(a.contentLower)
	a.viralScore = viralPotential(ctx, a.contentLower, now)

	return a
}

// rankKeywords counts normalized token frequency across the title words
// and the first 50 description words, drops stop words, and returns the
// top 10 by frequency. Ties keep first-occurrence order so the ranking is
// deterministic for identical input.
func rankKeywords(titleWords, descWords []string) []string {
	pool := append(append([]string{}, titleWords...), firstN(descWords, 50)...)

	freq := make(map[string]int)
	var order []string
	for _, w := range pool {
		cleaned := normalizeToken(w)
		if len(cleaned) <= 3 || stopWords[cleaned] {
			continue
		}
		if freq[cleaned] == 0 {
			order = append(order, cleaned)
		}
		freq[cleaned]++
	}

	rank := make(map[string]int, len(order))
	for i, w := range order {
		rank[w] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		if freq[order[i]] != freq[order[j]] {
			return freq[order[i]] > freq[order[j]]
		}
		return rank[order[i]] < rank[order[j]]
	})

	return firstN(order, 10)
}

func classifyCategory(contentLower string) string {
	category := "general"
	confidence := 0
	for _, c := range categoryKeywords {
		matches := 0
		for _, kw := range c.keywords {
			if strings.Contains(contentLower, kw) {
				matches++
			}
		}
		if matches > confidence {
			confidence = matches
			category = c.name
		}
	}
	return category
}

// viralPotential is a diagnostic 0-4 signal count. It is logged for
// operators but never gates output quality.
func viralPotential(ctx *models.VideoContext, contentLower string, now time.Time) int {
	score := 0
	if ctx.Stats.EngagementRate > 5 {
		score++
	}
	if strings.Contains(contentLower, "viral") || strings.Contains(contentLower, "trending") {
		score++
	}
	if d := ctx.Video.Duration; strings.Contains(d, "PT") && !strings.Contains(d, "H") {
		score++
	}
	if p := ctx.Video.PublishedAt; !p.IsZero() && now.Sub(p) < 7*24*time.Hour {
		score++
	}
	return score
}

func normalizeToken(w string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(w) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func hasAnyWord(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func firstN[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func joinFirst(words []string, n int) string {
	return strings.Join(firstN(words, n), " ")
}
