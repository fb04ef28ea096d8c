package seo

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"seo-assistant/internal/models"
)

// Heuristics produces a full Suggestion Bundle locally, without any remote
// call. The structure of its output is deterministic for a given context;
// only template selection varies, driven by the injected random source so
// tests can fix the seed.
type Heuristics struct {
	rng *rand.Rand
	now func() time.Time
}

// NewHeuristics creates a generator around the given random source. A nil
// source gets a time-seeded one.
func NewHeuristics(rng *rand.Rand) *Heuristics {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Heuristics{rng: rng, now: time.Now}
}

// GenerateFallback builds a Suggestion Bundle from the context alone. It
// always succeeds; missing context fields are treated as empty.
func (h *Heuristics) GenerateFallback(ctx *models.VideoContext) *models.SuggestionBundle {
	if ctx == nil {
		ctx = &models.VideoContext{}
	}
	a := analyzeContent(ctx, h.now())

	log.Printf("Heuristic analysis: category=%s keywords=%v viral=%d/4", a.category, firstN(a.topKeywords, 5), a.viralScore)

	title := h.synthesizeTitle(ctx, a)
	tags := h.synthesizeTags(ctx, a)
	hashtags := h.synthesizeHashtags(a)
	description := h.synthesizeDescription(a, tags, hashtags)
	tips := synthesizeTips(a.category)
	score := computeScore(ctx, a)

	return &models.SuggestionBundle{
		OptimizedTitle:   title,
		SEODescription:   description,
		BestTags:         tags,
		TrendingHashtags: hashtags,
		SEOScore:         score,
		ImprovementTips:  tips,
	}
}

func (h *Heuristics) synthesizeTitle(ctx *models.VideoContext, a *contentAnalysis) string {
	titleLen := runeLen(ctx.Title)

	var title string
	if hasAnyWord(a.contentLower, actionWords) && titleLen >= 40 && titleLen <= 60 {
		// The original title already pulls its weight; just clean it up.
		title = strings.TrimSpace(stripEmojis(ctx.Title))
	} else {
		patterns, ok := titlePatterns[a.category]
		if !ok {
			patterns = titlePatterns["tutorial"]
		}
		topic := a.mainTopic
		if titleLen > 60 {
			topic = joinFirst(a.titleWords, 5)
		}
		title = fmt.Sprintf(patterns[h.rng.Intn(len(patterns))], topic)
	}

	if !hasAnyWord(strings.ToLower(title), powerWords) && runeLen(title) < 50 {
		pw := powerWords[h.rng.Intn(len(powerWords))]
		title = strings.ToUpper(pw[:1]) + pw[1:] + " " + title
	}

	return clampTitle(title)
}

// clampTitle forces the title into the 45-60 character window: pad short
// titles with ordered filler suffixes, truncate long ones at 57 + "...".
func clampTitle(title string) string {
	for i := 0; runeLen(title) < 45 && i < len(titleFillers); i++ {
		title += titleFillers[i]
	}
	if r := []rune(title); len(r) > 60 {
		title = string(r[:57]) + "..."
	}
	return title
}

func (h *Heuristics) synthesizeTags(ctx *models.VideoContext, a *contentAnalysis) []string {
	specific, ok := categoryTags[a.category]
	if !ok {
		specific = defaultTags
	}

	d := newDeduper(35, 2)
	d.add(ctx.Tags...)
	d.add(a.primaryKeyword)
	longWords := make([]string, 0, 8)
	for _, w := range a.titleWords {
		if len(w) > 3 {
			longWords = append(longWords, w)
		}
	}
	d.add(firstN(longWords, 8)...)
	d.add(specific...)
	d.add(viralTags...)
	d.add(
		a.mainTopic+" tutorial",
		a.mainTopic+" guide",
		"best "+a.mainTopic,
		"how to "+a.mainTopic,
	)
	d.add(firstN(a.descWords, 5)...)
	return d.items
}

func (h *Heuristics) synthesizeHashtags(a *contentAnalysis) []string {
	specific, ok := categoryHashtags[a.category]
	if !ok {
		specific = defaultHashtags
	}

	d := newDeduper(12, 3)
	d.add(specific...)
	for _, w := range firstN(a.titleWords, 4) {
		d.add("#" + cleanHashtagWord(w))
	}
	d.add("#YouTube", "#Viral", "#Trending2025", "#MustWatch")
	d.add("#" + cleanHashtagWord(a.primaryKeyword))
	return d.items
}

const sectionRule = "━━━━━━━━━━━━━━━━━━━━━━━━"

func (h *Heuristics) synthesizeDescription(a *contentAnalysis, tags, hashtags []string) string {
	pk, mt := a.primaryKeyword, a.mainTopic

	hook := hookTemplates[h.rng.Intn(len(hookTemplates))](pk, mt)

	categoryNoun := a.category
	if categoryNoun == "gaming" {
		categoryNoun = "gameplay"
	}
	intro := fmt.Sprintf("In this %s video, we cover %s in detail. "+
		"Whether you're searching for %s tips, %s tutorial, or %s guide, this video has everything you need.",
		categoryNoun, pk, mt, pk, mt)

	keyTopics := []string{
		pk + " basics and fundamentals",
		"Step-by-step " + mt + " walkthrough",
		"Pro " + pk + " techniques and strategies",
		"Common " + mt + " mistakes to avoid",
		"Advanced " + pk + " tips for better results",
	}
	benefits := []string{
		"Perfect for " + pk + " beginners",
		mt + " explained in simple terms",
		"Proven " + pk + " methods that work",
		"Save time learning " + mt,
		"Get " + pk + " results quickly",
	}

	var b strings.Builder
	b.WriteString(hook + "\n\n")
	b.WriteString(intro + "\n\n")
	b.WriteString(sectionRule + "\n")
	b.WriteString("WHAT YOU'LL LEARN:\n")
	for i, t := range keyTopics {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	b.WriteString("\nWHY WATCH THIS:\n")
	for _, benefit := range benefits {
		b.WriteString("✓ " + benefit + "\n")
	}
	b.WriteString("\n" + sectionRule + "\n")
	b.WriteString("TIMESTAMPS:\n")
	fmt.Fprintf(&b, "0:00 - Introduction to %s\n", pk)
	fmt.Fprintf(&b, "0:45 - %s getting started\n", mt)
	fmt.Fprintf(&b, "2:30 - Main %s content\n", pk)
	fmt.Fprintf(&b, "5:15 - Advanced %s tips\n", mt)
	fmt.Fprintf(&b, "7:30 - %s conclusion\n\n", pk)
	b.WriteString(sectionRule + "\n")
	b.WriteString("ENGAGE WITH US:\n")
	for _, cta := range engageCTAs {
		b.WriteString("► " + cta + "\n")
	}
	b.WriteString("\n" + strings.Join(hashtags, " ") + "\n\n")
	b.WriteString(sectionRule + "\n")
	b.WriteString("CONNECT WITH US:\n")
	b.WriteString("► Website: https://yourwebsite.com\n")
	b.WriteString("► Facebook: https://facebook.com/yourpage\n")
	b.WriteString("► Instagram: https://instagram.com/yourprofile\n")
	b.WriteString("► Twitter: https://twitter.com/yourhandle\n")
	b.WriteString("► TikTok: https://tiktok.com/@yourhandle\n\n")
	b.WriteString(sectionRule + "\n")
	b.WriteString("KEYWORDS: " + strings.Join(firstN(tags, 15), " | ") + "\n\n")
	fmt.Fprintf(&b, "Related: %s, %s tutorial, %s guide, %s tips, %s beginners, %s explained, %s step by step, %s 2025\n\n",
		pk, mt, pk, mt, pk, mt, pk, mt)
	b.WriteString(sectionRule + "\n")
	b.WriteString("COPYRIGHT DISCLAIMER:\n")
	b.WriteString("This video and all content on this channel are protected by copyright law.\n")
	b.WriteString("Unauthorized reproduction, distribution, or use of this content is prohibited.\n")
	b.WriteString("Fair use allowed for educational and commentary purposes only.\n\n")
	fmt.Fprintf(&b, "All rights reserved © %d\n", h.now().Year())
	b.WriteString("Content by: [Your Channel Name]\n")
	b.WriteString("For business inquiries: contact@yourwebsite.com")

	return b.String()
}

func synthesizeTips(category string) []string {
	specific, ok := categoryTips[category]
	if !ok {
		specific = defaultTips
	}
	tips := append([]string{}, specific...)
	return append(tips, universalTips[:3]...)
}

// computeScore grades the video as uploaded, not the generated artifacts,
// so the score reflects how much headroom the suggestions add.
func computeScore(ctx *models.VideoContext, a *contentAnalysis) int {
	score := 40

	titleLen := runeLen(ctx.Title)
	if titleLen >= 40 && titleLen <= 60 {
		score += 10
	}
	if len(strings.Fields(ctx.Title)) >= 5 {
		score += 5
	}
	if hasAnyWord(a.contentLower, powerWords) {
		score += 5
	}

	if n := len(ctx.Description); n > 200 {
		score += 10
		if n > 500 {
			score += 5
		}
	}

	if n := len(ctx.Tags); n > 10 {
		score += 8
		if n > 20 {
			score += 7
		}
	}

	if hasAnyWord(a.contentLower, []string{"how to", "tutorial", "guide", "learn"}) {
		score += 5
	}
	if len(a.titleWords) >= 6 {
		score += 5
	}

	if score > 95 {
		score = 95
	}
	return score
}

// deduper accumulates strings preserving first occurrence, dropping
// entries shorter than minLen and everything past cap. Duplicate checks
// are case-insensitive; the first-seen casing wins.
type deduper struct {
	items  []string
	seen   map[string]bool
	cap    int
	minLen int
}

func newDeduper(capacity, minLen int) *deduper {
	return &deduper{seen: make(map[string]bool), cap: capacity, minLen: minLen}
}

func (d *deduper) add(items ...string) {
	for _, item := range items {
		if len(d.items) >= d.cap {
			return
		}
		key := strings.ToLower(item)
		if len(item) < d.minLen || d.seen[key] {
			continue
		}
		d.seen[key] = true
		d.items = append(d.items, item)
	}
}

var emojiReplacer = strings.NewReplacer(
	"🤯", "", "🔥", "", "😱", "", "💯", "", "⚡", "", "✅", "", "❌", "", "👍", "", "💪", "",
)

func stripEmojis(s string) string {
	return emojiReplacer.Replace(s)
}

func cleanHashtagWord(w string) string {
	var b strings.Builder
	for _, r := range w {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func runeLen(s string) int {
	return len([]rune(s))
}
