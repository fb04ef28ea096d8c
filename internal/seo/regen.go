package seo

import (
	"fmt"
	"strings"

	"seo-assistant/internal/models"
)

// Section regenerators replace exactly one field of a Suggestion Bundle.
// Each returns the new value; the caller merges it into a copy of the
// bundle (see Client.RegenerateSection) so the bundle it was handed stays
// untouched. All four are synchronous and never fail.

// RegenerateTitle produces a replacement for OptimizedTitle.
func (h *Heuristics) RegenerateTitle(ctx *models.VideoContext, _ *models.SuggestionBundle) string {
	words := significantWords(ctx)
	topic := joinFirst(words, 4)
	title := fmt.Sprintf(regenTitlePatterns[h.rng.Intn(len(regenTitlePatterns))], topic)
	return clampTitle(title)
}

// RegenerateDescription produces a replacement for SEODescription. It keeps
// the section structure of the full generator but without the hashtag and
// keyword-stuffing blocks, so a refreshed description reads lighter.
func (h *Heuristics) RegenerateDescription(ctx *models.VideoContext, _ *models.SuggestionBundle) string {
	words := significantWords(ctx)
	topic := joinFirst(words, 4)
	keyword := joinFirst(words, 3)

	hook := regenHooks[h.rng.Intn(len(regenHooks))](keyword, topic)

	var b strings.Builder
	b.WriteString(hook + "\n\n")
	fmt.Fprintf(&b, "This comprehensive video covers %s in detail. Perfect for anyone looking to learn %s.\n\n", keyword, topic)
	b.WriteString("WHAT YOU'LL LEARN:\n")
	fmt.Fprintf(&b, "1. %s fundamentals\n", keyword)
	fmt.Fprintf(&b, "2. Step-by-step %s process\n", topic)
	b.WriteString("3. Pro tips and techniques\n")
	b.WriteString("4. Common mistakes to avoid\n")
	b.WriteString("5. Advanced strategies\n\n")
	b.WriteString("WHY WATCH THIS:\n")
	b.WriteString("✓ Beginner friendly content\n")
	b.WriteString("✓ Clear explanations\n")
	b.WriteString("✓ Proven methods\n")
	b.WriteString("✓ Time-saving tips\n")
	b.WriteString("✓ Real results\n\n")
	b.WriteString(sectionRule + "\n")
	b.WriteString("TIMESTAMPS:\n")
	b.WriteString("0:00 - Introduction\n")
	b.WriteString("1:00 - Getting Started\n")
	b.WriteString("3:00 - Main Content\n")
	b.WriteString("6:00 - Advanced Tips\n")
	b.WriteString("8:00 - Conclusion\n\n")
	b.WriteString(sectionRule + "\n")
	b.WriteString("ENGAGE:\n")
	b.WriteString("► LIKE if helpful\n")
	b.WriteString("► SUBSCRIBE for more\n")
	b.WriteString("► COMMENT your thoughts\n")
	b.WriteString("► SHARE with friends\n\n")
	b.WriteString(sectionRule + "\n")
	b.WriteString("CONNECT:\n")
	b.WriteString("► Website: https://yourwebsite.com\n")
	b.WriteString("► Social Media: [Add links]\n\n")
	b.WriteString(sectionRule + "\n")
	b.WriteString("COPYRIGHT DISCLAIMER:\n")
	b.WriteString("All content protected by copyright law.\n")
	b.WriteString("Unauthorized use prohibited.\n")
	fmt.Fprintf(&b, "© %d - All rights reserved", h.now().Year())

	return b.String()
}

// RegenerateTags produces a replacement for BestTags.
func (h *Heuristics) RegenerateTags(ctx *models.VideoContext, _ *models.SuggestionBundle) []string {
	words := significantWords(ctx)
	topic := joinFirst(words, 4)

	d := newDeduper(35, 2)
	d.add(firstN(words, 8)...)
	d.add(topic+" tutorial", topic+" guide", topic+" tips", topic+" 2025")
	d.add(regenGenericTags...)
	d.add(h.sample(regenExtraTags, 5)...)
	return d.items
}

// RegenerateHashtags produces a replacement for TrendingHashtags.
func (h *Heuristics) RegenerateHashtags(ctx *models.VideoContext, _ *models.SuggestionBundle) []string {
	d := newDeduper(12, 3)
	for _, w := range firstN(significantWords(ctx), 4) {
		d.add("#" + cleanHashtagWord(w))
	}
	d.add(h.sample(regenTrendingHashtags, 6)...)
	return d.items
}

// sample picks n distinct entries from pool in random order.
func (h *Heuristics) sample(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, 0, n)
	for _, i := range h.rng.Perm(len(pool))[:n] {
		out = append(out, pool[i])
	}
	return out
}

func significantWords(ctx *models.VideoContext) []string {
	var words []string
	for _, w := range strings.Fields(ctx.Title) {
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	return words
}
