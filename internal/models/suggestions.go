package models

// SuggestionBundle is the six-field SEO output. The JSON names are part of
// the remote-model contract: the prompt instructs the model to answer with
// exactly this object shape.
type SuggestionBundle struct {
	OptimizedTitle   string   `json:"optimizedTitle"`
	SEODescription   string   `json:"seoDescription"`
	BestTags         []string `json:"bestTags"`
	TrendingHashtags []string `json:"trendingHashtags"`
	SEOScore         int      `json:"seoScore"`
	ImprovementTips  []string `json:"improvementTips"`
}

// Clone returns a deep copy so section regeneration can replace one field
// without touching the bundle the caller still holds.
func (b *SuggestionBundle) Clone() *SuggestionBundle {
	if b == nil {
		return nil
	}
	out := *b
	out.BestTags = append([]string(nil), b.BestTags...)
	out.TrendingHashtags = append([]string(nil), b.TrendingHashtags...)
	out.ImprovementTips = append([]string(nil), b.ImprovementTips...)
	return &out
}

// SearchResult is one entry of a title search.
type SearchResult struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
	Thumbnail    string `json:"thumbnail,omitempty"`
}

// IncomeEstimate is the monetization estimate derived from the static
// per-country rate table. All amounts are USD.
type IncomeEstimate struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Likely float64 `json:"likely"`
	CPM    float64 `json:"cpm"`
}
