package seo

// Hand-authored content tables for the heuristic generator. The counts and
// section shapes are load-bearing (the generator relies on them); the
// wording itself is replaceable copy.

// titlePatterns are category-specific title templates, applied to the core
// topic. Categories without their own set reuse the tutorial patterns.
var titlePatterns = map[string][]string{
	"gaming": {
		"%s - INSANE Challenge Result",
		"%s | This Actually Works",
		"Pro %s Strategy - Must Try",
		"%s GONE WRONG - Unbelievable",
		"%s - Everyone is Talking About This",
		"%s Hack That Changed Everything",
		"Watch Before Playing %s",
		"%s - Winning Strategy Revealed",
	},
	"tutorial": {
		"%s - Easy Way Everyone Missed",
		"%s in 5 Minutes - Actually Works",
		"Learn %s - No Experience Needed",
		"%s - Simplest Method Ever",
		"%s Step by Step - Beginner Friendly",
		"%s - Secret Pros Don't Tell You",
		"Master %s Without Struggling",
		"%s Made Simple - Try This Now",
	},
	"entertainment": {
		"%s - You Have to See This",
		"%s That Broke the Internet",
		"Watch %s Till the End",
		"%s - Can't Believe This Happened",
		"%s - Most Viral Moment Ever",
		"%s - Everyone Reacting to This",
		"%s - This Changes Everything",
		"%s - Internet is Going Crazy",
	},
	"review": {
		"%s - Before You Buy This",
		"%s - Worth Your Money?",
		"%s - Shocking Truth Nobody Tells",
		"%s Review - My Honest Opinion",
		"%s - Best or Worst Purchase?",
		"%s - What They Don't Tell You",
		"%s After 30 Days - Real Results",
		"%s - Save Your Money Watch This",
	},
	"tech": {
		"%s - Features You Don't Know",
		"%s - This Will Blow Your Mind",
		"%s Deep Dive - Worth the Hype?",
		"%s - Hidden Features Revealed",
		"%s - Better Than Expected",
		"%s - Full Review & Real Test",
		"%s - Should You Upgrade?",
		"%s vs Competition - Clear Winner",
	},
}

// titleFillers pad a clamped title up to the 45-char floor, in order. The
// year suffix goes first as a freshness signal.
var titleFillers = []string{
	" 2025",
	" | Full Guide",
	" You Need to See",
	" Right Now",
}

var categoryTags = map[string][]string{
	"tutorial":      {"how to", "tutorial", "step by step", "guide", "learn", "beginner friendly", "easy tutorial"},
	"entertainment": {"funny", "viral video", "trending", "entertainment", "must watch", "amazing"},
	"review":        {"review", "honest review", "detailed review", "worth it", "recommendation", "comparison"},
	"gaming":        {"gaming", "gameplay", "game review", "lets play", "game tutorial", "pro tips"},
	"tech":          {"technology", "tech review", "latest tech", "gadgets", "smartphone", "tech news"},
	"educational":   {"educational", "learning", "explained", "knowledge", "informative", "lesson"},
}

var defaultTags = []string{"tips", "guide", "helpful"}

var viralTags = []string{"viral", "trending", "popular", "2024", "2025", "new", "latest", "best"}

var categoryHashtags = map[string][]string{
	"tutorial":      {"#HowTo", "#Tutorial", "#LearnOnYouTube", "#Education"},
	"entertainment": {"#Viral", "#Trending", "#MustWatch", "#Entertainment"},
	"review":        {"#Review", "#ProductReview", "#Honest", "#Recommendation"},
	"gaming":        {"#Gaming", "#Gamer", "#GamePlay", "#GamingCommunity"},
	"tech":          {"#Tech", "#Technology", "#TechReview", "#Gadgets"},
	"educational":   {"#Education", "#Learning", "#Knowledge", "#Study"},
}

var defaultHashtags = []string{"#Tips", "#Guide"}

// hookTemplates open the generated description; the first ~150 characters
// carry the most search weight.
var hookTemplates = []func(keyword, topic string) string{
	func(keyword, topic string) string {
		return keyword + " complete guide | Everything you need to know about " + topic
	},
	func(keyword, topic string) string {
		return "Master " + keyword + " with this proven step-by-step tutorial"
	},
	func(keyword, topic string) string {
		return "Best " + keyword + " tips and tricks | " + topic + " explained"
	},
	func(keyword, topic string) string {
		return topic + " tutorial for beginners and pros | Learn " + keyword + " fast"
	},
}

var categoryTips = map[string][]string{
	"tutorial": {
		"Create step-by-step thumbnail showing the process or result",
		"Add chapter markers for each major step in the tutorial",
		"Include \"How to\" at the beginning of your title for better search",
		"Show before/after results in thumbnail to increase CTR",
		"Create a pinned comment with quick summary for returning viewers",
	},
	"entertainment": {
		"Use bright colors and expressive faces in thumbnail",
		"Create curiosity gap in title without being clickbait",
		"Hook viewers in first 5 seconds with your best moment",
		"Add trending sound or music to boost algorithm favor",
		"Collaborate with other creators for cross-promotion",
	},
	"review": {
		"Show the product clearly in thumbnail with rating stars",
		"Include price and value proposition in description",
		"Add comparison timestamps if reviewing multiple items",
		"Use honest opinion keywords like \"Honest\", \"Real\", \"Unbiased\"",
		"Link to product with affiliate disclosure for monetization",
	},
	"gaming": {
		"Feature epic gameplay moment in thumbnail",
		"Add game name and level/chapter in title",
		"Include difficulty level to target right audience",
		"Add timestamps for different gameplay segments",
		"Use gaming hashtags like #Gaming #Gamer #GamePlay",
	},
	"tech": {
		"Show device/tech clearly with specs overlay in thumbnail",
		"Include model numbers and year in title for search",
		"Compare with competitors to rank in comparison searches",
		"Add spec sheet in description for SEO keywords",
		"Create \"vs\" content for higher search volume",
	},
	"educational": {
		"Design clean educational thumbnail with topic title",
		"Structure content with clear learning outcomes",
		"Add quiz or practice questions in pinned comment",
		"Include related course or playlist links",
		"Use education hashtags like #Learn #Education #Study",
	},
}

var defaultTips = []string{
	"Optimize thumbnail with high contrast colors",
	"Add relevant keywords naturally in title",
	"Structure content with clear sections",
	"Engage with audience in comments",
	"Promote video on social media platforms",
}

var universalTips = []string{
	"Upload consistently on the same days/times to build audience habits",
	"First 24-48 hours are crucial - promote heavily during this window",
	"Create playlists to increase session watch time",
	"Add cards at 50% mark and end screens in last 20 seconds",
	"Analyze retention graph and cut content where viewers drop off",
	"Reply to every comment in first 2 hours to boost engagement signals",
	"Use community tab to tease upcoming content and build anticipation",
	"Create custom thumbnails that work at small sizes (mobile view)",
}

var engageCTAs = []string{
	"LIKE this video if it helped you",
	"SUBSCRIBE for more tutorials",
	"COMMENT your questions below",
	"SHARE with friends who need this",
	"TURN ON notifications for updates",
}

// Regeneration content: the section regenerators draw from their own,
// smaller template sets so a refresh reads differently from the original.

var regenTitlePatterns = []string{
	"%s - Complete Guide",
	"%s | Must Watch",
	"%s - Pro Tips Inside",
	"Master %s Fast",
	"%s - Game Changer",
	"%s Explained Simply",
	"Best %s Tutorial",
	"%s - Step by Step",
}

var regenHooks = []func(keyword, topic string) string{
	func(keyword, topic string) string {
		return "Complete " + keyword + " guide for beginners and experts"
	},
	func(keyword, topic string) string {
		return "Everything about " + topic + " explained step by step"
	},
	func(keyword, topic string) string {
		return keyword + " tutorial - from basics to advanced"
	},
	func(keyword, topic string) string {
		return "Learn " + topic + " the easy and effective way"
	},
}

var regenGenericTags = []string{
	"how to", "step by step", "beginner friendly", "tutorial", "guide",
	"tips and tricks", "easy method", "fast results", "proven techniques",
	"best practices", "complete course", "full tutorial", "learn online",
	"free tutorial", "quick guide", "detailed explanation",
}

var regenExtraTags = []string{
	"viral content", "trending now", "must watch", "game changer",
	"life hack", "pro tips", "expert advice", "beginner to pro",
}

var regenTrendingHashtags = []string{
	"#Viral", "#Trending", "#MustWatch", "#Tutorial", "#HowTo", "#Learn",
	"#Tips", "#Guide", "#2025", "#YouTube", "#Educational", "#StepByStep",
}
