package rubric

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPlatform is returned when a platform has no scoring rubric.
var ErrUnknownPlatform = errors.New("unknown platform")

// Criterion is one weighted scoring dimension of a platform rubric.
type Criterion struct {
	Name        string
	Weight      float64
	Description string
}

// Rubric describes how one platform's algorithm scores content.
// Criterion weights sum to 1.0.
type Rubric struct {
	Platform    string
	Description string
	FormatHint  string
	Criteria    []Criterion
}

// Platforms returns the supported platform names in menu order.
func Platforms() []string {
	names := make([]string, len(platformOrder))
	copy(names, platformOrder)
	return names
}

// Get returns the rubric for a platform.
func Get(platform string) (Rubric, error) {
	r, ok := rubrics[platform]
	if !ok {
		return Rubric{}, fmt.Errorf("%w: %s", ErrUnknownPlatform, platform)
	}
	return r, nil
}

// PromptBlock renders the rubric as a text block for the evaluator prompt.
func (r Rubric) PromptBlock() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Platform: %s\n", r.Platform)
	fmt.Fprintf(&b, "Description: %s\n\n", r.Description)
	b.WriteString("Scoring Criteria (use these exact weights):\n")
	for _, c := range r.Criteria {
		fmt.Fprintf(&b, "- %s (%d%%): %s\n", c.Name, int(c.Weight*100), c.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

var platformOrder = []string{"TikTok", "Twitter/X", "YouTube", "Instagram"}

var rubrics = map[string]Rubric{
	"TikTok": {
		Platform:    "TikTok",
		Description: "Short-form video platform driven by the For You Page algorithm",
		FormatHint:  "Short-form video (15-60s), vertical, with trending audio",
		Criteria: []Criterion{
			{
				Name:        "hook_strength",
				Weight:      0.30,
				Description: "How strong is the opening hook? TikTok's algorithm measures retention in the first 1-3 seconds. A weak hook kills distribution.",
			},
			{
				Name:        "trend_alignment",
				Weight:      0.25,
				Description: "Does the content ride a current trend, sound, or format? The FYP algorithm boosts content that matches trending signals.",
			},
			{
				Name:        "shareability",
				Weight:      0.20,
				Description: "Would viewers send this to a friend or duet/stitch it? Shares are the highest-weight engagement signal on TikTok.",
			},
			{
				Name:        "hashtag_strategy",
				Weight:      0.15,
				Description: "Are hashtags relevant and discoverable? Mixing niche and broad hashtags helps the algorithm classify and distribute content.",
			},
			{
				Name:        "audio_reference",
				Weight:      0.10,
				Description: "Does the post reference or suggest a trending audio? TikTok's algorithm clusters content by audio for distribution.",
			},
		},
	},
	"Twitter/X": {
		Platform:    "Twitter/X",
		Description: "Text-first microblogging platform driven by engagement velocity",
		FormatHint:  "Tweet or thread, hot takes, quote-retweet bait",
		Criteria: []Criterion{
			{
				Name:        "hot_take_factor",
				Weight:      0.30,
				Description: "Does the post have a strong, polarising, or surprising opinion? Twitter/X rewards engagement velocity — hot takes drive replies.",
			},
			{
				Name:        "quote_retweet_bait",
				Weight:      0.25,
				Description: "Is the post structured to invite quote retweets? QRTs are Twitter/X's most powerful distribution mechanic.",
			},
			{
				Name:        "timing_relevance",
				Weight:      0.20,
				Description: "Is this posted at the right moment? Twitter/X's algorithm heavily weights recency and real-time relevance.",
			},
			{
				Name:        "thread_potential",
				Weight:      0.15,
				Description: "Could this expand into a thread? Threads increase time-on-post and signal depth to the algorithm.",
			},
			{
				Name:        "hashtag_strategy",
				Weight:      0.10,
				Description: "Are hashtags used sparingly and strategically? Over-hashtagging on Twitter/X reduces credibility and reach.",
			},
		},
	},
	"YouTube": {
		Platform:    "YouTube",
		Description: "Long and short-form video platform driven by watch time and CTR",
		FormatHint:  "Video (Shorts or long-form), strong thumbnail + title",
		Criteria: []Criterion{
			{
				Name:        "thumbnail_clickability",
				Weight:      0.25,
				Description: "Would the suggested thumbnail stop a scroll? YouTube's algorithm uses click-through rate as a primary ranking signal.",
			},
			{
				Name:        "title_curiosity_gap",
				Weight:      0.25,
				Description: "Does the title create curiosity without being pure clickbait? The algorithm balances CTR against viewer satisfaction.",
			},
			{
				Name:        "watch_time_potential",
				Weight:      0.20,
				Description: "Will viewers watch most of the video? Average view duration is YouTube's strongest ranking signal.",
			},
			{
				Name:        "seo_optimization",
				Weight:      0.15,
				Description: "Are keywords, tags, and description optimised for search? YouTube is the world's second-largest search engine.",
			},
			{
				Name:        "community_engagement",
				Weight:      0.15,
				Description: "Does the content encourage comments and likes? Engagement rate signals quality to YouTube's recommendation system.",
			},
		},
	},
	"Instagram": {
		Platform:    "Instagram",
		Description: "Visual-first platform driven by saves, shares, and Explore page",
		FormatHint:  "Reel, carousel, or single image with strong caption",
		Criteria: []Criterion{
			{
				Name:        "visual_appeal",
				Weight:      0.30,
				Description: "Is the visual content eye-catching and high quality? Instagram's algorithm prioritises posts that generate saves and long views.",
			},
			{
				Name:        "caption_hook",
				Weight:      0.20,
				Description: "Does the caption hook in the first line (before 'more')? Caption engagement drives the algorithm's interest scoring.",
			},
			{
				Name:        "carousel_potential",
				Weight:      0.20,
				Description: "Could this be a swipeable carousel? Carousels get re-served by the algorithm when users didn't swipe through all slides.",
			},
			{
				Name:        "hashtag_reach",
				Weight:      0.15,
				Description: "Is there a mix of niche and popular hashtags (20-30 range)? Instagram uses hashtags to classify content for Explore.",
			},
			{
				Name:        "story_crosspost",
				Weight:      0.15,
				Description: "Is this structured to also work as a Story or Reel? Cross-format posting increases total distribution surface.",
			},
		},
	},
}
