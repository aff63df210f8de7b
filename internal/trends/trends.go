package trends

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	googleTrendsURL = "https://trends.google.com/trending/rss"
	defaultGeo      = "US"
	defaultCount    = 10

	// minLiveTrends is the floor below which live results get padded
	// with the curated fallback list.
	minLiveTrends = 5
)

// gamingKeywords is the allow-list used to pull gaming topics out of the
// general trending feed when the category tag alone finds too few.
var gamingKeywords = []string{
	"game", "gaming", "gamer", "esport", "playstation", "xbox",
	"nintendo", "steam", "twitch", "fortnite", "valorant", "league",
	"minecraft", "roblox", "cod", "warzone", "apex", "zelda",
	"mario", "pokemon", "gta", "elden", "final fantasy", "ps5",
	"ps6", "switch", "gpu", "rtx", "dlc",
}

// Fetcher pulls trending gaming topics from Google Trends, degrading to
// the embedded sample list when the live feed is unreachable or thin.
type Fetcher struct {
	httpClient *http.Client
	baseURL    string
	geo        string
}

// Config holds fetcher configuration.
type Config struct {
	// BaseURL overrides the Google Trends endpoint (used in tests).
	BaseURL string
	// Geo is the two-letter region code for the trending feed.
	Geo string
}

// New creates a trend fetcher.
func New(cfg Config) *Fetcher {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = googleTrendsURL
	}

	geo := cfg.Geo
	if geo == "" {
		geo = defaultGeo
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: baseURL,
		geo:     geo,
	}
}

// rssFeed is the subset of the trending RSS document we care about.
type rssFeed struct {
	Items []rssItem `xml:"channel>item"`
}

type rssItem struct {
	Title    string `xml:"title"`
	Category string `xml:"category"`
}

// Fetch returns up to count trending gaming topics. It never returns an
// error: any live-feed failure falls back to the embedded sample list.
// The result is non-empty as long as the sample list is.
func (f *Fetcher) Fetch(ctx context.Context, count int) []string {
	if count <= 0 {
		count = defaultCount
	}

	live, err := f.fetchLive(ctx)
	if err != nil {
		slog.Warn("live trend fetch failed, using sample trends", "error", err)
		return truncate(SampleTrends(), count)
	}

	gaming := filterGaming(live)
	if len(gaming) >= minLiveTrends {
		slog.Info("fetched live gaming trends", "count", len(gaming))
		return truncate(gaming, count)
	}

	// Thin live results: pad with the curated list, keeping live topics
	// first and dropping exact duplicates.
	slog.Info("few live gaming trends, mixing with sample data", "live", len(gaming))
	merged := dedupe(append(gaming, SampleTrends()...))
	return truncate(merged, count)
}

func (f *Fetcher) fetchLive(ctx context.Context) ([]rssItem, error) {
	reqURL := fmt.Sprintf("%s?geo=%s", f.baseURL, url.QueryEscape(f.geo))
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trends feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var feed rssFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("parse trends feed: %w", err)
	}

	return feed.Items, nil
}

// filterGaming keeps items tagged with the Games category, then widens to
// keyword matches if the category alone found too few.
func filterGaming(items []rssItem) []string {
	var topics []string
	seen := make(map[string]bool)

	for _, item := range items {
		if strings.EqualFold(item.Category, "Games") && !seen[item.Title] {
			topics = append(topics, item.Title)
			seen[item.Title] = true
		}
	}

	if len(topics) >= minLiveTrends {
		return topics
	}

	for _, item := range items {
		if seen[item.Title] {
			continue
		}
		if matchesKeyword(item.Title) {
			topics = append(topics, item.Title)
			seen[item.Title] = true
		}
	}

	return topics
}

func matchesKeyword(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range gamingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func dedupe(topics []string) []string {
	seen := make(map[string]bool, len(topics))
	result := make([]string, 0, len(topics))
	for _, t := range topics {
		if seen[t] {
			continue
		}
		seen[t] = true
		result = append(result, t)
	}
	return result
}

func truncate(topics []string, count int) []string {
	if len(topics) > count {
		return topics[:count]
	}
	return topics
}
