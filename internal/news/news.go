// Package news fetches recent headlines for a stock from the Google News RSS
// search feed and extracts readable article text.
package news

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"
)

const userAgent = "Mozilla/5.0 (compatible; stockinsight/1.0)"

// ErrNoArticles is returned when the feed has no items for the query.
var ErrNoArticles = errors.New("no articles in feed")

// Article is one news item with the text used for sentiment.
type Article struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Content string `json:"content"`
}

// Client reads the RSS search feed and follows each item's link.
type Client struct {
	httpClient  *http.Client
	baseURL     string // overridable for tests
	maxArticles int
	maxChars    int
	parser      *gofeed.Parser
	policy      *bluemonday.Policy
	log         *zap.SugaredLogger
}

// NewClient creates a news client. baseURL is the RSS search endpoint.
func NewClient(httpClient *http.Client, baseURL string, maxArticles, maxChars int, log *zap.SugaredLogger) *Client {
	parser := gofeed.NewParser()
	parser.Client = httpClient
	parser.UserAgent = userAgent
	return &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		maxArticles: maxArticles,
		maxChars:    maxChars,
		parser:      parser,
		policy:      bluemonday.StrictPolicy(),
		log:         log,
	}
}

// FeedURL returns the search URL for a symbol.
func (c *Client) FeedURL(symbol string) string {
	q := url.Values{}
	q.Set("q", symbol+" stock")
	q.Set("hl", "en-IN")
	q.Set("gl", "IN")
	q.Set("ceid", "IN:en")
	return c.baseURL + "?" + q.Encode()
}

// Fetch returns up to maxArticles articles for symbol, newest first as the
// feed orders them. Article text falls back to the item description and then
// to the title when the page cannot be read.
func (c *Client) Fetch(ctx context.Context, symbol string) ([]Article, error) {
	feed, err := c.parser.ParseURLWithContext(c.FeedURL(symbol), ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing news feed for %s: %w", symbol, err)
	}
	if len(feed.Items) == 0 {
		return nil, ErrNoArticles
	}

	items := feed.Items
	if len(items) > c.maxArticles {
		items = items[:c.maxArticles]
	}

	articles := make([]Article, 0, len(items))
	for _, item := range items {
		content, err := c.articleText(ctx, item.Link)
		if err != nil {
			c.log.Debugw("article extraction failed, using feed text",
				"link", item.Link,
				"error", err,
			)
		}
		if content == "" {
			content = c.plainText(item.Description)
		}
		if content == "" {
			content = item.Title
		}
		articles = append(articles, Article{
			Title:   item.Title,
			Link:    item.Link,
			Content: truncate(content, c.maxChars),
		})
	}
	return articles, nil
}

// articleText downloads a page and joins its paragraph text.
func (c *Client) articleText(ctx context.Context, link string) (string, error) {
	if link == "" {
		return "", nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	var parts []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " "), nil
}

func (c *Client) plainText(fragment string) string {
	text := html.UnescapeString(c.policy.Sanitize(fragment))
	return strings.Join(strings.Fields(text), " ")
}

func truncate(s string, maxChars int) string {
	if maxChars <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
