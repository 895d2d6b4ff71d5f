// Package catalog talks to the external card-catalog API used to pre-fill
// submission metadata. The collaborator is optional: every failure degrades
// to manual entry and is never surfaced as a listing failure.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sahilm/fuzzy"
)

type Set struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Series string `json:"series"`
}

type Card struct {
	Name      string `json:"name"`
	Set       string `json:"set"`
	Expansion string `json:"expansion"`
	Number    string `json:"number"`
	Rarity    string `json:"rarity"`
	ImageURL  string `json:"imageUrl"`
}

const (
	cacheSize = 256
	cacheTTL  = 10 * time.Minute
)

type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	cache   *lru.Cache

	mu    sync.Mutex
	seen  map[string]struct{}
	names []string // card names observed in responses, for Suggest
}

func NewClient(baseURL, apiKey string) *Client {
	cache, _ := lru.New(cacheSize)
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
		cache:   cache,
		seen:    map[string]struct{}{},
	}
}

type cached struct {
	at  time.Time
	val any
}

func (c *Client) fromCache(key string) (any, bool) {
	v, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	e := v.(cached)
	if time.Since(e.at) > cacheTTL {
		c.cache.Remove(key)
		return nil, false
	}
	return e.val, true
}

func (c *Client) put(key string, val any) {
	c.cache.Add(key, cached{at: time.Now(), val: val})
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog: %s returned %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Sets fetches every catalog set, cached for a short window.
func (c *Client) Sets(ctx context.Context) ([]Set, error) {
	if v, ok := c.fromCache("sets"); ok {
		return v.([]Set), nil
	}
	var body struct {
		Data []Set `json:"data"`
	}
	if err := c.get(ctx, "/sets", &body); err != nil {
		return nil, err
	}
	c.put("sets", body.Data)
	return body.Data, nil
}

// SetsBySeries groups sets by their series. The map is built fresh per call
// and owned by the caller; nothing here is shared mutable state.
func (c *Client) SetsBySeries(ctx context.Context) (map[string][]Set, error) {
	sets, err := c.Sets(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]Set)
	for _, s := range sets {
		grouped[s.Series] = append(grouped[s.Series], s)
	}
	return grouped, nil
}

// SearchCards looks up cards by name for metadata pre-fill.
func (c *Client) SearchCards(ctx context.Context, name string) ([]Card, error) {
	key := "cards:" + name
	if v, ok := c.fromCache(key); ok {
		return v.([]Card), nil
	}
	var body struct {
		Data []struct {
			Name   string `json:"name"`
			Number string `json:"number"`
			Rarity string `json:"rarity"`
			Set    struct {
				Name   string `json:"name"`
				Series string `json:"series"`
			} `json:"set"`
			Images struct {
				Small string `json:"small"`
			} `json:"images"`
		} `json:"data"`
	}
	q := url.QueryEscape(fmt.Sprintf("name:%q", name))
	if err := c.get(ctx, "/cards?q="+q, &body); err != nil {
		return nil, err
	}
	out := make([]Card, 0, len(body.Data))
	for _, d := range body.Data {
		out = append(out, Card{
			Name:      d.Name,
			Set:       d.Set.Name,
			Expansion: d.Set.Series,
			Number:    d.Number,
			Rarity:    d.Rarity,
			ImageURL:  d.Images.Small,
		})
	}
	c.put(key, out)
	c.remember(out)
	return out, nil
}

func (c *Client) remember(cards []Card) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, card := range cards {
		if _, ok := c.seen[card.Name]; ok {
			continue
		}
		c.seen[card.Name] = struct{}{}
		c.names = append(c.names, card.Name)
	}
}

// Suggest fuzzy-matches q against card names seen in earlier responses. It
// works entirely from local state, so it keeps answering when the catalog is
// down.
func (c *Client) Suggest(q string, limit int) []string {
	c.mu.Lock()
	names := make([]string, len(c.names))
	copy(names, c.names)
	c.mu.Unlock()

	matches := fuzzy.Find(q, names)
	if limit <= 0 || limit > len(matches) {
		limit = len(matches)
	}
	out := make([]string, 0, limit)
	for _, m := range matches[:limit] {
		out = append(out, m.Str)
	}
	return out
}
