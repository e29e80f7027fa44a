// Package jobsearch talks to the external job-search API and normalizes its
// postings for the matcher: HTML descriptions become plain text, and repeated
// searches are served from a TTL cache.
package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultTimeout is the per-request timeout against the upstream API.
const DefaultTimeout = 15 * time.Second

// maxResultsPerPage is the page size requested from the upstream API.
const maxResultsPerPage = 20

// Client queries the job-search API. Construct with NewClient.
type Client struct {
	httpClient *http.Client
	baseURL    string
	appID      string
	appKey     string
	country    string
	cache      *Cache
}

// Config holds client configuration.
type Config struct {
	BaseURL  string
	AppID    string
	AppKey   string
	Country  string        // upstream country segment, e.g. "us"
	Timeout  time.Duration // zero means DefaultTimeout
	CacheTTL time.Duration // zero means DefaultCacheTTL
}

// NewClient creates a job-search client with its own result cache.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	country := cfg.Country
	if country == "" {
		country = "us"
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		appID:      cfg.AppID,
		appKey:     cfg.AppKey,
		country:    country,
		cache:      NewCache(cfg.CacheTTL, nil),
	}
}

// apiResponse mirrors the upstream search response shape.
type apiResponse struct {
	Results []apiJob `json:"results"`
}

type apiJob struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	RedirectURL string   `json:"redirect_url"`
	Created     string   `json:"created"`
	ContractTyp string   `json:"contract_type"`
	SalaryMin   *float64 `json:"salary_min"`
	Company     struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Category struct {
		Label string `json:"label"`
	} `json:"category"`
}

// Search runs a job search, fanning out one request per result page and
// returning the postings in page order. Results are cached per canonical
// query; a cache hit never touches the upstream.
func (c *Client) Search(ctx context.Context, params types.JobSearchParams) ([]types.Job, error) {
	pages := params.Pages
	if pages <= 0 {
		pages = 1
	}

	key := CacheKey(types.JobSearchParams{Query: params.Query, Location: params.Location, Pages: pages})
	if jobs, ok := c.cache.Get(key); ok {
		return jobs, nil
	}

	var mu sync.Mutex
	pageResults := make(map[int][]types.Job, pages)

	g, gctx := errgroup.WithContext(ctx)
	for page := 1; page <= pages; page++ {
		g.Go(func() error {
			jobs, err := c.fetchPage(gctx, params, page)
			if err != nil {
				return err
			}
			mu.Lock()
			pageResults[page] = jobs
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pageNums := make([]int, 0, len(pageResults))
	for p := range pageResults {
		pageNums = append(pageNums, p)
	}
	sort.Ints(pageNums)

	var jobs []types.Job
	for _, p := range pageNums {
		jobs = append(jobs, pageResults[p]...)
	}

	c.cache.Put(key, jobs)
	return jobs, nil
}

// EvictExpired drops stale cache entries; intended for a periodic sweep.
func (c *Client) EvictExpired() int {
	return c.cache.Evict()
}

func (c *Client) fetchPage(ctx context.Context, params types.JobSearchParams, page int) ([]types.Job, error) {
	endpoint := fmt.Sprintf("%s/jobs/%s/search/%d", c.baseURL, c.country, page)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &UpstreamError{Message: "failed to create request", Cause: err}
	}

	q := url.Values{}
	q.Set("app_id", c.appID)
	q.Set("app_key", c.appKey)
	q.Set("what", params.Query)
	if params.Location != "" {
		q.Set("where", params.Location)
	}
	q.Set("results_per_page", fmt.Sprintf("%d", maxResultsPerPage))
	q.Set("content-type", "application/json")
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("search request for page %d rejected", page),
		}
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: "malformed response body", Cause: err}
	}

	jobs := make([]types.Job, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		jobs = append(jobs, types.Job{
			ID:           r.ID,
			Title:        r.Title,
			Company:      r.Company.DisplayName,
			Location:     r.Location.DisplayName,
			Description:  StripHTML(r.Description),
			Salary:       r.SalaryMin,
			PostedDate:   r.Created,
			ContractType: r.ContractTyp,
			URL:          r.RedirectURL,
			Category:     r.Category.Label,
		})
	}
	return jobs, nil
}
