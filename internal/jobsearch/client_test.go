package jobsearch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func searchResponse(id, title, description string) string {
	return fmt.Sprintf(`{
		"results": [
			{
				"id": %q,
				"title": %q,
				"description": %q,
				"redirect_url": "https://jobs.example.com/%s",
				"created": "2026-01-10T00:00:00Z",
				"contract_type": "permanent",
				"salary_min": 120000,
				"company": {"display_name": "Acme Corp"},
				"location": {"display_name": "Austin, Texas"},
				"category": {"label": "IT Jobs"}
			}
		]
	}`, id, title, description, id)
}

func newTestClient(serverURL string) *Client {
	return NewClient(Config{
		BaseURL: serverURL,
		AppID:   "test-id",
		AppKey:  "test-key",
	})
}

func TestSearch_SinglePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/us/search/1", r.URL.Path)
		assert.Equal(t, "test-id", r.URL.Query().Get("app_id"))
		assert.Equal(t, "golang", r.URL.Query().Get("what"))
		fmt.Fprint(w, searchResponse("1", "Backend Engineer", "Build services in Go"))
	}))
	defer server.Close()

	jobs, err := newTestClient(server.URL).Search(context.Background(), types.JobSearchParams{Query: "golang"})

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	job := jobs[0]
	assert.Equal(t, "1", job.ID)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, "Acme Corp", job.Company)
	assert.Equal(t, "Austin, Texas", job.Location)
	assert.Equal(t, "Build services in Go", job.Description)
	require.NotNil(t, job.Salary)
	assert.Equal(t, 120000.0, *job.Salary)
	assert.Equal(t, "permanent", job.ContractType)
	assert.Equal(t, "https://jobs.example.com/1", job.URL)
	assert.Equal(t, "IT Jobs", job.Category)
}

func TestSearch_MultiplePagesInOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := strings.TrimPrefix(r.URL.Path, "/jobs/us/search/")
		fmt.Fprint(w, searchResponse("job-"+page, "Engineer "+page, "desc"))
	}))
	defer server.Close()

	jobs, err := newTestClient(server.URL).Search(context.Background(), types.JobSearchParams{Query: "golang", Pages: 3})

	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "job-1", jobs[0].ID)
	assert.Equal(t, "job-2", jobs[1].ID)
	assert.Equal(t, "job-3", jobs[2].ID)
}

func TestSearch_StripsHTMLDescriptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": [{"id": "1", "title": "Engineer",
			"description": "<p>Build <strong>Go</strong> services</p>",
			"company": {"display_name": "Acme"}, "location": {"display_name": "Remote"},
			"category": {"label": "IT"}}]}`)
	}))
	defer server.Close()

	jobs, err := newTestClient(server.URL).Search(context.Background(), types.JobSearchParams{Query: "golang"})

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Build Go services", jobs[0].Description)
}

func TestSearch_AuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Search(context.Background(), types.JobSearchParams{Query: "golang"})

	require.Error(t, err)
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.True(t, ue.AuthFailure())
}

func TestSearch_ServerErrorIsNotAuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Search(context.Background(), types.JobSearchParams{Query: "golang"})

	require.Error(t, err)
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.False(t, ue.AuthFailure())
}

func TestSearch_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Search(context.Background(), types.JobSearchParams{Query: "golang"})

	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
}

func TestSearch_SecondIdenticalSearchServedFromCache(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, searchResponse("1", "Engineer", "desc"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	params := types.JobSearchParams{Query: "golang", Location: "Austin"}

	first, err := client.Search(context.Background(), params)
	require.NoError(t, err)
	second, err := client.Search(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestStripHTML_PlainTextUnchanged(t *testing.T) {
	assert.Equal(t, "plain text", StripHTML("  plain text "))
}

func TestStripHTML_RemovesMarkup(t *testing.T) {
	got := StripHTML("<ul><li>Go</li><li>SQL</li></ul>")

	assert.NotContains(t, got, "<")
	assert.Contains(t, got, "Go")
	assert.Contains(t, got, "SQL")
}
