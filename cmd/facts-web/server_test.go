package main

import (
	"context"
	"facts/pkg/config"
	"facts/pkg/log"
	"facts/pkg/memory"
	"facts/pkg/models"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClient struct {
	t      *testing.T
	base   string
	client *http.Client
	store  *memory.Store
	server *server
}

func newTestClient(t *testing.T, opts ...func(*server)) *testClient {
	t.Helper()
	log.InitializeConsoleLogger(io.Discard)

	store := memory.NewStore(0,
		models.Fact{ID: "fact-tech", Text: "React is being developed by Meta", Source: "https://opensource.fb.com/", Category: "technology", VotesInteresting: 24, VotesMindblowing: 9, VotesFalse: 4, CreatedIn: 2021},
		models.Fact{ID: "fact-dads", Text: "Millennial dads spend more time with their kids", Source: "https://www.mother.ly/", Category: "society", VotesInteresting: 11, VotesMindblowing: 2, CreatedIn: 2019},
		models.Fact{ID: "fact-lisbon", Text: "Lisbon is the capital of Portugal", Source: "https://en.wikipedia.org/wiki/Lisbon", Category: "society", VotesInteresting: 8, VotesMindblowing: 3, VotesFalse: 1, CreatedIn: 2015},
	)

	s := newServer(context.Background(), &config.Config{}, store)
	for _, opt := range opts {
		opt(s)
	}
	ts := httptest.NewServer(s.routes())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testClient{
		t:      t,
		base:   ts.URL,
		client: &http.Client{Jar: jar},
		store:  store,
		server: s,
	}
}

// viewer returns a second browser on the same server with its own cookies.
func (tc *testClient) viewer() *testClient {
	tc.t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(tc.t, err)

	other := *tc
	other.client = &http.Client{Jar: jar}
	return &other
}

func (tc *testClient) document(resp *http.Response) *goquery.Document {
	tc.t.Helper()
	defer resp.Body.Close()

	require.Equal(tc.t, http.StatusOK, resp.StatusCode)
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(tc.t, err)
	return doc
}

func (tc *testClient) get(path string) *goquery.Document {
	tc.t.Helper()

	resp, err := tc.client.Get(tc.base + path)
	require.NoError(tc.t, err)
	return tc.document(resp)
}

func (tc *testClient) post(path string, form url.Values) *http.Response {
	tc.t.Helper()

	resp, err := tc.client.PostForm(tc.base+path, form)
	require.NoError(tc.t, err)
	return resp
}

func factIDs(doc *goquery.Document) []string {
	ids := make([]string, 0)
	doc.Find("li.fact").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("data-id")
		ids = append(ids, id)
	})
	return ids
}

func voteButton(doc *goquery.Document, id, kind string) string {
	return strings.TrimSpace(doc.Find(`li.fact[data-id="` + id + `"] button.vote-` + kind).Text())
}

func TestFeedPageRendersSortedFacts(t *testing.T) {
	tc := newTestClient(t)

	doc := tc.get("/")

	assert.Equal(t, "Today I Learned", doc.Find("h1").Text())
	assert.Equal(t, []string{"fact-tech", "fact-dads", "fact-lisbon"}, factIDs(doc))
	assert.Equal(t, "React is being developed by Meta", doc.Find("li.fact .text").First().Text())

	style, _ := doc.Find("li.fact .tag").First().Attr("style")
	assert.Contains(t, style, "#3b82f6")

	assert.Equal(t, 9, doc.Find("aside li.category").Length())
	assert.Contains(t, doc.Find("p.count").Text(), "There are 3 facts")
	assert.Zero(t, doc.Find("form.fact-form").Length())
	assert.Equal(t, 1, tc.server.sessions.len())
}

func TestFeedPageAppliesCategoryFilter(t *testing.T) {
	tc := newTestClient(t)

	doc := tc.get("/?category=society")
	assert.Equal(t, []string{"fact-dads", "fact-lisbon"}, factIDs(doc))

	// the filter belongs to the session and persists across requests
	doc = tc.get("/")
	assert.Equal(t, []string{"fact-dads", "fact-lisbon"}, factIDs(doc))

	doc = tc.get("/?category=history")
	assert.Empty(t, factIDs(doc))
	assert.Contains(t, doc.Find("p.message").Text(), "There are no facts in this category yet!")

	doc = tc.get("/?category=all")
	assert.Len(t, factIDs(doc), 3)
}

func TestFeedPageRejectsUnknownCategory(t *testing.T) {
	tc := newTestClient(t)

	resp, err := tc.client.Get(tc.base + "/?category=sports")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVoteUpdatesCounters(t *testing.T) {
	tc := newTestClient(t)
	tc.get("/")

	doc := tc.document(tc.post("/facts/fact-lisbon/vote/interesting", nil))

	assert.Equal(t, "👍 9", voteButton(doc, "fact-lisbon", "interesting"))
	assert.Equal(t, "🤯 2", voteButton(doc, "fact-lisbon", "mindblowing"))
	assert.Equal(t, "⛔️ 0", voteButton(doc, "fact-lisbon", "false"))

	stored, err := tc.store.FetchFacts(context.Background(), models.Filter("society"))
	require.NoError(t, err)
	assert.Equal(t, 9, stored[1].VotesInteresting)
}

func TestVoteRejectsBadRequests(t *testing.T) {
	tc := newTestClient(t)
	tc.get("/")

	resp := tc.post("/facts/fact-lisbon/vote/boring", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = tc.post("/facts/fact-missing/vote/false", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubmitPrependsNewFact(t *testing.T) {
	tc := newTestClient(t)
	tc.get("/")

	doc := tc.document(tc.post("/facts", url.Values{
		"text":     {"Valid fact"},
		"source":   {"https://x.com"},
		"category": {"science"},
	}))

	assert.Equal(t, "Valid fact", doc.Find("li.fact .text").First().Text())
	assert.Equal(t, "👍 0", strings.TrimSpace(doc.Find("li.fact button.vote-interesting").First().Text()))
	assert.Len(t, factIDs(doc), 4)
	assert.Zero(t, doc.Find("form.fact-form").Length())
	assert.Equal(t, 4, tc.store.Len())
}

func TestSubmitInvalidKeepsDraft(t *testing.T) {
	tc := newTestClient(t)
	tc.get("/")

	doc := tc.document(tc.post("/facts", url.Values{
		"text":     {"Valid fact"},
		"source":   {"not-a-url"},
		"category": {"science"},
	}))

	assert.Len(t, factIDs(doc), 3)
	assert.Equal(t, 3, tc.store.Len())

	form := doc.Find("form.fact-form")
	require.Equal(t, 1, form.Length())
	text, _ := form.Find(`input[name="text"]`).Attr("value")
	source, _ := form.Find(`input[name="source"]`).Attr("value")
	selected, _ := form.Find("option[selected]").Attr("value")
	assert.Equal(t, "Valid fact", text)
	assert.Equal(t, "not-a-url", source)
	assert.Equal(t, "science", selected)
	assert.Equal(t, "190", form.Find(".remaining").Text())
}

func TestShareFormToggle(t *testing.T) {
	tc := newTestClient(t)

	doc := tc.get("/?form")
	assert.Equal(t, 1, doc.Find("form.fact-form").Length())
	assert.Equal(t, "Close", doc.Find("a.btn-open").Text())
	assert.Equal(t, 9, doc.Find(`select[name="category"] option`).Length())
}

func TestAboutAndHealth(t *testing.T) {
	tc := newTestClient(t)

	doc := tc.get("/about")
	assert.Equal(t, 8, doc.Find("ul.categories li").Length())

	resp, err := tc.client.Get(tc.base + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReloadShowsOtherViewersChanges(t *testing.T) {
	tc := newTestClient(t)
	assert.Len(t, factIDs(tc.get("/")), 3)

	other := tc.viewer()
	other.document(other.post("/facts", url.Values{
		"text":     {"Valid fact"},
		"source":   {"https://x.com"},
		"category": {"society"},
	}))

	doc := tc.get("/")
	require.Len(t, factIDs(doc), 4)
	assert.Equal(t, "Valid fact", doc.Find("li.fact .text").Last().Text())

	doc = tc.get("/?category=all")
	assert.Len(t, factIDs(doc), 4)

	other.document(other.post("/facts/fact-lisbon/vote/false", nil))

	doc = tc.get("/?category=society")
	assert.Equal(t, "👍 7", voteButton(doc, "fact-lisbon", "interesting"))
	assert.Equal(t, "⛔️ 2", voteButton(doc, "fact-lisbon", "false"))
	assert.Len(t, factIDs(doc), 3)
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestIdleSessionsExpire(t *testing.T) {
	clock := &testClock{now: time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)}
	tc := newTestClient(t, func(s *server) { s.sessions.now = clock.Now })

	// requests without a cookie each start a session
	anonymous := &http.Client{}
	for i := 0; i < 50; i++ {
		resp, err := anonymous.Get(tc.base + "/")
		require.NoError(t, err)
		resp.Body.Close()
	}
	anonymous.CloseIdleConnections()
	assert.Equal(t, 50, tc.server.sessions.len())

	tc.get("/")
	base, err := url.Parse(tc.base)
	require.NoError(t, err)
	cookies := tc.client.Jar.Cookies(base)
	require.Len(t, cookies, 1)
	assert.Equal(t, 51, tc.server.sessions.len())

	clock.Advance(20 * time.Minute)
	tc.get("/")
	assert.Equal(t, 51, tc.server.sessions.len())

	clock.Advance(15 * time.Minute)
	tc.get("/")
	assert.Equal(t, 1, tc.server.sessions.len())
	assert.Equal(t, cookies, tc.client.Jar.Cookies(base))

	clock.Advance(sessionIdleTimeout + time.Minute)
	doc := tc.get("/")
	assert.Len(t, factIDs(doc), 3)
	assert.Equal(t, 1, tc.server.sessions.len())
	assert.NotEqual(t, cookies, tc.client.Jar.Cookies(base))
}
