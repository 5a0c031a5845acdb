package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestDayURL(t *testing.T) {
	c := newTestClient(t)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     string
		expected string
	}{
		{
			name:     "today omits date segment",
			date:     "2026-08-30",
			expected: "https://test.example.com/book/courts/test-venue#book",
		},
		{
			name:     "future date gets date segment",
			date:     "2026-09-02",
			expected: "https://test.example.com/book/courts/test-venue/2026-09-02#book",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.dayURL(tt.date, now); got != tt.expected {
				t.Errorf("dayURL(%q) = %q, expected %q", tt.date, got, tt.expected)
			}
		})
	}
}

func TestInitSession(t *testing.T) {
	var gotPath, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		http.SetCookie(w, &http.Cookie{Name: "courtside_session", Value: "abc123"})
		fmt.Fprint(w, "<html><body>ok</body></html>")
	}))
	defer server.Close()

	c := newTestClientWithBase(t, server.URL)
	if err := c.InitSession(context.Background()); err != nil {
		t.Fatalf("InitSession failed: %v", err)
	}

	if gotPath != "/book/courts/test-venue" {
		t.Errorf("expected booking page path, got %q", gotPath)
	}
	if !strings.Contains(gotUA, "Mozilla") {
		t.Errorf("expected browser-like User-Agent, got %q", gotUA)
	}

	// The session cookie must persist on the jar for later requests.
	u, err := c.httpClient.Get(server.URL + "/book/courts/test-venue")
	if err != nil {
		t.Fatalf("follow-up request failed: %v", err)
	}
	u.Body.Close()
	cookies := c.httpClient.Jar.Cookies(u.Request.URL)
	found := false
	for _, ck := range cookies {
		if ck.Name == "courtside_session" {
			found = true
		}
	}
	if !found {
		t.Error("expected session cookie to be stored in the jar")
	}
}

func TestInitSessionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := newTestClientWithBase(t, server.URL)
	if err := c.InitSession(context.Background()); err == nil {
		t.Fatal("expected InitSession to fail on non-2xx status")
	}
}

func TestFetchDayRecordsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestClientWithBase(t, server.URL)
	now := time.Now()
	report := c.FetchDay(context.Background(), now.Format("2006-01-02"), now)

	if !report.Failed() {
		t.Fatal("expected report to carry the fetch error")
	}
	if report.Date != now.Format("2006-01-02") {
		t.Errorf("error report must be tagged with its date, got %q", report.Date)
	}
}

func TestCheckWeekCoversWindow(t *testing.T) {
	var requests []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.Path)
		// Second date fails; the loop must still cover the rest.
		if len(requests) == 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `<html><body><div class="availability"><table>
			<tr><th class="time">09:00</th>
			<td><label class="court"><span class="button available">A</span></label></td></tr>
		</table></div></body></html>`)
	}))
	defer server.Close()

	c := newTestClientWithBase(t, server.URL, WithPause(0))
	reports, err := c.CheckWeek(context.Background(), time.Now(), 4)
	if err != nil {
		t.Fatalf("CheckWeek failed: %v", err)
	}

	if len(reports) != 4 {
		t.Fatalf("expected 4 reports, got %d", len(reports))
	}
	if len(requests) != 4 {
		t.Fatalf("expected 4 requests, got %d", len(requests))
	}
	if !reports[1].Failed() {
		t.Error("expected second report to carry its error")
	}
	for i, r := range []int{0, 2, 3} {
		if reports[r].Failed() {
			t.Errorf("report %d (case %d) should have succeeded: %s", r, i, reports[r].Err)
		}
	}
}

func TestCheckWeekHonorsCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body></body></html>")
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestClientWithBase(t, server.URL, WithPause(time.Second))
	reports, err := c.CheckWeek(ctx, time.Now(), 7)
	if err == nil {
		t.Fatal("expected context error")
	}
	if len(reports) == 7 {
		t.Error("expected the loop to stop early on cancellation")
	}
}

func newTestClientWithBase(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()
	c := newTestClient(t, append([]Option{WithPause(0)}, opts...)...)
	c.baseURL = baseURL
	return c
}
