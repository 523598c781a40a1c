package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataServer(t *testing.T) {
	ctx := context.Background()
	server := startTestServer(t, newFakeUpstream(t).URL)
	client := newLoggedInClient(t, server, "user")

	doc, _, err := client.GetDoc(ctx, "/data/server")
	require.NoError(t, err)

	cards := doc.Find(".image-card")
	require.Equal(t, fakePostCount, cards.Length())
	first := cards.First()
	assert.Equal(t, "post-1", first.AttrOr("id", ""))
	assert.Equal(t, "Title: post title 1", first.Find("p").First().Text())
	assert.Equal(t, 1, first.Find("hr").Length())
	assert.Equal(t, "post body 1", first.Find("p").Last().Text())
}

func TestDataPagesReportUpstreamFailure(t *testing.T) {
	ctx := context.Background()
	server := startTestServer(t, brokenUpstream(t).URL)
	client := newLoggedInClient(t, server, "user")

	for _, path := range []string{"/data/server", "/data/client"} {
		t.Run(path, func(t *testing.T) {
			resp, err := client.GetNoRedirect(ctx, path, nil)
			require.NoError(t, err)
			_ = resp.Body.Close()
			assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		})
	}
}

func photoIDs(doc *goquery.Document) []string {
	return doc.Find(".image-card").Map(func(_ int, s *goquery.Selection) string {
		return s.AttrOr("id", "")
	})
}

func TestDataClientLoadMore(t *testing.T) {
	ctx := context.Background()
	upstream := newFakeUpstream(t)
	server := startTestServer(t, upstream.URL)
	client := newLoggedInClient(t, server, "user")

	doc, _, err := client.GetDoc(ctx, "/data/client")
	require.NoError(t, err)
	ids := photoIDs(doc)
	require.Len(t, ids, 50)
	assert.Equal(t, "photo-1", ids[0])
	assert.Equal(t, "photo-50", ids[49])
	sentinel := doc.Find(".loading-text")
	require.Equal(t, 1, sentinel.Length())
	assert.Equal(t, "Loading more images...", strings.TrimSpace(sentinel.Text()))
	assert.Equal(t, "/data/client?visible=100&from=50", sentinel.AttrOr("hx-get", ""))
	assert.Equal(t, "revealed", sentinel.AttrOr("hx-trigger", ""))

	hx := http.Header{}
	hx.Set("HX-Request", "true")

	tests := []struct {
		name        string
		path        string
		wantFirst   string
		wantCount   int
		wantHxGet   string
		wantLoading bool
	}{
		{
			name:        "second window",
			path:        "/data/client?visible=100&from=50",
			wantFirst:   "photo-51",
			wantCount:   50,
			wantHxGet:   "/data/client?visible=150&from=100",
			wantLoading: true,
		},
		{
			name:      "last window is clamped to the total",
			path:      "/data/client?visible=150&from=100",
			wantFirst: "photo-101",
			wantCount: 20,
		},
		{
			name:        "from past the window repeats no photos",
			path:        "/data/client?visible=50&from=999",
			wantCount:   0,
			wantHxGet:   "/data/client?visible=100&from=50",
			wantLoading: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.GetNoRedirect(ctx, tt.path, hx)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, http.StatusOK, resp.StatusCode)

			fragment, err := goquery.NewDocumentFromReader(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, 0, fragment.Find("html head title").Length(), "fragment should not include the layout")
			ids := photoIDs(fragment)
			require.Len(t, ids, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantFirst, ids[0])
			}
			loading := fragment.Find(".loading-text")
			assert.Equal(t, tt.wantLoading, loading.Length() == 1)
			assert.Equal(t, tt.wantHxGet, loading.AttrOr("hx-get", ""))
		})
	}

	t.Run("full page with a large window shows everything", func(t *testing.T) {
		doc, _, err := client.GetDoc(ctx, fmt.Sprintf("/data/client?visible=%d", fakePhotoCount*2))
		require.NoError(t, err)
		assert.Len(t, photoIDs(doc), fakePhotoCount)
		assert.Equal(t, 0, doc.Find(".loading-text").Length())
	})

	assert.Equal(t, int32(1), upstream.photoRequests.Load(), "photos should be fetched from upstream only once")
}

func TestDataClientConcurrentFirstVisits(t *testing.T) {
	ctx := context.Background()
	upstream := newFakeUpstream(t)
	server := startTestServer(t, upstream.URL)
	client := newLoggedInClient(t, server, "admin")

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := client.GetDoc(ctx, "/data/client")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), upstream.photoRequests.Load())
}

func TestDataClientScriptCarriesNonce(t *testing.T) {
	ctx := context.Background()
	server := startTestServer(t, newFakeUpstream(t).URL)
	client := newLoggedInClient(t, server, "user")

	resp, err := client.GetNoRedirect(ctx, "/data/client", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)

	nonce, ok := doc.Find("script[src*='htmx']").Attr("nonce")
	require.True(t, ok)
	assert.Contains(t, resp.Header.Get("Content-Security-Policy"), fmt.Sprintf("'nonce-%s'", nonce))
}
