package main

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeLayout(t *testing.T) {
	ctx := context.Background()
	server := startTestServer(t, newFakeUpstream(t).URL)
	client := newLoggedInClient(t, server, "user")

	for _, path := range []string{"/home", "/home/product", "/home/about", "/home/profile/user"} {
		t.Run(path, func(t *testing.T) {
			doc, finalPath, err := client.GetDoc(ctx, path)
			require.NoError(t, err)
			require.Equal(t, path, finalPath)

			var hrefs []string
			doc.Find("nav.home-layout a").Each(func(_ int, a *goquery.Selection) {
				href, _ := a.Attr("href")
				hrefs = append(hrefs, href)
			})
			assert.Equal(t, []string{"/home", "/home/product", "/home/profile/user", "/home/about", "/logout"}, hrefs)
			assert.Equal(t, "USER", doc.Find("nav a[href='/home/profile/user']").Text())
		})
	}
}

func TestProfileShowsLastPathSegment(t *testing.T) {
	ctx := context.Background()
	server := startTestServer(t, newFakeUpstream(t).URL)
	client := newLoggedInClient(t, server, "user")

	doc, _, err := client.GetDoc(ctx, "/home/profile/admin")
	require.NoError(t, err)
	assert.Equal(t, "Profile Page: admin", strings.TrimSpace(doc.Find(".profile").Text()))
	// The navigation still reflects the marker in the cookie.
	assert.Equal(t, 1, doc.Find("nav a[href='/home/profile/user']").Length())
}

func TestProjects(t *testing.T) {
	ctx := context.Background()
	server := startTestServer(t, newFakeUpstream(t).URL)
	client := newLoggedInClient(t, server, "user")

	tests := []struct {
		path string
		want string
	}{
		{path: "/projects/software", want: "software"},
		{path: "/projects/software/front-end/react/stock-exchange", want: "software, front-end, react, stock-exchange"},
		{path: "/projects/a//b/", want: "a, b"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			doc, _, err := client.GetDoc(ctx, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.Find(".project-details .details").Text())
		})
	}

	t.Run("no segments", func(t *testing.T) {
		resp, err := client.GetNoRedirect(ctx, "/projects/", nil)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUseRouting(t *testing.T) {
	ctx := context.Background()
	server := startTestServer(t, newFakeUpstream(t).URL)
	client := newLoggedInClient(t, server, "admin")

	doc, _, err := client.GetDoc(ctx, "/userouting")
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("form[action='/about'] button").Length())
	assert.Equal(t, 1, doc.Find("form[action='/about/me/personal'] button").Length())

	doc, _, err = client.GetDoc(ctx, "/about")
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Find(".sections li").Length())

	doc, _, err = client.GetDoc(ctx, "/about/me/personal")
	require.NoError(t, err)
	assert.Equal(t, []string{"me", "personal"}, doc.Find(".sections li").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	}))
}

func TestImagesAndFonts(t *testing.T) {
	ctx := context.Background()
	server := startTestServer(t, newFakeUpstream(t).URL)
	client := newLoggedInClient(t, server, "user")

	doc, _, err := client.GetDoc(ctx, "/imagesclass")
	require.NoError(t, err)
	images := doc.Find("img")
	require.Equal(t, 2, images.Length())
	src, _ := images.First().Attr("src")
	assert.Equal(t, "/static/images/development.svg", src)
	src, _ = images.Last().Attr("src")
	assert.Equal(t, remoteImageURL, src)
	width, _ := images.Last().Attr("width")
	assert.Equal(t, "900", width)

	doc, _, err = client.GetDoc(ctx, "/fontsclass")
	require.NoError(t, err)
	href, ok := doc.Find("head link[rel=stylesheet][href*='fonts.googleapis.com']").Attr("href")
	require.True(t, ok)
	assert.Equal(t, fontStylesheetURL, href)
	assert.Equal(t, "This text is having roboto font", doc.Find("p.roboto").Text())
}
