package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/fwojciec/mako"
	makohttp "github.com/fwojciec/mako/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func urlsetXML(urls ...string) string {
	body := `<?xml version="1.0" encoding="UTF-8"?><urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`
	for _, u := range urls {
		body += "<url><loc>" + u + "</loc></url>"
	}
	return body + "</urlset>"
}

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("robots.txt sitemap directive", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "User-agent: *\nAllow: /\nSitemap: %s/custom-sitemap.xml\n", srv.URL)
		})
		mux.HandleFunc("/custom-sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlsetXML(srv.URL+"/", srv.URL+"/about"))
		})

		urls, err := makohttp.NewSitemapService(nil).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/", srv.URL + "/about"}, urls)
	})

	t.Run("falls back to sitemap.xml", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodHead {
				return
			}
			fmt.Fprint(w, urlsetXML(srv.URL+"/products/widget"))
		})

		urls, err := makohttp.NewSitemapService(nil).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/products/widget"}, urls)
	})

	t.Run("resolves sitemap index recursively", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "Sitemap: %s/sitemap_index.xml\n", srv.URL)
		})
		mux.HandleFunc("/sitemap_index.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<?xml version="1.0"?><sitemapindex>
				<sitemap><loc>%s/pages.xml</loc></sitemap>
				<sitemap><loc>%s/posts.xml</loc></sitemap>
			</sitemapindex>`, srv.URL, srv.URL)
		})
		mux.HandleFunc("/pages.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlsetXML(srv.URL+"/about", srv.URL+"/contact"))
		})
		mux.HandleFunc("/posts.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlsetXML(srv.URL+"/blog/first", srv.URL+"/about"))
		})

		urls, err := makohttp.NewSitemapService(nil).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		// /about appears in both sub-sitemaps but is returned once.
		assert.Equal(t, []string{srv.URL + "/about", srv.URL + "/contact", srv.URL + "/blog/first"}, urls)
	})

	t.Run("path prefix bounds discovery", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "Sitemap: %s/sitemap.xml\n", srv.URL)
		})
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlsetXML(
				srv.URL+"/shop/widget",
				srv.URL+"/shopping-guide",
				srv.URL+"/blog/post",
			))
		})

		urls, err := makohttp.NewSitemapService(nil).DiscoverURLs(context.Background(), srv.URL+"/shop", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/shop/widget"}, urls)
	})

	t.Run("URL filter applied", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "Sitemap: %s/sitemap.xml\n", srv.URL)
		})
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlsetXML(srv.URL+"/keep/a", srv.URL+"/drop/b"))
		})

		filter := &mako.URLFilter{Include: []*regexp.Regexp{regexp.MustCompile(`/keep/`)}}
		urls, err := makohttp.NewSitemapService(nil).DiscoverURLs(context.Background(), srv.URL, filter)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/keep/a"}, urls)
	})

	t.Run("no sitemap yields empty slice", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		urls, err := makohttp.NewSitemapService(nil).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Empty(t, urls)
	})
}
