package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractFromDocument(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "prefers main content",
			html: `<html><body>
				<nav>Home About</nav>
				<main>These are the terms of service.</main>
				<footer>Copyright</footer>
			</body></html>`,
			want: "These are the terms of service.",
		},
		{
			name: "falls back to article",
			html: `<html><body><article>Privacy policy text here.</article></body></html>`,
			want: "Privacy policy text here.",
		},
		{
			name: "strips scripts and styles",
			html: `<html><body><main>
				<script>trackUser();</script>
				<style>.x{color:red}</style>
				Terms apply to everyone.
			</main></body></html>`,
			want: "Terms apply to everyone.",
		},
		{
			name: "body fallback when no container matches",
			html: `<html><body><div>Loose policy text in a div.</div></body></html>`,
			want: "Loose policy text in a div.",
		},
		{
			name: "whitespace collapses",
			html: "<html><body><main>Clause  one.\n\n   Clause two.</main></body></html>",
			want: "Clause one. Clause two.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractFromDocument(parseHTML(t, tt.html)))
		})
	}
}

func TestExtract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "fineprint")
		_, _ = w.Write([]byte(`<html><body><main>Served terms of service.</main></body></html>`))
	}))
	defer srv.Close()

	fetcher := New(srv.Client())
	text, err := fetcher.Extract(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Served terms of service.", text)
}

func TestExtractNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	fetcher := New(srv.Client())
	_, err := fetcher.Extract(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestExtractRespectsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := New(srv.Client())
	_, err := fetcher.Extract(ctx, srv.URL)
	require.Error(t, err)
}
