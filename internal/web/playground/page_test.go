package playground

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, cfg Config) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Page(cfg).Render(context.Background(), &buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestPageDefaultEndpoints(t *testing.T) {
	doc := render(t, DefaultConfig())

	assert.Equal(t, "GraphQL Playground", doc.Find("title").Text())

	root := doc.Find("#root")
	require.Equal(t, 1, root.Length())
	endpoint, _ := root.Attr("data-endpoint")
	assert.Equal(t, "/graphql", endpoint)

	script := doc.Find("body script").Text()
	assert.Contains(t, script, `"endpoint":"/graphql"`)
	assert.Contains(t, script, `"subscriptionEndpoint":"/subscriptions"`)
}

func TestPageLoadsPlaygroundAssets(t *testing.T) {
	doc := render(t, DefaultConfig())

	src, ok := doc.Find("head script").Attr("src")
	require.True(t, ok)
	assert.Contains(t, src, "graphql-playground-react@"+Version)

	href, ok := doc.Find(`link[rel="stylesheet"]`).Attr("href")
	require.True(t, ok)
	assert.Contains(t, href, "index.css")
}

func TestPageEscapesConfig(t *testing.T) {
	doc := render(t, Config{
		Title:    "<b>Demo</b>",
		Endpoint: `/q"</script><script>alert(1)</script>`,
	})

	assert.Equal(t, "<b>Demo</b>", doc.Find("title").Text())
	assert.Equal(t, 0, doc.Find("b").Length())
	// Only the asset loader and the init script may exist
	assert.Equal(t, 2, doc.Find("script").Length())
	assert.NotContains(t, doc.Find("body script").Text(), "subscriptionEndpoint")
}

func TestPageStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := Page(DefaultConfig()).Render(ctx, &buf)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestPageOptionsAreJSON(t *testing.T) {
	doc := render(t, Config{Title: "t", Endpoint: "/api"})

	script := doc.Find("body script").Text()
	assert.Contains(t, script, `GraphQLPlayground.init(document.getElementById('root'), {"endpoint":"/api","settings":{"request.credentials":"same-origin"}})`)
}
