package markup_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legible-dev/legible/internal/application/port"
	"github.com/legible-dev/legible/internal/application/usecase"
	"github.com/legible-dev/legible/internal/domain/entity"
	"github.com/legible-dev/legible/internal/infrastructure/markup"
	"github.com/legible-dev/legible/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func mustParse(t *testing.T, content string) *markup.Document {
	t.Helper()
	doc, err := markup.ParseString("test.html", content)
	require.NoError(t, err)
	return doc
}

func TestResolve(t *testing.T) {
	doc := mustParse(t, `<html><body>
		<div id="main" class="wrap">
			<p class="lead intro">first</p>
			<p>second</p>
		</div>
	</body></html>`)

	tests := []struct {
		name    string
		target  entity.NodeID
		ok      bool
		path    string
	}{
		{"by id", "#main", true, "html > body > div#main"},
		{"by tag", "p", true, "html > body > div#main > p.lead"},
		{"by tag and class", "p.lead", true, "html > body > div#main > p.lead"},
		{"by class alone", ".intro", true, "html > body > div#main > p.lead"},
		{"missing id", "#nope", false, ""},
		{"missing tag", "article", false, ""},
		{"empty target", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, ok := doc.Resolve(tt.target)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.path, node.Path())
			}
		})
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	doc := mustParse(t, `<html><body>
		<p id="one">first</p>
		<div><p id="two">nested</p></div>
		<p id="three">last</p>
	</body></html>`)

	node, ok := doc.Resolve("p")
	require.True(t, ok)
	assert.Equal(t, "html > body > p#one", node.Path())
}

func TestResolveIDCase(t *testing.T) {
	doc := mustParse(t, `<html><body><div id="Main">x</div></body></html>`)

	node, ok := doc.Resolve("#Main")
	require.True(t, ok)
	assert.Equal(t, "html > body > div#Main", node.Path())

	// Ids are case-sensitive.
	_, ok = doc.Resolve("#main")
	assert.False(t, ok)
}

func TestResolveTagCaseInsensitive(t *testing.T) {
	doc := mustParse(t, `<html><body><p class="Lead">x</p></body></html>`)

	_, ok := doc.Resolve("P")
	assert.True(t, ok)

	_, ok = doc.Resolve("p.lead")
	assert.True(t, ok)
}

func TestNodeKindAndParent(t *testing.T) {
	doc := mustParse(t, `<html><body><p id="x">text</p></body></html>`)

	node, ok := doc.Resolve("#x")
	require.True(t, ok)
	assert.Equal(t, port.KindElement, node.Kind())

	body := node.Parent()
	require.NotNil(t, body)
	assert.Equal(t, port.KindElement, body.Kind())

	htmlEl := body.Parent()
	require.NotNil(t, htmlEl)
	assert.Equal(t, port.KindElement, htmlEl.Kind())

	root := htmlEl.Parent()
	require.NotNil(t, root)
	assert.Equal(t, port.KindDocument, root.Kind())
	assert.Nil(t, root.Parent())
}

func TestParentHandlesAreStable(t *testing.T) {
	doc := mustParse(t, `<html><body><p id="x">text</p></body></html>`)

	node, ok := doc.Resolve("#x")
	require.True(t, ok)
	assert.Same(t, node.Parent(), node.Parent())
}

func TestTextNodes(t *testing.T) {
	doc := mustParse(t, `<html>
	<head><title>ignored</title><style>p { color: red }</style></head>
	<body>
		<h1>Heading</h1>
		<div>
			<p>paragraph</p>
			<script>var ignored = true;</script>
		</div>
		<div>   </div>
	</body></html>`)

	nodes := doc.TextNodes()
	var paths []string
	for _, n := range nodes {
		paths = append(paths, n.Path())
	}

	assert.Equal(t, []string{"html > body > h1", "html > body > div > p"}, paths)
}

// The canonical scenario: a node with no background of its own picks up the
// first ancestor background, while text color comes from the node itself.
func TestDetectThroughDocument(t *testing.T) {
	doc := mustParse(t, `<html><body style="background-color: rgb(255, 255, 255)">
		<div><p id="caption" style="color: rgb(0, 0, 0)">hello</p></div>
	</body></html>`)

	uc := usecase.NewDetectColorsUseCase(doc, doc)
	result := uc.Execute(testContext(), usecase.DetectColorsInput{Target: "#caption", Enabled: true})

	require.NotNil(t, result)
	assert.Equal(t, entity.ResolvedColor("rgb(0, 0, 0)"), result.TextColor)
	assert.Equal(t, entity.ResolvedColor("rgb(255, 255, 255)"), result.BackgroundColor)
}

func TestDetectThroughDocumentTransparentToRoot(t *testing.T) {
	doc := mustParse(t, `<html><body><div><p id="floating">hello</p></div></body></html>`)

	uc := usecase.NewDetectColorsUseCase(doc, doc)
	result := uc.Execute(testContext(), usecase.DetectColorsInput{Target: "#floating", Enabled: true})

	require.NotNil(t, result)
	assert.Equal(t, entity.Transparent, result.BackgroundColor)
	assert.False(t, result.BackgroundResolved())
}
