package generation

import (
	"testing"

	"github.com/phrazzld/trendpulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mixedGroundingFixture = `{
  "webSearchQueries": ["탕후루 맛집"],
  "groundingChunks": [
    {"web": {"uri": "https://news.example/tanghulu", "title": "Tanghulu craze"}},
    {"maps": {"title": "Wangga Tanghulu", "uri": "https://maps.google.com/?cid=1", "formattedAddress": "Hongdae, Seoul", "rating": 4.4}},
    {"retrievedContext": {"uri": "gs://bucket/doc"}},
    {"web": {"uri": "https://blog.example/recipe", "title": "Recipe"}},
    {"maps": {"title": "Street Food Zone", "googleMapsUri": "https://maps.google.com/?cid=2", "uri": "https://ignored.example"}},
    {"web": {"uri": "https://news.example/tanghulu", "title": "Duplicate"}},
    "not-an-object"
  ]
}`

func TestParseGroundingChunksClassifies(t *testing.T) {
	t.Parallel()

	chunks, err := ParseGroundingChunks([]byte(mixedGroundingFixture))
	require.NoError(t, err)

	kinds := make([]ChunkKind, len(chunks))
	for i, c := range chunks {
		kinds[i] = c.Kind
	}
	assert.Equal(t, []ChunkKind{
		ChunkWeb, ChunkMap, ChunkUnknown, ChunkWeb, ChunkMap, ChunkWeb, ChunkUnknown,
	}, kinds)

	assert.Equal(t, "https://maps.google.com/?cid=2", chunks[4].Map.URI, "googleMapsUri takes precedence")
	require.NotNil(t, chunks[1].Map.Rating)
	assert.Equal(t, 4.4, *chunks[1].Map.Rating)
}

func TestParseGroundingChunksEmpty(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "null", "  ", "{}", `{"groundingChunks": []}`} {
		chunks, err := ParseGroundingChunks([]byte(raw))
		require.NoError(t, err, "input %q", raw)
		assert.Empty(t, chunks, "input %q", raw)
	}
}

func TestParseGroundingChunksMalformed(t *testing.T) {
	t.Parallel()

	_, err := ParseGroundingChunks([]byte(`{"groundingChunks": "nope"}`))
	assert.ErrorIs(t, err, ErrExtractionFailure)
}

func TestParseGroundingChunksBothShapes(t *testing.T) {
	t.Parallel()

	raw := `{"groundingChunks": [{"web": {"uri": "https://a.example", "title": "A"}, "maps": {"title": "B", "uri": "https://maps.example/b"}}]}`
	chunks, err := ParseGroundingChunks([]byte(raw))
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, ChunkWeb, chunks[0].Kind)
	assert.Equal(t, ChunkMap, chunks[1].Kind)
}

func TestParseGroundingChunksEmptyShapes(t *testing.T) {
	t.Parallel()

	raw := `{"groundingChunks": [{"web": {}}, {"maps": {}}]}`
	chunks, err := ParseGroundingChunks([]byte(raw))
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, ChunkUnknown, chunks[0].Kind)
	assert.Equal(t, ChunkUnknown, chunks[1].Kind)
}

func TestPartitionGrounding(t *testing.T) {
	t.Parallel()

	chunks, err := ParseGroundingChunks([]byte(mixedGroundingFixture))
	require.NoError(t, err)

	sources, places := PartitionGrounding(chunks)

	assert.Equal(t, []domain.GroundingSource{
		{Title: "Tanghulu craze", URI: "https://news.example/tanghulu"},
		{Title: "Recipe", URI: "https://blog.example/recipe"},
	}, sources, "sources keep order and are unique by uri")

	require.Len(t, places, 2)
	assert.Equal(t, "Wangga Tanghulu", places[0].Title)
	assert.Equal(t, "Hongdae, Seoul", places[0].Address)
	assert.Equal(t, "Street Food Zone", places[1].Title)
	assert.Empty(t, places[1].Address)
	assert.Nil(t, places[1].Rating)
}

func TestPartitionGroundingSkipsUnknown(t *testing.T) {
	t.Parallel()

	sources, places := PartitionGrounding([]GroundingChunk{UnknownChunk(), UnknownChunk()})
	assert.NotNil(t, sources)
	assert.NotNil(t, places)
	assert.Empty(t, sources)
	assert.Empty(t, places)
}

func TestPartitionGroundingNil(t *testing.T) {
	t.Parallel()

	sources, places := PartitionGrounding(nil)
	assert.NotNil(t, sources)
	assert.NotNil(t, places)
}

func TestChunkKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "web", ChunkWeb.String())
	assert.Equal(t, "map", ChunkMap.String())
	assert.Equal(t, "unknown", ChunkUnknown.String())
}
