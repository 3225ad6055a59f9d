package vectorindex

import (
	"context"
	"sort"

	"github.com/careerengine/careerengine/internal/taxonomy"
)

// InMemoryIndex is the reference Index implementation: it embeds every
// taxonomy node once at construction time and answers queries by linear
// cosine-similarity scan. Suitable for the test-mode pipeline and for
// small taxonomies; a production deployment swaps this for RemoteIndex
// without touching the Mapper.
type InMemoryIndex struct {
	embedder EmbeddingProvider
	cache    *EmbeddingCache
	nodes    []*taxonomy.SkillNode
	vectors  []Embedding
}

// NewInMemoryIndex embeds every node in tax via embedder and returns a
// ready-to-query index.
func NewInMemoryIndex(tax *taxonomy.Taxonomy, embedder EmbeddingProvider) (*InMemoryIndex, error) {
	idx := &InMemoryIndex{
		embedder: embedder,
		cache:    NewEmbeddingCache(4096),
	}
	for _, node := range tax.All() {
		text := node.CanonicalName
		for _, alias := range node.Aliases {
			text += " " + alias
		}
		vec, err := embedder.Embed(text)
		if err != nil {
			return nil, err
		}
		idx.nodes = append(idx.nodes, node)
		idx.vectors = append(idx.vectors, vec)
	}
	return idx, nil
}

func (idx *InMemoryIndex) Query(ctx context.Context, text string, k int, filter Filter) ([]ScoredNode, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	q, ok := idx.cache.Get(text)
	if !ok {
		var err error
		q, err = idx.embedder.Embed(text)
		if err != nil {
			return nil, err
		}
		idx.cache.Put(text, q)
	}

	var hits []ScoredNode
	for i, node := range idx.nodes {
		if filter.SkillType != "" && node.EffectiveType() != filter.SkillType {
			continue
		}
		hits = append(hits, ScoredNode{Node: node, Score: cosine(q, idx.vectors[i])})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if k > 0 && k < len(hits) {
		hits = hits[:k]
	}
	return hits, nil
}
