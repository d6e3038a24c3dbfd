package utils

import (
	"hash/fnv"
	"math"
	"strings"

	"github.com/pgvector/pgvector-go"
)

const embeddingDimensions = 256

// TextVector builds a hash-based embedding for text. It is not a learned
// model; it only needs to rank guide entries by rough lexical similarity,
// entirely in memory.
func TextVector(text string) pgvector.Vector {
	text = strings.ToLower(strings.TrimSpace(text))
	words := strings.Fields(text)

	vector := make([]float32, embeddingDimensions)
	for _, word := range words {
		hash := hashWord(word)
		for i := 0; i < embeddingDimensions; i++ {
			influence := math.Sin(float64(hash+uint32(i))) * 0.1
			vector[i] += float32(influence)
		}
	}

	magnitude := float32(0)
	for _, val := range vector {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))
	if magnitude > 0 {
		for i := range vector {
			vector[i] /= magnitude
		}
	}

	return pgvector.NewVector(vector)
}

// CosineSimilarity assumes both vectors came out of TextVector and are
// already normalized, so the dot product suffices.
func CosineSimilarity(a, b pgvector.Vector) float32 {
	as, bs := a.Slice(), b.Slice()
	if len(as) != len(bs) {
		return 0
	}
	var dot float32
	for i := range as {
		dot += as[i] * bs[i]
	}
	return dot
}

func hashWord(word string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return h.Sum32()
}
