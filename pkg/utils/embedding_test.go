package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roteiro/pkg/utils"
)

func TestTextVectorDeterministic(t *testing.T) {
	a := utils.TextVector("eiffel tower monument")
	b := utils.TextVector("eiffel tower monument")
	assert.Equal(t, a.Slice(), b.Slice())
}

func TestCosineSimilaritySelf(t *testing.T) {
	v := utils.TextVector("louvre museum culture")
	assert.InDelta(t, 1.0, float64(utils.CosineSimilarity(v, v)), 1e-3)
}

func TestCosineSimilarityRanksRelatedTextHigher(t *testing.T) {
	query := utils.TextVector("louvre museum")
	related := utils.TextVector("louvre museum culture paris")
	unrelated := utils.TextVector("colosseum amphitheatre rome")

	assert.Greater(t,
		utils.CosineSimilarity(query, related),
		utils.CosineSimilarity(query, unrelated))
}
