package words

import (
	"math/rand"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type WordsUnitSuite struct {
	suite.Suite
}

func seededProvider(seed int64) *Provider {
	return NewWithRand(rand.New(rand.NewSource(seed)))
}

func (suite *WordsUnitSuite) TestDrawFromNamedCategory(t provider.T) {
	t.Parallel()

	p := seededProvider(1)

	for i := 0; i < 100; i++ {
		word, category := p.Draw("en", "animals")

		assert.Equal(t, "animals", category)
		assert.Contains(t, wordsByLanguage["en"]["animals"], word)
	}
}

func (suite *WordsUnitSuite) TestDrawAnyCategoryCoversAll(t provider.T) {
	t.Parallel()

	p := seededProvider(2)

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		word, category := p.Draw("en", AnyCategory)

		assert.Contains(t, wordsByLanguage["en"][category], word)
		seen[category] = true
	}

	assert.Len(t, seen, len(wordsByLanguage["en"]))
}

func (suite *WordsUnitSuite) TestUnknownLanguageFallsBackToEnglish(t provider.T) {
	t.Parallel()

	p := seededProvider(3)

	word, category := p.Draw("fr", "food")

	assert.Equal(t, "food", category)
	assert.Contains(t, wordsByLanguage["en"]["food"], word)
}

func (suite *WordsUnitSuite) TestUnknownCategoryRedrawsKnownOne(t provider.T) {
	t.Parallel()

	p := seededProvider(4)

	word, category := p.Draw("de", "spaceships")

	assert.Contains(t, wordsByLanguage["de"], category)
	assert.Contains(t, wordsByLanguage["de"][category], word)
}

func (suite *WordsUnitSuite) TestCategoriesMatchAcrossLanguages(t provider.T) {
	t.Parallel()

	assert.Equal(t, Categories("en"), Categories("de"))
	assert.Equal(t, Categories("en"), Categories("unknown"))
}

func TestWordsSuite(t *testing.T) {
	suite.RunSuite(t, new(WordsUnitSuite))
}
