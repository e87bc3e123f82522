package words

import (
	"math/rand"
	"sort"
	"sync"
	"time"
)

const (
	FallbackLanguage = "en"
	AnyCategory      = "any"
)

// Provider draws a random secret word for a language and category.
// It is safe for concurrent use by multiple rooms starting at once.
type Provider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New() *Provider {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand is used by tests that need a seeded sequence.
func NewWithRand(rng *rand.Rand) *Provider {
	return &Provider{rng: rng}
}

// Draw picks a random word. An unknown language falls back to English,
// an empty or "any" category is drawn uniformly across all categories of
// that language. The category the word came from is returned alongside it.
func (p *Provider) Draw(language, category string) (string, string) {
	pool, ok := wordsByLanguage[language]
	if !ok {
		pool = wordsByLanguage[FallbackLanguage]
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if category == "" || category == AnyCategory {
		category = categoriesOf(pool)[p.rng.Intn(len(pool))]
	}
	list, ok := pool[category]
	if !ok {
		category = categoriesOf(pool)[p.rng.Intn(len(pool))]
		list = pool[category]
	}

	return list[p.rng.Intn(len(list))], category
}

// Categories lists the known categories for a language, for settings
// validation. Unknown languages fall back to English.
func Categories(language string) []string {
	pool, ok := wordsByLanguage[language]
	if !ok {
		pool = wordsByLanguage[FallbackLanguage]
	}
	return categoriesOf(pool)
}

// Languages lists the languages word data is bundled for.
func Languages() []string {
	langs := make([]string, 0, len(wordsByLanguage))
	for lang := range wordsByLanguage {
		langs = append(langs, lang)
	}
	return langs
}

func categoriesOf(pool map[string][]string) []string {
	// Stable order so a seeded rng draws reproducibly.
	cats := make([]string, 0, len(pool))
	for cat := range pool {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}
