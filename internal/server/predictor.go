package server

import (
	"context"
	"errors"
	"strings"

	"github.com/michoacana/antojo/internal/quiz"
	"github.com/michoacana/antojo/internal/recommend"
)

// Predictor picks a product ID for a complete quiz record.
type Predictor interface {
	Predict(ctx context.Context, rec quiz.Record, weather recommend.Weather) (string, error)
}

// ErrEmptyCatalog is returned when there is nothing to recommend.
var ErrEmptyCatalog = errors.New("catalog is empty")

// RulePredictor scores every product against the answers and the weather
// and returns the best one. Ties go to the earlier catalog entry.
type RulePredictor struct {
	catalog *Catalog
}

// NewRulePredictor returns a predictor over catalog.
func NewRulePredictor(catalog *Catalog) *RulePredictor {
	return &RulePredictor{catalog: catalog}
}

// categoryWeight outweighs every other signal combined.
const categoryWeight = 5

var (
	cravingWords = map[string][]string{
		"dulce":   {"dulce"},
		"salado":  {"salad"},
		"acido":   {"acid", "citric"},
		"picante": {"picant", "picos", "chile", "jalapen", "diabla"},
	}
	baseWords = map[string][]string{
		"agua":   {"agua", "bebida", "refresc"},
		"leche":  {"leche", "malteada", "frappe", "atole", "helado"},
		"crema":  {"crema", "cremos"},
		"botana": {"snack", "nachos", "papas", "platillo", "crujiente"},
	}
	flavorWords = map[string][]string{
		"fruta": {"fruta", "mango", "fresa", "pina", "limon", "tamarindo", "jamaica", "coco", "sandia",
			"melon", "mora", "naranja", "maracuya", "durazno", "guanabana", "mandarina", "frambuesa",
			"toronja", "platano", "tropical", "citric"},
		"chocolate": {"chocolate", "oreo", "choco"},
		"vainilla":  {"vainilla"},
		"chile":     {"chile", "chamoy", "valentina", "picant", "jalapen", "diabla"},
	}
	weatherWords = map[recommend.Weather][]string{
		recommend.WeatherSunny:  {"soleado", "sol", "calor", "caluroso", "refresc"},
		recommend.WeatherCloudy: {"nublado", "cremos"},
		recommend.WeatherRainy:  {"lluvioso", "frio", "caliente"},
	}
)

func (p *RulePredictor) Predict(ctx context.Context, rec quiz.Record, weather recommend.Weather) (string, error) {
	if p.catalog == nil || p.catalog.Len() == 0 {
		return "", ErrEmptyCatalog
	}

	best, bestScore := "", -1
	for _, e := range p.catalog.Entries() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		s := score(e, rec, weather)
		if s > bestScore {
			best, bestScore = e.ID, s
		}
	}
	return best, nil
}

func score(e Entry, rec quiz.Record, weather recommend.Weather) int {
	text := normalize(e.Product.Name + " " + e.Product.Justification)

	s := 0
	if rec.ProductType != "" && strings.Contains(normalize(e.Category), normalize(rec.ProductType)) {
		s += categoryWeight
	}
	if matchAny(text, wordsFor(cravingWords, rec.Craving)) {
		s++
	}
	if matchAny(text, wordsFor(baseWords, rec.Base)) {
		s++
	}
	if matchAny(text, wordsFor(flavorWords, rec.Flavor)) {
		s++
	}
	if matchAny(text, weatherWords[weather]) {
		s++
	}
	return s
}

// wordsFor falls back to the answer itself for values without a keyword list.
func wordsFor(table map[string][]string, answer string) []string {
	answer = normalize(answer)
	if answer == "" {
		return nil
	}
	if words, ok := table[answer]; ok {
		return words
	}
	return []string{answer}
}

func matchAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

var accentFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n", "ü", "u",
)

func normalize(s string) string {
	return accentFolder.Replace(strings.ToLower(s))
}
