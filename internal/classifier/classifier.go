// Package classifier assigns an editorial category from keyword matches.
package classifier

import (
	"strings"

	"NewsBridge/internal/domain"
)

// priorityOrder is significant: categories are tested in this sequence and
// the first match wins, so geographic categories beat thematic ones.
var priorityOrder = []domain.Category{
	domain.CategoryMaceio,
	domain.CategoryArapiraca,
	domain.CategoryInterior,
	domain.CategoryPolitica,
	domain.CategoryEsporte,
	domain.CategoryCultura,
}

var categoryKeywords = map[domain.Category][]string{
	domain.CategoryMaceio: {
		"maceió", "pajuçara", "ponta verde", "jatiúca", "cruz das almas",
		"jaraguá", "capital alagoana",
	},
	domain.CategoryArapiraca: {"arapiraca", "agreste alagoano"},
	domain.CategoryInterior: {
		"penedo", "marechal deodoro", "são miguel dos campos",
		"palmeira dos índios", "delmiro gouveia", "união dos palmares",
		"rio largo", "interior de alagoas",
	},
	domain.CategoryPolitica: {
		"governo", "governador", "prefeito", "câmara", "senado", "deputado",
		"vereador", "eleição", "político", "legislativo", "executivo",
	},
	domain.CategoryEsporte: {
		"futebol", "csa", "crb", "campeonato", "jogo", "gol", "atleta",
		"esporte", "torneio", "seleção",
	},
	domain.CategoryCultura: {
		"cultura", "festival", "música", "teatro", "exposição", "artista",
		"carnaval", "folclore", "patrimônio",
	},
}

// Classify picks the first category in priority order whose keyword set has a
// case-insensitive substring match in title+excerpt. Falls back to Cidades.
func Classify(title, excerpt string) domain.Category {
	combined := strings.ToLower(title + " " + excerpt)
	for _, category := range priorityOrder {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(combined, keyword) {
				return category
			}
		}
	}
	return domain.CategoryCidades
}
