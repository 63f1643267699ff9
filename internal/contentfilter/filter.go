// Package contentfilter decides whether an article may be republished at all.
// The policy deliberately tolerates false positives: a substring hit anywhere
// in title or body blocks the article, with no word-boundary requirement.
package contentfilter

import "strings"

// DefaultBlacklist blocks violence and police-blotter content. Used whenever
// the configured keyword source is unavailable or empty.
var DefaultBlacklist = []string{
	"homicídio", "assassinato", "assalto", "roubo", "furto", "preso", "prisão",
	"delegacia", "polícia", "policial", "crime", "criminoso", "tráfico", "drogas",
	"arma", "tiroteio", "facada", "esfaqueado", "baleado", "morte violenta",
	"latrocínio", "estupro", "feminicídio", "acidente fatal", "corpo encontrado",
	"milícia", "gangue", "operação policial", "mandado", "flagrante", "detido",
	"apreensão", "inquérito", "penal", "homicida", "suspeito preso",
	"vítima fatal", "óbito violento",
}

// Blocked reports whether any blacklist term occurs, case-insensitively, in
// the concatenation of title and body. An empty blacklist blocks nothing.
func Blocked(title, body string, blacklist []string) bool {
	combined := strings.ToLower(title + " " + body)
	for _, keyword := range blacklist {
		if keyword == "" {
			continue
		}
		if strings.Contains(combined, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
