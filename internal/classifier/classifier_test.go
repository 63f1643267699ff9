package classifier

import (
	"testing"

	"NewsBridge/internal/domain"
)

func TestClassifyPriorityTieBreak(t *testing.T) {
	t.Parallel()

	// Mentions both a sport and the capital; Maceió is earlier in priority.
	got := Classify("Jogo de futebol em Maceió", "")
	if got != domain.CategoryMaceio {
		t.Fatalf("expected %s, got %s", domain.CategoryMaceio, got)
	}
}

func TestClassifyFallback(t *testing.T) {
	t.Parallel()

	got := Classify("Chuva forte nesta quinta", "previsão para o fim de semana")
	if got != domain.CategoryCidades {
		t.Fatalf("expected fallback %s, got %s", domain.CategoryCidades, got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	t.Parallel()

	if got := Classify("ARAPIRACA recebe obras", ""); got != domain.CategoryArapiraca {
		t.Fatalf("expected %s, got %s", domain.CategoryArapiraca, got)
	}
}

func TestClassifyUsesExcerpt(t *testing.T) {
	t.Parallel()

	got := Classify("Novidades desta semana", "o governador anunciou o pacote")
	if got != domain.CategoryPolitica {
		t.Fatalf("expected %s, got %s", domain.CategoryPolitica, got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	t.Parallel()

	title, excerpt := "Festival de teatro em Penedo", "programação do patrimônio"
	first := Classify(title, excerpt)
	for i := 0; i < 10; i++ {
		if got := Classify(title, excerpt); got != first {
			t.Fatalf("classification changed between calls: %s vs %s", first, got)
		}
	}
	if first != domain.CategoryInterior {
		t.Fatalf("expected %s, got %s", domain.CategoryInterior, first)
	}
}
