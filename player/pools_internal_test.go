package player

import "testing"

func TestFallbackPools(t *testing.T) {
	if len(randomTaunts) < 5 {
		t.Errorf("random pool has %d entries, want at least 5", len(randomTaunts))
	}
	if len(llmFallbackTaunts) < 7 {
		t.Errorf("llm fallback pool has %d entries, want at least 7", len(llmFallbackTaunts))
	}

	random := make(map[string]bool, len(randomTaunts))
	for _, s := range randomTaunts {
		random[s] = true
	}
	for _, s := range llmFallbackTaunts {
		if random[s] {
			t.Errorf("%q appears in both pools", s)
		}
	}
}

func TestCleanTaunt_Whitespace(t *testing.T) {
	if got := cleanTaunt("  \"勝負だ\"\n"); got != "勝負だ" {
		t.Errorf("got %q", got)
	}
}
