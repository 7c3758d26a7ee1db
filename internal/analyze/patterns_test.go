package analyze

import (
	"fmt"
	"testing"

	"github.com/scienceartist/robometrics/internal/model"
)

func TestPatternsCountsAcrossFiles(t *testing.T) {
	t.Parallel()

	a := New()
	a.Add("a", []model.Keyword{kw("test_shared"), kw("test_only_a")})
	a.Add("b", []model.Keyword{kw("test_shared")})

	p := a.KeywordPatterns()
	if got := p.MostUsed["test_shared"]; got != 2 {
		t.Errorf("test_shared count = %d, want 2", got)
	}
	if got := p.MostUsed["test_only_a"]; got != 1 {
		t.Errorf("test_only_a count = %d, want 1", got)
	}
}

func TestPatternsTopTenLimit(t *testing.T) {
	t.Parallel()

	a := New()
	// twelve distinct names; the two most frequent must survive the cut
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("test_kw_%02d", i)
		kws := []model.Keyword{kw(name)}
		if i < 2 {
			kws = append(kws, kw(name))
		}
		a.Add("s", kws)
	}

	p := a.KeywordPatterns()
	if len(p.MostUsed) != 10 {
		t.Fatalf("MostUsed has %d entries, want 10", len(p.MostUsed))
	}
	for _, name := range []string{"test_kw_00", "test_kw_01"} {
		if got := p.MostUsed[name]; got != 2 {
			t.Errorf("%s count = %d, want 2", name, got)
		}
	}
}

func TestPatternsTiesBrokenByDiscoveryOrder(t *testing.T) {
	t.Parallel()

	a := New()
	// Eleven names with equal counts: the last-discovered one must be the
	// one trimmed by the top-10 cut.
	for i := 0; i < 11; i++ {
		a.Add("s", []model.Keyword{kw(fmt.Sprintf("test_kw_%02d", i))})
	}

	p := a.KeywordPatterns()
	if len(p.MostUsed) != 10 {
		t.Fatalf("MostUsed has %d entries, want 10", len(p.MostUsed))
	}
	if _, ok := p.MostUsed["test_kw_10"]; ok {
		t.Error("last-discovered keyword survived the cut over earlier ties")
	}
	if _, ok := p.MostUsed["test_kw_00"]; !ok {
		t.Error("first-discovered keyword missing from MostUsed")
	}
}

func TestPatternsUnusedAlwaysEmpty(t *testing.T) {
	t.Parallel()

	// The tally only ever records discovered occurrences, so a zero count
	// is unreachable and unused_keywords stays empty.
	a := New()
	a.Add("s", []model.Keyword{kw("test_a"), kw("test_b")})

	p := a.KeywordPatterns()
	if p.Unused == nil {
		t.Fatal("Unused is nil, want empty slice")
	}
	if len(p.Unused) != 0 {
		t.Errorf("Unused = %v, want empty", p.Unused)
	}
}
