package repdata

import "testing"

func TestSingleChain_Shape(t *testing.T) {
	if len(SingleChain.Rounds) != 11 {
		t.Fatalf("expected 11 rounds got %d", len(SingleChain.Rounds))
	}
	for _, s := range SingleChain.Series {
		if len(s.Values) != len(SingleChain.Rounds) {
			t.Fatalf("series %q has %d values for %d rounds", s.Name, len(s.Values), len(SingleChain.Rounds))
		}
		for i, v := range s.Values {
			if v < 0 || v > 1 {
				t.Fatalf("series %q value %d out of [0,1]: %v", s.Name, i, v)
			}
		}
	}
	if got := SingleChain.Series[0].Values[10]; got != 0.733346 {
		t.Fatalf("honest final %v", got)
	}
	if got := SingleChain.Series[1].Values[10]; got != 0.113548 {
		t.Fatalf("malicious final %v", got)
	}
}

func TestDualChain_RoundAxisLiteral(t *testing.T) {
	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 15, 18, 20}
	if len(DualChain.Rounds) != len(want) {
		t.Fatalf("round axis length %d, want %d", len(DualChain.Rounds), len(want))
	}
	for i, r := range want {
		if DualChain.Rounds[i] != r {
			t.Fatalf("round[%d] = %d, want %d", i, DualChain.Rounds[i], r)
		}
	}
	for _, s := range DualChain.Series {
		if len(s.Values) != len(want) {
			t.Fatalf("series %q has %d values", s.Name, len(s.Values))
		}
	}
}

func TestDualChain_FinalValues(t *testing.T) {
	final := DualChain.FinalIndex()
	checks := []struct {
		idx  int
		want float64
	}{
		{DualEmergencyActive, 0.923},
		{DualNormalOnly, 0.758},
		{DualEmergencyMalicious, 0.070},
		{DualNormalMalicious, 0.203},
	}
	for _, c := range checks {
		if got := DualChain.Series[c.idx].Values[final]; got != c.want {
			t.Fatalf("series %d final %v, want %v", c.idx, got, c.want)
		}
	}
}

func TestRoundIndex(t *testing.T) {
	if i := DualChain.RoundIndex(15); i != 12 {
		t.Fatalf("RoundIndex(15) = %d, want 12", i)
	}
	if i := DualChain.RoundIndex(11); i != -1 {
		t.Fatalf("RoundIndex(11) = %d, want -1 (round not sampled)", i)
	}
	if i := SingleChain.RoundIndex(5); i != 5 {
		t.Fatalf("RoundIndex(5) = %d", i)
	}
}
