// Package repstats derives the summary statistics annotated on the
// reputation charts: growth deltas between rounds, percentage changes
// against the neutral baseline, per-round growth rates and cross-series
// ratios. All functions are pure; callers index series directly, so a
// mismatched series/round length or a flat comparison interval surfaces as a
// panic or ±Inf rather than an error.
package repstats

import (
	"fmt"
	"strings"
)

const (
	// Baseline is the neutral reputation every node starts from.
	Baseline = 0.5
	// ValidatorThreshold is the cutoff above which a node becomes eligible
	// for the validator role.
	ValidatorThreshold = 0.7
)

// Growth returns the absolute score change between two sample indexes.
func Growth(s []float64, i, j int) float64 { return s[j] - s[i] }

// PercentGain expresses v as a gain over the baseline, in percent.
func PercentGain(v float64) float64 { return (v - Baseline) / Baseline * 100 }

// PercentDrop expresses v as a decline below the baseline, in percent.
func PercentDrop(v float64) float64 { return (Baseline - v) / Baseline * 100 }

// RatePerRound returns the linear average growth per consensus round over
// the sample interval [i, j]. The round axis may be non-contiguous, so the
// divisor is the round distance, not the index distance.
func RatePerRound(s []float64, rounds []int, i, j int) float64 {
	return Growth(s, i, j) / float64(rounds[j]-rounds[i])
}

// GrowthRatio compares two series' growth over the same sample interval.
func GrowthRatio(a, b []float64, i, j int) float64 {
	return Growth(a, i, j) / Growth(b, i, j)
}

// Gap returns the score distance between two series at one sample index.
func Gap(a, b []float64, i int) float64 { return a[i] - b[i] }

// GapPercent expresses the gap at index i relative to the lower series.
func GapPercent(a, b []float64, i int) float64 { return (a[i]/b[i] - 1) * 100 }

// SingleChainSummary formats the closing stats box of the single-chain
// chart: final honest and malicious averages with their baseline-relative
// changes, and the gap between them.
func SingleChainSummary(round int, honest, malicious float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Final results (round %d):\n", round)
	fmt.Fprintf(&b, "Honest nodes:    %.4f (+%.1f%%)\n", honest, PercentGain(honest))
	fmt.Fprintf(&b, "Malicious nodes: %.4f (-%.1f%%)\n", malicious, PercentDrop(malicious))
	fmt.Fprintf(&b, "Reputation gap:  %.4f (+%.1f%%)", honest-malicious, (honest/malicious-1)*100)
	return b.String()
}

// DualChainSummary formats the stats panel of the dual-chain chart. The four
// series are the emergency-active, normal-only, emergency-malicious and
// normal-malicious profiles on a shared round axis; startIdx/endIdx bound
// the growth-rate comparison interval.
func DualChainSummary(rounds []int, emergActive, normalOnly, emergMal, normalMal []float64, startIdx, endIdx int) string {
	final := len(rounds) - 1
	bFinal := emergActive[final]
	aFinal := normalOnly[final]
	cFinal := emergMal[final]
	dFinal := normalMal[final]

	var b strings.Builder
	fmt.Fprintf(&b, "Weight improvement effect (round %d)\n", rounds[final])
	b.WriteString("------------------------------------\n")
	fmt.Fprintf(&b, "Node B (emergency): %.4f\n", bFinal)
	fmt.Fprintf(&b, "  growth: +%.4f (%.1f%%)\n", bFinal-Baseline, PercentGain(bFinal))
	fmt.Fprintf(&b, "  rate:   %.4f/round\n", RatePerRound(emergActive, rounds, startIdx, endIdx))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Node A (normal):    %.4f\n", aFinal)
	fmt.Fprintf(&b, "  growth: +%.4f (%.1f%%)\n", aFinal-Baseline, PercentGain(aFinal))
	fmt.Fprintf(&b, "  rate:   %.4f/round\n", RatePerRound(normalOnly, rounds, startIdx, endIdx))
	b.WriteString("\n")
	b.WriteString("Emergency acceleration:\n")
	fmt.Fprintf(&b, "  reputation gap: %.4f\n", bFinal-aFinal)
	fmt.Fprintf(&b, "  rate ratio:     %.2fx\n", GrowthRatio(emergActive, normalOnly, startIdx, endIdx))
	b.WriteString("\n")
	b.WriteString("Malicious penalty:\n")
	fmt.Fprintf(&b, "  emergency: %.4f (-%.1f%%)\n", cFinal, PercentDrop(cFinal))
	fmt.Fprintf(&b, "  normal:    %.4f (-%.1f%%)\n", dFinal, PercentDrop(dFinal))
	fmt.Fprintf(&b, "  penalty ratio: %.2fx", (Baseline-cFinal)/(Baseline-dFinal))
	return b.String()
}
