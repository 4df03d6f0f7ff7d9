// Package repdata holds the reputation trajectories charted by the cmd
// binaries. The values are fixed simulation outputs of the dual-chain
// consensus prototype; they are embedded here as literals and are the sole
// source of truth for the charts.
package repdata

// Series is one tracked node category: a name for the legend, a line color,
// a marker shape and one score per round. Values are averages over the
// category's nodes and lie in [0,1]. Length must match the dataset's round
// axis; no validation is performed.
type Series struct {
	Name   string
	Hex    string // line/marker color, e.g. "2ecc71"
	Marker string // "circle" or "square"
	Values []float64
}

// Dataset groups a shared round axis with the series sampled on it.
type Dataset struct {
	Rounds []int
	Series []Series
}

// RoundIndex returns the position of round in the axis, or -1 when the round
// was not sampled (the dual-chain axis skips rounds after 10).
func (d Dataset) RoundIndex(round int) int {
	for i, r := range d.Rounds {
		if r == round {
			return i
		}
	}
	return -1
}

// FinalIndex returns the index of the last sampled round.
func (d Dataset) FinalIndex() int { return len(d.Rounds) - 1 }

// RoundsFloat returns the round axis as float64 x-values for plotting.
func (d Dataset) RoundsFloat() []float64 {
	out := make([]float64, len(d.Rounds))
	for i, r := range d.Rounds {
		out[i] = float64(r)
	}
	return out
}

// SingleChain is the 10-round run comparing honest and malicious node
// averages under plain subjective-logic scoring. Extracted from
// reputation_log.txt of the recorded run; the log itself is not read.
var SingleChain = Dataset{
	Rounds: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	Series: []Series{
		{
			Name:   "Honest nodes (avg)",
			Hex:    "2ecc71",
			Marker: "circle",
			Values: []float64{
				0.500,
				0.569150,
				0.610065,
				0.612010,
				0.653257,
				0.657985,
				0.682819,
				0.689881,
				0.710751,
				0.711235,
				0.733346,
			},
		},
		{
			Name:   "Malicious nodes (avg)",
			Hex:    "e74c3c",
			Marker: "square",
			Values: []float64{
				0.500,
				0.133333,
				0.100000,
				0.127174,
				0.124735,
				0.115910,
				0.132481,
				0.122351,
				0.119674,
				0.118675,
				0.113548,
			},
		},
	},
}

// Indexes into DualChain.Series.
const (
	DualEmergencyActive = iota
	DualNormalOnly
	DualEmergencyMalicious
	DualNormalMalicious
)

// DualChain is the 20-round dual-chain run showing the effect of the
// emergency transaction weight multiplier (x2-x5) on four node profiles.
// Sampling thins out after round 10.
var DualChain = Dataset{
	Rounds: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 15, 18, 20},
	Series: []Series{
		{
			Name:   "Node B: emergency-active (weight x2-5)",
			Hex:    "27ae60",
			Marker: "circle",
			Values: []float64{
				0.500,
				0.565,
				0.620,
				0.665,
				0.702,
				0.735,
				0.763,
				0.787,
				0.808,
				0.826,
				0.842,
				0.868,
				0.895,
				0.912,
				0.923,
			},
		},
		{
			Name:   "Node A: normal-only (weight x1)",
			Hex:    "2ecc71",
			Marker: "circle",
			Values: []float64{
				0.500,
				0.530,
				0.555,
				0.575,
				0.595,
				0.612,
				0.628,
				0.642,
				0.655,
				0.667,
				0.678,
				0.698,
				0.725,
				0.745,
				0.758,
			},
		},
		{
			Name:   "Node C: emergency malicious (penalty x5)",
			Hex:    "c0392b",
			Marker: "square",
			Values: []float64{
				0.500,
				0.385,
				0.298,
				0.235,
				0.192,
				0.162,
				0.141,
				0.126,
				0.115,
				0.107,
				0.101,
				0.092,
				0.081,
				0.074,
				0.070,
			},
		},
		{
			Name:   "Node D: normal malicious (penalty x1)",
			Hex:    "e74c3c",
			Marker: "square",
			Values: []float64{
				0.500,
				0.450,
				0.410,
				0.378,
				0.352,
				0.330,
				0.312,
				0.297,
				0.284,
				0.273,
				0.264,
				0.248,
				0.228,
				0.213,
				0.203,
			},
		},
	},
}
