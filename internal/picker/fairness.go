package picker

import (
	"errors"
	"math"
	"strconv"
)

var ErrNoTrials = errors.New("fairness run needs names and trials > 0")

// Stats is the spread of win counts across pool entries.
type Stats struct {
	Mean   float64
	StdDev float64
}

// Fairness reports how often each pool position landed in each display slot.
type Fairness struct {
	Trials int
	// Positions[slot][i] counts how often pool entry i was shown at slot.
	Positions [][]int
	// Wins[i] counts how often pool entry i was the winner (last slot).
	Wins []int
	// ChiSquare is Pearson's statistic for Wins against a uniform draw,
	// with len(Wins)-1 degrees of freedom.
	ChiSquare float64
	WinStats  Stats
}

// RunFairness shuffles names trials times and tallies where every entry ends up.
// Entries are tracked by position so duplicate names are counted separately.
func RunFairness(names []string, trials int, rng RandomSource) (Fairness, error) {
	n := len(names)
	if n == 0 || trials <= 0 {
		return Fairness{}, ErrNoTrials
	}
	if rng == nil {
		rng = DefaultRNG()
	}

	ids := make([]string, n)
	byID := make(map[string]int, n)
	for i := range ids {
		ids[i] = strconv.Itoa(i)
		byID[ids[i]] = i
	}

	positions := make([][]int, n)
	for slot := range positions {
		positions[slot] = make([]int, n)
	}
	for t := 0; t < trials; t++ {
		for slot, id := range Shuffle(ids, rng) {
			positions[slot][byID[id]]++
		}
	}

	wins := append([]int(nil), positions[n-1]...)
	expected := float64(trials) / float64(n)
	var chi float64
	for _, w := range wins {
		d := float64(w) - expected
		chi += d * d / expected
	}

	return Fairness{
		Trials:    trials,
		Positions: positions,
		Wins:      wins,
		ChiSquare: chi,
		WinStats:  winSpread(wins),
	}, nil
}

// winSpread returns the mean and population standard deviation of per-entry win counts.
func winSpread(wins []int) Stats {
	if len(wins) == 0 {
		return Stats{}
	}
	n := float64(len(wins))
	var sum, sq float64
	for _, w := range wins {
		sum += float64(w)
		sq += float64(w) * float64(w)
	}
	mean := sum / n
	return Stats{Mean: mean, StdDev: math.Sqrt(math.Max(0, sq/n-mean*mean))}
}
