package snake

import "math"

// Stats accumulates scores across the lives of one session.
type Stats struct {
	high  int
	lives []int
}

// Observe raises the high score to score if it is larger.
func (s *Stats) Observe(score int) {
	s.high = max(s.high, score)
}

// EndLife records the final score of a finished life.
func (s *Stats) EndLife(score int) {
	s.Observe(score)
	s.lives = append(s.lives, score)
}

// High returns the best score seen this session.
func (s *Stats) High() int {
	return s.high
}

// Lives returns the number of finished lives.
func (s *Stats) Lives() int {
	return len(s.lives)
}

// Scores returns a copy of the per-life final scores in order.
func (s *Stats) Scores() []int {
	out := make([]int, len(s.lives))
	copy(out, s.lives)
	return out
}

// Average returns the mean final score, rounded to one decimal place.
// It is 0 before any life has finished.
func (s *Stats) Average() float64 {
	if len(s.lives) == 0 {
		return 0
	}
	sum := 0
	for _, v := range s.lives {
		sum += v
	}
	return roundTo(float64(sum)/float64(len(s.lives)), 1)
}

// Reset clears all accumulators.
func (s *Stats) Reset() {
	s.high = 0
	s.lives = s.lives[:0]
}

// roundTo rounds v to the given number of decimal places. Whole numbers
// are returned unchanged.
func roundTo(v float64, places int) float64 {
	if v == math.Trunc(v) {
		return v
	}
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
