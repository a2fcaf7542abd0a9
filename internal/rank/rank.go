package rank

// Rank is a tier label derived purely from cumulative stars.
type Rank string

const (
	Elite       Rank = "Elite"
	Master      Rank = "Master"
	Grandmaster Rank = "Grandmaster"
	Epic        Rank = "Epic"
	Legend      Rank = "Legend"
	Mythic      Rank = "Mythic"
)

// thresholds lists ranks in ascending order with the stars needed to reach each.
var thresholds = []struct {
	rank  Rank
	stars int
}{
	{Elite, 0},
	{Master, 100},
	{Grandmaster, 300},
	{Epic, 600},
	{Legend, 1000},
	{Mythic, 1500},
}

// All returns every rank in ascending order.
func All() []Rank {
	ranks := make([]Rank, len(thresholds))
	for i, t := range thresholds {
		ranks[i] = t.rank
	}
	return ranks
}

// FromStars returns the highest rank whose threshold is at most stars.
func FromStars(stars int) Rank {
	for i := len(thresholds) - 1; i >= 0; i-- {
		if stars >= thresholds[i].stars {
			return thresholds[i].rank
		}
	}
	return Elite
}

// Threshold returns the stars needed to reach r.
func (r Rank) Threshold() int {
	for _, t := range thresholds {
		if t.rank == r {
			return t.stars
		}
	}
	return 0
}

// Next returns the rank above r and false if r is already the top rank.
func (r Rank) Next() (Rank, bool) {
	for i, t := range thresholds {
		if t.rank == r && i+1 < len(thresholds) {
			return thresholds[i+1].rank, true
		}
	}
	return r, false
}

// Icon returns the display icon for the rank.
func (r Rank) Icon() string {
	switch r {
	case Elite:
		return "🥉"
	case Master:
		return "🥈"
	case Grandmaster:
		return "🥇"
	case Epic:
		return "💎"
	case Legend:
		return "👑"
	case Mythic:
		return "🏆"
	default:
		return "🥉"
	}
}

// Standing describes where a star total sits within its rank band.
type Standing struct {
	Current     Rank
	Next        Rank
	HasNext     bool
	Percent     float64 // 0.0-1.0 progress through the current band
	StarsNeeded int
}

// StandingFor computes rank progress for a star total.
// At the top rank Percent is 1 and StarsNeeded is 0.
func StandingFor(stars int) Standing {
	cur := FromStars(stars)
	next, ok := cur.Next()
	if !ok {
		return Standing{Current: cur, Next: cur, Percent: 1}
	}

	lo, hi := cur.Threshold(), next.Threshold()
	pct := float64(stars-lo) / float64(hi-lo)
	if pct < 0 {
		pct = 0
	}
	return Standing{
		Current:     cur,
		Next:        next,
		HasNext:     true,
		Percent:     pct,
		StarsNeeded: hi - stars,
	}
}
