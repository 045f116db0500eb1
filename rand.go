package tetris

import "math/rand/v2"

// KindSource draws the kind of each next piece. Implementations must be
// total; Next is called once per spawn from the session's single driver
// goroutine.
type KindSource interface {
	Next() Kind
}

// NewUniformSource returns the classic randomizer: each kind is drawn
// independently and uniformly from the seven kinds. Uniform draws can
// produce long droughts or streaks of one kind; that is the intended
// behavior (no bag fairness). A nil r uses the global generator.
func NewUniformSource(r *rand.Rand) KindSource {
	return uniformSource{r: r}
}

type uniformSource struct {
	r *rand.Rand
}

func (s uniformSource) Next() Kind {
	if s.r != nil {
		return Kind(s.r.IntN(KindCount))
	}
	return Kind(rand.IntN(KindCount))
}
