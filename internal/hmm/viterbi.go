package hmm

// Decode runs exact Viterbi decoding over the state set for the given
// observation sequence (length >= 1). It returns the raw probability of the
// best path and the path itself as concept ids.
//
// Tie-break contract: when several predecessors reach the same maximum, the
// one earliest in the state order wins. The same rule picks the final state.
// Callers rely on identical inputs producing identical paths.
func Decode(p *Params, observations []string) (float64, []string) {
	n := len(p.States)
	t := len(observations)
	if t == 0 || n == 0 {
		return 0, nil
	}

	score := make([][]float64, t)
	back := make([][]int, t)
	for i := range score {
		score[i] = make([]float64, n)
		back[i] = make([]int, n)
	}

	for s := 0; s < n; s++ {
		score[0][s] = p.Start[s] * p.EmissionProb(s, observations[0])
	}

	for step := 1; step < t; step++ {
		for s := 0; s < n; s++ {
			best := -1.0
			bestPrev := 0
			for prev := 0; prev < n; prev++ {
				v := score[step-1][prev] * p.Transition[prev][s]
				if v > best {
					best = v
					bestPrev = prev
				}
			}
			score[step][s] = best * p.EmissionProb(s, observations[step])
			back[step][s] = bestPrev
		}
	}

	final := 0
	for s := 1; s < n; s++ {
		if score[t-1][s] > score[t-1][final] {
			final = s
		}
	}

	path := make([]string, t)
	state := final
	for step := t - 1; step >= 0; step-- {
		path[step] = p.States[state]
		state = back[step][state]
	}
	return score[t-1][final], path
}
