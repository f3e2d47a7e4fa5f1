package factory

// MakespanRewardScorer charges -1 per elapsed tick (pushing the agent
// toward a short makespan) and awards a lump-sum bonus on termination that
// shrinks with the final simulation time: TerminationBonus / (1 + time).
// No time budget enters the bonus. Truncation (including deadlock) earns no
// bonus.
type MakespanRewardScorer struct {
	// TerminationBonus is the payout for a terminated run, divided by one
	// plus the final simulation time so that finishing earlier scores
	// strictly higher than finishing later. Zero means 1.
	TerminationBonus float64
}

func (m MakespanRewardScorer) Score(outcome StepOutcome) float64 {
	elapsed := float64(outcome.NewState.Time - outcome.OldState.Time)
	reward := -elapsed
	if outcome.Terminated {
		bonus := m.TerminationBonus
		if bonus == 0 {
			bonus = 1
		}
		reward += bonus / (1 + float64(outcome.NewState.Time))
	}
	return reward
}
