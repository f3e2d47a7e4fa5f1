package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/proto-lab-ro/jobshoplab/jobshop"
	"github.com/proto-lab-ro/jobshoplab/jobshop/timemachine"
)

// Result is everything one internal Step produced, ready to fold into a
// HistoryRecord.
type Result struct {
	State     jobshop.State
	Applied   []jobshop.ComponentTransition
	Message   string
	SubStates []jobshop.State
}

// Step implements §4.8's internal tick up to validation; it does not record
// history, the caller folds the returned Result into a HistoryRecord. chosenStart is the
// single agent-chosen start transition for this tick, or nil for NoOp
// (§4.8 step 6). A *jobshop.InvalidTransitionError returned from a
// chosenStart attempt is the caller's (middleware's) signal to consume a
// truncation joker; every other returned error is fatal per §7.
func Step(s jobshop.State, inst jobshop.Instance, rng *rand.Rand, chosenStart *jobshop.ComponentTransition) (Result, error) {
	cur := s
	var applied []jobshop.ComponentTransition
	var subStates []jobshop.State
	notes := map[int]string{}

	// Steps 1-2: compute and advance to the next event time.
	cur.Time = timemachine.NextEventTime(cur)

	// Step 3: resolved time dependencies fire first.
	for _, dep := range sortedDeps(timemachine.ResolvedDependencies(cur, inst)) {
		next, err := applyStart(cur, dep, inst, rng)
		if err != nil {
			if isRejection(err) {
				logrus.Warnf("[tick %07d] rejected resolved dependency %s(%s): %v", cur.Time, dep.Tag, dep.ComponentID, err)
				continue
			}
			return Result{State: cur, Applied: applied}, err
		}
		logrus.Warnf("[tick %07d] resolving TimeDependency %s(%s)", cur.Time, dep.Tag, dep.ComponentID)
		cur = next
		applied = append(applied, dep)
		subStates = append(subStates, cur)
	}

	// Step 4: due outage entries, highest priority among due transitions.
	due := timemachine.DueOutages(cur)
	sort.SliceStable(due, func(i, j int) bool { return due[i].ComponentID < due[j].ComponentID })
	for _, po := range due {
		next, t, err := applyOutageEnter(cur, po, inst)
		if err != nil {
			if isRejection(err) {
				logrus.Warnf("[tick %07d] rejected outage entry %s(%s): %v", cur.Time, t.Tag, t.ComponentID, err)
				continue
			}
			return Result{State: cur, Applied: applied}, err
		}
		logrus.Infof("[tick %07d] %s(%s)", next.Time, t.Tag, t.ComponentID)
		cur = removePendingOutage(next, po)
		notes[len(applied)] = string(po.Type)
		applied = append(applied, t)
		subStates = append(subStates, cur)
	}

	// Step 5: due completions, including outage exits (which resample and
	// rearm their schedule per §4.7).
	for _, t := range GenerateCompletions(cur) {
		outageID := activeOutageID(cur, t.ComponentID)
		next, err := applyCompletion(cur, t, inst, rng)
		if err != nil {
			if isRejection(err) {
				logrus.Warnf("[tick %07d] rejected completion %s(%s): %v", cur.Time, t.Tag, t.ComponentID, err)
				continue
			}
			return Result{State: cur, Applied: applied}, err
		}
		logrus.Infof("[tick %07d] %s(%s)", next.Time, t.Tag, t.ComponentID)
		cur = next
		applied = append(applied, t)
		if t.Tag == jobshop.TransitionMachineOutageExit || t.Tag == jobshop.TransitionTransportOutageExit {
			cur = rearmOutage(cur, inst, t.ComponentID, outageID, rng)
		}
		subStates = append(subStates, cur)
	}

	// Step 6: exactly one agent-chosen start transition, or NoOp.
	if chosenStart != nil {
		next, err := applyStart(cur, *chosenStart, inst, rng)
		if err != nil {
			return Result{State: cur, Applied: applied}, err
		}
		logrus.Infof("[tick %07d] %s(%s)", next.Time, chosenStart.Tag, chosenStart.ComponentID)
		cur = next
		applied = append(applied, *chosenStart)
	}

	// Step 7: validate against the structural invariants a single State
	// can check; monotonic time is checked here too since Step is exactly
	// the boundary between consecutive emitted states.
	if cur.Time < s.Time {
		return Result{State: cur, Applied: applied}, &jobshop.InconsistentStateError{Reason: "time moved backwards"}
	}
	if err := cur.Validate(inst); err != nil {
		return Result{State: cur, Applied: applied}, err
	}

	return Result{State: cur, Applied: applied, Message: describe(applied, notes), SubStates: subStates}, nil
}

func isRejection(err error) bool {
	_, ok := err.(*jobshop.InvalidTransitionError)
	return ok
}

func sortedDeps(deps []jobshop.ComponentTransition) []jobshop.ComponentTransition {
	out := append([]jobshop.ComponentTransition(nil), deps...)
	sortByComponentID(out)
	return out
}

func removePendingOutage(s jobshop.State, po jobshop.PendingOutage) jobshop.State {
	out := make([]jobshop.PendingOutage, 0, len(s.PendingOutages))
	for _, p := range s.PendingOutages {
		if p.ComponentID == po.ComponentID && p.OutageID == po.OutageID && p.DueAt == po.DueAt {
			continue
		}
		out = append(out, p)
	}
	s.PendingOutages = out
	return s
}

func rearmOutage(s jobshop.State, inst jobshop.Instance, componentID, outageID string, rng *rand.Rand) jobshop.State {
	cfg, ok := timemachine.FindOutageConfig(inst, componentID, outageID)
	if !ok {
		return s
	}
	po := timemachine.ArmOutage(componentID, cfg, s.Time, rng)
	s.PendingOutages = append(append([]jobshop.PendingOutage(nil), s.PendingOutages...), po)
	return s
}

// describe renders applied into the human-readable HistoryRecord.Message.
// notes carries an outage's informational type tag, keyed by the index
// into applied of the outage-enter transition it annotates, since
// ComponentTransition itself carries no room for it.
func describe(applied []jobshop.ComponentTransition, notes map[int]string) string {
	if len(applied) == 0 {
		return "no-op"
	}
	parts := make([]string, len(applied))
	for i, t := range applied {
		if note := notes[i]; note != "" {
			parts[i] = fmt.Sprintf("%s(%s,%s)", t.Tag, t.ComponentID, note)
			continue
		}
		parts[i] = fmt.Sprintf("%s(%s)", t.Tag, t.ComponentID)
	}
	return strings.Join(parts, ", ")
}
