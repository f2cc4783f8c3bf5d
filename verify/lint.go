package verify

import (
	"fmt"

	"github.com/sarchlab/tapec/program"
)

// RunLint performs all static checks on a resolved program.
// Issues are ordered by check, then by slot.
func RunLint(r *program.Resolved) []Issue {
	var issues []Issue

	issues = append(issues, checkUnusedLabels(r)...)
	issues = append(issues, checkReachability(r)...)
	issues = append(issues, checkTrivialLoops(r)...)

	return issues
}

func checkUnusedLabels(r *program.Resolved) []Issue {
	var issues []Issue

	// Falling through onto a label is not a reference; only named targets
	// count.
	for _, name := range r.Symbols().Names() {
		if referencedByName(r, name) {
			continue
		}

		slot, _ := r.Symbols().Lookup(name)
		issues = append(issues, Issue{
			Type:    IssueUnusedLabel,
			Index:   slot,
			Message: fmt.Sprintf("Label %q at slot %d is never jumped to", name, slot),
			Details: map[string]interface{}{"label": string(name)},
		})
	}

	return issues
}

func referencedByName(r *program.Resolved, name program.LabelName) bool {
	for i := 0; i < r.Len(); i++ {
		j, ok := r.At(i).(program.Jump)
		if !ok {
			continue
		}

		if j.OnSet == program.Named(name) || j.OnUnset == program.Named(name) {
			return true
		}
	}

	return false
}

// successors returns the slots control can move to from slot i. The halt
// address is omitted.
func successors(r *program.Resolved, i int) []int {
	var next []int

	add := func(a program.Address) {
		if !r.IsHalt(a) {
			next = append(next, int(a))
		}
	}

	switch r.At(i).(type) {
	case program.Jump:
		targets, _ := r.Targets(i)
		add(targets.OnSet)
		if targets.OnUnset != targets.OnSet {
			add(targets.OnUnset)
		}
	case program.Write, program.Seek, program.IO, program.Label, program.Debug:
		add(program.Address(i + 1))
	default:
		panic(fmt.Sprintf("unknown instruction %T", r.At(i)))
	}

	return next
}

func checkReachability(r *program.Resolved) []Issue {
	var issues []Issue

	if r.Len() == 0 {
		return nil
	}

	reached := make([]bool, r.Len())
	stack := []int{0}
	reached[0] = true

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, n := range successors(r, i) {
			if !reached[n] {
				reached[n] = true
				stack = append(stack, n)
			}
		}
	}

	for i, ok := range reached {
		if ok {
			continue
		}

		issues = append(issues, Issue{
			Type:    IssueUnreachable,
			Index:   i,
			Message: fmt.Sprintf("Slot %d (%s) can never execute", i, r.At(i)),
			Details: map[string]interface{}{"instruction": r.At(i).String()},
		})
	}

	return issues
}

// landsOn follows a jump target through label slots and reports whether it
// arrives back at slot self.
func landsOn(r *program.Resolved, a program.Address, self int) bool {
	i := int(a)
	for i < r.Len() && i != self {
		if _, ok := r.At(i).(program.Label); !ok {
			return false
		}
		i++
	}

	return i == self
}

func checkTrivialLoops(r *program.Resolved) []Issue {
	var issues []Issue

	for i := 0; i < r.Len(); i++ {
		targets, ok := r.Targets(i)
		if !ok {
			continue
		}

		if landsOn(r, targets.OnSet, i) && landsOn(r, targets.OnUnset, i) {
			issues = append(issues, Issue{
				Type:    IssueTrivialLoop,
				Index:   i,
				Message: fmt.Sprintf("Jump at slot %d loops forever without touching the tape", i),
				Details: map[string]interface{}{
					"on_set":   int(targets.OnSet),
					"on_unset": int(targets.OnUnset),
				},
			})
		}
	}

	return issues
}
