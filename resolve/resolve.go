// Package resolve validates a parsed program and turns its symbolic jump
// targets into instruction addresses.
//
// Labels occupy their own slot: a jump to label L lands on L's slot, which
// then falls through to the next instruction. The fall-through target of the
// last jump in a program resolves to the halt address, one past the last slot.
package resolve

import (
	"fmt"

	"github.com/sarchlab/tapec/program"
)

// Resolve checks p and returns its resolved form. It fails on the first
// duplicate label or unknown jump target; no partial result is returned.
func Resolve(p program.Program) (*program.Resolved, error) {
	symbols, err := collectLabels(p)
	if err != nil {
		return nil, err
	}

	jumps, err := resolveJumps(p, symbols)
	if err != nil {
		return nil, err
	}

	return program.NewResolved(p, program.NewSymbolTable(symbols), jumps), nil
}

// collectLabels is the first pass. It also rejects malformed instructions so
// the second pass and every backend only ever see well-formed slots.
func collectLabels(p program.Program) (map[program.LabelName]int, error) {
	symbols := make(map[program.LabelName]int)

	for i, inst := range p {
		switch inst := inst.(type) {
		case program.Label:
			if !program.ValidLabelName(string(inst.Name)) {
				return nil, invalid(i, "invalid label name %q", inst.Name)
			}

			if first, ok := symbols[inst.Name]; ok {
				return nil, &DuplicateLabelError{
					Name:   inst.Name,
					First:  first,
					Second: i,
				}
			}

			symbols[inst.Name] = i
		case program.Write:
			if inst.Mode != program.Set && inst.Mode != program.Unset {
				return nil, invalid(i, "invalid write mode %d", inst.Mode)
			}
		case program.Seek:
			if inst.Direction != program.Left && inst.Direction != program.Right {
				return nil, invalid(i, "invalid seek direction %d", inst.Direction)
			}

			if inst.Count < 1 {
				return nil, invalid(i, "seek count %d is less than 1", inst.Count)
			}
		case program.IO:
			if inst.Direction != program.In && inst.Direction != program.Out {
				return nil, invalid(i, "invalid io direction %d", inst.Direction)
			}
		case program.Jump, program.Debug:
		case nil:
			return nil, invalid(i, "nil instruction")
		default:
			return nil, invalid(i, "unknown instruction %T", inst)
		}
	}

	return symbols, nil
}

func resolveJumps(
	p program.Program,
	symbols map[program.LabelName]int,
) (map[int]program.JumpTargets, error) {
	jumps := make(map[int]program.JumpTargets)

	for i, inst := range p {
		j, ok := inst.(program.Jump)
		if !ok {
			continue
		}

		onSet, err := resolveTarget(i, j.OnSet, symbols)
		if err != nil {
			return nil, err
		}

		onUnset, err := resolveTarget(i, j.OnUnset, symbols)
		if err != nil {
			return nil, err
		}

		jumps[i] = program.JumpTargets{OnSet: onSet, OnUnset: onUnset}
	}

	return jumps, nil
}

func resolveTarget(
	index int,
	t program.Target,
	symbols map[program.LabelName]int,
) (program.Address, error) {
	switch t.Kind {
	case program.TargetNext:
		return program.Address(index + 1), nil
	case program.TargetNamed:
		addr, ok := symbols[t.Label]
		if !ok {
			return 0, &UnknownTargetError{Index: index, Name: t.Label}
		}

		return program.Address(addr), nil
	default:
		return 0, invalid(index, "invalid target kind %d", t.Kind)
	}
}

func invalid(index int, format string, args ...any) *InvalidInstructionError {
	return &InvalidInstructionError{Index: index, Reason: fmt.Sprintf(format, args...)}
}
