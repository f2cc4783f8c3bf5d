// Package program defines the instruction model of the tape notation, from the
// parsed sequence up to the address-resolved form handed to backends.
package program

import (
	"slices"
	"sort"
	"strings"
)

// Program is an ordered sequence of instructions. Program counter indexing is
// linear over every slot, Label slots included.
type Program []Instruction

func (p Program) String() string {
	parts := make([]string, len(p))
	for i, inst := range p {
		parts[i] = inst.String()
	}

	return strings.Join(parts, " ")
}

// Address is a resolved instruction index. The address equal to the program
// length halts the machine.
type Address int

// JumpTargets holds the resolved destinations of one Jump slot.
type JumpTargets struct {
	OnSet   Address
	OnUnset Address
}

// SymbolTable maps label names to the slot that declares them. It is
// immutable once built.
type SymbolTable struct {
	index map[LabelName]int
}

// NewSymbolTable copies entries into a new table.
func NewSymbolTable(entries map[LabelName]int) SymbolTable {
	index := make(map[LabelName]int, len(entries))
	for name, i := range entries {
		index[name] = i
	}

	return SymbolTable{index: index}
}

// Lookup returns the slot that declares name.
func (t SymbolTable) Lookup(name LabelName) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Len returns the number of labels.
func (t SymbolTable) Len() int {
	return len(t.index)
}

// Names returns the label names ordered by the slot declaring them.
func (t SymbolTable) Names() []LabelName {
	names := make([]LabelName, 0, len(t.index))
	for name := range t.index {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		return t.index[names[i]] < t.index[names[j]]
	})

	return names
}

// Entries returns a copy of the table contents.
func (t SymbolTable) Entries() map[LabelName]int {
	out := make(map[LabelName]int, len(t.index))
	for name, i := range t.index {
		out[name] = i
	}

	return out
}

// Resolved is a validated program whose jump targets are concrete addresses.
// Only the resolver builds one; backends receive nothing else.
type Resolved struct {
	insts   Program
	symbols SymbolTable
	jumps   map[int]JumpTargets
}

// NewResolved assembles a resolved program. The instruction slice and jump map
// are copied so later changes by the caller are not observed.
func NewResolved(
	insts Program,
	symbols SymbolTable,
	jumps map[int]JumpTargets,
) *Resolved {
	j := make(map[int]JumpTargets, len(jumps))
	for i, t := range jumps {
		j[i] = t
	}

	return &Resolved{
		insts:   slices.Clone(insts),
		symbols: symbols,
		jumps:   j,
	}
}

// Len returns the number of slots.
func (r *Resolved) Len() int {
	return len(r.insts)
}

// At returns the instruction in slot i.
func (r *Resolved) At(i int) Instruction {
	return r.insts[i]
}

// Instructions returns a copy of the instruction sequence.
func (r *Resolved) Instructions() Program {
	return slices.Clone(r.insts)
}

// Symbols returns the label table.
func (r *Resolved) Symbols() SymbolTable {
	return r.symbols
}

// Targets returns the resolved destinations of the jump in slot i. The second
// result is false if slot i does not hold a Jump.
func (r *Resolved) Targets(i int) (JumpTargets, bool) {
	t, ok := r.jumps[i]
	return t, ok
}

// Halt returns the address one past the last slot.
func (r *Resolved) Halt() Address {
	return Address(len(r.insts))
}

// IsHalt reports whether a is the halt address of r.
func (r *Resolved) IsHalt(a Address) bool {
	return a == r.Halt()
}
