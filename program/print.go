package program

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Listing renders a resolved program as a table with one row per slot.
func Listing(r *Resolved) string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Program (%d slots, %d labels)", r.Len(), r.Symbols().Len()))
	t.AppendHeader(table.Row{"#", "Kind", "Instruction", "On Set", "On Unset"})

	for i := 0; i < r.Len(); i++ {
		inst := r.At(i)
		onSet, onUnset := "", ""

		if targets, ok := r.Targets(i); ok {
			onSet = r.describe(targets.OnSet)
			onUnset = r.describe(targets.OnUnset)
		}

		t.AppendRow(table.Row{i, Name(inst), inst.String(), onSet, onUnset})
	}

	return t.Render()
}

func (r *Resolved) describe(a Address) string {
	if r.IsHalt(a) {
		return "halt"
	}

	return fmt.Sprintf("%d", a)
}
