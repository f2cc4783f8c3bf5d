package resolve_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tapec/parser"
	"github.com/sarchlab/tapec/program"
	"github.com/sarchlab/tapec/resolve"
)

func mustParse(src string) program.Program {
	p, err := parser.Parse(src)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	return p
}

var _ = Describe("Resolve", func() {
	It("should resolve an empty program", func() {
		r, err := resolve.Resolve(program.Program{})
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Len()).To(Equal(0))
		Expect(r.Symbols().Len()).To(Equal(0))
		Expect(r.Halt()).To(Equal(program.Address(0)))
	})

	It("should resolve the end to end sample", func() {
		r, err := resolve.Resolve(mustParse("a: + jmp a, b\n-\nb: ."))
		Expect(err).NotTo(HaveOccurred())

		Expect(r.Len()).To(Equal(6))
		Expect(r.Symbols().Entries()).To(Equal(map[program.LabelName]int{
			"a": 0,
			"b": 4,
		}))

		targets, ok := r.Targets(2)
		Expect(ok).To(BeTrue())
		Expect(targets).To(Equal(program.JumpTargets{OnSet: 0, OnUnset: 4}))
	})

	It("should resolve a single target jump to the next slot", func() {
		r, err := resolve.Resolve(mustParse("a: jmp a +"))
		Expect(err).NotTo(HaveOccurred())

		targets, _ := r.Targets(1)
		Expect(targets.OnSet).To(Equal(program.Address(0)))
		Expect(targets.OnUnset).To(Equal(program.Address(2)))
		Expect(r.IsHalt(targets.OnUnset)).To(BeFalse())
	})

	It("should resolve a trailing single target jump to halt", func() {
		r, err := resolve.Resolve(mustParse("a: + jmp a"))
		Expect(err).NotTo(HaveOccurred())

		targets, _ := r.Targets(2)
		Expect(targets.OnUnset).To(Equal(program.Address(3)))
		Expect(r.IsHalt(targets.OnUnset)).To(BeTrue())
	})

	It("should resolve a forward reference", func() {
		r, err := resolve.Resolve(mustParse("jmp end, end + end:"))
		Expect(err).NotTo(HaveOccurred())

		targets, _ := r.Targets(0)
		Expect(targets).To(Equal(program.JumpTargets{OnSet: 2, OnUnset: 2}))
	})

	It("should reject duplicate labels even if unreferenced", func() {
		r, err := resolve.Resolve(mustParse("a: + a: -"))
		Expect(r).To(BeNil())
		Expect(errors.Is(err, resolve.ErrDuplicateLabel)).To(BeTrue())

		var dup *resolve.DuplicateLabelError
		Expect(errors.As(err, &dup)).To(BeTrue())
		Expect(dup.Name).To(Equal(program.LabelName("a")))
		Expect(dup.First).To(Equal(0))
		Expect(dup.Second).To(Equal(2))
	})

	It("should reject duplicate labels that are referenced", func() {
		_, err := resolve.Resolve(mustParse("a: jmp a a:"))
		Expect(errors.Is(err, resolve.ErrDuplicateLabel)).To(BeTrue())
	})

	It("should reject an unknown target at the jump's slot", func() {
		r, err := resolve.Resolve(mustParse("+ + jmp missing"))
		Expect(r).To(BeNil())
		Expect(errors.Is(err, resolve.ErrUnknownTarget)).To(BeTrue())

		var unknown *resolve.UnknownTargetError
		Expect(errors.As(err, &unknown)).To(BeTrue())
		Expect(unknown.Index).To(Equal(2))
		Expect(unknown.Name).To(Equal(program.LabelName("missing")))
	})

	It("should reject an unknown second target", func() {
		_, err := resolve.Resolve(mustParse("a: jmp a, b"))

		var unknown *resolve.UnknownTargetError
		Expect(errors.As(err, &unknown)).To(BeTrue())
		Expect(unknown.Name).To(Equal(program.LabelName("b")))
	})

	It("should report duplicates before unknown targets", func() {
		_, err := resolve.Resolve(mustParse("jmp x a: a:"))
		Expect(errors.Is(err, resolve.ErrDuplicateLabel)).To(BeTrue())
	})

	It("should not share state with its input", func() {
		p := mustParse("a: jmp a")
		r, err := resolve.Resolve(p)
		Expect(err).NotTo(HaveOccurred())

		p[0] = program.Debug{}
		Expect(r.At(0)).To(Equal(program.Label{Name: "a"}))
	})

	DescribeTable("rejects instructions the parser cannot produce",
		func(p program.Program, index int) {
			_, err := resolve.Resolve(p)
			Expect(errors.Is(err, resolve.ErrInvalidInstruction)).To(BeTrue())

			var invalid *resolve.InvalidInstructionError
			Expect(errors.As(err, &invalid)).To(BeTrue())
			Expect(invalid.Index).To(Equal(index))
		},
		Entry("zero length seek",
			program.Program{program.Debug{}, program.Seek{Direction: program.Left}}, 1),
		Entry("empty label name",
			program.Program{program.Label{}}, 0),
		Entry("label name with a space",
			program.Program{program.Label{Name: "a b"}}, 0),
		Entry("nil slot",
			program.Program{nil}, 0),
		Entry("bad target kind",
			program.Program{program.Jump{OnSet: program.Target{Kind: 7}}}, 0),
		Entry("unknown write mode",
			program.Program{program.Write{Mode: 9}}, 0),
		Entry("unknown seek direction",
			program.Program{program.Label{Name: "a"}, program.Seek{Direction: 9, Count: 1}}, 1),
		Entry("unknown io direction",
			program.Program{program.IO{Direction: 9}}, 0),
		Entry("pointer to a variant",
			program.Program{program.Debug{}, &program.Write{}}, 1),
	)

	It("should never hand an out of range mode to a backend", func() {
		r, err := resolve.Resolve(program.Program{program.Write{Mode: program.Unset + 1}})
		Expect(r).To(BeNil())
		Expect(err).To(MatchError(ContainSubstring("invalid write mode 2")))
	})
})
