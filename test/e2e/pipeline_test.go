package e2e

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tapec/api"
	"github.com/sarchlab/tapec/backend"
	"github.com/sarchlab/tapec/parser"
	"github.com/sarchlab/tapec/program"
	"github.com/sarchlab/tapec/resolve"
)

var _ = Describe("Pipeline", func() {
	var (
		outDir string
		driver api.Driver
	)

	BeforeEach(func() {
		var err error
		outDir, err = os.MkdirTemp("", "tapec-e2e")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, outDir)

		driver = api.DriverBuilder{}.
			WithOutputDir(outDir).
			WithLogger(slog.New(slog.NewTextHandler(GinkgoWriter, nil))).
			Build("E2E")
	})

	It("should compile the reference program", func() {
		c, err := driver.Compile("a: + jmp a, b\n-\nb: .")
		Expect(err).NotTo(HaveOccurred())

		Expect(c.Program.Instructions()).To(Equal(program.Program{
			program.Label{Name: "a"},
			program.Write{Mode: program.Set},
			program.Jump{OnSet: program.Named("a"), OnUnset: program.Named("b")},
			program.Write{Mode: program.Unset},
			program.Label{Name: "b"},
			program.IO{Direction: program.Out},
		}))
		Expect(c.Program.Symbols().Entries()).To(Equal(map[program.LabelName]int{"a": 0, "b": 4}))

		targets, _ := c.Program.Targets(2)
		Expect(targets).To(Equal(program.JumpTargets{OnSet: 0, OnUnset: 4}))
		Expect(c.Artifact).To(Equal(backend.Count(6)))

		path, err := driver.Persist(c.Artifact)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(outDir, "Program.h")))
	})

	It("should collapse a seek run", func() {
		c, err := driver.Compile(">>>")
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Program.Instructions()).To(Equal(program.Program{
			program.Seek{Direction: program.Right, Count: 3},
		}))
	})

	It("should ignore comments between instructions", func() {
		c, err := driver.Compile("+ /* c */ -")
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Program.Instructions()).To(Equal(program.Program{
			program.Write{Mode: program.Set},
			program.Write{Mode: program.Unset},
		}))
	})

	It("should resolve a single target jump to halt at the end", func() {
		c, err := driver.Compile("a: jmp a")
		Expect(err).NotTo(HaveOccurred())

		targets, _ := c.Program.Targets(1)
		Expect(c.Program.IsHalt(targets.OnUnset)).To(BeTrue())
	})

	DescribeTable("fails the whole compilation",
		func(src string, want error) {
			path, err := driver.Run(src)
			Expect(errors.Is(err, want)).To(BeTrue(), "got %v", err)
			Expect(path).To(BeEmpty())

			_, statErr := os.Stat(filepath.Join(outDir, "Program.h"))
			Expect(os.IsNotExist(statErr)).To(BeTrue())
		},
		Entry("leftover input", "+$", parser.ErrLeftoverInput),
		Entry("unterminated comment", "+ /*", parser.ErrSyntax),
		Entry("duplicate label", "x: + x:", resolve.ErrDuplicateLabel),
		Entry("unknown target", "jmp missing", resolve.ErrUnknownTarget),
	)
})
