// Package parser turns tape notation source text into a program.Program.
//
// The accepted grammar is
//
//	program    := statement*
//	statement  := label_decl | jump | write | seek | io | debug
//	label_decl := label_id ':'
//	jump       := 'jmp' label_id (',' label_id)?
//	write      := '+' | '-'
//	seek       := '<'+ | '>'+
//	io         := ',' | '.'
//	debug      := '!'
//	label_id   := (letter | digit | "'" | '_')+
//
// Whitespace and /* ... */ comments may appear before and after every token,
// including between the characters of a seek run and inside a jump's target
// list. Comments do not nest.
package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sarchlab/tapec/program"
)

const jumpKeyword = "jmp"

// Parse parses a whole source text. It either consumes all input or fails;
// there is no partial result.
func Parse(text string) (program.Program, error) {
	p := &parser{src: text}

	prog := program.Program{}
	for {
		if err := p.skip(); err != nil {
			return nil, err
		}

		if p.eof() {
			return prog, nil
		}

		inst, ok, err := p.statement()
		if err != nil {
			return nil, err
		}

		if !ok {
			return nil, p.errorAt(p.pos, LeftoverInput, "")
		}

		prog = append(prog, inst)
	}
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() rune {
	if p.eof() {
		return utf8.RuneError
	}

	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])

	return r
}

// skip advances past whitespace and block comments.
func (p *parser) skip() error {
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if unicode.IsSpace(r) {
			p.pos += size
			continue
		}

		if !strings.HasPrefix(p.src[p.pos:], "/*") {
			return nil
		}

		end := strings.Index(p.src[p.pos+2:], "*/")
		if end < 0 {
			return p.errorAt(p.pos, Syntax, "unterminated comment")
		}

		p.pos += 2 + end + 2
	}

	return nil
}

// word consumes a label_id and returns it, or returns "" without moving.
func (p *parser) word() string {
	start := p.pos
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !program.IsLabelRune(r) {
			break
		}
		p.pos += size
	}

	return p.src[start:p.pos]
}

func (p *parser) statement() (program.Instruction, bool, error) {
	r := p.peek()

	if program.IsLabelRune(r) {
		inst, err := p.labelOrJump()
		return inst, err == nil, err
	}

	switch r {
	case '+':
		p.pos++
		return program.Write{Mode: program.Set}, true, nil
	case '-':
		p.pos++
		return program.Write{Mode: program.Unset}, true, nil
	case '<':
		inst, err := p.seek('<', program.Left)
		return inst, err == nil, err
	case '>':
		inst, err := p.seek('>', program.Right)
		return inst, err == nil, err
	case ',':
		p.pos++
		return program.IO{Direction: program.In}, true, nil
	case '.':
		p.pos++
		return program.IO{Direction: program.Out}, true, nil
	case '!':
		p.pos++
		return program.Debug{}, true, nil
	}

	return nil, false, nil
}

// labelOrJump handles statements starting with a label_id. A label
// declaration wins over the jump keyword, so "jmp:" declares a label.
func (p *parser) labelOrJump() (program.Instruction, error) {
	start := p.pos
	name := p.word()

	if err := p.skip(); err != nil {
		return nil, err
	}

	if p.peek() == ':' {
		p.pos++
		return program.Label{Name: program.LabelName(name)}, nil
	}

	if name == jumpKeyword {
		return p.jump()
	}

	return nil, p.errorAt(start, Syntax, "expected ':' after label "+strconv.Quote(name))
}

// jump parses the target list after the jmp keyword. A comma that is not
// followed by a label_id is left in place to be parsed as input.
func (p *parser) jump() (program.Instruction, error) {
	first := p.word()
	if first == "" {
		return nil, p.errorAt(p.pos, Syntax, "expected jump target after 'jmp'")
	}

	inst := program.Jump{
		OnSet:   program.Named(program.LabelName(first)),
		OnUnset: program.NextInstruction(),
	}

	mark := p.pos
	if err := p.skip(); err != nil {
		return nil, err
	}

	if p.peek() != ',' {
		p.pos = mark
		return inst, nil
	}
	p.pos++

	if err := p.skip(); err != nil {
		return nil, err
	}

	second := p.word()
	if second == "" {
		p.pos = mark
		return inst, nil
	}

	inst.OnUnset = program.Named(program.LabelName(second))

	return inst, nil
}

// seek collapses a run of c characters into one Seek.
func (p *parser) seek(c byte, dir program.SeekDirection) (program.Instruction, error) {
	count := 0
	for {
		p.pos++
		count++

		mark := p.pos
		if err := p.skip(); err != nil {
			return nil, err
		}

		if p.eof() || p.src[p.pos] != c {
			p.pos = mark
			break
		}
	}

	return program.Seek{Direction: dir, Count: count}, nil
}

func (p *parser) errorAt(offset int, kind ErrorKind, msg string) *Error {
	line, col := position(p.src, offset)

	return &Error{
		Kind:      kind,
		Message:   msg,
		Remainder: p.src[offset:],
		Offset:    offset,
		Line:      line,
		Column:    col,
	}
}

// position converts a byte offset into a 1-based line and rune column.
func position(src string, offset int) (line, col int) {
	before := src[:offset]
	line = strings.Count(before, "\n") + 1

	lineStart := strings.LastIndexByte(before, '\n') + 1
	col = utf8.RuneCountInString(before[lineStart:]) + 1

	return line, col
}
