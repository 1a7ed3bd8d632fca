// Package engine runs tape programs over a fixed circular byte tape.
package engine

import (
	"io"

	"github.com/takoeight0821/bfi/internal/loop"
)

// TapeLen is the number of cells on the tape.
const TapeLen = 30_000

type flusher interface {
	Flush() error
}

// Engine owns the tape, the pointer and the program counter.
// The tape and the pointer survive across Execute calls; use Reset to clear them.
// An Engine must not be shared between goroutines.
type Engine struct {
	tape    [TapeLen]byte
	pointer int
	pc      int
	loops   loop.Table

	in  io.Reader
	out io.Writer
	buf [1]byte
}

func New(in io.Reader, out io.Writer) *Engine {
	return &Engine{
		loops: make(loop.Table),
		in:    in,
		out:   out,
	}
}

// Execute resolves the loops of source and runs it to completion.
// A structural error is returned before any instruction runs.
func (e *Engine) Execute(source string) error {
	e.pc = 0
	e.loops = make(loop.Table)

	program := []rune(source)
	loops, err := loop.Resolve(program)
	if err != nil {
		return err
	}
	e.loops = loops

	e.run(program)
	return nil
}

// Reset zeroes the tape and returns every index to its initial state.
func (e *Engine) Reset() {
	e.tape = [TapeLen]byte{}
	e.pointer = 0
	e.pc = 0
	e.loops = make(loop.Table)
}

func (e *Engine) Pointer() int {
	return e.pointer
}

// Cell returns the value of cell i. It panics unless 0 <= i < TapeLen.
func (e *Engine) Cell(i int) byte {
	return e.tape[i]
}

// Tape returns a copy of the whole tape.
func (e *Engine) Tape() []byte {
	tape := make([]byte, TapeLen)
	copy(tape, e.tape[:])
	return tape
}

func (e *Engine) run(program []rune) {
	for e.pc < len(program) {
		e.step(program[e.pc])
		e.pc++
	}
}

func (e *Engine) step(ch rune) {
	switch ch {
	case '>':
		e.pointer++
		if e.pointer == TapeLen {
			e.pointer = 0
		}
	case '<':
		if e.pointer == 0 {
			e.pointer = TapeLen - 1
		} else {
			e.pointer--
		}
	case '+':
		e.tape[e.pointer]++
	case '-':
		e.tape[e.pointer]--
	case '.':
		e.write()
	case ',':
		e.read()
	case ']':
		// lands on the '[', the loop's pc++ moves into the body
		if e.tape[e.pointer] != 0 {
			e.pc = e.loops[e.pc]
		}
	}
}

// write errors are dropped; the program keeps running.
func (e *Engine) write() {
	if e.out == nil {
		return
	}
	e.buf[0] = e.tape[e.pointer]
	_, _ = e.out.Write(e.buf[:])
	if f, ok := e.out.(flusher); ok {
		_ = f.Flush()
	}
}

// read stores 0 on EOF or any other read failure.
func (e *Engine) read() {
	if e.in == nil {
		e.tape[e.pointer] = 0
		return
	}
	if _, err := io.ReadFull(e.in, e.buf[:]); err != nil {
		e.tape[e.pointer] = 0
		return
	}
	e.tape[e.pointer] = e.buf[0]
}
