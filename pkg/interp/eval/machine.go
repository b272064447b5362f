package eval

import (
	"errors"

	"github.com/devbumbuna/bodmas/pkg/interp/ast"
)

var (
	ErrDivisionByZero = errors.New("eval: division by zero")
	ErrStackOverflow  = errors.New("eval: stack overflow")
	ErrStackUnderflow = errors.New("eval: stack underflow")
)

// StackDepth bounds the operand stack. Expressions nested deeply enough to
// exceed it fail with ErrStackOverflow instead of growing without limit.
const StackDepth = 32

// Machine evaluates expression trees on a fixed-size operand stack. It is
// reusable across lines: Eval clears the stack before and after every run,
// so no state survives from one evaluation to the next.
type Machine struct {
	stack [StackDepth]int64
	sp    int
}

// New creates a machine with an empty operand stack.
func New() *Machine {
	return &Machine{}
}

// Reset clears the operand stack.
func (m *Machine) Reset() {
	m.sp = 0
}

// push adds a value to the stack. Panics on overflow.
func (m *Machine) push(v int64) {
	if m.sp >= StackDepth {
		panic(ErrStackOverflow)
	}
	m.stack[m.sp] = v
	m.sp++
}

// pop removes and returns the top value from the stack. Panics on
// underflow.
func (m *Machine) pop() int64 {
	if m.sp <= 0 {
		panic(ErrStackUnderflow)
	}
	m.sp--
	return m.stack[m.sp]
}

// Eval traverses root in post order, pushing operands and applying
// operators on the machine stack, and returns the single value left when
// the traversal completes. The root must be non-nil.
func (m *Machine) Eval(root ast.Expr) (result int64, err error) {
	m.Reset()
	defer m.Reset()

	// Stack faults surface as sentinel panics from push/pop.
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && (errors.Is(e, ErrStackOverflow) || errors.Is(e, ErrStackUnderflow)) {
				err = e
				return
			}
			panic(r)
		}
	}()

	if err := m.walk(root); err != nil {
		return 0, err
	}
	if m.sp == 0 {
		// A successful traversal leaves exactly one value. An empty stack
		// here means the tree violated its own invariants, not that the
		// user wrote a bad expression.
		return 0, ErrStackUnderflow
	}
	return m.pop(), nil
}

// walk evaluates both children of a node before the node itself.
func (m *Machine) walk(node ast.Expr) error {
	switch n := node.(type) {
	case *ast.Num:
		m.push(n.Value)
		return nil
	case *ast.Binary:
		if err := m.walk(n.Left); err != nil {
			return err
		}
		if err := m.walk(n.Right); err != nil {
			return err
		}
		return m.apply(n.Op)
	}
	return nil
}

// apply pops the right operand, then the left, and pushes left OP right.
// The pop order preserves operand order for the non-commutative operators.
func (m *Machine) apply(op ast.Op) error {
	right := m.pop()
	left := m.pop()
	switch op {
	case ast.Add:
		left += right
	case ast.Sub:
		left -= right
	case ast.Mul:
		left *= right
	case ast.Div:
		if right == 0 {
			return ErrDivisionByZero
		}
		// Go integer division truncates toward zero.
		left /= right
	}
	m.push(left)
	return nil
}
