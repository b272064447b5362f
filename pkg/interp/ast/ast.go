package ast

// Op identifies the operator carried by a Binary node.
type Op uint8

const (
	Add Op = iota
	Sub
	Mul
	Div
)

func (o Op) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	return "?"
}

// Expr is a node of an expression tree. The two variants are *Num, a leaf
// holding an integer literal, and *Binary, an internal node holding exactly
// two operands. A node is always one or the other, never both.
type Expr interface {
	String() string
	exprNode()
}

// Num is a leaf node holding an integer literal.
type Num struct {
	Value int64
}

// Binary is an internal node applying Op to its operands, left before right
// in textual order.
type Binary struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (n *Num) exprNode() {}

func (b *Binary) exprNode() {}
