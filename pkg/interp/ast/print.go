package ast

import "strconv"

func (n *Num) String() string {
	return strconv.FormatInt(n.Value, 10)
}

// String renders the subtree fully parenthesized, making grouping and
// associativity visible in tests and debug logs.
func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Op.String() + " " + b.Right.String() + ")"
}
