// Package fibonacci computes Fibonacci numbers by naive recursion.
package fibonacci

import "fmt"

// Fib returns the n-th Fibonacci number with F(0)=0, F(1)=1, F(2)=1 and
// F(k)=F(k-1)+F(k-2) otherwise.
//
// The recursion is deliberately unmemoized and runs in exponential time.
// Results above F(47) wrap around modulo 2^32, following Go's unsigned
// integer semantics. Callers bound n; see MaxN.
func Fib(n uint32) uint32 {
	switch n {
	case 0:
		return 0
	case 1, 2:
		return 1
	}
	return Fib(n-1) + Fib(n-2)
}

// Line renders the demo output for F(n).
func Line(n, result uint32) string {
	return fmt.Sprintf("fib at %d is %d", n, result)
}
