/*
Package divide selects an integer division strategy for a fixed divisor.

Block-structured views divide every coordinate by a block size which is fixed at
construction time. Choosing the cheapest way to divide once, instead of on every
access, is what the strategies in this package are for. All strategies produce
identical results for non-negative dividends.
*/
package divide

import (
	"fmt"
	"math/bits"
)

// Divider divides non-negative integers by a divisor fixed at creation.
type Divider interface {
	// DivMod returns x / n and x % n.
	DivMod(x int) (q, r int)
	// Divisor returns n.
	Divisor() int
}

// By returns the division strategy for divisor n:
// identity for 1, shift and mask for powers of two, plain division otherwise.
// n must be positive.
func By(n int) Divider {
	switch {
	case n <= 0:
		panic(fmt.Sprintf("divide: divisor must be positive, is %d", n))
	case n == 1:
		return Identity{}
	case n&(n-1) == 0:
		return Shift{shift: uint(bits.TrailingZeros(uint(n))), mask: n - 1}
	}
	return Plain{n: n}
}

// Identity divides by 1.
type Identity struct{}

// DivMod returns (x, 0).
func (Identity) DivMod(x int) (int, int) { return x, 0 }

// Divisor returns 1.
func (Identity) Divisor() int { return 1 }

func (Identity) String() string { return "/1" }

// Shift divides by a power of two.
type Shift struct {
	shift uint
	mask  int
}

// DivMod returns x >> log2(n) and x & (n-1).
func (s Shift) DivMod(x int) (int, int) {
	return x >> s.shift, x & s.mask
}

// Divisor returns n.
func (s Shift) Divisor() int { return s.mask + 1 }

func (s Shift) String() string { return fmt.Sprintf(">>%d", s.shift) }

// Plain divides by an arbitrary positive divisor.
type Plain struct {
	n int
}

// DivMod returns x / n and x % n.
func (p Plain) DivMod(x int) (int, int) {
	return x / p.n, x % p.n
}

// Divisor returns n.
func (p Plain) Divisor() int { return p.n }

func (p Plain) String() string { return fmt.Sprintf("/%d", p.n) }
