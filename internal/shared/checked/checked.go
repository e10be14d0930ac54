// Package checked provides unsigned integer arithmetic that reports failure
// instead of wrapping. Counter and fee math in the voting ledger must never
// silently overflow or truncate.
package checked

// Add returns a+b and false when the sum wraps around.
func Add(a, b uint64) (uint64, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// Sub returns a-b and false when b exceeds a.
func Sub(a, b uint64) (uint64, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

// Mul returns a*b and false when the product wraps around.
func Mul(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	product := a * b
	if product/a != b {
		return 0, false
	}
	return product, true
}

// Div returns a/b and false when b is zero.
func Div(a, b uint64) (uint64, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

// FeeSplit divides amount into the platform fee floor(amount*feePct/100) and
// the net remainder. net+fee always equals amount when ok is true.
func FeeSplit(amount uint64, feePct uint8) (net uint64, fee uint64, ok bool) {
	scaled, ok := Mul(amount, uint64(feePct))
	if !ok {
		return 0, 0, false
	}
	fee, ok = Div(scaled, 100)
	if !ok {
		return 0, 0, false
	}
	net, ok = Sub(amount, fee)
	if !ok {
		return 0, 0, false
	}
	return net, fee, true
}
