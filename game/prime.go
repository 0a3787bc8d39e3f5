package game

// IsPrime checks x by trial division over [2, x-1].
func IsPrime(x int) bool {
	if x < 2 {
		return false
	}
	for i := 2; i < x; i++ {
		if x%i == 0 {
			return false
		}
	}
	return true
}

// LargestPrimeFactor returns x when x is prime. Otherwise it walks down from x-1
// to the largest proper divisor, returning it if prime and recursing into it if
// not. Returns 0 for x < 2.
func LargestPrimeFactor(x int) int {
	if IsPrime(x) {
		return x
	}
	for i := x - 1; i >= 2; i-- {
		if x%i != 0 {
			continue
		}
		if IsPrime(i) {
			return i
		}
		return LargestPrimeFactor(i)
	}
	return 0
}
