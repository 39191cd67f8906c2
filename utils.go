package freqtable

// leastPrime is the largest capacity accepted without a primality check.
const leastPrime = 3

// IsPrime reports whether n is prime by trial division up to its square root.
// Capacities 1 to 3 are accepted unconditionally.
func IsPrime(n int) bool {
	if n <= 0 {
		return false
	}
	if n <= leastPrime {
		return true
	}

	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}

	return true
}

// NextPrime returns the smallest prime that is >= n.
func NextPrime(n int) int {
	if n <= 0 {
		n = 1
	}

	for !IsPrime(n) {
		n++
	}

	return n
}

// growCapacity returns the capacity a table of the given size grows to.
func growCapacity(capacity int) int {
	return NextPrime(capacity*2 + 1)
}
