package utils

import "math/rand"

func AlnumString(l int) string {
	a := make([]byte, l)
	for i := 0; i < l; i++ {
		index := rand.Intn(62)
		if index < 10 {
			a[i] = byte(48 + index)
		} else if index < 36 {
			a[i] = byte(55 + index)
		} else {
			a[i] = byte(61 + index)
		}
	}
	return string(a)
}

// IsPrime reports whether n is prime. Hash table sizes must be prime for the
// byte-sum hash to spread keys acceptably.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}
