package probability

import "math"

// Abramowitz & Stegun 26.2.17 coefficients. Maximum absolute error 7.5e-8.
const (
	asP  = 0.2316419
	asB1 = 0.319381530
	asB2 = -0.356563782
	asB3 = 1.781477937
	asB4 = -1.821255978
	asB5 = 1.330274429

	sqrt2Pi = 2.5066282746
)

// sigmaFloor is the deviation below which a distribution is treated as a
// point mass.
const sigmaFloor = 1e-9

// NormalCDF approximates the standard normal CDF Φ(z).
func NormalCDF(z float64) float64 {
	absZ := math.Abs(z)
	t := 1 / (1 + asP*absZ)
	poly := t * (asB1 + t*(asB2+t*(asB3+t*(asB4+t*asB5))))
	q := math.Exp(-absZ*absZ/2) / sqrt2Pi * poly
	if z >= 0 {
		return 1 - q
	}
	return q
}

// AtLeast approximates P(X >= k) for X ~ Binomial(n, p) with a normal
// approximation and continuity correction.
func AtLeast(k, n int, p float64) float64 {
	if k <= 0 {
		return 1
	}
	if n == 0 || k > n {
		return 0
	}
	mu := float64(n) * p
	sigma := math.Sqrt(float64(n) * p * (1 - p))
	if sigma < sigmaFloor {
		if float64(k) <= mu {
			return 1
		}
		return 0
	}
	return 1 - NormalCDF((float64(k)-0.5-mu)/sigma)
}

// Streak returns the exact probability of at least one run of k successes
// in n independent Bernoulli(p) trials.
//
// a[i] is the probability of no such run in the first i trials:
// a[i] = 1 for i < k, and a[i] = Σ_{j=1..k} p^(j-1) (1-p) a[i-j] otherwise.
func Streak(k, n int, p float64) float64 {
	if k <= 0 {
		return 1
	}
	if n < k {
		return 0
	}
	a := make([]float64, n+1)
	for i := 0; i < k; i++ {
		a[i] = 1
	}
	for i := k; i <= n; i++ {
		pj := 1.0 // p^(j-1)
		for j := 1; j <= k; j++ {
			a[i] += pj * (1 - p) * a[i-j]
			pj *= p
		}
	}
	return 1 - a[n]
}
