package math

import "github.com/chewxy/math32"

// Clamp limits x to the range [min, max].
func Clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// Lerp linearly interpolates from a to b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Exp returns e**x.
func Exp(x float32) float32 {
	return math32.Exp(x)
}
