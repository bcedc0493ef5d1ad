package core

import (
	"math"
	"math/bits"
)

// Nyquist returns half the sample rate, the highest frequency that data
// sampled at sampleRate Hz can represent.
func Nyquist(sampleRate float64) float64 {
	return sampleRate / 2
}

// NextPow2 returns the smallest power of two >= n, with a minimum of 1.
// Transform sizes round up through it.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// LinearToDB converts a linear amplitude to decibels (20·log10). Per
// math.Log10, zero maps to -Inf and negative input to NaN.
func LinearToDB(amplitude float64) float64 {
	return 20 * math.Log10(amplitude)
}

// LinearPowerToDB converts a linear power to decibels (10·log10). Per
// math.Log10, zero maps to -Inf and negative input to NaN.
func LinearPowerToDB(power float64) float64 {
	return 10 * math.Log10(power)
}

// DBPowerToLinear converts decibels to a linear power ratio, inverting
// LinearPowerToDB.
func DBPowerToLinear(db float64) float64 {
	return math.Pow(10, db/10)
}

// MaxAbs returns the largest absolute value in buf, 0 for empty input.
func MaxAbs(buf []float64) float64 {
	var peak float64
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	return peak
}
