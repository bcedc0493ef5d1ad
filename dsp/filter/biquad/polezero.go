package biquad

import "math/cmplx"

// Poles returns the z-plane poles of the section denominator:
//
//	1 + A1*z^-1 + A2*z^-2 = 0
//
// For first-order sections (A2 = 0), the second pole is 0.
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Stable reports whether both poles lie strictly inside the unit circle.
func (c *Coefficients) Stable() bool {
	poles := c.Poles()
	return cmplx.Abs(poles[0]) < 1 && cmplx.Abs(poles[1]) < 1
}

// Stable reports whether every section of a cascade is stable.
func Stable(coeffs []Coefficients) bool {
	for i := range coeffs {
		if !coeffs[i].Stable() {
			return false
		}
	}
	return true
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}
		return [2]complex128{complex(-c/b, 0), 0}
	}

	discriminant := complex(b*b-4*a*c, 0)
	sqrtDiscriminant := cmplx.Sqrt(discriminant)
	den := complex(2*a, 0)
	return [2]complex128{
		(-complex(b, 0) + sqrtDiscriminant) / den,
		(-complex(b, 0) - sqrtDiscriminant) / den,
	}
}
