package wavelet

import (
	"fmt"
	"math"

	"github.com/seistools/tracedsp/dsp/core"
)

// Family selects the orthogonal wavelet used for decomposition and
// reconstruction.
type Family int

const (
	FamilyHaar Family = iota
	FamilyDB2
	FamilyDB4
	FamilyDB6
	FamilySym4
)

func (f Family) String() string {
	switch f {
	case FamilyHaar:
		return "haar"
	case FamilyDB2:
		return "db2"
	case FamilyDB4:
		return "db4"
	case FamilyDB6:
		return "db6"
	case FamilySym4:
		return "sym4"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// ParseFamily maps a family name ("haar", "db2", "db4", "db6", "sym4")
// to its constant.
func ParseFamily(name string) (Family, error) {
	switch name {
	case "haar":
		return FamilyHaar, nil
	case "db2":
		return FamilyDB2, nil
	case "db4":
		return FamilyDB4, nil
	case "db6":
		return FamilyDB6, nil
	case "sym4":
		return FamilySym4, nil
	default:
		return 0, fmt.Errorf("%w: wavelet: unknown family %q", core.ErrParameter, name)
	}
}

// Orthonormal scaling coefficients. Each filter sums to sqrt(2) and
// carries unit energy; the matching wavelet filter is its
// alternating-sign mirror.
var (
	haarScaling = []float64{math.Sqrt2 / 2, math.Sqrt2 / 2}

	db2Scaling = []float64{
		(1 + math.Sqrt(3)) / (4 * math.Sqrt2),
		(3 + math.Sqrt(3)) / (4 * math.Sqrt2),
		(3 - math.Sqrt(3)) / (4 * math.Sqrt2),
		(1 - math.Sqrt(3)) / (4 * math.Sqrt2),
	}

	db4Scaling = []float64{
		0.23037781330885523,
		0.71484657055254153,
		0.63088076792959036,
		-0.02798376941698385,
		-0.18703481171888114,
		0.03084138183598697,
		0.03288301166698295,
		-0.01059740178499728,
	}

	db6Scaling = []float64{
		0.11154074335008017,
		0.49462389039838540,
		0.75113390802157750,
		0.31525035170924320,
		-0.22626469396516913,
		-0.12976686756709563,
		0.09750160558707936,
		0.02752286553001629,
		-0.03158203931803116,
		0.00055384220099380,
		0.00477725751101065,
		-0.00107730108530848,
	}

	sym4Scaling = []float64{
		0.03222310060404270,
		-0.01260396726203783,
		-0.09921954357684722,
		0.29785779560527736,
		0.80373875180591614,
		0.49761866763201545,
		-0.02963552764599851,
		-0.07576571478927333,
	}
)

// filters returns the scaling (lowpass) and wavelet (highpass) filter
// pair for the family. The wavelet filter is derived by the quadrature
// mirror rule g[k] = (-1)^k h[L-1-k].
func (f Family) filters() (h, g []float64, err error) {
	switch f {
	case FamilyHaar:
		h = haarScaling
	case FamilyDB2:
		h = db2Scaling
	case FamilyDB4:
		h = db4Scaling
	case FamilyDB6:
		h = db6Scaling
	case FamilySym4:
		h = sym4Scaling
	default:
		return nil, nil, fmt.Errorf("%w: wavelet: unknown family %d", core.ErrParameter, int(f))
	}
	return h, mirrorFilter(h), nil
}

func mirrorFilter(h []float64) []float64 {
	g := make([]float64, len(h))
	for k := range g {
		g[k] = h[len(h)-1-k]
		if k%2 == 1 {
			g[k] = -g[k]
		}
	}
	return g
}
