package forecast

import (
	"errors"
	"math"
	"math/cmplx"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Reservoir is a leaky echo-state network: a fixed random recurrent layer
// whose state summarizes the input history. Only the readout is trained.
type Reservoir struct {
	size   int
	inputs int
	leak   float64
	win    *mat.Dense // size x (inputs+1), first column is the bias
	w      *mat.Dense // size x size
}

// ReservoirConfig sizes and scales the recurrent layer.
type ReservoirConfig struct {
	Size           int
	Inputs         int
	SpectralRadius float64
	Density        float64
	InputScale     float64
	Leak           float64
	Seed           uint64
}

// NewReservoir draws a sparse recurrent matrix and rescales it to the
// configured spectral radius. The same seed always yields the same reservoir.
func NewReservoir(cfg ReservoirConfig) (*Reservoir, error) {
	if cfg.Size <= 0 || cfg.Inputs <= 0 {
		return nil, errors.New("reservoir size and inputs must be positive")
	}
	if cfg.Leak <= 0 || cfg.Leak > 1 {
		return nil, errors.New("leak rate must be in (0, 1]")
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	uniform := func(scale float64) float64 { return (rng.Float64()*2 - 1) * scale }

	win := mat.NewDense(cfg.Size, cfg.Inputs+1, nil)
	for i := 0; i < cfg.Size; i++ {
		for j := 0; j <= cfg.Inputs; j++ {
			win.Set(i, j, uniform(cfg.InputScale))
		}
	}

	w := mat.NewDense(cfg.Size, cfg.Size, nil)
	for i := 0; i < cfg.Size; i++ {
		for j := 0; j < cfg.Size; j++ {
			if rng.Float64() < cfg.Density {
				w.Set(i, j, uniform(1))
			}
		}
	}

	radius, err := spectralRadius(w)
	if err != nil {
		return nil, err
	}
	if radius > 0 {
		w.Scale(cfg.SpectralRadius/radius, w)
	}

	return &Reservoir{size: cfg.Size, inputs: cfg.Inputs, leak: cfg.Leak, win: win, w: w}, nil
}

// Size returns the number of recurrent units.
func (r *Reservoir) Size() int { return r.size }

// Step advances state by one input and returns the new state:
// x' = (1-a)x + a*tanh(Win[1;u] + Wx).
func (r *Reservoir) Step(state, input []float64) []float64 {
	u := make([]float64, r.inputs+1)
	u[0] = 1
	copy(u[1:], input)

	var drive, recur mat.VecDense
	drive.MulVec(r.win, mat.NewVecDense(len(u), u))
	recur.MulVec(r.w, mat.NewVecDense(r.size, state))

	next := make([]float64, r.size)
	for i := range next {
		next[i] = (1-r.leak)*state[i] + r.leak*math.Tanh(drive.AtVec(i)+recur.AtVec(i))
	}
	return next
}

// spectralRadius returns the largest eigenvalue magnitude of m.
func spectralRadius(m *mat.Dense) (float64, error) {
	var eig mat.Eigen
	if ok := eig.Factorize(m, mat.EigenNone); !ok {
		return 0, errors.New("eigendecomposition of reservoir failed")
	}
	var radius float64
	for _, v := range eig.Values(nil) {
		radius = math.Max(radius, cmplx.Abs(v))
	}
	return radius, nil
}
