package ode

// Func is the derivative of the sought solution: dy/dt = Func(t, y).
type Func func(t float64, y []float64) []float64

// Stepper advances a state vector from t to t+dt.
type Stepper interface {
	Name() string
	Step(f Func, t, dt float64, y []float64) []float64
}

// Euler is the first-order rectangle rule.
type Euler struct{}

func (Euler) Name() string { return "euler" }

func (Euler) Step(f Func, t, dt float64, y []float64) []float64 {
	dy := f(t, y)
	out := make([]float64, len(y))
	for i := range y {
		out[i] = y[i] + dt*dy[i]
	}
	return out
}

// Simpson approximates the step integral with Simpson's 1-4-1 rule over
// three derivative evaluations.
type Simpson struct{}

func (Simpson) Name() string { return "simpson" }

func (Simpson) Step(f Func, t, dt float64, y []float64) []float64 {
	n := len(y)
	q1 := f(t, y)

	mid := make([]float64, n)
	for i := range y {
		mid[i] = y[i] + 0.5*dt*q1[i]
	}
	q2 := f(t+0.5*dt, mid)

	end := make([]float64, n)
	for i := range y {
		end[i] = y[i] + 0.5*dt*q1[i] + 0.5*dt*q2[i]
	}
	q3 := f(t+dt, end)

	out := make([]float64, n)
	for i := range y {
		out[i] = y[i] + dt*(q1[i]+4*q2[i]+q3[i])/6
	}
	return out
}

// RK4 is the classical fourth-order Runge-Kutta method.
type RK4 struct{}

func (RK4) Name() string { return "rk4" }

func (RK4) Step(f Func, t, dt float64, y []float64) []float64 {
	n := len(y)
	k1 := f(t, y)

	tmp := make([]float64, n)
	for i := range y {
		tmp[i] = y[i] + 0.5*dt*k1[i]
	}
	k2 := f(t+0.5*dt, tmp)

	for i := range y {
		tmp[i] = y[i] + 0.5*dt*k2[i]
	}
	k3 := f(t+0.5*dt, tmp)

	for i := range y {
		tmp[i] = y[i] + dt*k3[i]
	}
	k4 := f(t+dt, tmp)

	out := make([]float64, n)
	dt6 := dt / 6
	for i := range y {
		out[i] = y[i] + dt6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return out
}
