package physics

// Agent is the drone: grid position plus fractional velocity carried across ticks
type Agent struct {
	X, Y   int
	VX, VY float64
}

// Integrate advances one tick: v += f/m; p += trunc(v); v *= (1 - damping)
// The order is fixed; truncation rounds toward zero so sub-cell velocity accumulates over ticks
func Integrate(a *Agent, f Vec, p KineticProfile) {
	mass := p.Mass
	if mass <= 0 {
		mass = 1
	}

	a.VX += f.X / mass
	a.VY += f.Y / mass

	a.X += int(a.VX)
	a.Y += int(a.VY)

	v := a.Velocity().Scale(1 - p.Damping)
	a.VX, a.VY = v.X, v.Y
}

// Stop zeroes velocity (manual control takes over)
func Stop(a *Agent) {
	a.VX, a.VY = 0, 0
}

// Velocity returns the agent velocity as a vector
func (a Agent) Velocity() Vec {
	return Vec{a.VX, a.VY}
}
