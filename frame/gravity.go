package frame

// GravitySystem queues the frame's tick. Register it after the input
// systems so their moves are applied first.
type GravitySystem struct {
	// Paused stops gravity without stopping the other systems.
	Paused bool
}

func (g *GravitySystem) Execute(u *Update) {
	if g.Paused {
		return
	}
	u.Commands.Tick(u.DeltaTime)
}
