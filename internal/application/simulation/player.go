package simulation

// Player is the actor that carries items and pilots the rocket
type Player struct {
	grabbed string
	seated  bool
}

// NewPlayer creates a player with empty hands
func NewPlayer() *Player {
	return &Player{}
}

// Grab puts item in the player's hands
func (p *Player) Grab(item string) {
	p.grabbed = item
}

// ReleaseGrab empties the player's hands
func (p *Player) ReleaseGrab() {
	p.grabbed = ""
}

// Grabbed returns the held item name, "" when empty-handed
func (p *Player) Grabbed() string {
	return p.grabbed
}

func (p *Player) IsGrabbing() bool {
	return p.grabbed != ""
}

func (p *Player) Seat() {
	p.seated = true
}

func (p *Player) Unseat() {
	p.seated = false
}

func (p *Player) Seated() bool {
	return p.seated
}
