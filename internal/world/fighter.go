package world

// Fighter holds the combat stats of an actor.
type Fighter struct {
	MaxHP   int
	Defense int
	Power   int
	hp      int
}

// NewFighter creates a fighter at full health.
func NewFighter(hp, defense, power int) *Fighter {
	return &Fighter{
		MaxHP:   hp,
		Defense: defense,
		Power:   power,
		hp:      hp,
	}
}

// HP returns current hit points.
func (f *Fighter) HP() int { return f.hp }

// SetHP sets hit points, clamped to [0, MaxHP].
func (f *Fighter) SetHP(hp int) {
	f.hp = max(0, min(hp, f.MaxHP))
}

// TakeDamage subtracts amount from HP and returns the damage actually taken.
func (f *Fighter) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := f.hp
	f.SetHP(f.hp - amount)
	return before - f.hp
}

// Heal restores up to amount HP and returns how much was recovered.
func (f *Fighter) Heal(amount int) int {
	if amount <= 0 || f.hp == f.MaxHP {
		return 0
	}
	before := f.hp
	f.SetHP(f.hp + amount)
	return f.hp - before
}
