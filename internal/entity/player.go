package entity

// Player is one side of a game session.
type Player struct {
	Name string
	Mark Mark
	Bot  bool
}

func (that *Player) IsBot() bool {
	return that.Bot
}
