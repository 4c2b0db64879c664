package component

// Score is the session score state, kept on the session entity.
type Score struct {
	Points   int
	Lines    int
	Pieces   int
	GameOver bool
}

var ScoreComponent = NewComponent[Score]()
