package stats

// PlayerLine is one skater's season line. Rows without a team are dropped
// at load time.
type PlayerLine struct {
	FirstName     string
	LastName      string
	FullName      string
	Team          string
	Division      string
	Goals         int
	Assists       int
	Points        int
	PointsPerGame float64
}

// GoalieLine is one goalie's season line. Placeholder "backup goalie"
// rows and rows without a team are dropped at load time.
type GoalieLine struct {
	FirstName    string
	LastName     string
	FullName     string
	Team         string
	Division     string
	GoalsAgainst int
	GAA          float64
	GamesPlayed  int
}

// NullPlayer is the sentinel that pads leaderboard slots with no eligible
// candidate: numeric fields zero, name fields empty. The renderer shows
// these as blank rows.
func NullPlayer() PlayerLine {
	return PlayerLine{}
}

// NullGoalie is the goalie counterpart of NullPlayer.
func NullGoalie() GoalieLine {
	return GoalieLine{}
}
