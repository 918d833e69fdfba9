package standings

// Row is one standings-board line. It does not own team identity; city
// and display name resolve lazily through the team join on FullName.
type Row struct {
	TeamFullName string
	Division     string
	GamesPlayed  int
	Wins         int
	OvertimeWins int
	OvertimeLoss int
	Losses       int
	Points       int
	GoalDiff     int
	// WinPct is normalized: the sheet's divide-by-zero marker becomes 0.
	WinPct       float64
	GoalsFor     int
	GoalsAgainst int
	// Rank is externally supplied; 0 means the sheet did not provide one.
	Rank int
}
