package schedule

// GameType discriminates regular-season from playoff games. The sheet
// carries it as free text; it is normalized to this closed set at load
// time so downstream comparisons cannot drift on upstream typos.
type GameType string

const (
	RegularSeason GameType = "regular_season"
	Playoff       GameType = "playoff"
)

// ParseGameType normalizes the sheet's TYPE cell. Anything that is not
// recognizably a playoff marker is regular season.
func ParseGameType(raw string) GameType {
	switch normalize(raw) {
	case "playoff", "playoffs", "postseason":
		return Playoff
	default:
		return RegularSeason
	}
}

func normalize(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' {
			continue
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

// DivisionRef is the game's resolved view of a division. All fields stay
// empty when the free-text label did not match a loaded division.
type DivisionRef struct {
	Name         string
	Abbreviation string
	Conference   string
}

// Game is one schedule row. Games with an unparseable or negative week
// are discarded at load time and never reach this type.
type Game struct {
	Week         int
	Type         GameType
	Season       string
	Date         string
	ShortDate    string
	Day          string
	Time         string
	HomeTeam     string
	AwayTeam     string
	HomeDivision DivisionRef
	AwayDivision DivisionRef
	HomeScore    string
	AwayScore    string
	Final        string
	Location     string

	// Playoff-only fields; zero values for regular-season games.
	HomeSeed int
	AwaySeed int
	Round    string
}

// Meta carries the week/year header the schedule sheet stores above its
// column header row.
type Meta struct {
	Week string
	Year string
}
