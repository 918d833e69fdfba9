package team

// Team is a league roster entry. FullName ("City Name") is the join key
// every other sheet uses to point back at a team.
type Team struct {
	Conference     string
	Division       string
	Abbreviation   string
	City           string
	Name           string
	FullName       string
	PrimaryColor   string
	SecondaryColor string
}
