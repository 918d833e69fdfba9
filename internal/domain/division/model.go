package division

// Division groups teams inside a conference. The (Conference, Name) pair
// is the key; Abbreviation is unique within a league.
type Division struct {
	Conference     string
	Name           string
	Abbreviation   string
	PrimaryColor   string
	SecondaryColor string
	ShortName      string
}

// Conference is derived from the division sheet by de-duplicating the
// conference column; the first occurrence supplies the fields.
type Conference struct {
	Name     string
	Color    string
	TimeZone string
	Location string
}

// Label is the free-text form schedule rows use to reference a division.
func (d Division) Label() string {
	return d.Conference + " " + d.Name
}

// ResolveLabel matches a schedule row's free-text division label against
// the loaded division list. A miss returns a zero Division and false;
// exhibition and bye entries commonly carry labels with no division, so
// callers fall back to empty fields rather than failing.
func ResolveLabel(label string, divisions []Division) (Division, bool) {
	for _, d := range divisions {
		if d.Label() == label {
			return d, true
		}
	}
	return Division{}, false
}
