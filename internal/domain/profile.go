package domain

// Coord is a WGS84 latitude/longitude pair. The zero value doubles as the
// "not yet chosen" sentinel: (0,0) is open ocean far outside the service area.
type Coord struct {
	Lat float64
	Lng float64
}

// IsZero reports whether the coordinate is the unset sentinel.
func (c Coord) IsZero() bool {
	return c.Lat == 0 && c.Lng == 0
}

// DefaultCoord is the fallback location (Seoul City Hall) used when
// geolocation is unavailable or denied.
var DefaultCoord = Coord{Lat: 37.5665, Lng: 126.9780}

// Profile holds the committed survey answers plus the optional day/time
// refinements applied on the results screen. Each survey screen writes
// exactly its own fields; writes are last-write-wins per field.
//
// The weekday and startTime filters distinguish "absent" (nil, no filter)
// from "empty" (cleared back to no filter): SetWeekday(nil) and
// SetWeekday([]) both mean no day filter.
type Profile struct {
	gender    Gender
	ageGroup  AgeGroup
	location  Coord
	favorites []string
	weekday   []string
	startTime []string
}

// NewProfile returns an empty profile; Complete() is false until all four
// survey steps have written their fields.
func NewProfile() *Profile {
	return &Profile{}
}

func (p *Profile) SetGender(g Gender)     { p.gender = g }
func (p *Profile) SetAgeGroup(a AgeGroup) { p.ageGroup = a }

func (p *Profile) SetLocation(lat, lng float64) {
	p.location = Coord{Lat: lat, Lng: lng}
}

// SetFavorites replaces the favorite-sport selection. Insertion order is
// preserved for display.
func (p *Profile) SetFavorites(favorites []string) {
	p.favorites = cloneNonEmpty(favorites)
}

// SetWeekday replaces the day filter. A nil or empty list clears it.
func (p *Profile) SetWeekday(days []string) {
	p.weekday = cloneNonEmpty(days)
}

// SetStartTime replaces the time-of-day filter. A nil or empty list clears it.
func (p *Profile) SetStartTime(times []string) {
	p.startTime = cloneNonEmpty(times)
}

// ClearFilters drops the optional day/time refinements, leaving the committed
// survey answers intact.
func (p *Profile) ClearFilters() {
	p.weekday = nil
	p.startTime = nil
}

// Reset restores every field to its unset sentinel.
func (p *Profile) Reset() {
	*p = Profile{}
}

func (p *Profile) Gender() Gender     { return p.gender }
func (p *Profile) AgeGroup() AgeGroup { return p.ageGroup }
func (p *Profile) Location() Coord    { return p.location }

// Favorites returns a copy of the favorite-sport selection.
func (p *Profile) Favorites() []string { return cloneNonEmpty(p.favorites) }

// Weekday returns the day filter, or nil when no filter is set.
func (p *Profile) Weekday() []string { return cloneNonEmpty(p.weekday) }

// StartTime returns the time filter, or nil when no filter is set.
func (p *Profile) StartTime() []string { return cloneNonEmpty(p.startTime) }

// Complete reports whether a program search may be issued: gender, age group
// and at least one favorite are set, and a real location has been chosen.
// The optional weekday/startTime filters never gate completeness.
func (p *Profile) Complete() bool {
	return p.gender != "" &&
		p.ageGroup != "" &&
		!p.location.IsZero() &&
		len(p.favorites) > 0
}

func cloneNonEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
