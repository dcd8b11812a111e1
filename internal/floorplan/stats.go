package floorplan

import "github.com/KyleKincer/tableyeah-foh/internal/model"

// Stats are the read-only aggregate counts shown above the canvas.
type Stats struct {
	Available    int
	Seated       int
	SeatedCovers int
	Upcoming     int
}

// ComputeStats is a linear reduce over the table list. Occupied tables count
// as seated for the strip; both have parties at them.
func ComputeStats(tables []model.Table) Stats {
	var s Stats
	for _, t := range tables {
		switch t.Status {
		case model.StatusAvailable:
			s.Available++
		case model.StatusSeated, model.StatusOccupied:
			s.Seated++
			if t.Current != nil {
				s.SeatedCovers += t.Current.Covers
			}
		case model.StatusUpcoming:
			s.Upcoming++
		}
	}
	return s
}

// HasPositionedTables reports whether any table can be drawn at all. A venue
// with none configured gets the explicit empty state instead of a blank
// canvas.
func HasPositionedTables(tables []model.Table) bool {
	for _, t := range tables {
		if t.Geometry.Positioned() {
			return true
		}
	}
	return false
}
