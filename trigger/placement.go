package trigger

// Placement defines when an action fires relative to the target call.
type Placement struct {
	Name string
}

// PlacementBefore is the placement that fires before the target body runs.
var PlacementBefore = &Placement{Name: "Before"}

// PlacementAfter is the placement that fires after the target returns without
// an error.
var PlacementAfter = &Placement{Name: "After"}

// PlacementOnError is the placement that fires when the target returns an
// error.
var PlacementOnError = &Placement{Name: "OnError"}

func isKnownPlacement(pos *Placement) bool {
	return pos == PlacementBefore ||
		pos == PlacementAfter ||
		pos == PlacementOnError
}
