package schedule

import "strings"

// travelTimeEntry is one row of the ordered location keyword table.
type travelTimeEntry struct {
	keywords []string
	minutes  int
}

// TravelTimeTable is scanned in order; the first keyword hit wins.
var TravelTimeTable = []travelTimeEntry{
	{[]string{"online", "virtual", "zoom", "teams"}, 0},
	{[]string{"home", "house"}, 0},
	{[]string{"campus", "library", "hall", "building"}, 10},
	{[]string{"gym", "fitness"}, 15},
}

// DefaultTravelMinutes applies when no keyword matches.
const DefaultTravelMinutes = 20

// EstimateTravelMinutes returns a rough travel time for a location string.
func EstimateTravelMinutes(location string) int {
	lower := strings.ToLower(location)
	for _, entry := range TravelTimeTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.minutes
			}
		}
	}
	return DefaultTravelMinutes
}
