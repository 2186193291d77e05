package story

// statusLabels decodes the integer status code recorded per result row.
// The table covers the classifications the narration layer distinguishes;
// any other code degrades to defaultStatusLabel rather than failing.
var statusLabels = map[int]string{
	1:   "Finished",
	2:   "Disqualified",
	3:   "Accident",
	4:   "Collision",
	5:   "Engine",
	6:   "Gearbox",
	7:   "Transmission",
	8:   "Clutch",
	9:   "Hydraulics",
	10:  "Electrical",
	11:  "+1 Lap",
	12:  "+2 Laps",
	13:  "+3 Laps",
	20:  "Spun off",
	22:  "Suspension",
	31:  "Retired",
	104: "Fatal accident",
}

// defaultStatusLabel is the fallback for status codes absent from the table.
const defaultStatusLabel = "Technical Issue"

// DecodeStatus maps a status code to its human-readable label.
// Unknown codes decode to a generic label and never fail.
func DecodeStatus(statusID int) string {
	if label, ok := statusLabels[statusID]; ok {
		return label
	}
	return defaultStatusLabel
}
