package stage

// Stage is a named production step projects move through.
type Stage struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Remarks string `json:"remarks"`
}
