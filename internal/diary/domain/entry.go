package domain

// Entry is one diary day. The JSON file on disk is the document of
// record; ID is the yyyymmdd integer form of the date.
type Entry struct {
	ID   int    `json:"id"`
	Date string `json:"date"`
	Day  string `json:"day"`
	Text string `json:"text"`
	Todo string `json:"todo"`
}
