package domain

// PlayLogEntry is one row of the global play log document. A new entry
// is appended for every spin; afterwards it is only ever touched by an
// admin claim or a log wipe, never by the spin engine.
//
// WinCode is present exactly when IsWin is true. Claimed is omitted on
// losing entries and stays false on winning ones until an admin marks
// the prize as handed out.
type PlayLogEntry struct {
	User    string `json:"user"`
	Date    string `json:"date"` // YYYY-MM-DD, server-local
	Time    string `json:"time"` // HH:MM:SS
	Result  string `json:"result"`
	IsWin   bool   `json:"is_win"`
	Claimed bool   `json:"claimed,omitempty"`
	WinCode string `json:"win_code,omitempty"`
}

// PlayRecord is the slimmed-down history entry kept on the user
// document for the "my plays" view.
type PlayRecord struct {
	Date   string `json:"date"`
	Result string `json:"result"`
	IsWin  bool   `json:"is_win"`
}
