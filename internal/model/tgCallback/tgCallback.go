package tgCallback

// Callback buttons unique ids
const (
	Refresh string = "refresh"
)
