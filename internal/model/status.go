package model

import "time"

type RefreshState int

const (
	StateIdle RefreshState = iota
	StateRefreshing
	StateError
)

func (s RefreshState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRefreshing:
		return "refreshing"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

func (s RefreshState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Status is what the connection indicator shows.
type Status struct {
	State      RefreshState `json:"state"`
	Ok         bool         `json:"ok"`
	Text       string       `json:"text"`
	LastError  string       `json:"lastError,omitempty"`
	LastUpdate time.Time    `json:"lastUpdate"`
}
