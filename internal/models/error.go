package models

// Error is the JSON body of every failed response.
type Error struct {
	Status int      `json:"status"`
	Error  []string `json:"error"`
}
