package domain

// SystemInfo is a snapshot of the assistant's status, time and date
// lines. Each field degrades independently to a placeholder when its
// fetch fails.
type SystemInfo struct {
	Status string `json:"status"`
	Time   string `json:"time"`
	Date   string `json:"date"`
}
