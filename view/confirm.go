package view

// Confirmer asks the user to approve a destructive action before the
// request is sent. Returning false abandons the action silently.
type Confirmer func(prompt string) bool

// ApproveAll is the confirmer used by non-interactive embedders.
func ApproveAll(string) bool { return true }
