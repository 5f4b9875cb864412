package view

// Alert queues user-facing notifications for one page. Every failed
// action pushes exactly one error; reading pops it, so a message is
// surfaced once and then considered dismissed. Success lines follow
// the same discipline.
type Alert struct {
	errors    []string
	successes []string
}

// Fail queues an error notification.
func (a *Alert) Fail(message string) {
	a.errors = append(a.errors, message)
}

// Succeed queues a success notification.
func (a *Alert) Succeed(message string) {
	a.successes = append(a.successes, message)
}

// TakeError pops the oldest error notification.
func (a *Alert) TakeError() (string, bool) {
	if len(a.errors) == 0 {
		return "", false
	}
	message := a.errors[0]
	a.errors = a.errors[1:]
	return message, true
}

// TakeSuccess pops the oldest success notification.
func (a *Alert) TakeSuccess() (string, bool) {
	if len(a.successes) == 0 {
		return "", false
	}
	message := a.successes[0]
	a.successes = a.successes[1:]
	return message, true
}

// PendingErrors reports how many errors await dismissal.
func (a *Alert) PendingErrors() int {
	return len(a.errors)
}
