package supervisor

// unknownModelError signals a start request naming a model id absent from
// the configured descriptor set.
type unknownModelError struct{ id string }

func (e unknownModelError) Error() string { return "Unknown model: " + e.id }

func errUnknownModel(id string) error { return unknownModelError{id: id} }

// IsUnknownModel reports whether err indicates a missing model id.
func IsUnknownModel(err error) bool {
	_, ok := err.(unknownModelError)
	return ok
}

// launchFailureError signals that the OS rejected the spawn (binary missing
// or not executable). The slot is never populated on this path.
type launchFailureError struct{ msg string }

func (e launchFailureError) Error() string { return e.msg }

func errLaunchFailure(msg string) error { return launchFailureError{msg: msg} }

// IsLaunchFailure reports whether err indicates a failed spawn attempt.
func IsLaunchFailure(err error) bool {
	_, ok := err.(launchFailureError)
	return ok
}
