package utils

// Assert panics when condition does not hold, with message when one is
// given. Used for states the byte tables are supposed to make unreachable.
func Assert(condition bool, message ...string) {
	if !condition {
		if len(message) == 1 {
			panic(message[0])
		}
		panic("failed assertion")
	}
}
