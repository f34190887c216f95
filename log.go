package sixelterm

// logFunc is a printf-style diagnostic sink. The zero value discards
// everything, so call sites never guard their logging.
type logFunc func(string, ...interface{})

var tlog logFunc

// SetLogger installs a sink, such as log.Printf, for the library's
// diagnostics: dispatch decisions, capability detection, adapter
// attachment. Messages carry a "sixelterm: " prefix. Passing nil
// silences them again.
func SetLogger(fn func(string, ...interface{})) {
	tlog = fn
}

func (f logFunc) Printf(format string, args ...interface{}) {
	if f == nil {
		return
	}
	f("sixelterm: "+format, args...)
}
