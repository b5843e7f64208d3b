package common

const (
	Version = `v0.4.2`
)

var (
	silent    bool
	debugging bool
	tracing   bool
)

// DefineVerbosity sets the process wide log level. Trace implies debug, and
// silent wins over both.
func DefineVerbosity(isSilent, isDebug, isTrace bool) {
	silent = isSilent
	debugging = isDebug || isTrace
	tracing = isTrace
	if silent {
		debugging = false
		tracing = false
	}
}

func Silent() bool {
	return silent
}

func DebugFlag() bool {
	return debugging
}

func TraceFlag() bool {
	return tracing
}
