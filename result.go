package jsonstream

// ResultKind tags why a Run call returned control to its caller.
type ResultKind int

const (
	// SourceSuspend means the engine needs more input: it called
	// Source.PeekByte and got Suspend. The caller should feed the
	// source more bytes (or close it) and call Run again.
	SourceSuspend ResultKind = iota
	// SinkSuspend means a Sink method returned Suspend. The caller
	// should make the sink ready to accept that call and invoke Run
	// again; the engine replays the unfinished call itself.
	SinkSuspend
	// End means a complete top-level JSON value has been decoded.
	// Calling Run again only consumes trailing whitespace.
	End
	// ErrorResult means the document is malformed. Err holds the
	// details; the engine will not make further progress.
	ErrorResult
)

var resultKindStrings = [...]string{
	"source-suspend",
	"sink-suspend",
	"end",
	"error",
}

func (k ResultKind) String() string {
	if k < 0 || int(k) >= len(resultKindStrings) {
		return "<unknown result kind>"
	}
	return resultKindStrings[k]
}

// Result is what Run returns at every suspension point.
type Result struct {
	Kind ResultKind
	Err  *SyntaxError // set only when Kind == ErrorResult
}
