package engine

import (
	"github.com/mcvoid/jsonstream"
	"github.com/mcvoid/jsonstream/internal/utf8dfa"
	"github.com/mcvoid/jsonstream/sink"
)

// maxDepth bounds array/object nesting, the same way the teacher's
// table-driven parser bounded its mode stack.
const maxDepth = 1024

type control int8

const (
	ctrlOK control = iota
	ctrlSourceSuspend
	ctrlSinkSuspend
	ctrlEnd
	ctrlError
)

type stepResult struct {
	ctrl control
	err  *jsonstream.SyntaxError
}

func ok() stepResult { return stepResult{ctrl: ctrlOK} }

// stackKind distinguishes an open array from an open object on the
// container stack.
type stackKind int8

const (
	stackArray stackKind = iota
	stackObject
)

// objectState tracks what an open object is waiting for next. It
// folds in the trailing-comma extension: after a comma, an object
// returns to objKeyEnd (accepting either a key or an immediate close),
// rather than a separate "must see a key" state.
type objectState int8

const (
	objKeyEnd objectState = iota
	objColon
	objCommaEnd
)

type stackEntry struct {
	kind stackKind
	obj  objectState
}

// numberState is the sub-state of an in-flight number, following the
// grammar: sign? integer (. decimal)? ([eE] sign? exponent)?
type numberState int8

const (
	numInteger numberState = iota
	numDotExponentEnd
	numDecimal
	numExponentStartEnd
	numExponentSign
	numExponent
)

// canEnd reports whether a number in this state is a complete, valid
// number if the next byte is a terminator (or end of input).
func (n numberState) canEnd() bool {
	switch n {
	case numDotExponentEnd, numExponentStartEnd:
		return true
	default:
		return false
	}
}

type topKind int8

const (
	topNone topKind = iota
	topReadValue
	topString
	topNumber
)

// topState is the value currently being read. Number and String carry
// the position tag they'll report to the sink when they finish; object
// key/colon/comma bookkeeping lives on the stack entry instead, since
// it belongs to the enclosing container, not the value itself.
//
// The number fields mirror jsonstream.NumberData directly rather than
// embedding it, since they're filled in incrementally as the digit
// runs, dot and exponent tokens arrive.
type topState struct {
	kind   topKind
	num    numberState
	tag    sink.PositionTag
	strPos sink.StringPosition

	signPositive    bool
	integer         jsonstream.Range
	decimal         *jsonstream.Range
	expSignPositive bool
	exponent        *jsonstream.Range
}

func (t topState) numberData() jsonstream.NumberData {
	return jsonstream.NumberData{
		Sign:         t.signPositive,
		Integer:      t.integer,
		Decimal:      t.decimal,
		ExponentSign: t.expSignPositive,
		Exponent:     t.exponent,
	}
}

// reentryAction records which terminator triggered an in-flight
// number's close, so that once the (possibly suspended) push_number
// call finally succeeds, the engine knows what remains to be done
// without re-reading any bytes.
type reentryAction int8

const (
	reentryNone reentryAction = iota
	reentryFinishNumberComma
	reentryFinishObjectClose
	reentryFinishArrayClose
)

type pendingKind int8

const (
	pendNone pendingKind = iota
	pendPushNumber
	pendPushBool
	pendPushNull
	pendFinalizeString
	pendFinalizeArray
	pendFinalizeMap
)

// pendingCall is the one fallible sink call, if any, that the engine
// attempted and that returned Suspend. Run retries exactly this call,
// with exactly these arguments, before doing anything else.
type pendingCall struct {
	kind   pendingKind
	tag    sink.PositionTag
	strPos sink.StringPosition
	number jsonstream.NumberData
	flag   bool
}

// tokKind is which low-level token scan, if any, is in progress.
type tokKind int8

const (
	tokNone tokKind = iota
	tokString
	tokNumber
	tokLit
)

type strSub int8

const (
	subBody strSub = iota
	subStartEscape
	subUnicodeEscape
	subSurrogateSlash
	subSurrogateU
)

type litInfo struct {
	data    []byte
	pos     int
	boolVal bool
	isNull  bool
}

type tokenizerState struct {
	kind tokKind

	// string scan
	strStart         jsonstream.Position
	strSub           strSub
	dfa              utf8dfa.State
	uRemaining       int
	uAcc             rune
	uSurrogateHigh   rune
	hasSurrogateHigh bool

	// number scan
	numStart jsonstream.Position

	// literal scan
	lit litInfo
}
