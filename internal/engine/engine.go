// Package engine fuses the byte-level tokenizer and the structural
// parser into a single pushdown automaton that can suspend at any byte
// boundary and resume later without re-reading input or losing a
// partially delivered sink event.
package engine

import (
	"github.com/mcvoid/jsonstream"
	"github.com/mcvoid/jsonstream/sink"
	"github.com/mcvoid/jsonstream/source"
)

// Engine holds all state needed to suspend and resume a decode: the
// low-level token scan in progress (if any), the container stack, the
// value currently being read, and at most one sink call that was
// refused and must be replayed before anything else happens.
type Engine struct {
	tok     tokenizerState
	stack   []stackEntry
	top     topState
	pending pendingCall
	reentry reentryAction
	done    bool
}

// New returns an Engine ready to decode a single top-level JSON value.
func New() *Engine {
	return &Engine{top: topState{kind: topReadValue}}
}

// Finished reports whether a complete top-level value has already been
// decoded.
func (e *Engine) Finished() bool {
	return e.done
}

// Run drives the engine against src and snk until it must suspend, the
// document ends, or an error occurs. Call it again after a suspension
// to continue from exactly where it left off.
func (e *Engine) Run(src source.Source, snk sink.Sink) jsonstream.Result {
	if e.pending.kind != pendNone {
		r := e.resumePending(snk)
		if r.ctrl != ctrlOK {
			return e.resultFrom(r)
		}
	}
	if e.done {
		return e.runAfterDone(src)
	}
	for {
		r := e.step(src, snk)
		if r.ctrl == ctrlOK {
			continue
		}
		return e.resultFrom(r)
	}
}

// resumePending retries the one outstanding sink call, then finishes
// whatever follow-up work that call's success was gating.
func (e *Engine) resumePending(snk sink.Sink) stepResult {
	if st := e.deliverPending(snk); st == sink.Suspend {
		return stepResult{ctrl: ctrlSinkSuspend}
	}
	if e.reentry != reentryNone {
		return e.finishReentry(snk)
	}
	return e.afterSinkSuccess()
}

func (e *Engine) deliverPending(snk sink.Sink) sink.Status {
	p := e.pending
	var st sink.Status
	switch p.kind {
	case pendPushNumber:
		st = snk.PushNumber(p.tag, p.number)
	case pendPushBool:
		st = snk.PushBool(p.tag, p.flag)
	case pendPushNull:
		st = snk.PushNull(p.tag)
	case pendFinalizeString:
		st = snk.FinalizeString(p.strPos)
	case pendFinalizeArray:
		st = snk.FinalizeArray(p.tag)
	case pendFinalizeMap:
		st = snk.FinalizeMap(p.tag)
	default:
		return sink.Ok
	}
	if st == sink.Ok {
		e.pending = pendingCall{}
	}
	return st
}

func (e *Engine) step(src source.Source, snk sink.Sink) stepResult {
	switch e.tok.kind {
	case tokString:
		return e.continueStr(src, snk)
	case tokNumber:
		return e.continueNum(src, snk)
	case tokLit:
		return e.continueLit(src, snk)
	default:
		return e.dispatch(src, snk)
	}
}

// afterSinkSuccess checks whether the value that just finished was the
// root value, in which case the document is complete.
func (e *Engine) afterSinkSuccess() stepResult {
	if len(e.stack) == 0 && e.top.kind == topNone {
		e.done = true
		return stepResult{ctrl: ctrlEnd}
	}
	return ok()
}

func (e *Engine) runAfterDone(src source.Source) jsonstream.Result {
	for {
		b, status := src.PeekByte()
		switch status {
		case source.Suspend:
			return jsonstream.Result{Kind: jsonstream.SourceSuspend}
		case source.Eof:
			return jsonstream.Result{Kind: jsonstream.End}
		default:
			switch b {
			case ' ', '\t', '\n', '\r':
				src.Skip(1)
				continue
			default:
				return jsonstream.Result{Kind: jsonstream.ErrorResult, Err: &jsonstream.SyntaxError{
					Pos: src.Position(), Kind: jsonstream.ErrCharacter,
				}}
			}
		}
	}
}

func (e *Engine) resultFrom(r stepResult) jsonstream.Result {
	switch r.ctrl {
	case ctrlSourceSuspend:
		return jsonstream.Result{Kind: jsonstream.SourceSuspend}
	case ctrlSinkSuspend:
		return jsonstream.Result{Kind: jsonstream.SinkSuspend}
	case ctrlEnd:
		return jsonstream.Result{Kind: jsonstream.End}
	case ctrlError:
		return jsonstream.Result{Kind: jsonstream.ErrorResult, Err: r.err}
	default:
		return jsonstream.Result{Kind: jsonstream.End}
	}
}

func (e *Engine) errorAt(src source.Source, kind jsonstream.ErrorKind) stepResult {
	return stepResult{ctrl: ctrlError, err: &jsonstream.SyntaxError{Pos: src.Position(), Kind: kind}}
}

func tagForDepth(stack []stackEntry, n int) sink.PositionTag {
	if n == 0 {
		return sink.Root
	}
	if stack[n-1].kind == stackArray {
		return sink.ArrayValue
	}
	return sink.MapValue
}

func (e *Engine) currentTag() sink.PositionTag {
	return tagForDepth(e.stack, len(e.stack))
}

func tagToStringPos(tag sink.PositionTag) sink.StringPosition {
	switch tag {
	case sink.Root:
		return sink.StringRoot
	case sink.ArrayValue:
		return sink.StringArrayValue
	default:
		return sink.StringMapValue
	}
}

// --- terminal sink calls ---------------------------------------------
//
// Each of these sets e.pending before attempting the call, so that if
// the sink suspends, Run's next invocation knows exactly what to
// retry. On success they either run follow-up work (pushNumber, when a
// reentryAction is given) or check for document completion.

func (e *Engine) pushBool(snk sink.Sink, tag sink.PositionTag, v bool) stepResult {
	e.pending = pendingCall{kind: pendPushBool, tag: tag, flag: v}
	if st := e.deliverPending(snk); st == sink.Suspend {
		return stepResult{ctrl: ctrlSinkSuspend}
	}
	return e.afterSinkSuccess()
}

func (e *Engine) pushNull(snk sink.Sink, tag sink.PositionTag) stepResult {
	e.pending = pendingCall{kind: pendPushNull, tag: tag}
	if st := e.deliverPending(snk); st == sink.Suspend {
		return stepResult{ctrl: ctrlSinkSuspend}
	}
	return e.afterSinkSuccess()
}

func (e *Engine) finalizeString(snk sink.Sink, pos sink.StringPosition) stepResult {
	e.pending = pendingCall{kind: pendFinalizeString, strPos: pos}
	if st := e.deliverPending(snk); st == sink.Suspend {
		return stepResult{ctrl: ctrlSinkSuspend}
	}
	return e.afterSinkSuccess()
}

func (e *Engine) finalizeArray(snk sink.Sink, tag sink.PositionTag) stepResult {
	e.pending = pendingCall{kind: pendFinalizeArray, tag: tag}
	if st := e.deliverPending(snk); st == sink.Suspend {
		return stepResult{ctrl: ctrlSinkSuspend}
	}
	return e.afterSinkSuccess()
}

func (e *Engine) finalizeMap(snk sink.Sink, tag sink.PositionTag) stepResult {
	e.pending = pendingCall{kind: pendFinalizeMap, tag: tag}
	if st := e.deliverPending(snk); st == sink.Suspend {
		return stepResult{ctrl: ctrlSinkSuspend}
	}
	return e.afterSinkSuccess()
}

// pushNumber delivers a completed number to the sink. When onSuccess
// is reentryNone the number is the whole value (it ended at end of
// input or mid-exponent-scan with nothing left to close); otherwise it
// was closed by a terminator (',', ']' or '}') and finishReentry runs
// the rest of that terminator's action once the push lands.
func (e *Engine) pushNumber(snk sink.Sink, tag sink.PositionTag, data jsonstream.NumberData, onSuccess reentryAction) stepResult {
	e.pending = pendingCall{kind: pendPushNumber, tag: tag, number: data}
	e.reentry = onSuccess
	if st := e.deliverPending(snk); st == sink.Suspend {
		return stepResult{ctrl: ctrlSinkSuspend}
	}
	if e.reentry != reentryNone {
		return e.finishReentry(snk)
	}
	return e.afterSinkSuccess()
}

// finishReentry performs whatever a terminator still owes once its
// in-flight number has been successfully pushed: never-failing pops
// for a comma, or a pop plus a (possibly itself suspending) finalize
// for a container close.
func (e *Engine) finishReentry(snk sink.Sink) stepResult {
	action := e.reentry
	e.reentry = reentryNone
	switch action {
	case reentryFinishNumberComma:
		switch e.stack[len(e.stack)-1].kind {
		case stackArray:
			snk.PopIntoArray()
			e.top = topState{kind: topReadValue}
		case stackObject:
			snk.PopIntoMap()
			e.stack[len(e.stack)-1].obj = objKeyEnd
		}
		return ok()
	case reentryFinishObjectClose:
		snk.PopIntoMap()
		return e.closeObject(snk)
	case reentryFinishArrayClose:
		snk.PopIntoArray()
		return e.closeArray(snk)
	default:
		return ok()
	}
}

func (e *Engine) closeObject(snk sink.Sink) stepResult {
	tag := tagForDepth(e.stack, len(e.stack)-1)
	e.stack = e.stack[:len(e.stack)-1]
	return e.finalizeMap(snk, tag)
}

func (e *Engine) closeArray(snk sink.Sink) stepResult {
	tag := tagForDepth(e.stack, len(e.stack)-1)
	e.stack = e.stack[:len(e.stack)-1]
	return e.finalizeArray(snk, tag)
}
