package engine

import (
	"github.com/mcvoid/jsonstream"
	"github.com/mcvoid/jsonstream/sink"
	"github.com/mcvoid/jsonstream/source"
)

func (e *Engine) tokenObjectOpen(src source.Source, snk sink.Sink) stepResult {
	if e.top.kind != topReadValue {
		return e.errorAt(src, jsonstream.ErrObjectOpen)
	}
	if len(e.stack) >= maxDepth {
		return e.errorAt(src, jsonstream.ErrMaxDepth)
	}
	tag := e.currentTag()
	snk.PushMap(tag)
	e.stack = append(e.stack, stackEntry{kind: stackObject, obj: objKeyEnd})
	e.top = topState{kind: topNone}
	return ok()
}

func (e *Engine) tokenObjectClose(src source.Source, snk sink.Sink) stepResult {
	switch e.top.kind {
	case topNone:
		if len(e.stack) == 0 || e.stack[len(e.stack)-1].kind != stackObject {
			return e.errorAt(src, jsonstream.ErrObjectClose)
		}
		switch e.stack[len(e.stack)-1].obj {
		case objKeyEnd:
			return e.closeObject(snk)
		case objCommaEnd:
			snk.PopIntoMap()
			return e.closeObject(snk)
		default:
			return e.errorAt(src, jsonstream.ErrObjectClose)
		}
	case topNumber:
		if !e.top.num.canEnd() {
			return e.errorAt(src, jsonstream.ErrObjectClose)
		}
		tag := e.top.tag
		data := e.top.numberData()
		e.top = topState{kind: topNone}
		return e.pushNumber(snk, tag, data, reentryFinishObjectClose)
	default:
		return e.errorAt(src, jsonstream.ErrObjectClose)
	}
}

func (e *Engine) tokenArrayOpen(src source.Source, snk sink.Sink) stepResult {
	if e.top.kind != topReadValue {
		return e.errorAt(src, jsonstream.ErrArrayOpen)
	}
	if len(e.stack) >= maxDepth {
		return e.errorAt(src, jsonstream.ErrMaxDepth)
	}
	tag := e.currentTag()
	snk.PushArray(tag)
	e.stack = append(e.stack, stackEntry{kind: stackArray})
	e.top = topState{kind: topReadValue}
	return ok()
}

func (e *Engine) tokenArrayClose(src source.Source, snk sink.Sink) stepResult {
	switch e.top.kind {
	case topNone:
		if len(e.stack) == 0 || e.stack[len(e.stack)-1].kind != stackArray {
			return e.errorAt(src, jsonstream.ErrArrayClose)
		}
		snk.PopIntoArray()
		return e.closeArray(snk)
	case topReadValue:
		if len(e.stack) == 0 || e.stack[len(e.stack)-1].kind != stackArray {
			return e.errorAt(src, jsonstream.ErrArrayClose)
		}
		e.top = topState{kind: topNone}
		return e.closeArray(snk)
	case topNumber:
		if !e.top.num.canEnd() {
			return e.errorAt(src, jsonstream.ErrArrayClose)
		}
		tag := e.top.tag
		data := e.top.numberData()
		e.top = topState{kind: topNone}
		return e.pushNumber(snk, tag, data, reentryFinishArrayClose)
	default:
		return e.errorAt(src, jsonstream.ErrArrayClose)
	}
}

func (e *Engine) tokenComma(src source.Source, snk sink.Sink) stepResult {
	switch e.top.kind {
	case topNumber:
		if !e.top.num.canEnd() {
			return e.errorAt(src, jsonstream.ErrComma)
		}
		tag := e.top.tag
		data := e.top.numberData()
		e.top = topState{kind: topNone}
		return e.pushNumber(snk, tag, data, reentryFinishNumberComma)
	case topNone:
		// falls through to the plain comma handling below
	default:
		return e.errorAt(src, jsonstream.ErrComma)
	}

	if len(e.stack) == 0 {
		return e.errorAt(src, jsonstream.ErrComma)
	}
	entry := &e.stack[len(e.stack)-1]
	switch entry.kind {
	case stackArray:
		e.top = topState{kind: topReadValue}
		snk.PopIntoArray()
		return ok()
	case stackObject:
		if entry.obj != objCommaEnd {
			return e.errorAt(src, jsonstream.ErrComma)
		}
		entry.obj = objKeyEnd
		snk.PopIntoMap()
		return ok()
	default:
		return e.errorAt(src, jsonstream.ErrComma)
	}
}

func (e *Engine) tokenColon(src source.Source) stepResult {
	if len(e.stack) == 0 {
		return e.errorAt(src, jsonstream.ErrColon)
	}
	top := &e.stack[len(e.stack)-1]
	if top.kind != stackObject || top.obj != objColon {
		return e.errorAt(src, jsonstream.ErrColon)
	}
	top.obj = objCommaEnd
	e.top = topState{kind: topReadValue}
	return ok()
}

func (e *Engine) tokenSign(src source.Source, positive bool) stepResult {
	switch e.top.kind {
	case topReadValue:
		tag := e.currentTag()
		e.top = topState{kind: topNumber, num: numInteger, tag: tag, signPositive: positive}
		return ok()
	case topNumber:
		if e.top.num != numExponentSign {
			return e.errorAt(src, jsonstream.ErrSign)
		}
		e.top.num = numExponent
		e.top.expSignPositive = positive
		return ok()
	default:
		return e.errorAt(src, jsonstream.ErrSign)
	}
}

func (e *Engine) tokenDot(src source.Source) stepResult {
	if e.top.kind == topNumber && e.top.num == numDotExponentEnd {
		e.top.num = numDecimal
		return ok()
	}
	return e.errorAt(src, jsonstream.ErrDot)
}

func (e *Engine) tokenExponent(src source.Source) stepResult {
	if e.top.kind == topNumber && (e.top.num == numDotExponentEnd || e.top.num == numExponentStartEnd) {
		e.top.num = numExponentSign
		e.top.expSignPositive = true
		return ok()
	}
	return e.errorAt(src, jsonstream.ErrExponent)
}

func (e *Engine) tokenNumber(src source.Source, snk sink.Sink, r jsonstream.Range) stepResult {
	switch e.top.kind {
	case topReadValue:
		tag := e.currentTag()
		e.top = topState{kind: topNumber, num: numDotExponentEnd, tag: tag, signPositive: true, integer: r}
		return ok()
	case topNumber:
		switch e.top.num {
		case numInteger:
			e.top.integer = r
			e.top.num = numDotExponentEnd
			return ok()
		case numDecimal:
			e.top.decimal = &r
			e.top.num = numExponentStartEnd
			return ok()
		case numExponentSign, numExponent:
			e.top.exponent = &r
			tag := e.top.tag
			data := e.top.numberData()
			e.top = topState{kind: topNone}
			return e.pushNumber(snk, tag, data, reentryNone)
		default:
			return e.errorAt(src, jsonstream.ErrNumber)
		}
	default:
		return e.errorAt(src, jsonstream.ErrNumber)
	}
}

func (e *Engine) tokenBool(src source.Source, snk sink.Sink, v bool) stepResult {
	if e.top.kind != topReadValue {
		return e.errorAt(src, jsonstream.ErrBool)
	}
	tag := e.currentTag()
	e.top = topState{kind: topNone}
	return e.pushBool(snk, tag, v)
}

func (e *Engine) tokenNull(src source.Source, snk sink.Sink) stepResult {
	if e.top.kind != topReadValue {
		return e.errorAt(src, jsonstream.ErrNull)
	}
	tag := e.currentTag()
	e.top = topState{kind: topNone}
	return e.pushNull(snk, tag)
}

func (e *Engine) tokenQuote(src source.Source, snk sink.Sink) stepResult {
	switch e.top.kind {
	case topNone:
		if len(e.stack) == 0 || e.stack[len(e.stack)-1].kind != stackObject {
			return e.errorAt(src, jsonstream.ErrQuote)
		}
		entry := &e.stack[len(e.stack)-1]
		if entry.obj != objKeyEnd {
			return e.errorAt(src, jsonstream.ErrQuote)
		}
		entry.obj = objColon
		e.top = topState{kind: topString, strPos: sink.StringMapKey}
		snk.StartString(sink.StringMapKey)
		return ok()
	case topReadValue:
		strPos := tagToStringPos(e.currentTag())
		e.top = topState{kind: topString, strPos: strPos}
		snk.StartString(strPos)
		return ok()
	case topString:
		strPos := e.top.strPos
		e.top = topState{kind: topNone}
		return e.finalizeString(snk, strPos)
	default:
		return e.errorAt(src, jsonstream.ErrQuote)
	}
}
