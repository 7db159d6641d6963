package engine

import (
	"github.com/mcvoid/jsonstream"
	"github.com/mcvoid/jsonstream/internal/utf8dfa"
	"github.com/mcvoid/jsonstream/sink"
	"github.com/mcvoid/jsonstream/source"
)

// dispatch skips whitespace and reads the next structural byte. End of
// input here is not automatically an error: it may legitimately close
// a bare root-level number, or simply be trailing whitespace after a
// value that already completed.
func (e *Engine) dispatch(src source.Source, snk sink.Sink) stepResult {
	for {
		b, status := src.PeekByte()
		switch status {
		case source.Suspend:
			return stepResult{ctrl: ctrlSourceSuspend}
		case source.Eof:
			return e.atEOF(src, snk)
		}
		switch b {
		case ' ', '\t', '\n', '\r':
			src.Skip(1)
			continue
		}
		return e.dispatchByte(src, snk, b)
	}
}

func (e *Engine) atEOF(src source.Source, snk sink.Sink) stepResult {
	if e.top.kind == topNumber && e.top.num.canEnd() && len(e.stack) == 0 {
		tag := e.top.tag
		data := e.top.numberData()
		e.top = topState{kind: topNone}
		return e.pushNumber(snk, tag, data, reentryNone)
	}
	if e.top.kind == topNone && len(e.stack) == 0 {
		e.done = true
		return stepResult{ctrl: ctrlEnd}
	}
	return e.errorAt(src, jsonstream.ErrEOF)
}

func (e *Engine) dispatchByte(src source.Source, snk sink.Sink, b byte) stepResult {
	switch {
	case b == '{':
		src.Skip(1)
		return e.tokenObjectOpen(src, snk)
	case b == '}':
		src.Skip(1)
		return e.tokenObjectClose(src, snk)
	case b == '[':
		src.Skip(1)
		return e.tokenArrayOpen(src, snk)
	case b == ']':
		src.Skip(1)
		return e.tokenArrayClose(src, snk)
	case b == ',':
		src.Skip(1)
		return e.tokenComma(src, snk)
	case b == ':':
		src.Skip(1)
		return e.tokenColon(src)
	case b == 'e' || b == 'E':
		src.Skip(1)
		return e.tokenExponent(src)
	case b == '.':
		src.Skip(1)
		return e.tokenDot(src)
	case b == '-':
		src.Skip(1)
		return e.tokenSign(src, false)
	case b == '+':
		src.Skip(1)
		return e.tokenSign(src, true)
	case b == 't':
		src.Skip(1)
		e.tok = tokenizerState{kind: tokLit, lit: litInfo{data: []byte("rue"), boolVal: true}}
		return e.continueLit(src, snk)
	case b == 'f':
		src.Skip(1)
		e.tok = tokenizerState{kind: tokLit, lit: litInfo{data: []byte("alse"), boolVal: false}}
		return e.continueLit(src, snk)
	case b == 'n':
		src.Skip(1)
		e.tok = tokenizerState{kind: tokLit, lit: litInfo{data: []byte("ull"), isNull: true}}
		return e.continueLit(src, snk)
	case b >= '0' && b <= '9':
		start := src.Position()
		src.Skip(1)
		e.tok = tokenizerState{kind: tokNumber, numStart: start}
		return e.continueNum(src, snk)
	case b == '"':
		src.Skip(1)
		e.tok = tokenizerState{kind: tokString, strStart: src.Position(), dfa: utf8dfa.Accept}
		return e.tokenQuote(src, snk)
	default:
		return e.errorAt(src, jsonstream.ErrCharacter)
	}
}

// continueNum scans a run of ASCII digits. Hitting a non-digit or end
// of input both end the run the same way: the number token fires with
// whatever digits were collected, and end-of-number handling (in the
// parser) decides whether that's actually valid.
func (e *Engine) continueNum(src source.Source, snk sink.Sink) stepResult {
	for {
		b, status := src.PeekByte()
		if status == source.Suspend {
			return stepResult{ctrl: ctrlSourceSuspend}
		}
		if status == source.Ready && b >= '0' && b <= '9' {
			src.Skip(1)
			continue
		}
		break
	}
	r := jsonstream.Range{Start: e.tok.numStart, End: src.Position()}
	e.tok = tokenizerState{}
	return e.tokenNumber(src, snk, r)
}

func (e *Engine) continueLit(src source.Source, snk sink.Sink) stepResult {
	data := e.tok.lit.data
	for e.tok.lit.pos < len(data) {
		b, status := src.PeekByte()
		switch status {
		case source.Suspend:
			return stepResult{ctrl: ctrlSourceSuspend}
		case source.Eof:
			return e.errorAt(src, jsonstream.ErrEOF)
		default:
			if b != data[e.tok.lit.pos] {
				kind := jsonstream.ErrBool
				if e.tok.lit.isNull {
					kind = jsonstream.ErrNull
				}
				return e.errorAt(src, kind)
			}
			src.Skip(1)
			e.tok.lit.pos++
		}
	}
	isNull := e.tok.lit.isNull
	boolVal := e.tok.lit.boolVal
	e.tok = tokenizerState{}
	if isNull {
		return e.tokenNull(src, snk)
	}
	return e.tokenBool(src, snk, boolVal)
}

func hexDigit(b byte) (rune, bool) {
	switch {
	case b >= '0' && b <= '9':
		return rune(b - '0'), true
	case b >= 'a' && b <= 'f':
		return rune(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return rune(b-'A') + 10, true
	}
	return 0, false
}

// continueStr drives the string body sub-machine: an unescaped run
// validated byte-by-byte through the UTF-8 DFA, interrupted by escape
// sequences (including \uXXXX and surrogate pairs) or the closing
// quote.
func (e *Engine) continueStr(src source.Source, snk sink.Sink) stepResult {
	for {
		switch e.tok.strSub {
		case subBody:
			for {
				b, status := src.PeekByte()
				if status == source.Suspend {
					return stepResult{ctrl: ctrlSourceSuspend}
				}
				if status == source.Eof {
					return e.errorAt(src, jsonstream.ErrEOF)
				}
				state := utf8dfa.Decode(e.tok.dfa, b)
				if !utf8dfa.ShouldStop(state) {
					e.tok.dfa = state
					src.Skip(1)
					continue
				}
				if state == utf8dfa.Reject {
					return e.errorAt(src, jsonstream.ErrInvalidUTF8)
				}
				switch b {
				case '"':
					r := jsonstream.Range{Start: e.tok.strStart, End: src.Position()}
					src.Skip(1)
					if !r.Empty() {
						snk.AppendStringRange(r)
					}
					e.tok = tokenizerState{}
					return e.tokenQuote(src, snk)
				case '\\':
					r := jsonstream.Range{Start: e.tok.strStart, End: src.Position()}
					src.Skip(1)
					if !r.Empty() {
						snk.AppendStringRange(r)
					}
					e.tok.strSub = subStartEscape
				default:
					return e.errorAt(src, jsonstream.ErrInvalidUTF8)
				}
				break
			}
			continue
		case subStartEscape:
			b, status := src.PeekByte()
			if status == source.Suspend {
				return stepResult{ctrl: ctrlSourceSuspend}
			}
			if status == source.Eof {
				return e.errorAt(src, jsonstream.ErrEOF)
			}
			switch b {
			case '"', '\\', '/':
				// The escaped byte is string content itself: the next raw
				// run starts on it, so it is reported as part of that range.
				src.Skip(1)
				e.resetStrBody(src.Position() - 1)
				continue
			case 'b':
				src.Skip(1)
				e.resetStrBody(src.Position())
				snk.AppendStringSingle(0x08)
				continue
			case 'f':
				src.Skip(1)
				e.resetStrBody(src.Position())
				snk.AppendStringSingle(0x0C)
				continue
			case 'n':
				src.Skip(1)
				e.resetStrBody(src.Position())
				snk.AppendStringSingle(0x0A)
				continue
			case 'r':
				src.Skip(1)
				e.resetStrBody(src.Position())
				snk.AppendStringSingle(0x0D)
				continue
			case 't':
				src.Skip(1)
				e.resetStrBody(src.Position())
				snk.AppendStringSingle(0x09)
				continue
			case 'u':
				src.Skip(1)
				e.tok.strSub = subUnicodeEscape
				e.tok.uRemaining = 4
				e.tok.uAcc = 0
				continue
			default:
				return e.errorAt(src, jsonstream.ErrInvalidEscape)
			}
		case subUnicodeEscape:
			for e.tok.uRemaining > 0 {
				b, status := src.PeekByte()
				if status == source.Suspend {
					return stepResult{ctrl: ctrlSourceSuspend}
				}
				if status == source.Eof {
					return e.errorAt(src, jsonstream.ErrEOF)
				}
				digit, isHex := hexDigit(b)
				if !isHex {
					return e.errorAt(src, jsonstream.ErrInvalidEscapeHex)
				}
				src.Skip(1)
				e.tok.uAcc = (e.tok.uAcc << 4) | digit
				e.tok.uRemaining--
			}
			acc := e.tok.uAcc
			switch {
			case acc >= 0xD800 && acc <= 0xDBFF:
				e.tok.hasSurrogateHigh = true
				e.tok.uSurrogateHigh = acc
				e.tok.strSub = subSurrogateSlash
				continue
			case e.tok.hasSurrogateHigh:
				if acc < 0xDC00 || acc > 0xDFFF {
					return e.errorAt(src, jsonstream.ErrInvalidEscapeHex)
				}
				cp := (((e.tok.uSurrogateHigh - 0xD800) << 10) | (acc - 0xDC00)) + 0x10000
				e.tok.hasSurrogateHigh = false
				e.resetStrBody(src.Position())
				snk.AppendStringCodepoint(cp)
				continue
			case acc >= 0xDC00 && acc <= 0xDFFF:
				return e.errorAt(src, jsonstream.ErrInvalidUTF8)
			default:
				e.resetStrBody(src.Position())
				snk.AppendStringCodepoint(acc)
				continue
			}
		case subSurrogateSlash:
			b, status := src.PeekByte()
			if status == source.Suspend {
				return stepResult{ctrl: ctrlSourceSuspend}
			}
			if status == source.Eof {
				return e.errorAt(src, jsonstream.ErrEOF)
			}
			if b != '\\' {
				return e.errorAt(src, jsonstream.ErrInvalidEscapeHex)
			}
			src.Skip(1)
			e.tok.strSub = subSurrogateU
			continue
		case subSurrogateU:
			b, status := src.PeekByte()
			if status == source.Suspend {
				return stepResult{ctrl: ctrlSourceSuspend}
			}
			if status == source.Eof {
				return e.errorAt(src, jsonstream.ErrEOF)
			}
			if b != 'u' {
				return e.errorAt(src, jsonstream.ErrInvalidEscapeHex)
			}
			src.Skip(1)
			e.tok.strSub = subUnicodeEscape
			e.tok.uRemaining = 4
			e.tok.uAcc = 0
			continue
		}
	}
}

func (e *Engine) resetStrBody(pos jsonstream.Position) {
	e.tok.strStart = pos
	e.tok.strSub = subBody
	e.tok.dfa = utf8dfa.Accept
}
