// Package utf8dfa implements a table-driven DFA that validates UTF-8 a
// byte at a time while scanning the body of a JSON string. It is a
// variant of the classic Bjoern Hoehrmann decoder that additionally
// rejects C0 control bytes and treats the double quote and the
// backslash as distinguished "special" input, so the string scanner can
// detect those without a second pass over the bytes.
package utf8dfa

// State is a DFA state. Accept and Reject are ordinary decoder states;
// Special means the decoder just consumed a double quote or backslash
// from a well-formed position and the caller must inspect the byte
// itself to tell which.
type State uint8

const (
	Accept  State = 0
	Reject  State = 14
	Special State = 254
)

var charClasses = [256]uint8{
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	0, 0, 13, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 13, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	8, 8, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	10, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 3, 3,
	11, 6, 6, 6, 5, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8,
}

var stateTransitions = [126]State{
	0, 14, 28, 42, 70, 112, 98, 14, 14, 14, 56, 84, 14, 254,
	14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14,
	14, 0, 14, 14, 14, 14, 14, 0, 14, 0, 14, 14, 14, 14,
	14, 28, 14, 14, 14, 14, 14, 28, 14, 28, 14, 14, 14, 14,
	14, 14, 14, 14, 14, 14, 14, 28, 14, 14, 14, 14, 14, 14,
	14, 28, 14, 14, 14, 14, 14, 14, 14, 28, 14, 14, 14, 14,
	14, 14, 14, 14, 14, 14, 14, 42, 14, 42, 14, 14, 14, 14,
	14, 42, 14, 14, 14, 14, 14, 42, 14, 42, 14, 14, 14, 14,
	14, 42, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14,
}

// Decode steps the DFA by one byte.
func Decode(state State, b byte) State {
	class := charClasses[b]
	return stateTransitions[uint16(state)+uint16(class)]
}

// ShouldStop reports whether the decoder has hit Reject or Special and
// the caller must stop feeding it bytes and act on the result.
func ShouldStop(state State) bool {
	return state&0x0F == 14
}
