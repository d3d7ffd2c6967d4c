package synth

// Tuple is one candidate initialization parameter set: the s segment
// (leading pointer-decrement prefix), the c segment (the loop's
// distribution coefficients), the k pair (pre/post loop-body
// increments), the j pair (the loop-body's own increment and its
// self-decrement), and h (the cell value reused as the loop's counter
// reset).
type Tuple struct {
	S []int32
	C []int32
	K [2]int32
	J [2]int32
	H int32
}
