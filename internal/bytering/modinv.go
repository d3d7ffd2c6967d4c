package bytering

// modInv256 holds the multiplicative inverse mod 256 of every odd
// residue 1, 3, ..., 39 at its own index; even indices (never odd
// divisors) and indices with no inverse are 0. Values are taken
// verbatim from the reference implementation's lookup table.
var modInv256 = [40]int32{
	0, 1, 0, 171, 0, 205, 0, 183, 0, 57, 0, 163, 0, 197, 0, 239, 0, 241, 0, 27, 0, 61, 0, 167, 0,
	41, 0, 19, 0, 53, 0, 223, 0, 225, 0, 139, 0, 173, 0, 151,
}

// ModInv returns the multiplicative inverse of q modulo 256, for odd q
// in [1, 39]. ok is false when q is out of table range or its tabled
// inverse is 0 (both treated as "infeasible tuple" by internal/synth).
func ModInv(q int32) (inv int32, ok bool) {
	if q < 0 || int(q) >= len(modInv256) {
		return 0, false
	}
	inv = modInv256[q]
	if inv == 0 {
		return 0, false
	}
	return inv, true
}
