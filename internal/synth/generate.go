package synth

// Generator holds the length bounds a candidate tuple's s and c
// segments must respect; a zero Max means unbounded and a zero Min
// falls back to the structural minimum (1 for s, 3 for c).
type Generator struct {
	MinSlen int32
	MaxSlen int32 // 0 means unbounded
	MinClen int32
	MaxClen int32 // 0 means unbounded
}

const unbounded = int32(1<<31 - 1)

func (g Generator) minSlen() int32 {
	if g.MinSlen < 1 {
		return 1
	}
	return g.MinSlen
}

func (g Generator) maxSlenOrUnbounded() int32 {
	if g.MaxSlen <= 0 {
		return unbounded
	}
	return g.MaxSlen
}

func (g Generator) minClen() int32 {
	if g.MinClen < 1 {
		return 1
	}
	return g.MinClen
}

func (g Generator) maxClenOrUnbounded() int32 {
	if g.MaxClen <= 0 {
		return unbounded
	}
	return g.MaxClen
}

// Generate walks every (s, c, k, j, h) parameter tuple whose BF
// translation has the given total length, calling emit once per tuple.
// It never simulates or solves anything — that is left entirely to the
// caller (internal/cruncher), keeping the generator unit-testable on
// its own.
func (g Generator) Generate(length int32, emit func(Tuple)) {
	sMin := g.minSlen()
	sMax := minI32(g.maxSlenOrUnbounded(), length-12)
	if sMin > sMax {
		return
	}

	for slen := sMin; slen <= sMax; slen++ {
		for _, s := range SListGen(slen) {
			cMin := maxI32(g.minClen(), 3)
			cMax := minI32(g.maxClenOrUnbounded(), length-slen-9)
			if cMin > cMax {
				continue
			}

			for clen := cMin; clen <= cMax; clen++ {
				for _, c := range CListGen(clen) {
					remaining := length - slen - clen - 9
					if remaining < 0 {
						continue
					}

					for klen := int32(0); klen <= remaining; klen++ {
						for _, k := range KListGen(klen) {
							jRemaining := length - slen - clen - klen - 7
							if jRemaining < 2 {
								continue
							}

							for jlen := int32(2); jlen <= jRemaining; jlen++ {
								for _, j := range JListGen(jlen) {
									hlen := length - slen - clen - klen - jlen - 7
									var hCandidates []int32
									if hlen > 0 {
										hCandidates = []int32{-hlen, hlen}
									} else {
										hCandidates = []int32{hlen}
									}

									for _, h := range hCandidates {
										emit(Tuple{S: s, C: c, K: k, J: j, H: h})
									}
								}
							}
						}
					}
				}
			}
		}
	}
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// SListGen returns every s-list whose BF translation
// (`{sign}*abs(term) '[' or '<'` per term) has the given total length.
func SListGen(length int32) [][]int32 {
	var result [][]int32
	var current []int32
	sListDFS(length, true, &current, &result)
	return result
}

func sListDFS(length int32, first bool, current *[]int32, out *[][]int32) {
	if length < 1 {
		cp := append([]int32(nil), *current...)
		*out = append(*out, cp)
		return
	}
	for i := -length; i <= length; i++ {
		if (first && i == 0) || (abs32(i) == length-1) {
			continue
		}
		*current = append(*current, i)
		sListDFS(length-abs32(i)-1, false, current, out)
		*current = (*current)[:len(*current)-1]
	}
}

// CListGen returns every c-list whose BF translation has the given
// total length.
func CListGen(length int32) [][]int32 {
	var result [][]int32
	var current []int32
	cListDFS(length, true, &current, &result)
	return result
}

func cListDFS(length int32, first bool, current *[]int32, out *[][]int32) {
	if length < 1 {
		cp := append([]int32(nil), *current...)
		*out = append(*out, cp)
		return
	}
	j := int32(2)
	if first {
		j = 1
	}
	for i := j - length; i <= length-j; i++ {
		if i == 0 && length < 3 && !first {
			continue
		}
		*current = append(*current, i)
		cListDFS(length-abs32(i)-j, false, current, out)
		*current = (*current)[:len(*current)-1]
	}
}

// KListGen returns every [k0, k1] pair whose BF translation
// (`{k0}` prepended, `{k1}` appended to the loop) has the given total
// length.
func KListGen(length int32) [][2]int32 {
	if length == 0 {
		return [][2]int32{{0, 0}}
	}
	var result [][2]int32
	result = append(result, [2]int32{-length, 0})
	for i := 1 - length; i < length; i++ {
		k1 := length - abs32(i)
		result = append(result, [2]int32{i, k1})
		result = append(result, [2]int32{i, -k1})
	}
	result = append(result, [2]int32{length, 0})
	return result
}

// JListGen returns every [j0, j1] pair whose BF translation has the
// given total length. j1 is always strictly positive: it is the loop's
// own self-decrement and must run at least once to terminate.
func JListGen(length int32) [][2]int32 {
	var result [][2]int32
	for i := int32(1); i < length; i++ {
		result = append(result, [2]int32{length - i, i})
	}
	return result
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
