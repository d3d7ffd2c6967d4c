package cruncher

// Options bundles the resolved settings a Cruncher is built from,
// mirroring the CLI's flag table one field per flag.
type Options struct {
	MinTape      int32
	MaxTape      int32
	MaxNodeCost  int32
	MaxLoops     int32 // reserved: accepted and stored, never consulted (see DESIGN.md)
	MinSlen      int32
	MaxSlen      int32 // 0 means unset (no upper bound)
	MinClen      int32
	MaxClen      int32 // 0 means unset (no upper bound)
	Limit        int32 // 0 means unset (compute from the target)
	RollingLimit bool
	UniqueCells  bool
	FullProgram  bool
	Jobs         int32 // parallel length-sweep workers (see cmd/bfcrunch); 1 = sequential
}
