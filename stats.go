package chainmap

type Stats struct {
	Size int
	// Length of the chain array.
	Chains int
	// Slots holding a chain, empty or not.
	PopulatedChains int
	LongestChain    int
	LoadFactor      float64
	// Number of times the chain array was doubled since construction.
	Resizes int
}
