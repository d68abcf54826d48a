package fibonacci

const (
	// MaxN is the largest index the command line accepts for the recursive
	// calculation. F(40) = 102334155 takes on the order of a second with
	// naive recursion; each further index multiplies the cost by about 1.6.
	// F(47) is the last value that fits a uint32.
	MaxN = 40

	// DefaultN is the index computed by the demo driver.
	DefaultN = 7
)
