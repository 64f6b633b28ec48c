package tangletoken

import "math/big"

// Checkpoint208 is one entry of an account's vote history: the clock value
// at which the vote count changed and the count from then on.
type Checkpoint208 struct {
	Key   *big.Int // uint48
	Value *big.Int // uint208
}
