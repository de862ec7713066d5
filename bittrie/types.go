package bittrie

import "errors"

// MaxWidth is the widest supported key, in bits.
const MaxWidth = 64

// Ref is a node arena index.
type Ref uint32

const NoRef = ^Ref(0)

// rootRef is always the first arena record.
const rootRef = Ref(0)

var (
	ErrInvalidWidth      = errors.New("bittrie: width must be in the range 1..64")
	ErrFull              = errors.New("bittrie: trie is full")
	ErrDuplicateValue    = errors.New("bittrie: value already present")
	ErrInvalidChildIndex = errors.New("bittrie: invalid child index")
	ErrNodeCountOverflow = errors.New("bittrie: node count does not fit in a ref")
)
