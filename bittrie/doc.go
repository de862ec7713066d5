package bittrie

/*

# Mex allocation over a lazily XOR-ed bit trie

This package provides a set of fixed-width unsigned integers that answers
three questions cheaply:

- the smallest value not in the set (the mex), in O(W)
- insertion of a specific value, in O(W)
- replacing every member s with s^key, in O(1)

W is the bit width chosen at construction (1..64). Values are traversed
MSB-first: the root encodes bit W-1 and a node at depth d encodes bit W-1-d.
Leaves sit at depth W.

## Fullness

Every node carries a flag meaning "every value under this prefix is present".
A leaf is full once its value is added. An interior node is full iff both
children exist and are full. Adding a value sets the leaf and walks parent refs
upward until a level's fullness does not change.

With the flags in place the mex is a single descent: go left while the left
child is not full, otherwise right. An absent child means nothing below it is
present, so the remaining bits of the result are zero.

## Deferred XOR

XOR-ing every value with key swaps the children of every node whose level bit
is set in key. Rather than visit them all, the key is recorded as a pending
mask at the root. Before any traversal reads the children of a node it calls
resolve:

	if mask bit for this level is 1: swap(children[0], children[1])
	children[i].mask ^= mask & lowerBits(level)
	mask = 0

Masks are held in absolute bit positions so a node needs no knowledge of its
depth beyond what the traversal passes in. Resolve never changes fullness,
since swapping children preserves "both children full".

## Storage

Nodes live in a single arena slice addressed by Ref. Parent and child links
are refs, with NoRef meaning absent. Nodes are never removed; the arena is
released as a whole with the Trie. A trie holding n values has at most
1+n*W nodes (see NodeCountMax).

A Trie is not safe for concurrent use.

*/
