// SPDX-License-Identifier: MIT

// Package batch applies one matrix (or one vector operation) to many
// vectors at once.
//
// Every element is computed by exactly the same method the vec and mat
// packages expose, so batch results are bit-identical to a plain loop.
// Large inputs are split into chunks (lo.Chunk) and processed on an
// errgroup bounded by the configured worker count; small inputs run
// inline. Input slices are never modified.
//
// Cancellation is checked before work starts and before each chunk. An
// error aborts the remaining chunks and no partial output is returned.
package batch
