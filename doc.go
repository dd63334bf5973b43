// Package goCell provides a branded permission protocol for mutating aliased
// data: cells that may be freely aliased, a token that is the sole capability
// to read or write them, and scopes that mint a fresh brand tying the two
// together.
//
// The design separates data from the permission to mutate it. A [Cell] holds
// one value and carries no mutation capability of its own, so any number of
// pointers to it may be handed out. The [Token] minted by [WithToken] is the
// single synchronization point for every cell sharing its brand: checking out
// its exclusive accessor, not touching any individual cell, is what grants
// mutation rights across the whole aliased web.
//
// # Architecture boundaries
//
// goCell is the public surface. It exposes [Token], [Cell], the two accessor
// types, [Config], and the audit/metrics value types. Brand minting lives
// under internal/ and is never exported.
//
// # What this package must NOT do
//
//   - Serialize, encode, or otherwise externalize a brand, token, or
//     accessor. A brand is valid only inside the scope that minted it.
//   - Block. Conflicting borrows are reported as errors on the acquisition
//     attempt, never waited out.
//   - Perform I/O inside access operations. Audit emission is asynchronous
//     and only ever triggered by violations.
//
// # Performance contract
//
// Read and Write are the hot path. Each performs one accessor-state load,
// one 16-byte brand comparison, and (when metrics are enabled) one atomic
// increment; no allocation beyond what the caller observes.
package goCell
