// Package internal contains helper utilities that are intentionally private
// to goCell, currently the brand identity minting used by scope entry.
//
// # What this package must NOT do
//
//   - Export types that appear in the public goCell API.
//   - Be imported by any package outside the goCell module.
package internal
