// Package bits owns the BITS wire contract: hex unpacking, packet parsing,
// and the read-only folds over a parsed packet tree.
//
// Ownership boundary:
// - hex digit -> bit sequence unpacking
// - literal and operator body decoding
// - recursive packet parsing with an explicit depth limit
// - version sum and expression evaluation
//
// The package performs no I/O and does not log. Callers own input loading,
// whitespace trimming, and presentation of results.
package bits
