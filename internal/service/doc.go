// Package service owns the decode-one-message flow shared by bitsctl and
// bitsd.
//
// Ownership boundary:
// - decoder construction from config
// - version sum + evaluation of a decoded tree
// - per-message logging and metrics
package service
