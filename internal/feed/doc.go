// Package feed extracts the major-release events from the BLS and BEA
// schedule feeds.
//
// The feeds are processed as raw lines, never as parsed calendar objects:
// blocks that survive the keyword and recency filters pass through to the
// merged calendar byte-for-byte, apart from a provenance annotation and
// normalization of US-Eastern timestamps to UTC. Anything the package
// cannot interpret is kept rather than dropped.
package feed
