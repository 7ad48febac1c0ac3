// Package message encodes the outbound token bridge payloads that carry a
// resolved sender address.
//
// Encodings are big-endian and byte-exact with the on-chain layout, so the
// digest and CID of a payload are stable across implementations.
package message
