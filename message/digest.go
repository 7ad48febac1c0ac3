package message

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	_ "github.com/multiformats/go-multihash/register/sha3"
	"golang.org/x/crypto/sha3"
)

// Digest returns keccak-256(b), the hash the bridge uses to identify payloads.
func Digest(b []byte) [32]byte {
	var out [32]byte
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(b)
	h.Sum(out[:0])
	return out
}

// CID returns a CIDv1 using the "raw" multicodec and a keccak-256 multihash,
// so the CID's digest equals Digest(b).
func CID(b []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(b, multihash.KECCAK_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}
