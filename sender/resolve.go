package sender

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"xdao.co/tokenbridge/message"
)

// Resolver resolves sender addresses. The zero value uses ProgramDeriver and
// is safe for concurrent use.
type Resolver struct {
	Deriver AddressDeriver
}

// Resolve returns the address to embed as the sender of a transfer signed by
// caller.
//
// Direct requests resolve to caller. Relayed requests resolve to the program
// id, and only if caller is that program's sender authority; the authority
// itself is never returned.
func (r *Resolver) Resolve(caller solana.PublicKey, origin CallOrigin) (message.ExternalAddress, error) {
	switch o := origin.(type) {
	case Direct:
		return message.ExternalAddressFromPublicKey(caller), nil
	case Relayed:
		var d AddressDeriver
		if r != nil {
			d = r.Deriver
		}
		expected, _, err := SenderAuthority(d, o.Program)
		if err != nil {
			return message.ExternalAddress{}, err
		}
		if !caller.Equals(expected) {
			return message.ExternalAddress{}, authorizationError(caller, o.Program, expected)
		}
		return message.ExternalAddressFromPublicKey(o.Program), nil
	case nil:
		return message.ExternalAddress{}, newError(KindOrigin, RuleOrigin, "missing call origin")
	default:
		return message.ExternalAddress{}, newError(KindOrigin, RuleOrigin, fmt.Sprintf("unsupported call origin %T", origin))
	}
}

// Resolve resolves with the default ProgramDeriver.
func Resolve(caller solana.PublicKey, origin CallOrigin) (message.ExternalAddress, error) {
	var r Resolver
	return r.Resolve(caller, origin)
}
