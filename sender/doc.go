// Package sender resolves the sender address embedded in outbound token
// bridge transfers.
//
// A transfer is attributed either to the key holder that signed it or, when
// it arrives through a cross-program invocation, to the invoking program. A
// program claim is accepted only when the signer is the program's "sender"
// authority, an off-curve address derived from the program id that only the
// program itself can sign for.
package sender
