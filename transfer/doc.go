// Package transfer builds the outbound messages of the token bridge's
// transfer-with-payload instructions for native and wrapped assets.
//
// Both handlers resolve the sender through the same sender.Resolver before
// doing any other work. A resolver error aborts the request and nothing is
// produced.
package transfer
