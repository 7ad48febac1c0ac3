// Package rpc serves sender address resolution over gRPC.
package rpc
