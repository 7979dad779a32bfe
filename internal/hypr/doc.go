// Package hypr owns the two Unix sockets the compositor exposes per
// instance: the push-only event stream and the request/response query
// endpoint.
//
// It resolves socket paths from the instance signature in the
// environment, provides line-delimited reads on the event channel, and
// models the query channel as a narrow request(command) -> bytes
// capability so the state loader stays transport-agnostic. Connection
// loss is surfaced as TransportError (or ErrEventStreamClosed for the
// event stream); reconnection policy belongs to the watch loop, which
// deliberately has none.
package hypr
