// Package ipc exposes the Coordinator Core over a newline-delimited JSON
// protocol on a local stream socket, and ships the matching client used by
// producers.
//
// Each accepted connection is handled independently: the server decodes one
// JSON object per line into a Command, hands it to the coordinator queue,
// and writes back exactly one JSON response per request. A connection is
// closed after the first malformed line; well-formed lines with invalid
// command or param values get an error response but keep the connection
// open, since the client may still send valid requests afterward.
package ipc
