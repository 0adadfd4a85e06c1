// Package engine implements the syntax visitor: a single pass over the
// node-visit events supplied by a frontend that recognizes widget
// construction and configuration calls and turns them into
// widget-construction records.
//
// The visitor never reads source text. Its only inputs are the event
// stream and the caller-supplied widget class mapping; its only output is
// the stream of finalized records handed to a RecordSink at scope exit.
// The scope-indexed variable table is private to one traversal, so the
// records it produces may safely be consumed concurrently afterwards.
package engine
