package ai

import "iter"

// ChatStream is a lazy, finite, non-restartable sequence of [ResponseChunk]
// values produced by [Provider.StreamChat]. Iterate it with a range-over-func
// loop; breaking out early cancels the underlying network read and releases
// the HTTP connection. A ChatStream that is never consumed leaks the open
// response body, so always either range over [ChatStream.Iter] or call
// [ChatStream.Collect].
//
// Tool calls arrive exactly as the vendor emitted them. For OpenAI-style
// streams that means per-network-chunk fragments (ID and name on the first
// fragment, argument text spread over the rest); the stream does not
// reassemble them. [ChatStream.Collect] appends fragments in arrival order
// for callers that want to stitch them together afterwards.
type ChatStream struct {
	iterator iter.Seq2[ResponseChunk, error]
}

// NewChatStream wraps a raw chunk iterator. The iterator yields chunks with a
// nil error for normal progress and a non-nil error exactly once to signal a
// mid-stream failure, after which it must stop.
func NewChatStream(iterator iter.Seq2[ResponseChunk, error]) *ChatStream {
	return &ChatStream{iterator: iterator}
}

// NewSingleChunkStream re-presents a completed one-shot result as a stream:
// one content chunk when the result carried text, then a terminal chunk with
// the finish reason (defaulting to "stop" when the vendor gave none). Used by
// adapters whose vendor protocol has no incremental path.
func NewSingleChunkStream(result ResponseChunk) *ChatStream {
	iteratorFunc := func(yield func(ResponseChunk, error) bool) {
		if result.Content != "" {
			if !yield(ResponseChunk{Content: result.Content}, nil) {
				return
			}
		}

		finishReason := result.FinishReason
		if finishReason == "" {
			finishReason = "stop"
		}
		yield(ResponseChunk{FinishReason: finishReason}, nil)
	}

	return NewChatStream(iteratorFunc)
}

// Iter returns the underlying iterator for use with range loops:
//
//	for chunk, err := range stream.Iter() {
//	    if err != nil { ... }
//	    fmt.Print(chunk.Content)
//	}
func (stream *ChatStream) Iter() iter.Seq2[ResponseChunk, error] {
	return stream.iterator
}

// Collect consumes the entire stream and folds it into a single chunk:
// content concatenated, tool calls appended in arrival order (fragments are
// kept raw, not merged), and the last non-empty finish reason retained. A
// mid-stream error terminates collection and is returned alongside the
// partial result.
func (stream *ChatStream) Collect() (ResponseChunk, error) {
	var accumulated ResponseChunk

	for chunk, err := range stream.iterator {
		if err != nil {
			return accumulated, err
		}

		accumulated.Content += chunk.Content
		accumulated.ToolCalls = append(accumulated.ToolCalls, chunk.ToolCalls...)
		if chunk.FinishReason != "" {
			accumulated.FinishReason = chunk.FinishReason
		}
	}

	return accumulated, nil
}
