// Package memory defines conversation-history storage for multi-turn chat
// sessions. A [Store] holds the messages exchanged so far so an agent run can
// pick up where the previous one left off. The bundled reference
// implementation lives in the sibling inmemory package.
package memory

import "github.com/Rreeqqwel/omni-agent-cli/providers/ai"

// Store holds the message history of one chat session. Implementations must
// be safe for concurrent use.
type Store interface {
	// Append adds messages to the end of the history.
	Append(messages ...ai.Message)

	// Messages returns a copy of the full history, oldest first.
	Messages() []ai.Message

	// Clear discards the history.
	Clear()
}
