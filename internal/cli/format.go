package cli

import (
	"strings"

	"github.com/Rreeqqwel/omni-agent-cli/providers/ai"
)

func formatCapabilities(caps ai.Capabilities) string {
	var names []string
	if caps.Chat {
		names = append(names, "chat")
	}
	if caps.Tools {
		names = append(names, "tools")
	}
	if caps.Vision {
		names = append(names, "vision")
	}
	if caps.JSONMode {
		names = append(names, "json")
	}
	if caps.Streaming {
		names = append(names, "streaming")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
