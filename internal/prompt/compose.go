// Package prompt builds the outbound LLM message list for one turn. It is
// pure: no I/O, no clock, no state.
package prompt

import (
	"fmt"
	"strings"

	"github.com/Sellaris/chat-frontend-journey/internal/llm"
	"github.com/Sellaris/chat-frontend-journey/internal/model"
	"github.com/Sellaris/chat-frontend-journey/internal/persona"
)

// The assistant never sees the retrieved text or the history as separate
// structured turns; everything is interpolated into one instruction block.
const turnTemplate = `%s
以下是数据库查询内容 <%s>，
历史对话记录：
<%s>
请根据数据库内容和历史对话回答：
<%s>`

// Compose merges the persona instruction, the retrieved context (verbatim,
// even when empty), the serialized prior turns and the new utterance into a
// single synthetic user turn appended after the untouched prior turns. The
// new utterance itself is the subject of the turn, so it never appears in
// the history section.
func Compose(p persona.Persona, dbResult string, prior []model.Message, userContent string) []llm.ChatMessage {
	out := make([]llm.ChatMessage, 0, len(prior)+1)
	for _, msg := range prior {
		out = append(out, llm.ChatMessage{Role: msg.Role, Content: msg.Content})
	}
	out = append(out, llm.ChatMessage{
		Role:    model.RoleUser,
		Content: fmt.Sprintf(turnTemplate, p.Instruction, dbResult, historyLines(prior), userContent),
	})
	return out
}

func historyLines(prior []model.Message) string {
	lines := make([]string, len(prior))
	for i, msg := range prior {
		lines[i] = fmt.Sprintf("%s: %s", msg.Role, msg.Content)
	}
	return strings.Join(lines, "\n")
}
