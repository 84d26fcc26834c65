package llm

import "strings"

// CleanJSONBlock removes markdown code-fence wrappers from completion
// responses. Models often wrap JSON in ```json ... ``` blocks even when
// instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	// Take the segment between the fences. With an unterminated fence the
	// remainder after the opening fence is used as-is.
	parts := strings.Split(text, "```")
	if len(parts) < 2 {
		return text
	}
	inner := parts[1]

	// Strip a leading language tag such as "json".
	if strings.HasPrefix(inner, "json") {
		inner = strings.TrimPrefix(inner, "json")
	}
	return strings.TrimSpace(inner)
}
