// In file: internal/chat/prompts.go
package chat

import "fmt"

// NativeSystemPrompt opens the transcript of the native tool-calling chat.
const NativeSystemPrompt = "You are a helpful assistant. If the user requests current weather, " +
	"call get_weather via the provided tool and use the result in your reply."

const sentinelInstruction = "You are a helpful assistant. " +
	"If, and only if, the user explicitly asks about current or future weather, " +
	"respond with exactly CALL_WEATHER(location) and nothing else. " +
	"Otherwise, answer normally."

// sentinelFailureReply replaces a follow-up that still carries the sentinel.
const sentinelFailureReply = "Sorry, I couldn't produce an answer to that. Please try rephrasing your question."

func firstPrompt(input string) string {
	return fmt.Sprintf("%s\nUser: %s", sentinelInstruction, input)
}

func weatherPrompt(input, weatherInfo string) string {
	return "You are a helpful assistant. " +
		"The user asked a question and the current weather data is provided. " +
		"Use the weather data ONLY IF it is relevant to the user's query. " +
		"Otherwise ignore it.\n\n" +
		fmt.Sprintf("USER_QUERY: %s\nWEATHER_DATA: %s", input, weatherInfo)
}

func falsePositivePrompt(input string) string {
	return "The assistant mistakenly entered a weather function call. " +
		"Please answer the user's question normally, without mentioning weather.\n\n" +
		fmt.Sprintf("USER_QUERY: %s", input)
}

func malformedPrompt(input string) string {
	return "The assistant produced an invalid CALL_WEATHER directive. " +
		"Answer the user's question directly in plain prose. " +
		"Do not write CALL_WEATHER or any other directive.\n\n" +
		fmt.Sprintf("USER_QUERY: %s", input)
}
