// In file: internal/llm/sentinel.go
package llm

import (
	"regexp"
	"strings"
)

// SentinelToken is the literal the model is told to emit to request weather.
const SentinelToken = "CALL_WEATHER"

// sentinelRegex matches the whole reply; the lazy group still runs to the
// final ")" because of the end anchor.
var sentinelRegex = regexp.MustCompile(`(?s)^CALL_WEATHER\((.+?)\)$`)

// SentinelKind is the outcome of parsing a reply for the weather sentinel.
type SentinelKind int

const (
	// SentinelNoCall means the reply is an ordinary answer.
	SentinelNoCall SentinelKind = iota
	// SentinelCall means the reply is exactly CALL_WEATHER(location).
	SentinelCall
	// SentinelMalformed means the reply mentions the sentinel but is not a
	// well-formed call.
	SentinelMalformed
)

func (k SentinelKind) String() string {
	switch k {
	case SentinelNoCall:
		return "no_call"
	case SentinelCall:
		return "call"
	case SentinelMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// SentinelResult is the tagged result of ParseSentinel.
type SentinelResult struct {
	Kind SentinelKind
	// Location is set for SentinelCall.
	Location string
	// Raw is the trimmed reply.
	Raw string
}

// ParseSentinel classifies a model reply as NoCall, Call(location) or Malformed.
// A reply that mentions CALL_WEATHER without being an exact call is Malformed,
// not NoCall, so callers can repair it instead of showing the directive.
func ParseSentinel(reply string) SentinelResult {
	raw := strings.TrimSpace(reply)
	if m := sentinelRegex.FindStringSubmatch(raw); m != nil {
		if location := strings.TrimSpace(m[1]); location != "" {
			return SentinelResult{Kind: SentinelCall, Location: location, Raw: raw}
		}
		return SentinelResult{Kind: SentinelMalformed, Raw: raw}
	}
	if strings.Contains(raw, SentinelToken) {
		return SentinelResult{Kind: SentinelMalformed, Raw: raw}
	}
	return SentinelResult{Kind: SentinelNoCall, Raw: raw}
}
