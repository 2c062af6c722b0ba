// In file: internal/llm/intent_analyzer.go
package llm

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// defaultWeatherKeywords covers English and Turkish weather vocabulary.
var defaultWeatherKeywords = []string{
	"weather", "hava", "sıcaklık", "temperature", "forecast",
	"hava durumu", "yağmur", "rain", "kar", "snow", "wind", "rüzgâr",
	"humidity", "nem", "hava nasıl",
}

// IntentAnalyzer is a keyword heuristic that decides whether a user's text is
// about the weather. It is the independent check the simulated chat uses to
// corroborate a CALL_WEATHER reply.
type IntentAnalyzer struct {
	keywords []string
}

// NewIntentAnalyzer uses the built-in keyword list plus any extra keywords.
func NewIntentAnalyzer(extra ...string) *IntentAnalyzer {
	keywords := make([]string, 0, len(defaultWeatherKeywords)+len(extra))
	keywords = append(keywords, defaultWeatherKeywords...)
	for _, k := range extra {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			keywords = append(keywords, k)
		}
	}
	return &IntentAnalyzer{keywords: keywords}
}

// IsWeatherQuery reports whether any keyword is a case-insensitive substring of text.
func (ia *IntentAnalyzer) IsWeatherQuery(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range ia.keywords {
		if strings.Contains(lower, keyword) {
			log.Debug().Str("keyword", keyword).Msg("🔍 Weather intent detected by keyword")
			return true
		}
	}
	return false
}
