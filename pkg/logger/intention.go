package logger

// Intention represents the semantic intent of a log line, orthogonal to level.
// It lets us keep emojis out of source while still emitting meaningful icons
// at the console and structured attributes in logs.
type Intention string

const (
	IntentionOracle     Intention = "oracle"
	IntentionQuestion   Intention = "question"
	IntentionStatistics Intention = "statistics"
	IntentionStatus     Intention = "status"
	IntentionSuccess    Intention = "success"
	IntentionConfig     Intention = "config"
)

// iconFor returns a short emoji string for console output for the intention.
func iconFor(i Intention) string {
	switch i {
	case IntentionOracle:
		return "🔮"
	case IntentionQuestion:
		return "❓"
	case IntentionStatistics:
		return "📊"
	case IntentionStatus:
		return "ℹ️"
	case IntentionSuccess:
		return "✅"
	case IntentionConfig:
		return "⚙️"
	default:
		return "➤"
	}
}
