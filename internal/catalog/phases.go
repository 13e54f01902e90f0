package catalog

// Phase metadata for progress display and interstitials.
type Phase struct {
	ID       int
	Title    string
	Subtitle string
	Icon     string
}

// Phases indexes phase metadata by phase number.
var Phases = map[int]Phase{
	1: {ID: 1, Title: "Identity Scan", Subtitle: "Let's figure out who you are", Icon: "🔍"},
	2: {ID: 2, Title: "System Diagnostics", Subtitle: "Checking your financial vitals", Icon: "⚡"},
	3: {ID: 3, Title: "Core Analysis", Subtitle: "Decoding your money wiring", Icon: "🧬"},
	4: {ID: 4, Title: "Mission Lock", Subtitle: "Define your mission", Icon: "🎯"},
	5: {ID: 5, Title: "Final Details", Subtitle: "Almost there, let us wrap it up", Icon: "✅"},
}

// Transitions maps each phase to the interstitial message shown on entry.
var Transitions = map[int]string{
	1: "Let's start with who you are...",
	2: "Identity locked. Running system diagnostics...",
	3: "Vitals checked. Decoding your core DNA...",
	4: "Core decoded. Time to lock in your mission.",
	5: "Mission locked. Just a few final details.",
}

// Advisor interstitial copy. The midway reaction fires on the phase 3 to 4
// boundary only; the final reaction fires before submission.
const (
	IntroMessage = "Hey, I'm Stanley. I'm going to ask you some questions about how you " +
		"think about money. At the end, you'll get a personalised report that breaks " +
		"down your financial DNA. The more honest your response, the more accurate " +
		"your results will be. Ready? Let's go!"

	MidwayMessage = "You're halfway through. I can already see your pattern emerging. " +
		"It's very clear where you sit. Let's lock in the rest."

	FinalMessage = "That's everything I need. Your Financial DNA is complete."
)
