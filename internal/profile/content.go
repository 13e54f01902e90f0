package profile

// Card is the archetype copy shown on the confirmation screen and in the
// preview command output.
type Card struct {
	Name        string
	Emoji       string
	Tagline     string
	Truth       string
	BlindSpot   string
	MicroAction string
}

var cards = map[Archetype]Card{
	Architect: {
		Name:        "The Architect",
		Emoji:       "🏗️",
		Tagline:     "You build wealth like you build empires, brick by brick.",
		Truth:       "You optimize every detail, but your system only works when you are running it.",
		BlindSpot:   "Transferability. Nobody else can operate the machine you built.",
		MicroAction: "Document your system so it survives a month without you.",
	},
	Maverick: {
		Name:        "The Maverick",
		Emoji:       "🚀",
		Tagline:     "You excel at generating returns but lack a defensive floor.",
		Truth:       "One bad recession could wipe you out without proper protection.",
		BlindSpot:   "No downside floor. Offense is not a defense.",
		MicroAction: "Ring-fence three months of expenses before the next big position.",
	},
	ZenMaster: {
		Name:        "The Zen Master",
		Emoji:       "🧘",
		Tagline:     "You prioritise certainty and sleep well at night.",
		Truth:       "Your risk is inflation erosion. You are losing purchasing power safely.",
		BlindSpot:   "Safety that quietly shrinks. Guaranteed returns below inflation are a slow leak.",
		MicroAction: "Move one idle lump sum into something that at least tracks inflation.",
	},
	Sleeper: {
		Name:        "The Sleeper",
		Emoji:       "🛌",
		Tagline:     "You value simplicity over optimization.",
		Truth:       "You aren't lazy; you are cognitively overloaded.",
		BlindSpot:   "Inertia. Each day you delay costs compound growth.",
		MicroAction: "Set up one automated transfer on payday and forget about it.",
	},
	Explorer: {
		Name:        "The Explorer",
		Emoji:       "🧭",
		Tagline:     "Immense time equity, limited capital.",
		Truth:       "You feel broke because you measure wealth in cash, but you are rich in time horizon.",
		BlindSpot:   "Procrastination. Starting later costs exponentially more.",
		MicroAction: "Start a small, automated monthly saving habit.",
	},
	Firefighter: {
		Name:        "The Firefighter",
		Emoji:       "🚒",
		Tagline:     "You are in survival mode.",
		Truth:       "Your brain is wired to put out fires, which makes it impossible to plan.",
		BlindSpot:   "The hail mary. High-risk bets to clear debt fast usually burn the house down.",
		MicroAction: "Cut one subscription today and start a tiny emergency fund.",
	},
}

// Content returns the card for an archetype. Unknown archetypes fall back to
// the Sleeper card.
func Content(a Archetype) Card {
	if c, ok := cards[a]; ok {
		return c
	}
	return cards[Sleeper]
}
