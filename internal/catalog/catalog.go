package catalog

import "github.com/skadvisory/findna/internal/answers"

// WordOfMouthValue is the howDiscovered option value that reveals the
// friendName follow-up question.
const WordOfMouthValue = "🗣️ Word of Mouth (Friend/Referral)"

// Default returns the built-in 22-question catalog: five phases, mostly
// single-select with a handful of free-text and contact questions at the end.
// Option values are the exact strings forwarded to the form endpoint, so
// classification keyword matching operates on them too.
func Default() Catalog {
	return Catalog{
		// Phase 1: Identity Scan
		{
			ID: "q1_lifeStage", Phase: 1, Type: TypeSingle,
			Prompt:   "First up: where are you on the map? 🗺️",
			Subtitle: "Pick the character class that fits your current chapter.",
			Options: []Option{
				{Label: "The Explorer", Value: "🎓 The Explorer: Student / NSF / Intern.", Description: "Student / NSF / Intern, still loading…", Emoji: "🎓"},
				{Label: "The Starter", Value: "🚀 The Starter: Fresh Grad / First Jobber.", Description: "Fresh grad / First jobber, tutorial complete", Emoji: "🚀"},
				{Label: "The Builder", Value: "🏗️ The Builder: Mid-Career / Climbing the ladder.", Description: "Mid-career, grinding & climbing", Emoji: "🏗️"},
				{Label: "The Optimizer", Value: "💎 The Optimizer: High Earner / Specialist.", Description: "High earner / Specialist, leveled up", Emoji: "💎"},
				{Label: "The Owner", Value: "👑 The Owner: Business Owner / Self-Employed.", Description: "Business owner / Self-employed, wrote my own game", Emoji: "👑"},
				{Label: "The Preserver", Value: "🛡️ The Preserver: Pre-Retiree or Retiree.", Description: "Pre-retiree / Retiree, endgame vibes", Emoji: "🛡️"},
			},
			Key: "lifeStage", EntryID: "1348151212",
		},
		{
			ID: "q2_boat", Phase: 1, Type: TypeSingle,
			Prompt:   "Who's riding in your financial boat? 🚣",
			Subtitle: "Your money doesn't just support you. Who else is on board?",
			Options: []Option{
				{Label: "Just Me", Value: "🛶 Just Me: I cover my own bills.", Description: "I cover my own bills, no passengers", Emoji: "🛶"},
				{Label: "My Parents (In)", Value: "🛥️ My Parents (In): They support me.", Description: "They still support me (no shame, just facts)", Emoji: "🛥️"},
				{Label: "The Sandwich", Value: "🥪 The Sandwich: I support kids AND parents.", Description: "I support kids AND parents, squeezed in the middle", Emoji: "🥪"},
				{Label: "The Provider", Value: "👶 The Provider: I support kids/partner.", Description: "I support my kids / partner", Emoji: "👶"},
				{Label: "The Contributor", Value: "🤝 The Contributor: I give allowance to parents.", Description: "I give allowance to parents", Emoji: "🤝"},
			},
			Key: "boat", EntryID: "358864386",
		},
		{
			ID: "q3_fuel", Phase: 1, Type: TypeSingle,
			Prompt:   "What's fueling your engine? ⛽",
			Subtitle: "Every ship needs fuel. What powers your finances?",
			Options: []Option{
				{Label: "The Allowance", Value: "🍬 The Allowance: Fixed amount from parents/Government.", Description: "Fixed amount from parents / Government", Emoji: "🍬"},
				{Label: "The Paycheck", Value: "💼 The Paycheck: Steady monthly salary.", Description: "Steady monthly salary", Emoji: "💼"},
				{Label: "The Hustle", Value: "⚡ The Hustle: Variable income (Commission/Own Business).", Description: "Commission / Own business, variable income", Emoji: "⚡"},
				{Label: "The Yield", Value: "🐢 The Yield: Passive income / CPF Life / Pension.", Description: "Passive income / CPF Life / Pension", Emoji: "🐢"},
			},
			Key: "fuel", EntryID: "2100947495",
		},
		{
			ID: "q4_health", Phase: 1, Type: TypeSingle,
			Prompt:   "Quick body scan: how's the hardware? 🏥",
			Subtitle: "Your health affects your wealth plan. Quick status check.",
			Options: []Option{
				{Label: "Low Maintenance", Value: "🟢 Low Maintenance: Clean bill of health.", Description: "Clean bill of health, all systems go", Emoji: "🟢"},
				{Label: "Routine Servicing", Value: "🟡 Routine Servicing: Minor common issues (e.g., Gastric/Cholesterol).", Description: "Minor stuff (gastric, cholesterol, the usual)", Emoji: "🟡"},
				{Label: "High Maintenance", Value: "🔴 High Maintenance: Chronic condition or regular specialist visits.", Description: "Chronic condition / regular specialist visits", Emoji: "🔴"},
				{Label: "Unknown", Value: "❓ Unknown: Haven't checked in years.", Description: "Haven't checked in years (living on vibes)", Emoji: "❓"},
			},
			Key: "healthStatus", EntryID: "33349731",
		},

		// Phase 2: System Diagnostics
		{
			ID: "q5_firstResponder", Phase: 2, Type: TypeSingle,
			Prompt:   "Money SOS: who do you call? 📞",
			Subtitle: "When you hit a confusing financial wall, who's your go-to?",
			Options: []Option{
				{Label: "Google / Reddit", Value: "🔍 Google / Reddit: I trust the internet.", Description: "The internet is my financial advisor", Emoji: "🔍"},
				{Label: "Friends / Family", Value: "🤝 Friends / Family: I rely on my circle.", Description: "I trust my circle", Emoji: "🤝"},
				{Label: "My Advisor", Value: "📞 My Advisor: I have a pro on speed dial.", Description: "I've got a pro on speed dial", Emoji: "📞"},
				{Label: "No One", Value: "🤷 No One: I'd just guess or ignore it.", Description: "I just guess... or ignore it", Emoji: "🤷"},
			},
			Key: "firstResponder", EntryID: "271569536",
		},
		{
			ID: "q6_cpfCheck", Phase: 2, Type: TypeSingle,
			Prompt:   "Real talk: what's your CPF vibe? 🏦",
			Subtitle: "No judgement zone. How do you actually treat your CPF?",
			Options: []Option{
				{Label: "Ignore it", Value: "🙈 Ignore it: I pretend it doesn't exist.", Description: "CPF? I pretend it doesn't exist", Emoji: "🙈"},
				{Label: "My House", Value: "🏠 My House: It's only for property.", Description: "It's basically just for my property", Emoji: "🏠"},
				{Label: "My Safety Net", Value: "🏥 My Safety Net: It's just for medical/retirement.", Description: "For medical / retirement, that's about it", Emoji: "🏥"},
				{Label: "My Gold Mine", Value: "💰 My Gold Mine: It's a key bond component of my wealth.", Description: "Key part of my wealth strategy", Emoji: "💰"},
			},
			Key: "cpfCheck", EntryID: "209568483",
		},
		{
			ID: "q7_walletFeel", Phase: 2, Type: TypeSingle,
			Prompt:   "End of the month, wallet check 👛",
			Subtitle: "Rate the vibe of your wallet when payday is still days away.",
			Options: []Option{
				{Label: "The Squeeze", Value: "🍋 The Squeeze: Tight. Counting days to payday.", Description: "Tight. Counting days to payday", Emoji: "🍋"},
				{Label: "The Breather", Value: "😮‍💨 The Breather: Okay, but vulnerable to surprises.", Description: "Okay, but one surprise could wreck me", Emoji: "😮‍💨"},
				{Label: "The Cushion", Value: "🛋️ The Cushion: Comfortable surplus.", Description: "Comfortable surplus, no stress", Emoji: "🛋️"},
				{Label: "The Overflow", Value: "🌊 The Overflow: Don't know where to put the extra cash.", Description: "Don't even know where to put the extra", Emoji: "🌊"},
			},
			Key: "walletFeel", EntryID: "256146686",
		},
		{
			ID: "q8_frustration", Phase: 2, Type: TypeSingle,
			Prompt:   "Pick your biggest money villain 🦹",
			Subtitle: "Every hero has a nemesis. What bugs you the most?",
			Options: []Option{
				{Label: "The Leak", Value: "🕳️ The Leak: \"I don't know where it all goes.\"", Description: "I don't know where my money goes", Emoji: "🕳️"},
				{Label: "The Snail", Value: "🐌 The Snail: \"I save, but it's not growing.\"", Description: "I save, but it's growing soooo slow", Emoji: "🐌"},
				{Label: "The Fog", Value: "🌫️ The Fog: \"My policies are a mess.\"", Description: "My policies & finances are a mess", Emoji: "🌫️"},
				{Label: "The FOMO", Value: "😱 The FOMO: \"I'm missing out on the market.\"", Description: "Everyone's making money except me", Emoji: "😱"},
				{Label: "The Debt", Value: "💣 The Debt: \"Loans are stressing me out.\"", Description: "Loans are stressing me out", Emoji: "💣"},
			},
			Key: "frustration", EntryID: "30442816",
		},

		// Phase 3: Core Analysis
		{
			ID: "q9_investHistory", Phase: 3, Type: TypeSingle,
			Prompt:   "Your investing origin story 📖",
			Subtitle: "No wrong answers. Where are you on the investing journey?",
			Options: []Option{
				{Label: "The Rookie", Value: "👶 The Rookie: Cash/Fixed Deposits only.", Description: "Cash & Fixed Deposits only, haven't started", Emoji: "👶"},
				{Label: "The Dabbler", Value: "🧪 The Dabbler: Guessing with apps.", Description: "Tried some apps, mostly guessing", Emoji: "🧪"},
				{Label: "The Investor", Value: "🏗️ The Investor: Structured portfolio.", Description: "Got a structured portfolio going", Emoji: "🏗️"},
				{Label: "The Trader", Value: "📊 The Trader: Active analysis/management.", Description: "Active analysis & management. I'm in deep", Emoji: "📊"},
			},
			Key: "investHistory", EntryID: "1909396791",
		},
		{
			ID: "q10_sleepTest", Phase: 3, Type: TypeSingle,
			Prompt:   "THE SLEEP TEST 😱",
			Subtitle: "Your investment drops 15 % in a month. What do you do?",
			Options: []Option{
				{Label: "Just Break Even", Value: "⚖️ Just Break Even: I just want my money back.", Description: "I just want my money back", Emoji: "⚖️"},
				{Label: "Make Small Profit", Value: "🤏 Make Small Profit: I need to beat the bank.", Description: "I need to at least beat the bank", Emoji: "🤏"},
				{Label: "Make Big Win", Value: "🚀 Make Big Win: High risk, high reward.", Description: "High risk, high reward. Let it ride", Emoji: "🚀"},
				{Label: "Stop", Value: "🛑 Stop: Sell immediately. I can't handle it.", Description: "SELL. I can't handle this", Emoji: "🛑"},
			},
			Key: "sleepTest", EntryID: "1729018390",
		},
		{
			ID: "q11_bonusReaction", Phase: 3, Type: TypeSingle,
			Prompt:   "Plot twist: you get 3 months' bonus 💸",
			Subtitle: "Unexpected windfall just hit your account. First instinct?",
			Options: []Option{
				{Label: "Treat Myself", Value: "🛍️ Treat Myself: Travel / Luxury.", Description: "Vacay / luxury / I deserve this", Emoji: "🛍️"},
				{Label: "Lock it", Value: "🏦 Lock it: Straight to savings.", Description: "Straight to savings, don't touch", Emoji: "🏦"},
				{Label: "Grow it", Value: "🌱 Grow it: Invest in the market.", Description: "Invest and make it multiply", Emoji: "🌱"},
				{Label: "Clear the Slate", Value: "🧹 Clear the Slate: Pay off debts.", Description: "Pay off debts first, freedom later", Emoji: "🧹"},
			},
			Key: "bonusReaction", EntryID: "1040670305",
		},
		{
			ID: "q12_movieGenre", Phase: 3, Type: TypeSingle,
			Prompt:   "If your childhood money life was a movie 🎬",
			Subtitle: "Think back. What genre best describes money talks at home?",
			Options: []Option{
				{Label: "The Silent Film", Value: "😶 The Silent Film: Taboo; never discussed.", Description: "Money was taboo, never discussed", Emoji: "😶"},
				{Label: "The Drama", Value: "🎭 The Drama: Stress and arguments.", Description: "Stress, arguments, tension", Emoji: "🎭"},
				{Label: "The Fantasy", Value: "🧚 The Fantasy: Abundance; got whatever I wanted.", Description: "Abundance, got whatever I wanted", Emoji: "🧚"},
				{Label: "The Documentary", Value: "📽️ The Documentary: Calm and logical.", Description: "Calm, logical, educational", Emoji: "📽️"},
			},
			Key: "movieGenre", EntryID: "1983501199",
		},
		{
			ID: "q13_valuesCheck", Phase: 3, Type: TypeSingle,
			Prompt:   "The Ethics Round ⚖️",
			Subtitle: "You make 20 % profit from tobacco / weapons stocks. How do you feel?",
			Options: []Option{
				{Label: "Great", Value: "🤑 Great: Profit is profit.", Description: "Profit is profit, no feelings", Emoji: "🤑"},
				{Label: "A bit \"Ick\"", Value: "🤢 A bit \"Ick\": Prefer to avoid if possible.", Description: "I'd prefer to avoid if there's an alternative", Emoji: "🤢"},
				{Label: "Hard No", Value: "🚫 Hard No: Refuse to profit from harm.", Description: "Refuse to profit from harm, period", Emoji: "🚫"},
			},
			Key: "valuesCheck", EntryID: "1536452459",
		},

		// Phase 4: Mission Lock
		{
			ID: "q14_objective", Phase: 4, Type: TypeSingle,
			Prompt:   "Choose your 3-year power-up 🎮",
			Subtitle: "If you could unlock ONE achievement in the next 3 years...",
			Options: []Option{
				{Label: "The Big Ticket", Value: "🏠 The Big Ticket: House / Car.", Description: "House / Car, major purchase unlock", Emoji: "🏠"},
				{Label: "The Freedom", Value: "🏖️ The Freedom: Passive income stream.", Description: "Passive income stream", Emoji: "🏖️"},
				{Label: "The Shield", Value: "🛡️ The Shield: Family protection.", Description: "Family protection & insurance", Emoji: "🛡️"},
				{Label: "The Legacy", Value: "🏛️ The Legacy: Passing wealth to the next generation.", Description: "Pass wealth to the next generation", Emoji: "🏛️"},
			},
			Key: "objective", EntryID: "1663751613",
		},
		{
			ID: "q15_sidekick", Phase: 4, Type: TypeSingle,
			Prompt:   "Pick your financial sidekick 🤖",
			Subtitle: "What kind of financial help do you actually want?",
			Options: []Option{
				{Label: "The Gym Coach", Value: "🏋️ The Gym Coach: Push me, keep me disciplined.", Description: "Push me, keep me disciplined", Emoji: "🏋️"},
				{Label: "The Professor", Value: "🎓 The Professor: Teach me the logic.", Description: "Teach me the logic & strategy", Emoji: "🎓"},
				{Label: "The Butler", Value: "🤵 The Butler: Handle the paperwork/stress.", Description: "Just handle it all for me", Emoji: "🤵"},
				{Label: "The GPS", Value: "🗺️ The GPS: Give options, I'll drive.", Description: "Give me options, I'll drive", Emoji: "🗺️"},
			},
			Key: "sidekick", EntryID: "2026159164",
		},
		{
			ID: "q16_successDefinition", Phase: 4, Type: TypeText,
			Prompt:      "Complete the mission briefing ✍️",
			Subtitle:    "\"I'll feel like I've made it financially when...\"",
			Placeholder: "Type your honest answer... no wrong answers here",
			Key:         "successDefinition", EntryID: "394663236",
		},

		// Phase 5: Final Details
		{
			ID: "q17_howDiscovered", Phase: 5, Type: TypeSingle,
			Prompt:   "How'd you find us? 👋",
			Subtitle: "Quick one: where did you discover this quiz?",
			Options: []Option{
				{Label: "Instagram", Value: "📸 Instagram", Emoji: "📸"},
				{Label: "LinkedIn", Value: "💼 LinkedIn", Emoji: "💼"},
				{Label: "Telegram", Value: "✈️ Telegram", Emoji: "✈️"},
				{Label: "Word of Mouth (Friend/Referral)", Value: WordOfMouthValue, Emoji: "🗣️"},
				{Label: "Other", Value: "🌐 Other", Emoji: "🌐"},
			},
			Key: "howDiscovered", EntryID: "235499507",
		},
		{
			ID: "q18_friendReferral", Phase: 5, Type: TypeText,
			Prompt:      "Who's the legend that sent you? 🏆",
			Subtitle:    "Shout out your friend. They have good taste.",
			Placeholder: "Your friend's name...",
			Key:         "friendName", EntryID: "1716664127",
			ShowIf: func(set answers.Set) bool {
				return set.Display("howDiscovered") == WordOfMouthValue
			},
		},
		{
			ID: "q19_name", Phase: 5, Type: TypeText,
			Prompt:      "What should we call you? 👤",
			Subtitle:    "Your DNA report needs a name on it.",
			Placeholder: "Your full name",
			Key:         "clientName", EntryID: "1677461696",
		},
		{
			ID: "q20_email", Phase: 5, Type: TypeEmail,
			Prompt:      "Where do we send your DNA Blueprint? 📬",
			Subtitle:    "We'll email your personalised Financial DNA report here.",
			Placeholder: "your.email@example.com",
			Key:         "clientEmail", EntryID: "194275276",
		},
		{
			ID: "q21_mobile", Phase: 5, Type: TypePhone,
			Prompt:      "Drop your number? 📱",
			Subtitle:    "We need this to follow up with your insights.",
			Placeholder: "81234567",
			Key:         "clientMobile", EntryID: "1901377551",
		},
		{
			ID: "q22_curiosity", Phase: 5, Type: TypeSingle,
			Prompt:   "One last thing: how deep do you want to go? 🔮",
			Subtitle: "This helps us know what kind of follow-up you'd like.",
			Options: []Option{
				{Label: "Just browsing", Value: "👀 Just browsing: Just email me the archetype result, thanks!", Description: "Email me my results, that's it", Emoji: "👀"},
				{Label: "Curious", Value: "🤔 Curious: I have a specific question about my result. Let's chat over text/Zoom.", Description: "I have questions. Let's have a quick chat", Emoji: "🤔"},
				{Label: "Serious", Value: "🔥 Serious: I want to fix my 'Money Bug' ASAP. When are you free?", Description: "I want to fix my money game ASAP", Emoji: "🔥"},
			},
			Key: "curiosityLevel", EntryID: "1698868890",
		},
	}
}
