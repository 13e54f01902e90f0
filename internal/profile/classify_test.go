package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skadvisory/findna/internal/answers"
)

func set(kv map[string]string) answers.Set {
	s := answers.NewSet()
	for k, v := range kv {
		s.Put(k, answers.Text(v))
	}
	return s
}

func TestClassify_EmptySetDefaults(t *testing.T) {
	p := Classify(answers.NewSet())

	assert.Equal(t, Sleeper, p.Archetype)
	assert.Equal(t, Archetype(""), p.SituationalOverride)
	assert.Equal(t, Low, p.RiskAppetite)
	assert.Equal(t, Low, p.Structure)
	assert.Equal(t, Guardian, p.EmotionalDriver)
	assert.Equal(t, NarrativeAccumulation, p.NarrativeKey)
	assert.Equal(t, LifestyleCreep, p.CognitiveGap)
	assert.Equal(t, CapitalInefficient, p.Fragility)
	assert.Equal(t, "Sleeper", p.PivotKey)
	assert.Equal(t, OriginDocumentary, p.OriginKey)
	assert.Equal(t, 25, p.RiskScore)
	assert.Equal(t, 25, p.StructureScore)
}

func TestClassify_Deterministic(t *testing.T) {
	s := set(map[string]string{
		"investHistory":     "The Trader",
		"walletFeel":        "The Cushion",
		"successDefinition": "freedom for my family",
		"boat":              "The Sandwich",
	})
	first := Classify(s)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Classify(s))
	}
}

func TestClassify_ArchitectScenario(t *testing.T) {
	p := Classify(set(map[string]string{
		"investHistory": "Trader",
		"sleepTest":     "Stop",
		"walletFeel":    "Cushion",
		"cpfCheck":      "Gold Mine",
	}))

	assert.Equal(t, High, p.RiskAppetite)
	assert.Equal(t, High, p.Structure)
	assert.Equal(t, Architect, p.Archetype)
	assert.Equal(t, Archetype(""), p.SituationalOverride)
	// High risk appetite combined with a panic-sell stress response.
	assert.Equal(t, FakeBrave, p.CognitiveGap)
}

func TestClassify_Matrix(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]string
		want Archetype
	}{
		{"high risk high structure", map[string]string{"investHistory": "Trader", "cpfCheck": "Gold Mine"}, Architect},
		{"high risk low structure", map[string]string{"investHistory": "Maverick"}, Maverick},
		{"low risk high structure", map[string]string{"walletFeel": "Overflow"}, ZenMaster},
		{"low risk low structure", map[string]string{"investHistory": "Rookie"}, Sleeper},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(set(tt.in)).Archetype)
		})
	}
}

func TestClassify_FirefighterBeatsExplorer(t *testing.T) {
	p := Classify(set(map[string]string{
		"lifeStage":  "The Explorer",
		"walletFeel": "Squeeze",
	}))

	assert.Equal(t, Firefighter, p.Archetype)
	assert.Equal(t, Firefighter, p.SituationalOverride)
}

func TestClassify_ExplorerOverride(t *testing.T) {
	for _, stage := range []string{"The Explorer", "The Starter", "Student", "NSF"} {
		p := Classify(set(map[string]string{"lifeStage": stage}))
		assert.Equal(t, Explorer, p.Archetype, "life stage %q", stage)
		assert.Equal(t, Explorer, p.SituationalOverride)
	}
}

func TestClassify_FirefighterTriggers(t *testing.T) {
	tests := []map[string]string{
		{"walletFeel": "The Squeeze"},
		{"boat": "drowning in Debt"},
		{"frustration": "The Debt"},
	}
	for _, in := range tests {
		p := Classify(set(in))
		assert.Equal(t, Firefighter, p.Archetype)
		assert.Equal(t, SolvencyRisk, p.Fragility)
	}
}

func TestClassify_LegacyBeatsFreedom(t *testing.T) {
	p := Classify(set(map[string]string{
		"successDefinition": "I want freedom and flexible time with my family",
	}))
	assert.Equal(t, LegacyBuilder, p.EmotionalDriver)
}

func TestClassify_EmotionalDriver(t *testing.T) {
	tests := []struct {
		text string
		want Driver
	}{
		{"a stable job", Guardian},
		{"I can retire early", FreedomSeeker},
		{"PASSIVE income", FreedomSeeker},
		{"leave an inheritance", LegacyBuilder},
		{"provide for my kids", LegacyBuilder},
	}
	for _, tt := range tests {
		p := Classify(set(map[string]string{"successDefinition": tt.text}))
		assert.Equal(t, tt.want, p.EmotionalDriver, "text %q", tt.text)
	}
}

func TestClassify_NarrativePriority(t *testing.T) {
	// Sandwich wins over mid-career.
	p := Classify(set(map[string]string{
		"boat":      "The Sandwich",
		"lifeStage": "The Builder",
	}))
	assert.Equal(t, NarrativeDualDep, p.NarrativeKey)

	tests := []struct {
		name string
		in   map[string]string
		want NarrativeKey
	}{
		{"asset rich", map[string]string{"boat": "Asset Rich"}, NarrativeAssetMismatch},
		{"builder", map[string]string{"lifeStage": "The Builder"}, NarrativeConsolidation},
		{"optimizer", map[string]string{"lifeStage": "The Optimizer"}, NarrativeConsolidation},
		{"preserver", map[string]string{"lifeStage": "The Preserver"}, NarrativePreservation},
		{"default", map[string]string{"lifeStage": "The Owner"}, NarrativeAccumulation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(set(tt.in)).NarrativeKey)
		})
	}
}

func TestClassify_WindfallForcesLifestyleCreep(t *testing.T) {
	// Fake Brave conditions hold, but the treat-myself windfall answer has
	// final say.
	p := Classify(set(map[string]string{
		"investHistory": "Trader",
		"sleepTest":     "Stop",
		"bonusReaction": "Treat Myself",
	}))
	assert.Equal(t, FakeBrave, Classify(set(map[string]string{
		"investHistory": "Trader",
		"sleepTest":     "Stop",
	})).CognitiveGap)
	assert.Equal(t, LifestyleCreep, p.CognitiveGap)
}

func TestClassify_UninsuredPillar(t *testing.T) {
	p := Classify(set(map[string]string{
		"boat":     "The Sandwich",
		"cpfCheck": "Ignore it",
	}))
	assert.Equal(t, UninsuredPillar, p.CognitiveGap)

	// Insurance mention in the retirement-savings answer clears the gap.
	p = Classify(set(map[string]string{
		"boat":     "The Sandwich",
		"cpfCheck": "Insurance and retirement",
	}))
	assert.Equal(t, LifestyleCreep, p.CognitiveGap)
}

func TestClassify_UninsuredPillarOverridesFakeBrave(t *testing.T) {
	p := Classify(set(map[string]string{
		"investHistory": "Trader",
		"sleepTest":     "Stop",
		"boat":          "The Sandwich",
		"cpfCheck":      "Ignore it",
	}))
	assert.Equal(t, UninsuredPillar, p.CognitiveGap)
}

func TestClassify_FragilityPriority(t *testing.T) {
	// Solvency beats liquidity beats dependency.
	p := Classify(set(map[string]string{
		"walletFeel": "Squeeze",
		"boat":       "Asset Rich Sandwich",
	}))
	assert.Equal(t, SolvencyRisk, p.Fragility)

	p = Classify(set(map[string]string{"boat": "Asset Rich Sandwich"}))
	assert.Equal(t, LiquidityLimited, p.Fragility)

	p = Classify(set(map[string]string{"boat": "The Sandwich"}))
	assert.Equal(t, HumanCapitalBound, p.Fragility)
}

func TestClassify_PivotKey(t *testing.T) {
	p := Classify(set(map[string]string{"investHistory": "Trader"}))
	assert.Equal(t, "Maverick", p.PivotKey)

	p = Classify(set(map[string]string{
		"investHistory": "Trader",
		"boat":          "The Sandwich",
	}))
	assert.Equal(t, PivotSandwich, p.PivotKey)
	assert.Equal(t, Maverick, p.Archetype)
}

func TestClassify_OriginKey(t *testing.T) {
	tests := []struct {
		genre string
		want  OriginKey
	}{
		{"The Silent Film", OriginSilentFilm},
		{"The Drama", OriginDrama},
		{"The Fantasy", OriginFantasy},
		{"The Documentary", OriginDocumentary},
		{"", OriginDocumentary},
	}
	for _, tt := range tests {
		p := Classify(set(map[string]string{"movieGenre": tt.genre}))
		assert.Equal(t, tt.want, p.OriginKey, "genre %q", tt.genre)
	}
}

func TestClassify_SelectedOptionsUseDisplayValue(t *testing.T) {
	s := answers.NewSet()
	s.Put("investHistory", answers.Selected("The Trader", "📊 The Trader: Active analysis/management."))
	s.Put("cpfCheck", answers.Selected("My Gold Mine", "💰 My Gold Mine: It's a key bond component of my wealth."))

	p := Classify(s)
	assert.Equal(t, Architect, p.Archetype)
}

func TestClassify_FullCatalogRun(t *testing.T) {
	// A respondent answering every question classifies without surprises.
	s := set(map[string]string{
		"lifeStage":         "🏗️ The Builder: Mid-Career / Climbing the ladder.",
		"boat":              "🥪 The Sandwich: I support kids AND parents.",
		"fuel":              "💼 The Paycheck: Steady monthly salary.",
		"healthStatus":      "🟢 Low Maintenance: Clean bill of health.",
		"firstResponder":    "🔍 Google / Reddit: I trust the internet.",
		"cpfCheck":          "🙈 Ignore it: I pretend it doesn't exist.",
		"walletFeel":        "😮‍💨 The Breather: Okay, but vulnerable to surprises.",
		"frustration":       "🐌 The Snail: \"I save, but it's not growing.\"",
		"investHistory":     "🧪 The Dabbler: Guessing with apps.",
		"sleepTest":         "⚖️ Just Break Even: I just want my money back.",
		"bonusReaction":     "🏦 Lock it: Straight to savings.",
		"movieGenre":        "🎭 The Drama: Stress and arguments.",
		"successDefinition": "providing for the next generation",
	})

	p := Classify(s)
	assert.Equal(t, Sleeper, p.Archetype)
	assert.Equal(t, LegacyBuilder, p.EmotionalDriver)
	assert.Equal(t, NarrativeDualDep, p.NarrativeKey)
	assert.Equal(t, UninsuredPillar, p.CognitiveGap)
	assert.Equal(t, HumanCapitalBound, p.Fragility)
	assert.Equal(t, PivotSandwich, p.PivotKey)
	assert.Equal(t, OriginDrama, p.OriginKey)
}

func TestContent_KnownAndFallback(t *testing.T) {
	c := Content(Firefighter)
	assert.Equal(t, "The Firefighter", c.Name)

	fallback := Content(Archetype("nonsense"))
	assert.Equal(t, "The Sleeper", fallback.Name)
}
