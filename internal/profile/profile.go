// Package profile implements the behavioral classification engine: a pure
// transform from the answer set to a Financial DNA profile.
package profile

// Archetype is one of the six behavioral classifications.
type Archetype string

const (
	Architect   Archetype = "Architect"
	Maverick    Archetype = "Maverick"
	ZenMaster   Archetype = "Zen Master"
	Sleeper     Archetype = "Sleeper"
	Explorer    Archetype = "Explorer"
	Firefighter Archetype = "Firefighter"
)

// Level is a binary axis score.
type Level string

const (
	High Level = "High"
	Low  Level = "Low"
)

// Driver is the emotional-driver classification.
type Driver string

const (
	Guardian      Driver = "Guardian"
	FreedomSeeker Driver = "Freedom Seeker"
	LegacyBuilder Driver = "Legacy Builder"
)

// NarrativeKey selects the life-stage narrative content block.
type NarrativeKey string

const (
	NarrativeAccumulation  NarrativeKey = "A"
	NarrativeConsolidation NarrativeKey = "B"
	NarrativePreservation  NarrativeKey = "C"
	NarrativeDualDep       NarrativeKey = "D"
	NarrativeAssetMismatch NarrativeKey = "E"
)

// CognitiveGap is the blind-spot classification.
type CognitiveGap string

const (
	LifestyleCreep  CognitiveGap = "Lifestyle Creep"
	FakeBrave       CognitiveGap = "Fake Brave"
	UninsuredPillar CognitiveGap = "Uninsured Pillar"
)

// Fragility is the risk-posture classification, priority ordered.
type Fragility string

const (
	SolvencyRisk       Fragility = "Solvency Risk"
	LiquidityLimited   Fragility = "Liquidity Constrained"
	HumanCapitalBound  Fragility = "High Human Capital Dependency"
	CapitalInefficient Fragility = "Capital Inefficient"
)

// OriginKey is derived from the childhood money-narrative answer.
type OriginKey string

const (
	OriginSilentFilm  OriginKey = "Silent Film"
	OriginDrama       OriginKey = "Drama"
	OriginFantasy     OriginKey = "Fantasy"
	OriginDocumentary OriginKey = "Documentary"
)

// PivotSandwich replaces the archetype as pivot key when the respondent
// supports both children and parents.
const PivotSandwich = "Sandwich"

// Profile is the complete classification output. Derived entirely and
// deterministically from the answer set; recomputed, never patched.
type Profile struct {
	Archetype           Archetype
	SituationalOverride Archetype // "" when no override fired
	RiskAppetite        Level
	Structure           Level
	EmotionalDriver     Driver
	NarrativeKey        NarrativeKey
	CognitiveGap        CognitiveGap
	Fragility           Fragility
	PivotKey            string
	OriginKey           OriginKey

	// Axis scores on a 0-100 scale for visualization.
	RiskScore      int
	StructureScore int
}
