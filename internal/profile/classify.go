package profile

import (
	"strings"

	"github.com/skadvisory/findna/internal/answers"
)

// Classify maps the answer set to a complete Profile. Pure and total: any
// subset of known keys (including none) classifies; missing keys behave as
// empty strings, which match no trigger. Rule order is significant: later
// override passes beat earlier ones.
func Classify(set answers.Set) Profile {
	in := input{set: set}

	risk := riskAppetite(in)
	structure := structuralDiscipline(in)

	p := Profile{
		RiskAppetite: risk,
		Structure:    structure,
		Archetype:    baseArchetype(risk, structure),
	}

	// Situational overrides, in ascending priority: the financial-distress
	// pass runs last so Firefighter beats Explorer when both apply.
	for _, o := range overridePasses {
		if o.applies(in) {
			p.Archetype = o.archetype
			p.SituationalOverride = o.archetype
		}
	}

	p.EmotionalDriver = emotionalDriver(in)
	p.NarrativeKey = narrativeKey(in)
	p.CognitiveGap = cognitiveGap(in, risk)
	p.Fragility = fragility(in)

	p.PivotKey = string(p.Archetype)
	if in.sandwich() {
		p.PivotKey = PivotSandwich
	}

	p.OriginKey = originKey(in)

	p.RiskScore = axisScore(risk)
	p.StructureScore = axisScore(structure)

	return p
}

// input wraps the answer set with the matching helpers the rules use.
type input struct {
	set answers.Set
}

// has reports whether the display value under key contains the keyword,
// case-insensitively. Missing keys never match.
func (in input) has(key, keyword string) bool {
	v := in.set.Display(key)
	if v == "" {
		return false
	}
	return strings.Contains(strings.ToLower(v), strings.ToLower(keyword))
}

func (in input) hasAny(key string, keywords []string) bool {
	for _, kw := range keywords {
		if in.has(key, kw) {
			return true
		}
	}
	return false
}

func (in input) sandwich() bool {
	return in.has(keyBoat, sandwichTrigger)
}

func (in input) distressed() bool {
	return in.has(keyWalletFeel, squeezeTrigger) ||
		in.has(keyBoat, debtTrigger) ||
		in.has(keyFrustration, debtTrigger)
}

func riskAppetite(in input) Level {
	if in.hasAny(keyInvest, riskInvestTriggers) || in.hasAny(keySleepTest, riskSleepTriggers) {
		return High
	}
	return Low
}

func structuralDiscipline(in input) Level {
	if in.hasAny(keyCPFCheck, structureCPFTriggers) || in.hasAny(keyWalletFeel, structureWalletTriggers) {
		return High
	}
	return Low
}

func baseArchetype(risk, structure Level) Archetype {
	switch {
	case risk == High && structure == High:
		return Architect
	case risk == High:
		return Maverick
	case structure == High:
		return ZenMaster
	default:
		return Sleeper
	}
}

// overridePasses is the ordered situational-override table. Every pass whose
// predicate holds replaces the archetype; the last matching pass wins.
var overridePasses = []struct {
	archetype Archetype
	applies   func(input) bool
}{
	{Explorer, func(in input) bool { return in.hasAny(keyLifeStage, explorerTriggers) }},
	{Firefighter, input.distressed},
}

func emotionalDriver(in input) Driver {
	d := Guardian
	if in.hasAny(keySuccess, freedomKeywords) {
		d = FreedomSeeker
	}
	if in.hasAny(keySuccess, legacyKeywords) {
		d = LegacyBuilder
	}
	return d
}

// narrativeKey buckets the respondent into a life-stage narrative.
// Sandwich dependency is checked first and dominates.
func narrativeKey(in input) NarrativeKey {
	switch {
	case in.sandwich():
		return NarrativeDualDep
	case in.has(keyBoat, assetRichTrigger):
		return NarrativeAssetMismatch
	case in.hasAny(keyLifeStage, midCareerTriggers):
		return NarrativeConsolidation
	case in.hasAny(keyLifeStage, preRetireTriggers):
		return NarrativePreservation
	default:
		return NarrativeAccumulation
	}
}

func cognitiveGap(in input, risk Level) CognitiveGap {
	gap := LifestyleCreep

	if risk == High && in.has(keySleepTest, panicSellTrigger) {
		gap = FakeBrave
	}

	if (in.has(keyBoat, childrenTrigger) || in.sandwich()) && !in.has(keyCPFCheck, insuranceTrigger) {
		gap = UninsuredPillar
	}

	// The windfall check runs last and overwrites any earlier assignment.
	if in.hasAny(keyBonus, windfallSpendTriggers) {
		gap = LifestyleCreep
	}

	return gap
}

// fragility is first-match-wins in strict priority order.
func fragility(in input) Fragility {
	switch {
	case in.distressed():
		return SolvencyRisk
	case in.has(keyBoat, assetRichTrigger):
		return LiquidityLimited
	case in.sandwich() || in.has(keyBoat, childrenTrigger):
		return HumanCapitalBound
	default:
		return CapitalInefficient
	}
}

func originKey(in input) OriginKey {
	for _, t := range originTriggers {
		if in.has(keyMovieGenre, t.keyword) {
			return t.origin
		}
	}
	return OriginDocumentary
}

func axisScore(l Level) int {
	if l == High {
		return 75
	}
	return 25
}
