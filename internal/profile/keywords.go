package profile

// Trigger and keyword tables for the classification rules. Matching is
// case-insensitive substring containment against the answer's display value.
// Keeping these as named tables (instead of inline literals) lets the
// precedence logic in classify.go stay purely structural.

// Answer keys read by the engine.
const (
	keyLifeStage   = "lifeStage"
	keyBoat        = "boat"
	keyCPFCheck    = "cpfCheck"
	keyWalletFeel  = "walletFeel"
	keyFrustration = "frustration"
	keyInvest      = "investHistory"
	keySleepTest   = "sleepTest"
	keyBonus       = "bonusReaction"
	keyMovieGenre  = "movieGenre"
	keySuccess     = "successDefinition"
)

// Risk appetite: aggressive investing history or risk-seeking stress response.
var (
	riskInvestTriggers = []string{"maverick", "trader"}
	riskSleepTriggers  = []string{"big win", "make big profit"}
)

// Structural discipline: considered CPF use or cash-flow surplus.
var (
	structureCPFTriggers    = []string{"gold mine", "safety net"}
	structureWalletTriggers = []string{"cushion", "overflow"}
)

// Explorer override: student / early-career / national-service life stages.
var explorerTriggers = []string{"explorer", "starter", "student", "nsf"}

// Distress signals shared by the Firefighter override and Solvency Risk.
const (
	squeezeTrigger = "squeeze"
	debtTrigger    = "debt"
)

// Emotional driver keyword sets. Freedom keywords are checked first; legacy
// keywords run after and win ties.
var (
	freedomKeywords = []string{
		"freedom", "time", "passive", "retire",
		"choice", "option", "independent", "flexible",
	}
	legacyKeywords = []string{
		"legacy", "children", "kids", "generation",
		"family", "provide", "generational", "inheritance",
	}
)

// Narrative and fragility triggers.
var (
	sandwichTrigger       = "sandwich"
	assetRichTrigger      = "asset rich"
	childrenTrigger       = "children"
	midCareerTriggers     = []string{"builder", "optimizer"}
	preRetireTriggers     = []string{"preserver", "pre-retiree"}
	panicSellTrigger      = "stop"
	insuranceTrigger      = "insurance"
	windfallSpendTriggers = []string{"treat", "spend"}
)

// Origin story triggers, checked in order; Documentary is the default.
var originTriggers = []struct {
	keyword string
	origin  OriginKey
}{
	{"silent", OriginSilentFilm},
	{"drama", OriginDrama},
	{"fantasy", OriginFantasy},
}
