package plans

import "strings"

// Unlimited marks a resource kind with no ceiling on a plan.
const Unlimited = -1

// identifies a subscription tier
type Tier string

const (
	TierFree     Tier = "free"
	TierStarter  Tier = "starter"
	TierPro      Tier = "pro"
	TierBusiness Tier = "business"
)

// identifies an independently metered capability
type ResourceKind string

const (
	KindIdea          ResourceKind = "idea"
	KindScriptBasic   ResourceKind = "script_basic"
	KindScriptPremium ResourceKind = "script_premium"
	KindAPICall       ResourceKind = "api_call"
)

// every metered kind, in display order
var Kinds = []ResourceKind{KindIdea, KindScriptBasic, KindScriptPremium, KindAPICall}

// how often counters start over
type Cadence string

const CadenceMonthly Cadence = "monthly"

// immutable per-tier limits
type Plan struct {
	Tier    Tier                 `json:"tier"`
	Limits  map[ResourceKind]int `json:"limits"`
	Cadence Cadence              `json:"cadence"`
}

// returns the ceiling for kind, or Unlimited
func (p Plan) Limit(kind ResourceKind) int {
	limit, ok := p.Limits[kind]
	if !ok {
		return 0
	}

	return limit
}

// reports whether kind has no ceiling on this plan
func (p Plan) IsUnlimited(kind ResourceKind) bool {
	return p.Limit(kind) == Unlimited
}

var catalog = map[Tier]Plan{
	TierFree: {
		Tier:    TierFree,
		Cadence: CadenceMonthly,
		Limits: map[ResourceKind]int{
			KindIdea:          10,
			KindScriptBasic:   3,
			KindScriptPremium: 0,
			KindAPICall:       100,
		},
	},
	TierStarter: {
		Tier:    TierStarter,
		Cadence: CadenceMonthly,
		Limits: map[ResourceKind]int{
			KindIdea:          100,
			KindScriptBasic:   20,
			KindScriptPremium: 5,
			KindAPICall:       1000,
		},
	},
	TierPro: {
		Tier:    TierPro,
		Cadence: CadenceMonthly,
		Limits: map[ResourceKind]int{
			KindIdea:          Unlimited,
			KindScriptBasic:   Unlimited,
			KindScriptPremium: 50,
			KindAPICall:       5000,
		},
	},
	TierBusiness: {
		Tier:    TierBusiness,
		Cadence: CadenceMonthly,
		Limits: map[ResourceKind]int{
			KindIdea:          Unlimited,
			KindScriptBasic:   Unlimited,
			KindScriptPremium: Unlimited,
			KindAPICall:       25000,
		},
	},
}

// looks up a plan by tier id, falling back to the free plan for unknown tiers
func Lookup(tier string) Plan {
	if plan, ok := catalog[Tier(strings.ToLower(strings.TrimSpace(tier)))]; ok {
		return plan
	}

	return catalog[TierFree]
}

// reports whether s names a metered resource kind
func ParseKind(s string) (ResourceKind, bool) {
	for _, kind := range Kinds {
		if string(kind) == s {
			return kind, true
		}
	}

	return "", false
}
