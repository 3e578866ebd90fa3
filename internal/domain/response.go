package domain

// ResponseType is the discriminant tag of a structured advisor response.
type ResponseType string

const (
	ResponseGreeting         ResponseType = "greeting"
	ResponseGatheringInfo    ResponseType = "gathering_info"
	ResponseRecommendations  ResponseType = "recommendations"
	ResponseBudgetBreakdown  ResponseType = "budget_breakdown"
	ResponseLicenseGuide     ResponseType = "license_guide"
	ResponseSupplierGuide    ResponseType = "supplier_guide"
	ResponseProfitProjection ResponseType = "profit_projection"
	ResponseActionPlan       ResponseType = "action_plan"
	ResponseGeneralAdvice    ResponseType = "general_advice"
	ResponseClarification    ResponseType = "clarification"
)

var responseTypes = map[ResponseType]struct{}{
	ResponseGreeting:         {},
	ResponseGatheringInfo:    {},
	ResponseRecommendations:  {},
	ResponseBudgetBreakdown:  {},
	ResponseLicenseGuide:     {},
	ResponseSupplierGuide:    {},
	ResponseProfitProjection: {},
	ResponseActionPlan:       {},
	ResponseGeneralAdvice:    {},
	ResponseClarification:    {},
}

// Valid reports whether t is one of the ten recognized tags.
func (t ResponseType) Valid() bool {
	_, ok := responseTypes[t]
	return ok
}

// StructuredResponse is the validated shape of a generation result. It is a
// flat record: the tag and the optional lists are independent, so a response
// tagged "recommendations" may legally carry budget items and vice versa.
type StructuredResponse struct {
	ResponseType       ResponseType        `json:"response_type"`
	Message            string              `json:"message"`
	Recommendations    []Recommendation    `json:"recommendations,omitempty"`
	BudgetItems        []BudgetItem        `json:"budget_items,omitempty"`
	LicenseSteps       []LicenseStep       `json:"license_steps,omitempty"`
	Suppliers          []SupplierEntry     `json:"suppliers,omitempty"`
	MonthlyProjections []MonthlyProjection `json:"monthly_projections,omitempty"`
	ActionSteps        []ActionStep        `json:"action_steps,omitempty"`
	FollowUpQuestions  []string            `json:"follow_up_questions,omitempty"`
	UserProfileSummary string              `json:"user_profile_summary,omitempty"`
	NextSuggestedTopic string              `json:"next_suggested_topic,omitempty"`
}

// Recommendation is one suggested business opportunity.
type Recommendation struct {
	BusinessName   string   `json:"business_name"`
	Description    string   `json:"description"`
	StartupCostMin *float64 `json:"startup_cost_min,omitempty"`
	StartupCostMax *float64 `json:"startup_cost_max,omitempty"`
	WhyRecommended string   `json:"why_recommended,omitempty"`
}

// BudgetItem is one line in a startup budget, costs in KES.
type BudgetItem struct {
	Item     string   `json:"item"`
	CostLow  *float64 `json:"cost_low"`
	CostHigh *float64 `json:"cost_high"`
	Notes    string   `json:"notes,omitempty"`
}

// LicenseStep is one step in a licensing/registration guide.
type LicenseStep struct {
	Step      string `json:"step"`
	Authority string `json:"authority,omitempty"`
	Cost      string `json:"cost,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

// SupplierEntry points at a supplier or sourcing market.
type SupplierEntry struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Products string `json:"products,omitempty"`
	Contact  string `json:"contact,omitempty"`
}

// MonthlyProjection is one month of a profit/loss estimate, amounts in KES.
type MonthlyProjection struct {
	Month    *int     `json:"month"`
	Revenue  *float64 `json:"revenue"`
	Expenses *float64 `json:"expenses"`
	Profit   *float64 `json:"profit,omitempty"`
}

// ActionStep is one step of an execution plan.
type ActionStep struct {
	StepNumber *int   `json:"step_number"`
	Action     string `json:"action"`
	Timeline   string `json:"timeline,omitempty"`
	Details    string `json:"details,omitempty"`
}
