package service

// SignupInput is the body of POST /api/auth/signup.
type SignupInput struct {
	Email     string `json:"email" validate:"required,max=191,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Role      string `json:"role" validate:"required,oneof=ADMIN LAWYER PARALEGAL ASSISTANT"`
}

// LoginInput is the body of POST /api/auth/login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateCaseInput is the body of POST /api/cases. Optional fields are
// pointers so an absent field is distinguishable from an empty one.
type CreateCaseInput struct {
	CaseNumber     string         `json:"caseNumber" validate:"required,max=100"`
	Title          string         `json:"title" validate:"required,min=3,max=255"`
	Description    *string        `json:"description" validate:"omitnil,max=2000"`
	Status         string         `json:"status" validate:"required,oneof=OPEN CLOSED PENDING ARCHIVED"`
	Priority       *string        `json:"priority" validate:"omitnil,oneof=LOW MEDIUM HIGH URGENT"`
	PracticeArea   *string        `json:"practiceArea" validate:"omitnil,max=100"`
	FilingDate     *string        `json:"filingDate" validate:"omitnil,isodate"`
	ClientName     *string        `json:"clientName" validate:"omitnil,min=1,max=255"`
	ClientEmail    *string        `json:"clientEmail" validate:"omitnil,max=255,email"`
	ClientPhone    *string        `json:"clientPhone" validate:"omitnil,min=1,max=50"`
	OpposingParty  *string        `json:"opposingParty" validate:"omitnil,min=1,max=255"`
	CourtName      *string        `json:"courtName" validate:"omitnil,min=1,max=255"`
	JudgeAssigned  *string        `json:"judgeAssigned" validate:"omitnil,min=1,max=255"`
	HearingDate    *string        `json:"hearingDate" validate:"omitnil,isodate"`
	BillingType    *string        `json:"billingType" validate:"omitnil,oneof=HOURLY FLAT_FEE CONTINGENCY PRO_BONO"`
	BillingRate    *float64       `json:"billingRate" validate:"omitnil,gte=0"`
	EstimatedValue *float64       `json:"estimatedValue" validate:"omitnil,gte=0"`
	CustomFields   map[string]any `json:"customFields"`
}
