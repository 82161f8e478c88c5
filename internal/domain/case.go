package domain

import (
	"context"
	"time"
)

type CaseStatus string

const (
	CaseOpen     CaseStatus = "OPEN"
	CaseClosed   CaseStatus = "CLOSED"
	CasePending  CaseStatus = "PENDING"
	CaseArchived CaseStatus = "ARCHIVED"
)

type CasePriority string

const (
	PriorityLow    CasePriority = "LOW"
	PriorityMedium CasePriority = "MEDIUM"
	PriorityHigh   CasePriority = "HIGH"
	PriorityUrgent CasePriority = "URGENT"
)

type BillingType string

const (
	BillingHourly      BillingType = "HOURLY"
	BillingFlatFee     BillingType = "FLAT_FEE"
	BillingContingency BillingType = "CONTINGENCY"
	BillingProBono     BillingType = "PRO_BONO"
)

// AssignmentLead marks the creator of a case.
const AssignmentLead = "LEAD"

type Case struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	CaseNumber     string         `gorm:"uniqueIndex;size:100;not null" json:"caseNumber"`
	Title          string         `gorm:"size:255;not null" json:"title"`
	Description    *string        `gorm:"type:text" json:"description"`
	Status         CaseStatus     `gorm:"size:16;not null;index" json:"status"`
	Priority       *CasePriority  `gorm:"size:16" json:"priority"`
	PracticeArea   *string        `gorm:"size:100" json:"practiceArea"`
	FilingDate     *time.Time     `json:"filingDate"`
	ClientName     *string        `gorm:"size:255" json:"clientName"`
	ClientEmail    *string        `gorm:"size:255" json:"clientEmail"`
	ClientPhone    *string        `gorm:"size:50" json:"clientPhone"`
	OpposingParty  *string        `gorm:"size:255" json:"opposingParty"`
	CourtName      *string        `gorm:"size:255" json:"courtName"`
	JudgeAssigned  *string        `gorm:"size:255" json:"judgeAssigned"`
	HearingDate    *time.Time     `json:"hearingDate"`
	BillingType    *BillingType   `gorm:"size:16" json:"billingType"`
	BillingRate    *float64       `json:"billingRate"`
	EstimatedValue *float64       `json:"estimatedValue"`
	CustomFields   map[string]any `gorm:"type:text;serializer:json" json:"customFields"`
	CreatedBy      *string        `gorm:"size:36;index" json:"createdBy"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func (Case) TableName() string { return "cases" }

type CaseAssignment struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CaseID    string    `gorm:"size:36;not null;uniqueIndex:idx_assignment_case_user" json:"caseId"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:idx_assignment_case_user" json:"userId"`
	Role      string    `gorm:"size:16;not null;default:LEAD" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (CaseAssignment) TableName() string { return "case_assignments" }

type CaseRepository interface {
	FindByCaseNumber(ctx context.Context, number string) (*Case, error)
	// CreateWithLead inserts the case and, when lead is non-nil, its LEAD
	// assignment in one transaction.
	CreateWithLead(ctx context.Context, c *Case, lead *CaseAssignment) error
	ListAssignments(ctx context.Context, caseID string) ([]CaseAssignment, error)
}
