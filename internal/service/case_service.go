package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lexcase/internal/core/apperr"
	"lexcase/internal/domain"
	"lexcase/internal/repo"
	"lexcase/internal/validation"
)

type CaseService struct {
	cases domain.CaseRepository
	log   *zap.Logger
}

func NewCaseService(cases domain.CaseRepository, log *zap.Logger) *CaseService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CaseService{cases: cases, log: log}
}

// Create stores a new case. When caller is set it becomes the creator and
// the case's LEAD in the same transaction.
func (s *CaseService) Create(ctx context.Context, caller *domain.Identity, in CreateCaseInput) (*domain.Case, error) {
	const failMsg = "Server error while creating case"
	conflict := apperr.Conflict(fmt.Sprintf("A case with number %q already exists", in.CaseNumber))

	existing, err := s.cases.FindByCaseNumber(ctx, in.CaseNumber)
	if err != nil {
		return nil, apperr.Internal(failMsg, err)
	}
	if existing != nil {
		return nil, conflict
	}

	c, err := caseFromInput(in)
	if err != nil {
		return nil, err
	}
	var lead *domain.CaseAssignment
	if caller != nil && caller.ID != "" {
		c.CreatedBy = &caller.ID
		lead = &domain.CaseAssignment{UserID: caller.ID, Role: domain.AssignmentLead}
	}

	if err := s.cases.CreateWithLead(ctx, c, lead); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, conflict
		}
		return nil, apperr.Internal(failMsg, err)
	}

	casesCreatedTotal.Inc()
	createdBy := ""
	if caller != nil {
		createdBy = caller.ID
	}
	s.log.Info("case created",
		zap.String("case_number", c.CaseNumber),
		zap.String("case_id", c.ID),
		zap.String("created_by", createdBy),
	)
	return c, nil
}

func caseFromInput(in CreateCaseInput) (*domain.Case, error) {
	filing, err := optionalDate("filingDate", in.FilingDate)
	if err != nil {
		return nil, err
	}
	hearing, err := optionalDate("hearingDate", in.HearingDate)
	if err != nil {
		return nil, err
	}
	c := &domain.Case{
		CaseNumber:     in.CaseNumber,
		Title:          in.Title,
		Description:    in.Description,
		Status:         domain.CaseStatus(in.Status),
		PracticeArea:   in.PracticeArea,
		FilingDate:     filing,
		ClientName:     in.ClientName,
		ClientEmail:    in.ClientEmail,
		ClientPhone:    in.ClientPhone,
		OpposingParty:  in.OpposingParty,
		CourtName:      in.CourtName,
		JudgeAssigned:  in.JudgeAssigned,
		HearingDate:    hearing,
		BillingRate:    in.BillingRate,
		EstimatedValue: in.EstimatedValue,
		CustomFields:   in.CustomFields,
	}
	if in.Priority != nil {
		p := domain.CasePriority(*in.Priority)
		c.Priority = &p
	}
	if in.BillingType != nil {
		b := domain.BillingType(*in.BillingType)
		c.BillingType = &b
	}
	return c, nil
}

func optionalDate(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := validation.ParseDate(*s)
	if err != nil {
		return nil, apperr.Validation([]apperr.FieldError{{Field: field, Message: validation.CreateCase.Messages[field+".*"]}})
	}
	return &t, nil
}
