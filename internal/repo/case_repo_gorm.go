package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lexcase/internal/domain"
	"lexcase/pkg/utils"
)

type CaseRepo struct{ db *gorm.DB }

func NewCaseRepo(db *gorm.DB) *CaseRepo { return &CaseRepo{db: db} }

func (r *CaseRepo) FindByCaseNumber(ctx context.Context, number string) (*domain.Case, error) {
	return findCase(r.db.WithContext(ctx), number)
}

func findCase(tx *gorm.DB, number string) (*domain.Case, error) {
	var c domain.Case
	err := tx.First(&c, "case_number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateWithLead writes the case and its LEAD assignment atomically. A case
// number already present, found by the pre-check or by the unique index,
// yields ErrDuplicate and nothing is written.
func (r *CaseRepo) CreateWithLead(ctx context.Context, c *domain.Case, lead *domain.CaseAssignment) error {
	if c.ID == "" {
		c.ID = utils.NewID()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findCase(tx, c.CaseNumber)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrDuplicate
		}
		if err := tx.Create(c).Error; err != nil {
			return translate(err)
		}
		if lead == nil {
			return nil
		}
		if lead.ID == "" {
			lead.ID = utils.NewID()
		}
		lead.CaseID = c.ID
		if lead.Role == "" {
			lead.Role = domain.AssignmentLead
		}
		return tx.Create(lead).Error
	})
}

func (r *CaseRepo) ListAssignments(ctx context.Context, caseID string) ([]domain.CaseAssignment, error) {
	var out []domain.CaseAssignment
	err := r.db.WithContext(ctx).Where("case_id = ?", caseID).Order("created_at").Find(&out).Error
	return out, err
}
