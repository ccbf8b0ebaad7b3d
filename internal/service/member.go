package service

import (
	"context"

	"gkbc-backend/internal/domain"
	"gkbc-backend/internal/repository"
)

type memberService struct {
	applicantRepo repository.ApplicantRepository
}

func NewMemberService(applicantRepo repository.ApplicantRepository) MemberService {
	return &memberService{applicantRepo: applicantRepo}
}

// ListMembers returns the directory of approved members only. Pending and
// rejected applicants never appear here.
func (s *memberService) ListMembers(ctx context.Context) ([]domain.Applicant, error) {
	return s.applicantRepo.ListApproved(ctx)
}

func (s *memberService) GetMember(ctx context.Context, id string) (*domain.Applicant, error) {
	member, err := s.applicantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member.ApprovalStatus != domain.ApprovalStatusApproved {
		return nil, domain.ErrNotFound
	}
	return member, nil
}
