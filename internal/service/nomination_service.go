package service

import (
	"context"
	"fmt"

	"socialhub/internal/apperrors"
	"socialhub/internal/models"
	"socialhub/internal/repository"
)

const (
	NominationBestEmployee = "BestEmployee"
	NominationBestTeam     = "BestTeam"
)

// статичная привязка тип -> картинка номинации
var nominationPhotoURLs = map[string]string{
	NominationBestEmployee: "https://static.socialhub.local/nominations/best-employee.png",
	NominationBestTeam:     "https://static.socialhub.local/nominations/best-team.png",
}

type NominationService interface {
	CreateNomination(ctx context.Context, req repository.CreateNominationRequest) (*models.Nomination, error)
	GetNominations(ctx context.Context) ([]models.Nomination, error)
	Vote(ctx context.Context, req repository.VoteRequest) (*models.NominationVote, error)
	TopNominatedUser(ctx context.Context) (*models.TopNominatedUser, error)
}

type nominationService struct {
	nominationRepo repository.NominationRepository
	userRepo       repository.UserRepository
}

func NewNominationService(nominationRepo repository.NominationRepository, userRepo repository.UserRepository) NominationService {
	return &nominationService{
		nominationRepo: nominationRepo,
		userRepo:       userRepo,
	}
}

func (s *nominationService) CreateNomination(ctx context.Context, req repository.CreateNominationRequest) (*models.Nomination, error) {
	photoURL, ok := nominationPhotoURLs[req.NominationType]
	if !ok {
		return nil, apperrors.Validation(
			fmt.Sprintf("неизвестный тип номинации: %s", req.NominationType),
			[]string{"nominationType должен быть BestEmployee или BestTeam"},
		)
	}

	nomination := &models.Nomination{
		NominationType:         req.NominationType,
		PhotoURL:               photoURL,
		Description:            req.Description,
		LastNominationDay:      req.LastNominationDay,
		WinnerAnnouncementDate: req.WinnerAnnouncementDate,
	}

	if err := s.nominationRepo.Create(ctx, nomination); err != nil {
		return nil, err
	}

	return nomination, nil
}

func (s *nominationService) GetNominations(ctx context.Context) ([]models.Nomination, error) {
	return s.nominationRepo.GetAll(ctx)
}

// Vote - один голос на пользователя в номинации. Предварительная проверка даёт
// дружелюбную ошибку, параллельный дубль отсекает уникальный индекс в БД.
func (s *nominationService) Vote(ctx context.Context, req repository.VoteRequest) (*models.NominationVote, error) {
	if _, err := s.nominationRepo.GetByID(ctx, req.NominationID); err != nil {
		return nil, err
	}

	voted, err := s.nominationRepo.HasVoted(ctx, req.UserID, req.NominationID)
	if err != nil {
		return nil, err
	}
	if voted {
		return nil, apperrors.AlreadyExists("пользователь уже голосовал в этой номинации")
	}

	vote := &models.NominationVote{
		UserID:          req.UserID,
		NominatedUserID: req.NominatedUserID,
		NominationID:    req.NominationID,
	}

	if err := s.nominationRepo.CreateVote(ctx, vote); err != nil {
		return nil, err
	}

	return vote, nil
}

func (s *nominationService) TopNominatedUser(ctx context.Context) (*models.TopNominatedUser, error) {
	return s.nominationRepo.TopNominatedUser(ctx)
}
