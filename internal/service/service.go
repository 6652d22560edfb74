package service

import (
	"socialhub/internal/config"
	"socialhub/internal/repository"
	"socialhub/internal/storage"
)

type Service struct {
	Auth       AuthService
	User       UserService
	Post       PostService
	Comment    CommentService
	Nomination NominationService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:       NewAuthService(rep.User, cfg),
		User:       NewUserService(rep.User, rep.Mention, cfg),
		Post:       NewPostService(rep.Post, rep.User, rep.Mention, storage, cfg),
		Comment:    NewCommentService(rep.Comment, rep.Post, rep.User),
		Nomination: NewNominationService(rep.Nomination, rep.User),
	}
}
