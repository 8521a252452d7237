package notification

import "context"

type Service interface {
	Notify(ctx context.Context, params CreateParams) (Notification, error)
	List(ctx context.Context) ([]Notification, error)
	MarkRead(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Notify(ctx context.Context, params CreateParams) (Notification, error) {
	if params.Type == "" {
		params.Type = TypeOrder
	}
	return s.repo.Create(ctx, params)
}

func (s *service) List(ctx context.Context) ([]Notification, error) {
	return s.repo.List(ctx)
}

func (s *service) MarkRead(ctx context.Context, id int) error {
	return s.repo.MarkRead(ctx, id)
}
