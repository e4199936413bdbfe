package user

import (
	"context"

	"jobnet_client/internal/model"
	"jobnet_client/internal/service"
)

type serv struct {
	client service.HTTPClient
}

func NewService(client service.HTTPClient) *serv {
	return &serv{client: client}
}

func (s *serv) Me(ctx context.Context) (*model.User, error) {
	var me model.User
	if err := s.client.Get(ctx, "users.me", "/api/users/me", nil, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

func (s *serv) UpdateMe(ctx context.Context, update model.ProfileUpdate) (*model.User, error) {
	var updated model.User
	if err := s.client.Put(ctx, "users.update", "/api/users/me", update, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
