package job

import (
	"context"

	"jobnet_client/internal/model"
)

// Apply submits an application. A duplicate application comes back as a
// conflict and must not be retried; callers disable the action instead.
func (s *serv) Apply(ctx context.Context, id string) (*model.Application, error) {
	var application model.Application
	err := s.client.Post(ctx, "jobs.apply", "/api/jobs/"+id+"/apply", nil, &application)
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (s *serv) Applications(ctx context.Context) (*model.ApplicationList, error) {
	var list model.ApplicationList
	err := s.client.Get(ctx, "applications.list", "/api/applications/me", nil, &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}
