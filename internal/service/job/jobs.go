package job

import (
	"context"
	"net/url"
	"strconv"

	"jobnet_client/internal/model"
)

func (s *serv) List(ctx context.Context, cursor string) (*model.JobPage, error) {
	query := url.Values{"limit": {strconv.Itoa(s.pageLimit)}}
	if cursor != "" {
		query.Set("cursor", cursor)
	}

	var page model.JobPage
	if err := s.client.Get(ctx, "jobs.list", "/api/jobs", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *serv) Get(ctx context.Context, id string) (*model.Job, error) {
	var job model.Job
	if err := s.client.Get(ctx, "jobs.get", "/api/jobs/"+id, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
