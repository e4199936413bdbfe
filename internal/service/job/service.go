package job

import (
	"jobnet_client/internal/service"
)

type serv struct {
	client    service.HTTPClient
	pageLimit int
}

func NewService(client service.HTTPClient, pageLimit int) *serv {
	return &serv{
		client:    client,
		pageLimit: pageLimit,
	}
}
