package app

import (
	"jobnet_client/internal/config"
	"jobnet_client/internal/config/env"
	"jobnet_client/internal/queries"
	"jobnet_client/internal/querycache"
	"jobnet_client/internal/service"
	"jobnet_client/internal/service/auth"
	"jobnet_client/internal/service/job"
	"jobnet_client/internal/service/post"
	"jobnet_client/internal/service/user"
	"jobnet_client/internal/tokenstore"
	"jobnet_client/internal/transport"
)

const keyringService = "jobnet"

type ServiceProvider struct {
	// Config
	apiCfg    config.APIConfig
	storeCfg  config.StoreConfig
	clientCfg config.ClientConfig

	// Token persistence
	tokens tokenstore.Store

	// Transport
	client *transport.Client

	// Services
	authServ service.AuthService
	postServ service.PostService
	jobServ  service.JobService
	userServ service.UserService

	// Query layer
	cache    *querycache.Cache
	querySet *queries.Set
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) APICfg() config.APIConfig {
	if sp.apiCfg == nil {
		cfg, err := env.NewAPIConfig()
		if err != nil {
			panic("failed to get api config: " + err.Error())
		}
		sp.apiCfg = cfg
	}
	return sp.apiCfg
}

func (sp *ServiceProvider) StoreCfg() config.StoreConfig {
	if sp.storeCfg == nil {
		cfg, err := env.NewStoreConfig()
		if err != nil {
			panic("failed to get token store config: " + err.Error())
		}
		sp.storeCfg = cfg
	}
	return sp.storeCfg
}

func (sp *ServiceProvider) ClientCfg() config.ClientConfig {
	if sp.clientCfg == nil {
		cfg, err := env.NewClientConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get client config: " + err.Error())
		}
		sp.clientCfg = cfg
	}
	return sp.clientCfg
}

func (sp *ServiceProvider) TokenStore() tokenstore.Store {
	if sp.tokens == nil {
		cfg := sp.StoreCfg()
		switch cfg.Backend() {
		case "file":
			st, err := tokenstore.NewFileStore(cfg.FilePath(), cfg.Passphrase())
			if err != nil {
				panic("failed to open token file store: " + err.Error())
			}
			sp.tokens = st
		case "memory":
			sp.tokens = tokenstore.NewMemoryStore()
		default:
			sp.tokens = tokenstore.NewKeyringStore(keyringService)
		}
	}
	return sp.tokens
}

func (sp *ServiceProvider) Transport() *transport.Client {
	if sp.client == nil {
		sp.client = transport.New(
			sp.APICfg().BaseURL(),
			sp.TokenStore(),
			transport.WithTimeout(sp.APICfg().Timeout()),
		)
	}
	return sp.client
}

func (sp *ServiceProvider) AuthService() service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewService(sp.Transport(), sp.TokenStore())
	}
	return sp.authServ
}

func (sp *ServiceProvider) PostService() service.PostService {
	if sp.postServ == nil {
		sp.postServ = post.NewService(sp.Transport(), sp.ClientCfg().PageLimit())
	}
	return sp.postServ
}

func (sp *ServiceProvider) JobService() service.JobService {
	if sp.jobServ == nil {
		sp.jobServ = job.NewService(sp.Transport(), sp.ClientCfg().PageLimit())
	}
	return sp.jobServ
}

func (sp *ServiceProvider) UserService() service.UserService {
	if sp.userServ == nil {
		sp.userServ = user.NewService(sp.Transport())
	}
	return sp.userServ
}

func (sp *ServiceProvider) Cache() *querycache.Cache {
	if sp.cache == nil {
		sp.cache = querycache.New()
	}
	return sp.cache
}

func (sp *ServiceProvider) Queries() *queries.Set {
	if sp.querySet == nil {
		sp.querySet = queries.New(sp.Cache(), sp.PostService(), sp.JobService(), sp.UserService())
	}
	return sp.querySet
}
