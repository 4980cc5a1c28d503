package server

import (
	"github.com/NeuralTrust/ContentGuard/pkg/config"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/ContentGuard/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	APIServerDI struct {
		Config   *config.Config
		Logger   *logrus.Logger
		Recorder *prometheus.Recorder
		Routers  []router.ServerRouter
	}
	APIServer struct {
		*BaseServer
	}
)

func NewAPIServer(di APIServerDI) *APIServer {
	s := &APIServer{
		BaseServer: NewBaseServer(di.Config, di.Logger).WithRouters(di.Routers...),
	}
	if di.Recorder != nil {
		s.setupMetricsEndpoint(di.Recorder.Handler())
	}
	return s
}

func (s *APIServer) Run() error {
	return s.listen("api", s.Config.Server.Port)
}
