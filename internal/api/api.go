package api

import (
	"peliculas-service/internal/config"
	"peliculas-service/internal/logging"
	"peliculas-service/internal/storage"
)

type API struct {
	Cfg    *config.Config
	Store  storage.MovieStore
	Logger *logging.Logger
}

func NewAPI(cfg *config.Config, store storage.MovieStore, logger *logging.Logger) *API {
	return &API{
		Cfg:    cfg,
		Store:  store,
		Logger: logger,
	}
}
