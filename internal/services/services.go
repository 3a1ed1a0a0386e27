// Package services assembles the translator core for the desktop host and
// the CLI.
package services

import (
	"database/sql"
	"fmt"

	"rubick-translator/internal/adapters/db/memory"
	dbsqlite "rubick-translator/internal/adapters/db/sqlite"
	exreg "rubick-translator/internal/adapters/exporter/registry"
	"rubick-translator/internal/adapters/mt/registry"
	parreg "rubick-translator/internal/adapters/parser/registry"
	apiapp "rubick-translator/internal/api/app"
	"rubick-translator/internal/config"
	"rubick-translator/internal/ports"
	"rubick-translator/internal/usecase/exporter"
	"rubick-translator/internal/usecase/importer"
	"rubick-translator/internal/usecase/store"
	"rubick-translator/internal/usecase/translator"

	"go.uber.org/zap"
)

type Services struct {
	Store      *store.Service
	Translator *translator.Service
	Exporter   *exporter.Service
	Importer   *importer.Service
	Providers  *registry.Registry
	API        *apiapp.TranslatorAPI

	db *sql.DB
}

// Build wires every component on top of docs.
func Build(cfg config.Config, docs ports.DocumentStore, log *zap.SugaredLogger) *Services {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	providers := registry.Default(cfg)
	st := store.New(docs, log.Named("store"))
	trans := translator.New(translator.Deps{Providers: providers, Store: st, Log: log.Named("dispatch")})
	exp := exporter.New(st, exreg.Default())
	imp := importer.New(st, parreg.Default())
	api := apiapp.NewTranslatorAPI(apiapp.Deps{
		Translator: trans,
		Store:      st,
		Exporter:   exp,
		Importer:   imp,
		Providers:  providers,
		Log:        log.Named("api"),
	})
	return &Services{Store: st, Translator: trans, Exporter: exp, Importer: imp, Providers: providers, API: api}
}

// Open builds on the SQLite file from cfg, or on an in-memory store when
// ephemeral is set.
func Open(cfg config.Config, ephemeral bool, log *zap.SugaredLogger) (*Services, error) {
	if ephemeral {
		return Build(cfg, memory.New(), log), nil
	}
	db, err := dbsqlite.Init(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", cfg.DBPath, err)
	}
	s := Build(cfg, dbsqlite.NewDocumentRepo(db), log)
	s.db = db
	return s, nil
}

func (s *Services) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
