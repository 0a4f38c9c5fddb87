package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"dogbreed-service/internal/breeds/catalog"
	"dogbreed-service/internal/config"
	"dogbreed-service/internal/fileio"
)

// env is what every subcommand needs: config, logger, the loaded catalog and the nickname table.
type env struct {
	cfg      config.Config
	logger   zerolog.Logger
	catalogs *catalog.Holder
	aliases  catalog.AliasTable
}

// setup loads config and the catalog. CLI queries log to stderr only; serve also logs to file.
func setup(toFile bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logCfg := cfg
	if !toFile {
		logCfg.LogFile = ""
	}
	logger := config.SetupLogger(logCfg, os.Stderr)

	holder := catalog.NewHolder(catalogLoader(cfg), logger)
	if err := holder.Reload(); err != nil {
		// keep serving with the empty catalog
		logger.Error().Err(err).Msg("initial catalog load")
	}
	return &env{
		cfg:      cfg,
		logger:   logger,
		catalogs: holder,
		aliases:  catalog.NewAliasTable(catalog.DefaultAliases(), cfg.Aliases),
	}, nil
}

func catalogLoader(cfg config.Config) catalog.LoaderFunc {
	opt := fileio.Options{
		HeaderRow: cfg.Catalog.HeaderRow,
		Encoding:  cfg.Catalog.Encoding,
		Table:     cfg.Catalog.Table,
	}
	return func() (*catalog.Catalog, catalog.LoadReport, error) {
		return catalog.Load(cfg.Catalog.Path, opt)
	}
}

// emit prints v as indented JSON with --json, otherwise the markdown text.
func emit(cmd *cobra.Command, v any, markdown string) error {
	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := io.WriteString(out, markdown)
	if err == nil && (markdown == "" || markdown[len(markdown)-1] != '\n') {
		_, err = fmt.Fprintln(out)
	}
	return err
}
