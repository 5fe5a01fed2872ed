package commands

import (
	"github.com/spf13/cobra"

	"github.com/orbitwatch/neox/catalog"
	"github.com/orbitwatch/neox/config"
	"github.com/orbitwatch/neox/errors"
	"github.com/orbitwatch/neox/ingest"
)

// openCatalog loads both datasets and links them. The --neofile/--cadfile
// flags override the configured paths.
func openCatalog(cmd *cobra.Command) (*catalog.Database, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	neofile, _ := cmd.Flags().GetString("neofile")
	if neofile == "" {
		neofile = cfg.Data.NEOCSVPath
	}
	cadfile, _ := cmd.Flags().GetString("cadfile")
	if cadfile == "" {
		cadfile = cfg.Data.CADJSONPath
	}

	objects, err := ingest.LoadObjects(neofile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load object catalog")
	}

	approaches, err := ingest.LoadApproaches(cadfile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load approach data")
	}

	return catalog.Build(objects, approaches), nil
}
