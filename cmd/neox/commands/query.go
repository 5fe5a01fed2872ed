package commands

import (
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orbitwatch/neox/catalog"
	"github.com/orbitwatch/neox/config"
	"github.com/orbitwatch/neox/display"
	"github.com/orbitwatch/neox/errors"
	"github.com/orbitwatch/neox/export"
	"github.com/orbitwatch/neox/internal/util"
	"github.com/orbitwatch/neox/logger"
	"github.com/orbitwatch/neox/neo"
)

var (
	queryDate      string
	queryStartDate string
	queryEndDate   string

	queryMinDistance float64
	queryMaxDistance float64
	queryMinVelocity float64
	queryMaxVelocity float64
	queryMinDiameter float64
	queryMaxDiameter float64

	queryHazardous    bool
	queryNotHazardous bool

	queryLimit   int
	queryOutfile string
)

// QueryCmd represents the query command
var QueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Filter close approaches and render or export the results",
	Long: `query — Filter close approaches

Apply any combination of filters to the close-approach records. All
filters combine with AND; absent filters impose no constraint. Results
keep time-ascending order.

Examples:
  neox query                                   # First results, no filter
  neox query --limit 0                         # Everything, no cap
  neox query --date 2020-01-01                 # One calendar day
  neox query --start-date 2020-01-01 --end-date 2020-12-31
  neox query --hazardous --max-distance 0.05
  neox query --min-velocity 20 --min-diameter 0.25
  neox query --outfile results.csv             # Serialize instead of render
  neox query --outfile results.json`,
	RunE: runQueryCommand,
}

func init() {
	flags := QueryCmd.Flags()
	flags.StringVar(&queryDate, "date", "", "Only approaches on this day (YYYY-MM-DD)")
	flags.StringVar(&queryStartDate, "start-date", "", "Only approaches on or after this day (YYYY-MM-DD)")
	flags.StringVar(&queryEndDate, "end-date", "", "Only approaches on or before this day (YYYY-MM-DD)")
	flags.Float64Var(&queryMinDistance, "min-distance", 0, "Minimum approach distance (au), inclusive")
	flags.Float64Var(&queryMaxDistance, "max-distance", 0, "Maximum approach distance (au), inclusive")
	flags.Float64Var(&queryMinVelocity, "min-velocity", 0, "Minimum approach velocity (km/s), inclusive")
	flags.Float64Var(&queryMaxVelocity, "max-velocity", 0, "Maximum approach velocity (km/s), inclusive")
	flags.Float64Var(&queryMinDiameter, "min-diameter", 0, "Minimum object diameter (km), inclusive")
	flags.Float64Var(&queryMaxDiameter, "max-diameter", 0, "Maximum object diameter (km), inclusive")
	flags.BoolVar(&queryHazardous, "hazardous", false, "Only potentially hazardous objects")
	flags.BoolVar(&queryNotHazardous, "not-hazardous", false, "Only objects not potentially hazardous")
	flags.IntVarP(&queryLimit, "limit", "l", -1, "Maximum number of results (0 = unlimited, default from config)")
	flags.StringVarP(&queryOutfile, "outfile", "o", "", "Write results to a .csv or .json file instead of rendering")
	flags.Bool("json", false, "Render results as JSON")

	QueryCmd.MarkFlagsMutuallyExclusive("hazardous", "not-hazardous")
	QueryCmd.MarkFlagsMutuallyExclusive("date", "start-date")
	QueryCmd.MarkFlagsMutuallyExclusive("date", "end-date")
}

func runQueryCommand(cmd *cobra.Command, args []string) error {
	crit, err := buildCriteria(cmd)
	if err != nil {
		return err
	}

	db, err := openCatalog(cmd)
	if err != nil {
		return err
	}

	limit := queryLimit
	if !cmd.Flags().Changed("limit") {
		cfg, err := config.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}
		limit = cfg.Query.DefaultLimit
	}

	results := catalog.Limit(db.Query(crit), limit)

	if queryOutfile != "" {
		return writeResults(queryOutfile, results)
	}

	if display.ShouldOutputJSON(cmd) {
		collected := []*neo.CloseApproach{}
		for ca := range results {
			collected = append(collected, ca)
		}
		return display.OutputJSON(collected)
	}

	rows, err := display.ApproachTable(results)
	if err != nil {
		return errors.Wrap(err, "rendering approach table")
	}
	logger.Debugw("Query rendered", "results", rows)
	return nil
}

// buildCriteria translates the flag set into filter criteria. Only flags
// the user actually set become bounds.
func buildCriteria(cmd *cobra.Command) (catalog.Criteria, error) {
	var crit catalog.Criteria

	date, err := neo.ParseDate(queryDate)
	if err != nil {
		return crit, errors.Wrapf(errors.ErrInvalidRequest, "invalid --date %q (want YYYY-MM-DD)", queryDate)
	}
	crit.Date = date

	crit.StartDate, err = neo.ParseDate(queryStartDate)
	if err != nil {
		return crit, errors.Wrapf(errors.ErrInvalidRequest, "invalid --start-date %q (want YYYY-MM-DD)", queryStartDate)
	}

	crit.EndDate, err = neo.ParseDate(queryEndDate)
	if err != nil {
		return crit, errors.Wrapf(errors.ErrInvalidRequest, "invalid --end-date %q (want YYYY-MM-DD)", queryEndDate)
	}

	flags := cmd.Flags()
	if flags.Changed("min-distance") {
		crit.MinDistance = &queryMinDistance
	}
	if flags.Changed("max-distance") {
		crit.MaxDistance = &queryMaxDistance
	}
	if flags.Changed("min-velocity") {
		crit.MinVelocity = &queryMinVelocity
	}
	if flags.Changed("max-velocity") {
		crit.MaxVelocity = &queryMaxVelocity
	}
	if flags.Changed("min-diameter") {
		crit.MinDiameter = &queryMinDiameter
	}
	if flags.Changed("max-diameter") {
		crit.MaxDiameter = &queryMaxDiameter
	}
	if queryHazardous {
		crit.Hazardous = util.Ptr(true)
	}
	if queryNotHazardous {
		crit.Hazardous = util.Ptr(false)
	}

	return crit, nil
}

// writeResults serializes to the outfile, dispatching on its extension.
func writeResults(path string, results iter.Seq[*neo.CloseApproach]) error {
	var write func(*os.File) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		write = func(f *os.File) error { return export.WriteCSV(f, results) }
	case ".json":
		write = func(f *os.File) error { return export.WriteJSON(f, results) }
	default:
		return errors.Wrapf(errors.ErrInvalidRequest, "unsupported outfile extension %q (want .csv or .json)", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating outfile %s", path)
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing outfile %s", path)
	}

	logger.Infow("Wrote results", "outfile", path)
	return nil
}
