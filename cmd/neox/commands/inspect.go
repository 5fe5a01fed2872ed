package commands

import (
	"iter"

	"github.com/spf13/cobra"

	"github.com/orbitwatch/neox/display"
	"github.com/orbitwatch/neox/errors"
	"github.com/orbitwatch/neox/neo"
)

var (
	inspectPdes       string
	inspectName       string
	inspectApproaches bool
)

// InspectCmd represents the inspect command
var InspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Look up a single NEO by designation or name",
	Long: `inspect — Look up a single NEO

Find one near-Earth object by its primary designation or its IAU name
and show its physical parameters.

Examples:
  neox inspect --pdes 433              # Look up by designation
  neox inspect --name Eros             # Look up by name
  neox inspect --pdes 433 --approaches # Include its close approaches
  neox inspect --pdes 433 --json       # Machine-readable output`,
	RunE: runInspectCommand,
}

func init() {
	InspectCmd.Flags().StringVar(&inspectPdes, "pdes", "", "Primary designation to look up")
	InspectCmd.Flags().StringVar(&inspectName, "name", "", "IAU name to look up")
	InspectCmd.Flags().BoolVarP(&inspectApproaches, "approaches", "a", false, "Also list the object's close approaches")
	InspectCmd.Flags().Bool("json", false, "Output as JSON")
	InspectCmd.MarkFlagsMutuallyExclusive("pdes", "name")
	InspectCmd.MarkFlagsOneRequired("pdes", "name")
}

func runInspectCommand(cmd *cobra.Command, args []string) error {
	db, err := openCatalog(cmd)
	if err != nil {
		return err
	}

	o, ok := db.ObjectByDesignation(inspectPdes)
	if inspectName != "" {
		o, ok = db.ObjectByName(inspectName)
		if !ok {
			return errors.NewNotFoundError("no NEO with name %q", inspectName)
		}
	} else if !ok {
		return errors.NewNotFoundError("no NEO with designation %q", inspectPdes)
	}

	if display.ShouldOutputJSON(cmd) {
		if inspectApproaches {
			return display.OutputJSON(struct {
				NEO        *neo.Object          `json:"neo"`
				Approaches []*neo.CloseApproach `json:"approaches"`
			}{o, o.Approaches})
		}
		return display.OutputJSON(o)
	}

	display.ObjectSummary(o)
	if inspectApproaches && len(o.Approaches) > 0 {
		seq := iter.Seq[*neo.CloseApproach](func(yield func(*neo.CloseApproach) bool) {
			for _, ca := range o.Approaches {
				if !yield(ca) {
					return
				}
			}
		})
		if _, err := display.ApproachTable(seq); err != nil {
			return errors.Wrap(err, "rendering approach table")
		}
	}
	return nil
}
