package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/powerfrill/showcase-backend-go/internal/catalog"
	"github.com/powerfrill/showcase-backend-go/internal/models"
	"github.com/powerfrill/showcase-backend-go/internal/service"
)

var (
	frameSequence string
	frameProgress float64
	framePreset   string
	frameSnap     bool
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Print the choreography frame of a sequence at a progress value",
	Example: `  showcase-server frame --sequence hero --progress 0.375
  showcase-server frame --sequence solution-solar --progress 0.5 --preset depth-blur`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		svc, err := service.NewChoreographyService(app.Index, app.Choreography)
		if err != nil {
			return err
		}

		progress := frameProgress
		frame, err := svc.GetFrame(models.FrameFilter{
			Sequence: frameSequence,
			Progress: &progress,
			Preset:   framePreset,
			Snap:     frameSnap,
		})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(frame)
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Summarize the loaded catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		out := cmd.OutOrStdout()
		for _, s := range app.Index.Solutions() {
			fmt.Fprintf(out, "%s (%s)\n", s.Title, s.ID)
			for _, c := range app.Index.CategoriesBySolutionID(s.ID) {
				fmt.Fprintf(out, "  %-40s %d products\n", c.Name, len(app.Index.ProductsByCategoryID(c.ID)))
			}
		}
		if orphans := app.Index.OrphanProducts(); len(orphans) > 0 {
			fmt.Fprintf(out, "orphan products: %d\n", len(orphans))
		}
		fmt.Fprintf(out, "sequences: %v\n", app.Index.SequenceNames())
		return nil
	},
}

func init() {
	frameCmd.Flags().StringVar(&frameSequence, "sequence", catalog.HeroSequence, "sequence name (hero, solution-<id>)")
	frameCmd.Flags().Float64Var(&frameProgress, "progress", 0, "scroll progress in [0,1]")
	frameCmd.Flags().StringVar(&framePreset, "preset", "", "choreography preset (default: configured)")
	frameCmd.Flags().BoolVar(&frameSnap, "snap", false, "snap progress to the nearest section")
}
