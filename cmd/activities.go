package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twinops/twinctl/pkg/twin"
	"github.com/twinops/twinctl/pkg/twinapi"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	activitiesTrip   string
	activitiesSample bool
)

//nolint:gochecknoglobals // Cobra boilerplate
var tripsCmd = &cobra.Command{
	Use:   "trips",
	Short: "List the twin's travel itineraries",
	RunE:  runTripsList,
}

//nolint:gochecknoglobals // Cobra boilerplate
var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "List the scheduled activities of one itinerary",
	Long: `List the activities of a travel itinerary, grouped by date.

If the backend cannot be reached, --sample-fallback shows a built-in
demo itinerary instead of failing. Sample data is always labeled as
such; it is never shown without asking for it.`,
	RunE: runActivitiesList,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(tripsCmd)
	rootCmd.AddCommand(activitiesCmd)

	activitiesCmd.Flags().StringVar(&activitiesTrip, "trip", "", "Itinerary id (required)")
	activitiesCmd.Flags().BoolVar(&activitiesSample, "sample-fallback", false, "Show built-in sample activities if the backend is unreachable")
	_ = activitiesCmd.MarkFlagRequired("trip")
}

func runTripsList(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	var itineraries []twinapi.Itinerary
	err = withSpinner("Fetching itineraries...", func() error {
		var listErr error
		itineraries, listErr = client.ListItineraries(ctx, sess.TwinID)
		return listErr
	})
	if err != nil {
		return err
	}

	if len(itineraries) == 0 {
		fmt.Println("No itineraries found.")
		return err
	}

	for _, it := range itineraries {
		fmt.Printf("- %s", it.Titulo)
		if it.Destino != "" {
			fmt.Printf(" (%s)", it.Destino)
		}
		fmt.Println()
		if it.FechaInicio != "" {
			fmt.Printf("  %s to %s | %s\n", it.FechaInicio, it.FechaFin, it.ID)
		} else {
			fmt.Printf("  %s\n", it.ID)
		}
	}
	return err
}

func runActivitiesList(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	var activities []twin.Activity
	err = withSpinner("Fetching activities...", func() error {
		var listErr error
		activities, listErr = client.ListActivities(ctx, sess.TwinID, activitiesTrip)
		return listErr
	})
	if err != nil {
		if !activitiesSample {
			return err
		}
		// Degraded mode, requested explicitly. Say so loudly.
		fmt.Println("WARNING: backend unreachable, showing built-in SAMPLE activities.")
		fmt.Printf("         (%v)\n\n", err)
		activities = twinapi.SampleActivities()
		err = nil
	}

	if len(activities) == 0 {
		fmt.Println("No activities scheduled.")
		return err
	}

	lastDate := ""
	for _, a := range activities {
		if a.Fecha != lastDate {
			fmt.Printf("%s\n", a.Fecha)
			lastDate = a.Fecha
		}
		window := a.HoraInicio
		if a.HoraFin != "" {
			window += "-" + a.HoraFin
		}
		fmt.Printf("  %s  %s [%s]\n", window, a.Titulo, a.Estado)
		if a.Ubicacion != "" {
			fmt.Printf("          %s\n", a.Ubicacion)
		}
		if a.CostoEstimado > 0 {
			fmt.Printf("          %.2f %s\n", a.CostoEstimado, a.Moneda)
		}
	}
	return err
}
