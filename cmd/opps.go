package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twinops/twinctl/pkg/filterview"
	"github.com/twinops/twinctl/pkg/twin"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	oppsQuery  string
	oppsEstado string

	oppEmpresa   string
	oppPuesto    string
	oppUbicacion string
	oppSalario   string
	oppURL       string
	oppNotas     string
)

//nolint:gochecknoglobals // Cobra boilerplate
var oppsCmd = &cobra.Command{
	Use:   "opps",
	Short: "Track job opportunities and applications",
}

//nolint:gochecknoglobals // Cobra boilerplate
var oppsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List opportunities, optionally filtered by text and state",
	RunE:  runOppsList,
}

//nolint:gochecknoglobals // Cobra boilerplate
var oppsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Track a new opportunity",
	RunE:  runOppsAdd,
}

//nolint:gochecknoglobals // Cobra boilerplate
var oppsStatusCmd = &cobra.Command{
	Use:   "status <opportunity-id> <estado>",
	Short: "Move an opportunity to a new state",
	Long: `Move an opportunity through the application workflow. Valid states:
interesado, aplicado, entrevista, esperando, rechazado, aceptado.

The record is fetched, the state changed and the whole record written
back.`,
	Args: cobra.ExactArgs(2),
	RunE: runOppsStatus,
}

//nolint:gochecknoglobals // Cobra boilerplate
var oppsDeleteCmd = &cobra.Command{
	Use:   "delete <opportunity-id>",
	Short: "Stop tracking an opportunity",
	Args:  cobra.ExactArgs(1),
	RunE:  runOppsDelete,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(oppsCmd)
	oppsCmd.AddCommand(oppsListCmd)
	oppsCmd.AddCommand(oppsAddCmd)
	oppsCmd.AddCommand(oppsStatusCmd)
	oppsCmd.AddCommand(oppsDeleteCmd)

	oppsListCmd.Flags().StringVarP(&oppsQuery, "query", "q", "", "Text filter over company, position and location")
	oppsListCmd.Flags().StringVar(&oppsEstado, "estado", filterview.All, "State filter")

	oppsAddCmd.Flags().StringVar(&oppEmpresa, "empresa", "", "Company (required)")
	oppsAddCmd.Flags().StringVar(&oppPuesto, "puesto", "", "Position (required)")
	oppsAddCmd.Flags().StringVar(&oppUbicacion, "ubicacion", "", "Location")
	oppsAddCmd.Flags().StringVar(&oppSalario, "salario", "", "Salary range")
	oppsAddCmd.Flags().StringVar(&oppURL, "url", "", "Posting URL")
	oppsAddCmd.Flags().StringVar(&oppNotas, "notas", "", "Notes")
	_ = oppsAddCmd.MarkFlagRequired("empresa")
	_ = oppsAddCmd.MarkFlagRequired("puesto")
}

func runOppsList(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	var opps []twin.Opportunity
	err = withSpinner("Fetching opportunities...", func() error {
		var listErr error
		opps, listErr = client.ListOpportunities(ctx, sess.TwinID)
		return listErr
	})
	if err != nil {
		return err
	}

	matched := filterview.Filter(opps, oppsQuery, oppsEstado,
		func(o twin.Opportunity) []string {
			return []string{o.Empresa, o.Puesto, o.Ubicacion, o.Notas}
		},
		func(o twin.Opportunity) string { return o.Estado },
	)

	if len(matched) == 0 {
		fmt.Println("No opportunities found.")
		return err
	}

	for _, o := range matched {
		fmt.Printf("- %s @ %s [%s]\n", o.Puesto, o.Empresa, o.Estado)
		details := []string{}
		if o.Ubicacion != "" {
			details = append(details, o.Ubicacion)
		}
		if o.Salario != "" {
			details = append(details, o.Salario)
		}
		details = append(details, o.ID)
		fmt.Printf("  %s\n", strings.Join(details, " | "))
	}
	fmt.Printf("\n%d of %d opportunities\n", len(matched), len(opps))
	return err
}

func runOppsAdd(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	opp := twin.Opportunity{
		Empresa:   oppEmpresa,
		Puesto:    oppPuesto,
		Ubicacion: oppUbicacion,
		Salario:   oppSalario,
		URL:       oppURL,
		Notas:     oppNotas,
	}

	var created twin.Opportunity
	err = withSpinner("Tracking opportunity...", func() error {
		var createErr error
		created, createErr = client.CreateOpportunity(ctx, sess.TwinID, opp)
		return createErr
	})
	if err != nil {
		return err
	}

	fmt.Printf("Tracking %s @ %s (%s)\n", created.Puesto, created.Empresa, created.ID)
	return err
}

func runOppsStatus(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	var opp twin.Opportunity
	opp, err = client.GetOpportunity(ctx, sess.TwinID, args[0])
	if err != nil {
		return err
	}

	opp.Estado = args[1]

	err = withSpinner("Updating state...", func() error {
		return client.UpdateOpportunity(ctx, sess.TwinID, opp)
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s @ %s is now %s\n", opp.Puesto, opp.Empresa, opp.Estado)
	return err
}

func runOppsDelete(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	err = client.DeleteOpportunity(ctx, sess.TwinID, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Stopped tracking opportunity %s\n", args[0])
	return err
}
