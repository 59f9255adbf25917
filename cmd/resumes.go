package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twinops/twinctl/pkg/twin"
)

//nolint:gochecknoglobals // Cobra boilerplate
var resumesCmd = &cobra.Command{
	Use:   "resumes",
	Short: "List the twin's stored resumes",
	RunE:  runResumesList,
}

//nolint:gochecknoglobals // Cobra boilerplate
var homesCmd = &cobra.Command{
	Use:   "homes",
	Short: "List the twin's houses",
	RunE:  runHomesList,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(resumesCmd)
	rootCmd.AddCommand(homesCmd)
}

func runResumesList(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	var resumes []twin.Resume
	err = withSpinner("Fetching resumes...", func() error {
		var listErr error
		resumes, listErr = client.ListResumes(ctx, sess.TwinID)
		return listErr
	})
	if err != nil {
		return err
	}

	if len(resumes) == 0 {
		fmt.Println("No resumes found.")
		return err
	}

	for _, r := range resumes {
		fmt.Printf("- %s (%s)\n", r.Nombre, r.ID)
		if r.Resumen != "" {
			fmt.Printf("  %s\n", r.Resumen)
		}
		if r.FechaCreacion != "" {
			fmt.Printf("  created %s\n", r.FechaCreacion)
		}
	}
	return err
}

func runHomesList(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	var homes []twin.Home
	err = withSpinner("Fetching homes...", func() error {
		var listErr error
		homes, listErr = client.ListHomes(ctx, sess.TwinID)
		return listErr
	})
	if err != nil {
		return err
	}

	if len(homes) == 0 {
		fmt.Println("No homes found.")
		return err
	}

	for _, h := range homes {
		marker := ""
		if h.Principal {
			marker = " *"
		}
		fmt.Printf("- %s%s (%s)\n", h.Nombre, marker, h.ID)
		if h.Direccion != "" {
			fmt.Printf("  %s, %s, %s\n", h.Direccion, h.Ciudad, h.Pais)
		}
	}
	return err
}
