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
	diaryQuery string

	diaryTitulo    string
	diaryContenido string
	diaryAnimo     string
	diaryUbicacion string
	diaryTags      []string
)

//nolint:gochecknoglobals // Cobra boilerplate
var diaryCmd = &cobra.Command{
	Use:   "diary",
	Short: "Manage the twin's diary",
}

//nolint:gochecknoglobals // Cobra boilerplate
var diaryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List diary entries, optionally filtered by text",
	RunE:  runDiaryList,
}

//nolint:gochecknoglobals // Cobra boilerplate
var diaryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Write a diary entry",
	RunE:  runDiaryAdd,
}

//nolint:gochecknoglobals // Cobra boilerplate
var diaryPhotoCmd = &cobra.Command{
	Use:   "photo <entry-id> <file>",
	Short: "Attach a photo to a diary entry",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiaryPhoto,
}

//nolint:gochecknoglobals // Cobra boilerplate
var diaryDeleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Remove a diary entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiaryDelete,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(diaryCmd)
	diaryCmd.AddCommand(diaryListCmd)
	diaryCmd.AddCommand(diaryAddCmd)
	diaryCmd.AddCommand(diaryPhotoCmd)
	diaryCmd.AddCommand(diaryDeleteCmd)

	diaryListCmd.Flags().StringVarP(&diaryQuery, "query", "q", "", "Text filter over title, content and tags")

	diaryAddCmd.Flags().StringVar(&diaryTitulo, "titulo", "", "Entry title (required)")
	diaryAddCmd.Flags().StringVar(&diaryContenido, "contenido", "", "Entry text")
	diaryAddCmd.Flags().StringVar(&diaryAnimo, "animo", "", "Mood")
	diaryAddCmd.Flags().StringVar(&diaryUbicacion, "ubicacion", "", "Location")
	diaryAddCmd.Flags().StringSliceVar(&diaryTags, "tag", nil, "Tag (repeatable)")
	_ = diaryAddCmd.MarkFlagRequired("titulo")
}

func runDiaryList(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	var entries []twin.DiaryEntry
	err = withSpinner("Fetching diary...", func() error {
		var listErr error
		entries, listErr = client.ListDiaryEntries(ctx, sess.TwinID)
		return listErr
	})
	if err != nil {
		return err
	}

	matched := filterview.Filter(entries, diaryQuery, filterview.All,
		func(e twin.DiaryEntry) []string {
			return append([]string{e.Titulo, e.Contenido, e.Ubicacion}, e.Tags...)
		},
		func(e twin.DiaryEntry) string { return "" },
	)

	if len(matched) == 0 {
		fmt.Println("No diary entries found.")
		return err
	}

	for _, e := range matched {
		fmt.Printf("- %s  %s (%s)\n", e.Fecha, e.Titulo, e.ID)
		if e.Contenido != "" {
			preview := e.Contenido
			if len(preview) > 100 {
				preview = preview[:100] + "..."
			}
			fmt.Printf("  %s\n", preview)
		}
		if len(e.Photos) > 0 {
			fmt.Printf("  %d photo(s)\n", len(e.Photos))
		}
	}
	fmt.Printf("\n%d of %d entries\n", len(matched), len(entries))
	return err
}

func runDiaryAdd(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	entry := twin.DiaryEntry{
		Titulo:      diaryTitulo,
		Contenido:   diaryContenido,
		EstadoAnimo: diaryAnimo,
		Ubicacion:   diaryUbicacion,
		Tags:        diaryTags,
	}

	var created twin.DiaryEntry
	err = withSpinner("Saving entry...", func() error {
		var createErr error
		created, createErr = client.CreateDiaryEntry(ctx, sess.TwinID, entry)
		return createErr
	})
	if err != nil {
		return err
	}

	fmt.Printf("Saved %q for %s (%s)\n", created.Titulo, created.Fecha, created.ID)
	return err
}

func runDiaryPhoto(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	err = withSpinner("Uploading photo...", func() error {
		return client.UploadDiaryPhoto(ctx, sess.TwinID, args[0], args[1])
	})
	if err != nil {
		return err
	}

	fmt.Printf("Attached %s to entry %s\n", strings.TrimSpace(args[1]), args[0])
	return err
}

func runDiaryDelete(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	err = client.DeleteDiaryEntry(ctx, sess.TwinID, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Deleted diary entry %s\n", args[0])
	return err
}
