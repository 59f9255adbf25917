package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/twinops/twinctl/pkg/twin"
)

//nolint:gochecknoglobals // Cobra boilerplate
var importCmd = &cobra.Command{
	Use:   "import <collection> <file>",
	Short: "Import a previously exported JSON file into the backend",
	Long: `Read a JSON file written by 'twinctl export' and create its records
on the backend. Supported collections: books, opps, diary. Each record
goes through the same defaults and validation as the corresponding
'add' command; ids already present in the file are kept.`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	count := 0
	switch args[0] {
	case "books":
		var books []twin.Book
		err = twin.Import(args[1], &books)
		if err != nil {
			return err
		}
		for _, b := range books {
			_, err = client.CreateBook(ctx, sess.TwinID, b)
			if err != nil {
				err = errors.Wrapf(err, "failed to import book %q", b.Titulo)
				return err
			}
			count++
		}
	case "opps":
		var opps []twin.Opportunity
		err = twin.Import(args[1], &opps)
		if err != nil {
			return err
		}
		for _, o := range opps {
			_, err = client.CreateOpportunity(ctx, sess.TwinID, o)
			if err != nil {
				err = errors.Wrapf(err, "failed to import opportunity %q", o.Empresa)
				return err
			}
			count++
		}
	case "diary":
		var entries []twin.DiaryEntry
		err = twin.Import(args[1], &entries)
		if err != nil {
			return err
		}
		for _, e := range entries {
			_, err = client.CreateDiaryEntry(ctx, sess.TwinID, e)
			if err != nil {
				err = errors.Wrapf(err, "failed to import diary entry %q", e.Titulo)
				return err
			}
			count++
		}
	default:
		err = errors.Errorf("unsupported collection for import: %s", args[0])
		return err
	}

	fmt.Printf("Imported %d records from %s\n", count, args[1])
	return err
}
