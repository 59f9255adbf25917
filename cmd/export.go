package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/twinops/twinctl/pkg/twin"
)

//nolint:gochecknoglobals // Cobra boilerplate
var exportDir string

//nolint:gochecknoglobals // Cobra boilerplate
var exportCmd = &cobra.Command{
	Use:   "export <collection>",
	Short: "Export a collection to a local JSON file",
	Long: `Export one of the twin's collections (books, skills, opps, diary,
resumes, homes, or "all") as pretty-printed JSON under the export
directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "Export directory (default from config)")
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	cfg, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	dir := exportDir
	if dir == "" {
		dir = cfg.Defaults.ExportDir
	}

	collections := []string{args[0]}
	if args[0] == "all" {
		collections = []string{"books", "skills", "opps", "diary", "resumes", "homes"}
	}

	for _, name := range collections {
		path := filepath.Join(dir, name+".json")

		var data interface{}
		switch name {
		case "books":
			data, err = client.ListBooks(ctx, sess.TwinID)
		case "skills":
			data, err = client.ListSkills(ctx, sess.TwinID)
		case "opps":
			data, err = client.ListOpportunities(ctx, sess.TwinID)
		case "diary":
			data, err = client.ListDiaryEntries(ctx, sess.TwinID)
		case "resumes":
			data, err = client.ListResumes(ctx, sess.TwinID)
		case "homes":
			data, err = client.ListHomes(ctx, sess.TwinID)
		default:
			err = errors.Errorf("unknown collection: %s", name)
			return err
		}
		if err != nil {
			err = errors.Wrapf(err, "failed to export %s", name)
			return err
		}

		err = twin.Export(data, path)
		if err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", path)
	}

	return err
}
