package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twinops/twinctl/pkg/content"
	"github.com/twinops/twinctl/pkg/filterview"
	"github.com/twinops/twinctl/pkg/reconcile"
	"github.com/twinops/twinctl/pkg/twin"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	skillsQuery    string
	skillsCategory string

	skillName        string
	skillCategory    string
	skillLevel       string
	skillDescription string

	learningName        string
	learningDescription string
	learningContent     string
	learningFrom        string

	searchLocal bool
)

//nolint:gochecknoglobals // Cobra boilerplate
var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage the twin's skills and what was learned about them",
}

//nolint:gochecknoglobals // Cobra boilerplate
var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills, optionally filtered by text and category",
	RunE:  runSkillsList,
}

//nolint:gochecknoglobals // Cobra boilerplate
var skillsShowCmd = &cobra.Command{
	Use:   "show <skill-id>",
	Short: "Show one skill including its learning entries",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsShow,
}

//nolint:gochecknoglobals // Cobra boilerplate
var skillsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a skill",
	RunE:  runSkillsAdd,
}

//nolint:gochecknoglobals // Cobra boilerplate
var skillsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search learning entries across all skills",
	Long: `Search what the twin has learned. By default the backend's search
endpoint answers; --local fetches all skills and ranks their learning
entries by keyword relevance instead, useful when the endpoint is down.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSkillsSearch,
}

//nolint:gochecknoglobals // Cobra boilerplate
var learningCmd = &cobra.Command{
	Use:   "learning",
	Short: "Manage a skill's learning entries",
}

//nolint:gochecknoglobals // Cobra boilerplate
var learningAddCmd = &cobra.Command{
	Use:   "add <skill-id>",
	Short: "Add a learning entry to a skill",
	Long: `Add a learning entry to a skill. Content comes from --content, or
from --from pointing at a local file or a URL whose text is fetched and
stripped of markup.`,
	Args: cobra.ExactArgs(1),
	RunE: runLearningAdd,
}

//nolint:gochecknoglobals // Cobra boilerplate
var learningUpdateCmd = &cobra.Command{
	Use:   "update <skill-id> <learning-id>",
	Short: "Update one learning entry in place",
	Args:  cobra.ExactArgs(2),
	RunE:  runLearningUpdate,
}

//nolint:gochecknoglobals // Cobra boilerplate
var learningDeleteCmd = &cobra.Command{
	Use:   "delete <skill-id> <learning-id>",
	Short: "Remove one learning entry from a skill",
	Args:  cobra.ExactArgs(2),
	RunE:  runLearningDelete,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(skillsCmd)
	skillsCmd.AddCommand(skillsListCmd)
	skillsCmd.AddCommand(skillsShowCmd)
	skillsCmd.AddCommand(skillsAddCmd)
	skillsCmd.AddCommand(skillsSearchCmd)
	skillsCmd.AddCommand(learningCmd)
	learningCmd.AddCommand(learningAddCmd)
	learningCmd.AddCommand(learningUpdateCmd)
	learningCmd.AddCommand(learningDeleteCmd)

	skillsListCmd.Flags().StringVarP(&skillsQuery, "query", "q", "", "Text filter over name, category and description")
	skillsListCmd.Flags().StringVar(&skillsCategory, "category", filterview.All, "Category filter")

	skillsAddCmd.Flags().StringVar(&skillName, "name", "", "Skill name (required)")
	skillsAddCmd.Flags().StringVar(&skillCategory, "category", "", "Category")
	skillsAddCmd.Flags().StringVar(&skillLevel, "level", "", "Level (Principiante, Intermedio, Avanzado, Experto)")
	skillsAddCmd.Flags().StringVar(&skillDescription, "description", "", "Description")
	_ = skillsAddCmd.MarkFlagRequired("name")

	skillsSearchCmd.Flags().BoolVar(&searchLocal, "local", false, "Rank locally instead of using the search endpoint")

	learningAddCmd.Flags().StringVar(&learningName, "name", "", "Learning entry name (required)")
	learningAddCmd.Flags().StringVar(&learningDescription, "description", "", "Short description")
	learningAddCmd.Flags().StringVar(&learningContent, "content", "", "Entry content")
	learningAddCmd.Flags().StringVar(&learningFrom, "from", "", "File path or URL to read content from")
	_ = learningAddCmd.MarkFlagRequired("name")

	learningUpdateCmd.Flags().StringVar(&learningName, "name", "", "New name (required)")
	learningUpdateCmd.Flags().StringVar(&learningDescription, "description", "", "New description")
	learningUpdateCmd.Flags().StringVar(&learningContent, "content", "", "New content")
	learningUpdateCmd.Flags().StringVar(&learningFrom, "from", "", "File path or URL to read content from")
	_ = learningUpdateCmd.MarkFlagRequired("name")
}

func runSkillsList(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	var skills []twin.Skill
	err = withSpinner("Fetching skills...", func() error {
		var listErr error
		skills, listErr = client.ListSkills(ctx, sess.TwinID)
		return listErr
	})
	if err != nil {
		return err
	}

	matched := filterview.Filter(skills, skillsQuery, skillsCategory,
		func(s twin.Skill) []string {
			return append([]string{s.Name, s.Category, s.Description}, s.Tags...)
		},
		func(s twin.Skill) string { return s.Category },
	)

	if len(matched) == 0 {
		fmt.Println("No skills found.")
		return err
	}

	for _, s := range matched {
		line := fmt.Sprintf("- %s", s.Name)
		if s.Level != "" {
			line += fmt.Sprintf(" [%s]", s.Level)
		}
		fmt.Println(line)
		fmt.Printf("  %s | %d learning entries | %s\n", s.Category, len(s.WhatLearned), s.ID)
	}
	fmt.Printf("\n%d of %d skills\n", len(matched), len(skills))
	return err
}

func runSkillsShow(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	var skill twin.Skill
	err = withSpinner("Fetching skill...", func() error {
		var getErr error
		skill, getErr = client.GetSkill(ctx, sess.TwinID, args[0])
		return getErr
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s [%s]\n", skill.Name, skill.Level)
	if skill.Description != "" {
		fmt.Println(skill.Description)
	}
	if len(skill.WhatLearned) == 0 {
		fmt.Println("\nNo learning entries yet.")
		return err
	}

	fmt.Printf("\nLearned (%d):\n", len(skill.WhatLearned))
	for _, l := range skill.WhatLearned {
		printLearning(l)
	}
	return err
}

func runSkillsAdd(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	skill := twin.Skill{
		Name:        skillName,
		Category:    skillCategory,
		Level:       skillLevel,
		Description: skillDescription,
	}

	var created twin.Skill
	err = withSpinner("Adding skill...", func() error {
		var createErr error
		created, createErr = client.CreateSkill(ctx, sess.TwinID, skill)
		return createErr
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added skill %q (%s)\n", created.Name, created.ID)
	return err
}

func runSkillsSearch(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	query := strings.Join(args, " ")

	var learnings []twin.Learning
	if searchLocal {
		var skills []twin.Skill
		err = withSpinner("Fetching skills...", func() error {
			var listErr error
			skills, listErr = client.ListSkills(ctx, sess.TwinID)
			return listErr
		})
		if err != nil {
			return err
		}

		var all []twin.Learning
		for _, s := range skills {
			all = append(all, s.WhatLearned...)
		}
		learnings = filterview.Search(all, query, func(l twin.Learning) []string {
			return []string{l.Name, l.Description, l.Content}
		})
	} else {
		err = withSpinner("Searching...", func() error {
			var searchErr error
			learnings, searchErr = client.SearchLearning(ctx, sess.TwinID, query)
			return searchErr
		})
		if err != nil {
			return err
		}
	}

	if len(learnings) == 0 {
		fmt.Println("No results.")
		return err
	}

	for _, l := range learnings {
		printLearning(l)
	}
	fmt.Printf("\n%d results\n", len(learnings))
	return err
}

func runLearningAdd(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	var body string
	body, err = resolveContent(ctx)
	if err != nil {
		return err
	}

	rec := reconcile.New(client)
	draft := twin.Learning{
		Name:        learningName,
		Description: learningDescription,
		Content:     body,
	}

	var created twin.Learning
	var learned []twin.Learning
	err = withSpinner("Saving learning entry...", func() error {
		var addErr error
		created, learned, addErr = rec.AddLearning(ctx, sess.TwinID, args[0], draft)
		return addErr
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added learning %q (%s)\n", created.Name, created.ID)
	fmt.Printf("Skill now has %d learning entries\n", len(learned))
	return err
}

func runLearningUpdate(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	var body string
	body, err = resolveContent(ctx)
	if err != nil {
		return err
	}

	rec := reconcile.New(client)
	learning := twin.Learning{
		ID:          args[1],
		Name:        learningName,
		Description: learningDescription,
		Content:     body,
	}

	err = withSpinner("Updating learning entry...", func() error {
		_, upErr := rec.UpdateLearning(ctx, sess.TwinID, args[0], learning)
		return upErr
	})
	if err != nil {
		return err
	}

	fmt.Printf("Updated learning %s\n", args[1])
	return err
}

func runLearningDelete(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	rec := reconcile.New(client)
	var remaining []twin.Learning
	err = withSpinner("Removing learning entry...", func() error {
		var delErr error
		remaining, delErr = rec.DeleteLearning(ctx, sess.TwinID, args[0], args[1])
		return delErr
	})
	if err != nil {
		return err
	}

	fmt.Printf("Removed learning %s; %d entries remain\n", args[1], len(remaining))
	return err
}

// resolveContent returns the learning content from --content or,
// when --from is set, from the named file or URL.
func resolveContent(ctx context.Context) (body string, err error) {
	if learningFrom == "" {
		body = learningContent
		return body, err
	}

	body, err = content.Fetch(ctx, learningFrom)
	if err != nil {
		return body, err
	}
	return body, err
}

func printLearning(l twin.Learning) {
	fmt.Printf("- %s (%s)\n", l.Name, l.ID)
	if l.Description != "" {
		fmt.Printf("  %s\n", l.Description)
	}
	if l.Content != "" {
		preview := l.Content
		if len(preview) > 120 {
			preview = preview[:120] + "..."
		}
		fmt.Printf("  %s\n", preview)
	}
}
