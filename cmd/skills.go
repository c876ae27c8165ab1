package cmd

import (
	"fmt"
	"strings"

	"github.com/khrees2412/quickcv/internal/app"
	"github.com/khrees2412/quickcv/internal/session"
	"github.com/khrees2412/quickcv/pkg/models"
	"github.com/spf13/cobra"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage your skills",
	Long:  "Add, list, update and remove skills. Categories: technical, languages, soft",
}

var addSkillCmd = &cobra.Command{
	Use:   "add <category> <skill>...",
	Short: "Add one or more skills",
	Args:  cobra.MinimumNArgs(2),
	Example: `  quickcv skill add technical Go PostgreSQL Kubernetes
  quickcv skill add languages "French (fluent)"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := skillCategory(args[0])
		if err != nil {
			return err
		}

		a := getApp(cmd)
		for _, value := range args[1:] {
			a.Dispatch(session.AddSkill{Category: category})
			index := len(a.Resume().Skills.Get(category)) - 1
			a.Dispatch(session.UpdateSkill{Category: category, Index: index, Value: value})
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Added %d skill(s) to %s\n", len(args)-1, category.Label())
		return nil
	},
}

var removeSkillCmd = &cobra.Command{
	Use:   "remove <category> <n>",
	Short: "Remove a skill",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := skillCategory(args[0])
		if err != nil {
			return err
		}
		a := getApp(cmd)
		index, err := parseIndex(args[1], len(a.Resume().Skills.Get(category)), "skill")
		if err != nil {
			return err
		}

		removed := a.Resume().Skills.Get(category)[index]
		a.Dispatch(session.RemoveSkill{Category: category, Index: index})
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed skill: %s\n", removed)
		return nil
	},
}

var setSkillCmd = &cobra.Command{
	Use:   "set <category> <n> <skill>",
	Short: "Rename a skill",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := skillCategory(args[0])
		if err != nil {
			return err
		}
		a := getApp(cmd)
		index, err := parseIndex(args[1], len(a.Resume().Skills.Get(category)), "skill")
		if err != nil {
			return err
		}

		a.Dispatch(session.UpdateSkill{Category: category, Index: index, Value: strings.Join(args[2:], " ")})
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Skill updated")
		return nil
	},
}

var listSkillsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		skills := getApp(cmd).Resume().Skills

		fmt.Fprintln(out, titleStyle.Render("Your Skills"))
		for _, c := range models.SkillCategories {
			fmt.Fprintln(out, labelStyle.Render(c.Label()))
			list := skills.Get(c)
			if len(list) == 0 {
				fmt.Fprintln(out, "   "+mutedStyle.Render("none"))
				continue
			}
			for i, s := range list {
				fmt.Fprintf(out, "   %d. %s\n", i+1, orDash(s))
			}
		}
		return nil
	},
}

func skillCategory(arg string) (models.SkillCategory, error) {
	c, err := models.ParseSkillCategory(arg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", app.ErrInvalidArgument, err)
	}
	return c, nil
}

func init() {
	rootCmd.AddCommand(skillCmd)

	skillCmd.AddCommand(addSkillCmd)
	skillCmd.AddCommand(removeSkillCmd)
	skillCmd.AddCommand(setSkillCmd)
	skillCmd.AddCommand(listSkillsCmd)
}
