package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/khrees2412/quickcv/internal/app"
	"github.com/khrees2412/quickcv/internal/document"
	"github.com/khrees2412/quickcv/internal/session"
	"github.com/khrees2412/quickcv/pkg/models"
	"github.com/spf13/cobra"
)

// listSection describes one repeatable resume section so the same add,
// remove, set and list commands can be generated for each of them
type listSection[T any] struct {
	use      string
	singular string
	title    string
	fields   []models.Field[T]
	items    func(models.Resume) []T
	add      session.Action
	remove   func(index int) session.Action
	update   func(index int, f models.Field[T], value string) session.Action
	headline func(T) string
	// extra prints lines below an entry's fields
	extra func(out io.Writer, item T)
}

func (s listSection[T]) command() *cobra.Command {
	root := &cobra.Command{
		Use:   s.use,
		Short: fmt.Sprintf("Manage %s entries", s.singular),
		Long:  fmt.Sprintf("Add, list, update and remove %s entries. Fields: %s", s.singular, strings.Join(models.FieldNames(s.fields), ", ")),
	}

	add := &cobra.Command{
		Use:   "add",
		Short: fmt.Sprintf("Add a %s entry", s.singular),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, _ := cmd.Flags().GetStringArray("set")
			updates, err := s.parseAssignments(assignments)
			if err != nil {
				return err
			}

			a := getApp(cmd)
			a.Dispatch(s.add)
			index := len(s.items(a.Resume())) - 1
			for _, u := range updates {
				a.Dispatch(s.update(index, u.field, u.value))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Added %s #%d\n", s.singular, index+1)
			return nil
		},
	}
	add.Flags().StringArray("set", nil, "Field assignment as field=value (repeatable)")

	remove := &cobra.Command{
		Use:   "remove <n>",
		Short: fmt.Sprintf("Remove a %s entry", s.singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp(cmd)
			index, err := parseIndex(args[0], len(s.items(a.Resume())), s.singular)
			if err != nil {
				return err
			}
			a.Dispatch(s.remove(index))
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed %s #%d\n", s.singular, index+1)
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <n> <field=value>...",
		Short: fmt.Sprintf("Update fields of a %s entry", s.singular),
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp(cmd)
			index, err := parseIndex(args[0], len(s.items(a.Resume())), s.singular)
			if err != nil {
				return err
			}
			updates, err := s.parseAssignments(args[1:])
			if err != nil {
				return err
			}
			for _, u := range updates {
				a.Dispatch(s.update(index, u.field, u.value))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated %s #%d\n", s.singular, index+1)
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s entries", s.singular),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s.print(cmd, getApp(cmd).Resume())
			return nil
		},
	}

	root.AddCommand(add, remove, set, list)
	return root
}

type assignment[T any] struct {
	field models.Field[T]
	value string
}

// parseAssignments resolves and validates every assignment before any of
// them is applied
func (s listSection[T]) parseAssignments(raw []string) ([]assignment[T], error) {
	out := make([]assignment[T], 0, len(raw))
	for _, r := range raw {
		name, value, err := parseAssignment(r)
		if err != nil {
			return nil, err
		}
		f, err := models.LookupField(s.fields, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", app.ErrInvalidArgument, err)
		}
		if err := checkValue(f, value); err != nil {
			return nil, err
		}
		out = append(out, assignment[T]{field: f, value: value})
	}
	return out, nil
}

func (s listSection[T]) print(cmd *cobra.Command, r models.Resume) {
	out := cmd.OutOrStdout()
	items := s.items(r)
	if len(items) == 0 {
		fmt.Fprintf(out, "No %s entries. Add one with 'quickcv %s add'\n", s.singular, s.use)
		return
	}

	fmt.Fprintln(out, titleStyle.Render(s.title))
	for i, item := range items {
		fmt.Fprintf(out, "%d. %s\n", i+1, orDash(s.headline(item)))
		for _, f := range s.fields {
			fmt.Fprintf(out, "   %s %s\n", labelStyle.Render(f.Name+":"), orDash(f.Get(item)))
		}
		if s.extra != nil {
			s.extra(out, item)
		}
	}
}

func joinNonBlank(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, sep)
}

var educationSection = listSection[models.Education]{
	use:      "education",
	singular: "education",
	title:    "Education",
	fields:   models.EducationFields,
	items:    func(r models.Resume) []models.Education { return r.Education },
	add:      session.AddEducation{},
	remove:   func(i int) session.Action { return session.RemoveEducation{Index: i} },
	update: func(i int, f models.Field[models.Education], v string) session.Action {
		return session.UpdateEducation{Index: i, Field: f, Value: v}
	},
	headline: func(e models.Education) string {
		return joinNonBlank(", ", joinNonBlank(" in ", e.Degree, e.Field), e.Institution)
	},
}

var experienceSection = listSection[models.Experience]{
	use:      "experience",
	singular: "experience",
	title:    "Work Experience",
	fields:   models.ExperienceFields,
	items:    func(r models.Resume) []models.Experience { return r.Experience },
	add:      session.AddExperience{},
	remove:   func(i int) session.Action { return session.RemoveExperience{Index: i} },
	update: func(i int, f models.Field[models.Experience], v string) session.Action {
		return session.UpdateExperience{Index: i, Field: f, Value: v}
	},
	headline: func(e models.Experience) string {
		return joinNonBlank(" ", joinNonBlank(" at ", e.Position, e.Company), parenthesize(document.DateRange(e.StartDate, e.EndDate)))
	},
	extra: func(out io.Writer, e models.Experience) {
		if len(e.Achievements) == 0 {
			return
		}
		fmt.Fprintf(out, "   %s\n", labelStyle.Render("achievements:"))
		for i, text := range e.Achievements {
			fmt.Fprintf(out, "     %d. %s\n", i+1, orDash(text))
		}
	},
}

var certificationSection = listSection[models.Certification]{
	use:      "certification",
	singular: "certification",
	title:    "Certifications",
	fields:   models.CertificationFields,
	items:    func(r models.Resume) []models.Certification { return r.Certifications },
	add:      session.AddCertification{},
	remove:   func(i int) session.Action { return session.RemoveCertification{Index: i} },
	update: func(i int, f models.Field[models.Certification], v string) session.Action {
		return session.UpdateCertification{Index: i, Field: f, Value: v}
	},
	headline: func(c models.Certification) string { return joinNonBlank(", ", c.Name, c.Issuer) },
}

var awardSection = listSection[models.Award]{
	use:      "award",
	singular: "award",
	title:    "Awards & Honors",
	fields:   models.AwardFields,
	items:    func(r models.Resume) []models.Award { return r.Awards },
	add:      session.AddAward{},
	remove:   func(i int) session.Action { return session.RemoveAward{Index: i} },
	update: func(i int, f models.Field[models.Award], v string) session.Action {
		return session.UpdateAward{Index: i, Field: f, Value: v}
	},
	headline: func(a models.Award) string { return joinNonBlank(", ", a.Title, a.Issuer) },
}

func parenthesize(s string) string {
	if s == "" {
		return ""
	}
	return "(" + s + ")"
}

// achievement commands address one bullet of one experience entry

var achievementCmd = &cobra.Command{
	Use:   "achievement",
	Short: "Manage the achievements listed under an experience entry",
}

var addAchievementCmd = &cobra.Command{
	Use:     "add <experience> [text]...",
	Short:   "Add an achievement",
	Args:    cobra.MinimumNArgs(1),
	Example: `  quickcv experience achievement add 1 "Cut p99 latency by 40%"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp(cmd)
		exp, err := parseIndex(args[0], len(a.Resume().Experience), "experience")
		if err != nil {
			return err
		}

		a.Dispatch(session.AddAchievement{Experience: exp})
		index := len(a.Resume().Experience[exp].Achievements) - 1
		if text := strings.Join(args[1:], " "); text != "" {
			a.Dispatch(session.UpdateAchievement{Experience: exp, Index: index, Value: text})
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Added achievement #%d to experience #%d\n", index+1, exp+1)
		return nil
	},
}

var removeAchievementCmd = &cobra.Command{
	Use:   "remove <experience> <n>",
	Short: "Remove an achievement",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp(cmd)
		exp, index, err := achievementIndex(a.Resume(), args[0], args[1])
		if err != nil {
			return err
		}
		a.Dispatch(session.RemoveAchievement{Experience: exp, Index: index})
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed achievement #%d from experience #%d\n", index+1, exp+1)
		return nil
	},
}

var setAchievementCmd = &cobra.Command{
	Use:   "set <experience> <n> <text>...",
	Short: "Replace the text of an achievement",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp(cmd)
		exp, index, err := achievementIndex(a.Resume(), args[0], args[1])
		if err != nil {
			return err
		}
		a.Dispatch(session.UpdateAchievement{Experience: exp, Index: index, Value: strings.Join(args[2:], " ")})
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated achievement #%d of experience #%d\n", index+1, exp+1)
		return nil
	},
}

func achievementIndex(r models.Resume, expArg, indexArg string) (int, int, error) {
	exp, err := parseIndex(expArg, len(r.Experience), "experience")
	if err != nil {
		return 0, 0, err
	}
	index, err := parseIndex(indexArg, len(r.Experience[exp].Achievements), "achievement")
	if err != nil {
		return 0, 0, err
	}
	return exp, index, nil
}

func init() {
	experienceCmd := experienceSection.command()
	experienceCmd.AddCommand(achievementCmd)
	achievementCmd.AddCommand(addAchievementCmd, removeAchievementCmd, setAchievementCmd)

	rootCmd.AddCommand(
		educationSection.command(),
		experienceCmd,
		certificationSection.command(),
		awardSection.command(),
	)
}
