package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/khrees2412/quickcv/internal/session"
	"github.com/khrees2412/quickcv/pkg/models"
	"github.com/spf13/cobra"
)

// profileFlags maps command line flags to personal info fields
var profileFlags = []struct {
	flag  string
	label string
	field models.Field[models.PersonalInfo]
}{
	{"name", "Full Name", models.PersonalName},
	{"email", "Email", models.PersonalEmail},
	{"phone", "Phone", models.PersonalPhone},
	{"address", "Address", models.PersonalAddress},
	{"dob", "Date of Birth", models.PersonalDateOfBirth},
	{"linkedin", "LinkedIn", models.PersonalLinkedIn},
	{"github", "GitHub", models.PersonalGitHub},
	{"portfolio", "Portfolio", models.PersonalPortfolio},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your personal information",
	Long:  "View and update the name, contact details and links printed at the top of your resume",
}

var showProfileCmd = &cobra.Command{
	Use:   "show",
	Short: "Display your personal information",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := getApp(cmd).Resume().PersonalInfo
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, titleStyle.Render("Personal Information"))
		for _, pf := range profileFlags {
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render(pf.label+":"), valueStyle.Render(orDash(pf.field.Get(p))))
		}
		return nil
	},
}

var editProfileCmd = &cobra.Command{
	Use:   "edit",
	Short: "Interactively edit your personal information",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp(cmd)
		out := cmd.OutOrStdout()
		reader := bufio.NewReader(cmd.InOrStdin())

		fmt.Fprintln(out, titleStyle.Render("Edit Profile"))
		fmt.Fprintln(out, "Press Enter to keep current value, or type a new value")

		changed := 0
		for _, pf := range profileFlags {
			for {
				fmt.Fprintf(out, "%s [%s]: ", labelStyle.Render(pf.label), pf.field.Get(a.Resume().PersonalInfo))
				line, err := reader.ReadString('\n')
				value := strings.TrimSpace(line)
				if value == "" {
					if err != nil {
						return nil
					}
					break
				}
				if verr := checkValue(pf.field, value); verr != nil {
					fmt.Fprintln(out, errorStyle.Render(verr.Error()))
					continue
				}
				a.Dispatch(session.SetPersonal{Field: pf.field, Value: value})
				changed++
				break
			}
		}

		fmt.Fprintf(out, "\n✓ Profile updated (%d fields changed)\n", changed)
		return nil
	},
}

var setProfileCmd = &cobra.Command{
	Use:   "set",
	Short: "Update personal information fields",
	Example: `  quickcv profile set --name "Ada Lovelace"
  quickcv profile set --email ada@example.com --phone "+44 20 7946 0000"
  quickcv profile set --dob 1815-12-10
  quickcv profile set --portfolio ""`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp(cmd)

		// validate everything before applying anything
		var actions []session.Action
		for _, pf := range profileFlags {
			if !cmd.Flags().Changed(pf.flag) {
				continue
			}
			value, _ := cmd.Flags().GetString(pf.flag)
			if err := checkValue(pf.field, value); err != nil {
				return err
			}
			actions = append(actions, session.SetPersonal{Field: pf.field, Value: value})
		}

		if len(actions) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No fields to update. Use flags like --name, --email, etc.")
			return nil
		}

		for _, action := range actions {
			a.Dispatch(action)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Profile updated successfully!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(setProfileCmd)

	for _, pf := range profileFlags {
		setProfileCmd.Flags().String(pf.flag, "", "Set "+strings.ToLower(pf.label))
	}
}
