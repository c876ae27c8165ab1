package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/khrees2412/quickcv/internal/app"
	"github.com/khrees2412/quickcv/internal/session"
	"github.com/khrees2412/quickcv/pkg/models"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json|->",
	Short: "Replace whole sections from a JSON document",
	Long: `Read a JSON object using the same keys as 'quickcv show --json' and
replace every section it names. Sections that are not present are kept.
Use "-" to read from standard input.`,
	Args: cobra.ExactArgs(1),
	Example: `  quickcv import skills.json
  echo '{"summary": "Go developer"}' | quickcv import -`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		if args[0] == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		actions, sections, err := sectionActions(data)
		if err != nil {
			return err
		}

		a := getApp(cmd)
		// check the combined result before changing anything
		candidate := a.Resume()
		for _, action := range actions {
			candidate = session.Apply(candidate, action)
		}
		if err := candidate.Validate(); err != nil {
			return fmt.Errorf("%w: %v", app.ErrInvalidArgument, err)
		}

		for _, action := range actions {
			a.Dispatch(action)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Replaced %s\n", strings.Join(sections, ", "))
		return nil
	},
}

// sectionActions turns each top-level key of a JSON object into one
// whole-section replacement
func sectionActions(data []byte) ([]session.Action, []string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("%w: not a JSON object: %v", app.ErrInvalidArgument, err)
	}
	if len(raw) == 0 {
		return nil, nil, fmt.Errorf("%w: no sections given", app.ErrInvalidArgument)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	actions := make([]session.Action, 0, len(keys))
	for _, key := range keys {
		action, err := decodeSection(key, raw[key])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %v", app.ErrInvalidArgument, key, err)
		}
		actions = append(actions, action)
	}
	return actions, keys, nil
}

func decodeSection(key string, value json.RawMessage) (session.Action, error) {
	switch key {
	case "personalInfo":
		var info models.PersonalInfo
		err := json.Unmarshal(value, &info)
		return session.ReplacePersonal{Info: info}, err
	case "summary":
		var text string
		err := json.Unmarshal(value, &text)
		return session.SetSummary{Text: text}, err
	case "education":
		var items []models.Education
		err := json.Unmarshal(value, &items)
		return session.ReplaceEducation{Items: items}, err
	case "experience":
		var items []models.Experience
		err := json.Unmarshal(value, &items)
		return session.ReplaceExperience{Items: items}, err
	case "skills":
		var skills models.Skills
		err := json.Unmarshal(value, &skills)
		return session.ReplaceSkills{Skills: skills}, err
	case "certifications":
		var items []models.Certification
		err := json.Unmarshal(value, &items)
		return session.ReplaceCertifications{Items: items}, err
	case "awards":
		var items []models.Award
		err := json.Unmarshal(value, &items)
		return session.ReplaceAwards{Items: items}, err
	}
	return nil, errors.New("unknown section")
}

func init() {
	rootCmd.AddCommand(importCmd)
}
