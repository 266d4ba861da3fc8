package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/nbcheck/internal/cli/output"
	"github.com/leapstack-labs/nbcheck/pkg/check"
	_ "github.com/leapstack-labs/nbcheck/pkg/check/rules" // register checks
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group  string // Filter by group
	Format string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [check-id]",
		Short: "List available conformance checks",
		Long: `List all registered conformance checks with their group and description.

Checks are organized by group (artifacts, hygiene, notebooks, data) and
run in ID order.`,
		Example: `  # List all checks
  nbcheck rules

  # Show a specific check
  nbcheck rules NB02

  # List hygiene checks only
  nbcheck rules --group hygiene

  # Output as JSON
  nbcheck rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

// RuleInfo is the JSON output entry for a registered check.
type RuleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Group       string `json:"group"`
	Description string `json:"description"`
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	defs := check.All()
	if opts.Group != "" {
		defs = check.ByGroup(opts.Group)
	}

	infos := make([]RuleInfo, 0, len(defs))
	for _, def := range defs {
		infos = append(infos, RuleInfo{ID: def.ID, Name: def.Name, Group: def.Group, Description: def.Description})
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(infos)
	case output.ModeMarkdown:
		renderRulesMarkdown(r, infos)
		return nil
	default:
		renderRulesTable(r, infos)
		return nil
	}
}

func renderRulesTable(r *output.Renderer, infos []RuleInfo) {
	titleCaser := cases.Title(language.English)

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Group", "Description"})
	for _, info := range infos {
		t.AppendRow(table.Row{info.ID, info.Name, titleCaser.String(info.Group), info.Description})
	}
	r.Println(t.Render())
	r.Printf("\n%d checks registered\n", len(infos))
}

func renderRulesMarkdown(r *output.Renderer, infos []RuleInfo) {
	r.Println("# Conformance Checks")
	r.Println("")
	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, info := range infos {
		if info.Group != currentGroup {
			currentGroup = info.Group
			r.Println("## " + titleCaser.String(currentGroup))
			r.Println("")
		}
		r.Printf("- **%s** (%s): %s\n", info.ID, info.Name, info.Description)
	}
}

func showRule(cmd *cobra.Command, id string, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	def, ok := check.ByID(id)
	if !ok {
		return fmt.Errorf("unknown check: %s", id)
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(RuleInfo{ID: def.ID, Name: def.Name, Group: def.Group, Description: def.Description})
	}

	styles := r.Styles()
	r.Println(styles.Header1.Render(def.ID + ": " + def.Name))
	r.Println(styles.Muted.Render("Group: " + def.Group))
	r.Println("")
	r.Println(def.Description)
	return nil
}
