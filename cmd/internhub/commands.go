package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rakhadjo/internhub/internal/dto"
	"github.com/rakhadjo/internhub/internal/models"
	"github.com/rakhadjo/internhub/internal/service"
	"github.com/rakhadjo/internhub/pkg/avatar"
)

type listFlags struct {
	query       string
	sheet       string
	performance string
	page        int
	pageSize    int
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "search name, email or segregation")
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "filter by sheet status (green|red|black)")
	cmd.Flags().StringVar(&f.performance, "performance", "", "filter by performance (good|weak)")
	cmd.Flags().IntVar(&f.page, "page", 1, "1-based page number")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 0, "page size (25|50|100, 0 = config default)")
}

func (f *listFlags) viewState() dto.ViewState {
	vs := dto.NewViewState()
	vs.SetQuery(f.query)
	vs.SetSheetStatus(models.SheetStatus(f.sheet))
	vs.SetPerformance(models.Performance(f.performance))
	vs.SetPageSize(resolvePageSize(f.pageSize))
	if f.page > 1 {
		vs.Page = f.page
	}
	return vs
}

// resolvePageSize maps the unset flag to the configured default. Sizes the
// roster does not support fall through to SetPageSize, which ignores them.
func resolvePageSize(flagValue int) int {
	if flagValue != 0 {
		return flagValue
	}
	if app != nil && app.cfg != nil {
		return app.cfg.Roster.DefaultPageSize
	}
	return models.DefaultPageSize
}

func listCmd() *cobra.Command {
	flags := &listFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the visible roster page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, pg := app.roster.List(flags.viewState().InternFilter())
			fmt.Printf("Page %d/%d (%d records)\n\n", pg.Page, pg.TotalPages, pg.TotalCount)
			for _, in := range rows {
				name := in.Name
				if name == "" {
					name = "(unnamed)"
				}
				fmt.Printf("[%2s] %-22s %-9s %4d/%d  %-5s %-10s %s\n",
					avatar.Initials(in.Name),
					name,
					in.ActivityStatus.Display(),
					in.SpeakersCount, in.SpeakersTarget,
					in.Performance.Display(),
					in.Segregation.Display(),
					in.SheetStatus.Display(),
				)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print aggregate roster counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(app.roster.Summary())
		},
	}
}

func exportCmd() *cobra.Command {
	flags := &listFlags{}
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered roster to a dated artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := flags.viewState().InternFilter()
			// Export covers every filtered row, not just the visible page.
			filter.Page = 1
			filter.PageSize = models.PageSizes[len(models.PageSizes)-1]
			rows := make([]models.Intern, 0)
			for {
				page, pg := app.roster.List(filter)
				rows = append(rows, page...)
				if filter.Page >= pg.TotalPages {
					break
				}
				filter.Page++
			}
			result, err := app.exports.ExportInterns(rows, service.ExportFormat(format))
			if err != nil {
				return fmt.Errorf("export roster: %w", err)
			}
			fmt.Printf("Wrote %s (%d bytes, %s)\n", result.Path, result.Size, result.ContentType)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "artifact format (csv|pdf)")
	return cmd
}

func cleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Remove export artifacts older than the configured TTL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deleted, err := app.exports.CleanupExpired()
			if err != nil {
				return fmt.Errorf("cleanup exports: %w", err)
			}
			if len(deleted) == 0 {
				fmt.Println("No expired exports.")
				return nil
			}
			for _, name := range deleted {
				fmt.Printf("Removed %s\n", name)
			}
			fmt.Printf("Removed %d expired export(s)\n", len(deleted))
			return nil
		},
	}
}

func addCmd() *cobra.Command {
	var name, email string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a single intern to the session roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := app.roster.Add(service.CreateInternRequest{Name: name, Email: email})
			if err != nil {
				return err
			}
			return printJSON(in)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "intern name")
	cmd.Flags().StringVar(&email, "email", "", "intern email")
	cmd.MarkFlagRequired("name") //nolint:errcheck
	return cmd
}

func setCmd() *cobra.Command {
	var id, field, value string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Mutate one field of a record and print the result",
		Long: "Mutate one field of a record by ID. Fields: name, email, activity, excel,\n" +
			"performance, sheet, repurposed, segregation, speakers, aichat, datamining.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := applyField(id, field, value)
			if err != nil {
				return err
			}
			return printJSON(in)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "record ID")
	cmd.Flags().StringVar(&field, "field", "", "field to set")
	cmd.Flags().StringVar(&value, "value", "", "new value (ignored for toggles)")
	cmd.MarkFlagRequired("id")    //nolint:errcheck
	cmd.MarkFlagRequired("field") //nolint:errcheck
	return cmd
}

func applyField(id, field, value string) (models.Intern, error) {
	switch field {
	case "name":
		return app.roster.SetName(id, value)
	case "email":
		return app.roster.SetEmail(id, value)
	case "activity":
		return app.roster.SetActivityStatus(id, models.ActivityStatus(value))
	case "excel":
		return app.roster.SetExcelSubmitted(id, models.YesNo(value))
	case "performance":
		return app.roster.SetPerformance(id, models.Performance(value))
	case "sheet":
		return app.roster.SetSheetStatus(id, models.SheetStatus(value))
	case "repurposed":
		return app.roster.SetDataRepurposed(id, models.YesNo(value))
	case "segregation":
		return app.roster.UpdateSegregation(id, models.Segregation(value))
	case "speakers":
		return app.roster.UpdateSpeakers(id, value)
	case "aichat":
		return app.roster.ToggleAIChat(id)
	case "datamining":
		return app.roster.ToggleDataMining(id)
	default:
		return models.Intern{}, fmt.Errorf("unknown field %q", field)
	}
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
