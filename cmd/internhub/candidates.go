package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rakhadjo/internhub/internal/dto"
	"github.com/rakhadjo/internhub/internal/models"
	"github.com/rakhadjo/internhub/internal/service"
)

// sampleCandidates preloads the candidate session when --sample is set, so
// list/summary/export have something to show without a data source.
var sampleCandidates = []service.CandidateRequest{
	{Name: "Amara Okafor", Email: "amara@example.com", Department: "Engineering", Mentor: "R. Patel", StartDate: "2026-06-01", Status: models.CandidateActive, Score: 82},
	{Name: "Dewi Lestari", Email: "dewi@example.com", Department: "Data", Mentor: "S. Chen", StartDate: "2026-05-12", Status: models.CandidateActive, Score: 74},
	{Name: "Tom Becker", Email: "tom@example.com", Department: "Design", Mentor: "L. Meyer", StartDate: "2026-03-20", Status: models.CandidateOffer, Score: 0},
	{Name: "Priya Nair", Email: "priya@example.com", Department: "Engineering", Mentor: "R. Patel", StartDate: "2025-11-03", Status: models.CandidateCompleted, Score: 91},
	{Name: "Jonas Lund", Email: "jonas@example.com", Department: "Operations", Mentor: "K. Osei", StartDate: "2025-09-15", Status: models.CandidateOffboarded, Score: 55},
}

func candidatesCmd() *cobra.Command {
	var sample bool
	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "Work with the candidate roster",
	}
	cmd.PersistentFlags().BoolVar(&sample, "sample", false, "preload a sample candidate set")

	preload := func() error {
		if !sample {
			return nil
		}
		for _, req := range sampleCandidates {
			if _, err := app.candidates.Create(req); err != nil {
				return err
			}
		}
		return nil
	}

	var query, department, status string
	var page, pageSize int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the visible candidate page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := preload(); err != nil {
				return err
			}
			vs := dto.NewViewState()
			vs.SetQuery(query)
			vs.SetDepartment(department)
			vs.SetStatus(models.CandidateStatus(status))
			vs.SetPageSize(resolvePageSize(pageSize))
			if page > 1 {
				vs.Page = page
			}
			rows, pg := app.candidates.List(vs.CandidateFilter())
			if len(rows) == 0 {
				fmt.Println("No candidates match the current filters.")
				return nil
			}
			fmt.Printf("Page %d/%d (%d records)\n\n", pg.Page, pg.TotalPages, pg.TotalCount)
			for _, c := range rows {
				fmt.Printf("%-20s %-12s %-10s started %s  %-10s score %d\n",
					c.Name, c.Department, c.Mentor, c.StartDate, c.Status.Display(), c.Score)
			}
			return nil
		},
	}
	listCmd.Flags().StringVarP(&query, "query", "q", "", "search name, email, mentor or department")
	listCmd.Flags().StringVar(&department, "department", "", "filter by department")
	listCmd.Flags().StringVar(&status, "status", "", "filter by status (active|offer|completed|offboarded)")
	listCmd.Flags().IntVar(&page, "page", 1, "1-based page number")
	listCmd.Flags().IntVar(&pageSize, "page-size", 0, "page size (25|50|100, 0 = config default)")

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print candidate pipeline counts and average score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := preload(); err != nil {
				return err
			}
			return printJSON(app.candidates.Summary())
		},
	}

	var format string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export all candidates to a dated artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := preload(); err != nil {
				return err
			}
			filter := models.CandidateFilter{Page: 1, PageSize: models.PageSizes[len(models.PageSizes)-1]}
			rows := make([]models.Candidate, 0)
			for {
				page, pg := app.candidates.List(filter)
				rows = append(rows, page...)
				if filter.Page >= pg.TotalPages {
					break
				}
				filter.Page++
			}
			result, err := app.exports.ExportCandidates(rows, service.ExportFormat(format))
			if err != nil {
				return fmt.Errorf("export candidates: %w", err)
			}
			fmt.Printf("Wrote %s (%d bytes, %s)\n", result.Path, result.Size, result.ContentType)
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", "csv", "artifact format (csv|pdf)")

	var req service.CandidateRequest
	var statusFlag string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a candidate and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Status = models.CandidateStatus(statusFlag)
			c, err := app.candidates.Create(req)
			if err != nil {
				return err
			}
			return printJSON(c)
		},
	}
	addCmd.Flags().StringVar(&req.Name, "name", "", "candidate name")
	addCmd.Flags().StringVar(&req.Email, "email", "", "candidate email")
	addCmd.Flags().StringVar(&req.Department, "department", "", "department")
	addCmd.Flags().StringVar(&req.Mentor, "mentor", "", "mentor name")
	addCmd.Flags().StringVar(&req.StartDate, "start", "", "start date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&statusFlag, "status", "active", "status (active|offer|completed|offboarded)")
	addCmd.Flags().IntVar(&req.Score, "score", 0, "score 0-100")
	addCmd.MarkFlagRequired("name")  //nolint:errcheck
	addCmd.MarkFlagRequired("start") //nolint:errcheck

	cmd.AddCommand(listCmd, summaryCmd, exportCmd, addCmd)
	return cmd
}
