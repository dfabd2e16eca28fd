package main

import (
	"fmt"
	"time"

	"volunteer-scheduler-backend/internal/database/models"
	"volunteer-scheduler-backend/internal/repository"
	"volunteer-scheduler-backend/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func recurringCmd() *cobra.Command {
	var (
		rule  string
		from  string
		to    string
		orgID string
		title string
		save  bool
	)

	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Expand a recurrence rule into service dates",
		Long:  `Prints the dates an RRULE produces between --from and --to. With --save, creates one empty service per date.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse(models.DateLayout, from)
			if err != nil {
				return fmt.Errorf("--from must be YYYY-MM-DD: %w", err)
			}
			end, err := time.Parse(models.DateLayout, to)
			if err != nil {
				return fmt.Errorf("--to must be YYYY-MM-DD: %w", err)
			}

			dates, err := service.ExpandRecurrence(rule, start, end)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, d := range dates {
				fmt.Fprintln(out, d.Format("2006-01-02 (Monday)"))
			}
			fmt.Fprintf(out, "%d occurrences\n", len(dates))

			if !save {
				return nil
			}
			org, err := uuid.Parse(orgID)
			if err != nil {
				return fmt.Errorf("--org must be a UUID when saving: %w", err)
			}
			db, err := app.DB()
			if err != nil {
				return err
			}
			svc := service.NewServiceEventService(
				repository.NewServiceEventRepository(db),
				repository.NewVolunteerRepository(db),
				repository.NewTeamRepository(db),
				nil,
				service.NewAuditService(repository.NewAuditLogRepository(db)),
				app.validator,
			)
			created, err := svc.CreateRecurring(cmd.Context(), service.Actor{OrganizationID: org, Admin: true}, &service.RecurringRequest{
				RRule: rule,
				From:  from,
				To:    to,
				Title: title,
			})
			if err != nil {
				return err
			}
			app.logger.Info("Recurring services created", zap.Int("services", len(created)))
			return nil
		},
	}

	cmd.Flags().StringVar(&rule, "rrule", "", "RFC 5545 rule, e.g. FREQ=WEEKLY;BYDAY=SU")
	cmd.Flags().StringVar(&from, "from", "", "First date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&orgID, "org", "", "Organization ID (required with --save)")
	cmd.Flags().StringVar(&title, "title", "Culto", "Title of created services")
	cmd.Flags().BoolVar(&save, "save", false, "Create the services")
	_ = cmd.MarkFlagRequired("rrule")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
