package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"volunteer-scheduler-backend/internal/database/models"
	"volunteer-scheduler-backend/internal/repository"
	"volunteer-scheduler-backend/internal/scheduling"
	"volunteer-scheduler-backend/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func draftCmd() *cobra.Command {
	var (
		orgID        string
		from         string
		to           string
		instructions string
		save         bool
	)

	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Draft services for a date range with the AI model",
		Long: `Asks the configured Gemini model for a schedule draft and prints it.

With --save every draft is created as a service the same way the API does it:
each one is audited and its assignees are notified through the configured
push and email channels.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			org, err := uuid.Parse(orgID)
			if err != nil {
				return fmt.Errorf("--org must be a UUID: %w", err)
			}

			db, err := app.DB()
			if err != nil {
				return err
			}
			volunteerRepo := repository.NewVolunteerRepository(db)
			audit := service.NewAuditService(repository.NewAuditLogRepository(db))
			gemini := service.NewGeminiClient(app.cfg.GeminiAPIKey, app.cfg.GeminiModel, app.cfg.GeminiBaseURL, app.cfg.GeminiTimeout())
			generator := service.NewScheduleGenerator(gemini, volunteerRepo, repository.NewMinistryRepository(db), audit, app.validator)

			actor := service.Actor{OrganizationID: org, Admin: true}
			app.logger.Info("Requesting schedule draft",
				zap.String("organization_id", orgID), zap.String("from", from), zap.String("to", to))

			drafts, err := generator.Generate(cmd.Context(), actor, &service.GenerateRequest{From: from, To: to, Instructions: instructions})
			if err != nil {
				return err
			}

			volunteers, err := volunteerRepo.List(cmd.Context(), org)
			if err != nil {
				return err
			}
			printDrafts(cmd.OutOrStdout(), drafts, volunteers)

			if !save {
				return nil
			}
			if len(drafts) == 0 {
				app.logger.Warn("Nothing to save")
				return nil
			}
			services := service.NewServiceEventService(
				repository.NewServiceEventRepository(db), volunteerRepo, repository.NewTeamRepository(db),
				app.newChangeNotifier(cmd.Context(), db), audit, app.validator)
			if _, err := saveDrafts(cmd.Context(), services, actor, drafts); err != nil {
				return err
			}
			app.logger.Info("Drafts saved", zap.Int("services", len(drafts)))
			return nil
		},
	}

	cmd.Flags().StringVar(&orgID, "org", "", "Organization ID")
	cmd.Flags().StringVar(&from, "from", "", "First date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&instructions, "instructions", "", "Extra instructions for the model")
	cmd.Flags().BoolVar(&save, "save", false, "Save the drafts as services")
	_ = cmd.MarkFlagRequired("org")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// printDrafts writes one block per service with resolved volunteer names
func printDrafts(out io.Writer, drafts []models.ServiceEvent, volunteers []models.Volunteer) {
	fmt.Fprintf(out, "\n%d services drafted:\n\n", len(drafts))
	for _, d := range drafts {
		fmt.Fprintf(out, "%s  %s\n", d.Date.Format(models.DateLayout), d.Title)
		for _, a := range d.Assignments {
			v, _ := scheduling.ResolveVolunteer(volunteers, a.VolunteerID)
			fmt.Fprintf(out, "    %-20s %s\n", a.Role, v.Name)
		}
		if len(d.Assignments) == 0 {
			fmt.Fprintln(out, "    "+strings.Repeat("-", 10))
		}
	}
	fmt.Fprintln(out)
}

// saveDrafts creates each draft through services and stops at the first
// failure. It returns how many were saved.
func saveDrafts(ctx context.Context, services service.ServiceEventServiceInterface, actor service.Actor, drafts []models.ServiceEvent) (int, error) {
	for i, d := range drafts {
		_, err := services.Create(ctx, actor, &service.ServiceEventRequest{
			Date:        d.DateString(),
			Title:       d.Title,
			EventTypeID: d.EventTypeID,
			Assignments: d.Assignments,
		})
		if err != nil {
			return i, fmt.Errorf("failed to save draft for %s: %w", d.DateString(), err)
		}
	}
	return len(drafts), nil
}
