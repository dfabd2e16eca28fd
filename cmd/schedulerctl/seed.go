package main

import (
	"context"
	"fmt"
	"os"

	"volunteer-scheduler-backend/internal/auth"
	"volunteer-scheduler-backend/internal/database/models"
	"volunteer-scheduler-backend/internal/repository"
	"volunteer-scheduler-backend/internal/scheduling"
	"volunteer-scheduler-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// SeedFile describes one organization and its initial roster
type SeedFile struct {
	Organization string          `yaml:"organization" validate:"required"`
	Admin        SeedAdmin       `yaml:"admin"`
	Ministries   []SeedMinistry  `yaml:"ministries" validate:"dive"`
	EventTypes   []SeedEventType `yaml:"event_types" validate:"dive"`
	Volunteers   []SeedVolunteer `yaml:"volunteers" validate:"dive"`
	Teams        []SeedTeam      `yaml:"teams" validate:"dive"`
}

type SeedAdmin struct {
	FullName string `yaml:"full_name" validate:"required"`
	Email    string `yaml:"email" validate:"required,email"`
	Password string `yaml:"password" validate:"required,min=8"`
}

type SeedMinistry struct {
	Name string `yaml:"name" validate:"required"`
	Icon string `yaml:"icon"`
}

type SeedEventType struct {
	Name  string `yaml:"name" validate:"required"`
	Color string `yaml:"color"`
}

type SeedVolunteer struct {
	Name             string   `yaml:"name" validate:"required"`
	Roles            []string `yaml:"roles"`
	Email            string   `yaml:"email"`
	AvatarURL        string   `yaml:"avatar_url"`
	UnavailableDates []string `yaml:"unavailable_dates"`
}

type SeedTeam struct {
	Name    string   `yaml:"name" validate:"required"`
	Members []string `yaml:"members"`
}

// LoadSeedFile parses and checks a seed file
func LoadSeedFile(path string, v *validator.Validate) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	if err := v.Struct(&seed); err != nil {
		return nil, fmt.Errorf("invalid seed file %s: %w", path, err)
	}
	return &seed, nil
}

// SeedServices are the services a seed run writes through
type SeedServices struct {
	Accounts   service.AccountServiceInterface
	Ministries service.MinistryServiceInterface
	EventTypes service.EventTypeServiceInterface
	Volunteers service.VolunteerServiceInterface
	Teams      service.TeamServiceInterface
}

// SeedResult summarizes what a seed run created
type SeedResult struct {
	OrganizationID uuid.UUID
	AdminEmail     string
	Ministries     int
	EventTypes     int
	Volunteers     int
	Teams          int
}

// ApplySeed registers the organization and admin, then creates the roster.
// Team members are resolved by exact volunteer name; unknown names fail the run.
func ApplySeed(ctx context.Context, svcs SeedServices, seed *SeedFile, log *zap.Logger) (*SeedResult, error) {
	registered, err := svcs.Accounts.Register(ctx, &service.RegisterRequest{
		OrganizationName: seed.Organization,
		FullName:         seed.Admin.FullName,
		Email:            seed.Admin.Email,
		Password:         seed.Admin.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register organization: %w", err)
	}
	actor := service.Actor{
		UserID:         registered.Profile.ID,
		OrganizationID: registered.Profile.OrganizationID,
		Admin:          true,
	}
	log.Info("Organization registered",
		zap.String("organization", seed.Organization),
		zap.String("organization_id", actor.OrganizationID.String()))

	result := &SeedResult{OrganizationID: actor.OrganizationID, AdminEmail: seed.Admin.Email}

	for _, m := range seed.Ministries {
		if _, err := svcs.Ministries.Create(ctx, actor, &service.MinistryRequest{Name: m.Name, Icon: models.MinistryIcon(m.Icon)}); err != nil {
			return result, fmt.Errorf("failed to create ministry %q: %w", m.Name, err)
		}
		result.Ministries++
	}

	for _, et := range seed.EventTypes {
		if _, err := svcs.EventTypes.Create(ctx, actor, &service.EventTypeRequest{Name: et.Name, Color: models.EventColor(et.Color)}); err != nil {
			return result, fmt.Errorf("failed to create event type %q: %w", et.Name, err)
		}
		result.EventTypes++
	}

	created := make([]models.Volunteer, 0, len(seed.Volunteers))
	for _, v := range seed.Volunteers {
		roles := v.Roles
		if roles == nil {
			roles = []string{}
		}
		volunteer, err := svcs.Volunteers.Create(ctx, actor, &service.VolunteerRequest{
			Name:             v.Name,
			Roles:            roles,
			Email:            v.Email,
			AvatarURL:        v.AvatarURL,
			UnavailableDates: v.UnavailableDates,
		})
		if err != nil {
			return result, fmt.Errorf("failed to create volunteer %q: %w", v.Name, err)
		}
		created = append(created, *volunteer)
		result.Volunteers++
	}

	byName := scheduling.VolunteersByName(created)
	for _, t := range seed.Teams {
		memberIDs := make([]uuid.UUID, 0, len(t.Members))
		for _, name := range t.Members {
			id, ok := byName[name]
			if !ok {
				return result, fmt.Errorf("team %q references unknown volunteer %q", t.Name, name)
			}
			memberIDs = append(memberIDs, id)
		}
		if _, err := svcs.Teams.Create(ctx, actor, &service.TeamRequest{Name: t.Name, MemberIDs: memberIDs}); err != nil {
			return result, fmt.Errorf("failed to create team %q: %w", t.Name, err)
		}
		result.Teams++
	}

	return result, nil
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Create an organization, its admin and roster from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := LoadSeedFile(args[0], app.validator)
			if err != nil {
				return err
			}

			db, err := app.DB()
			if err != nil {
				return err
			}
			tokens, err := auth.NewAuthService(app.cfg.JWTSecret, app.cfg.JWTExpiry())
			if err != nil {
				return err
			}

			audit := service.NewAuditService(repository.NewAuditLogRepository(db))
			svcs := SeedServices{
				Accounts:   service.NewAccountService(repository.NewOrganizationRepository(db), repository.NewProfileRepository(db), tokens, app.validator),
				Ministries: service.NewMinistryService(repository.NewMinistryRepository(db), audit, app.validator),
				EventTypes: service.NewEventTypeService(repository.NewEventTypeRepository(db), audit, app.validator),
				Volunteers: service.NewVolunteerService(repository.NewVolunteerRepository(db), audit, app.validator),
				Teams:      service.NewTeamService(repository.NewTeamRepository(db), audit, app.validator),
			}

			result, err := ApplySeed(cmd.Context(), svcs, seed, app.logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Organization ID: %s\n", result.OrganizationID)
			fmt.Fprintf(out, "Admin:           %s\n", result.AdminEmail)
			fmt.Fprintf(out, "Ministries:      %d\n", result.Ministries)
			fmt.Fprintf(out, "Event types:     %d\n", result.EventTypes)
			fmt.Fprintf(out, "Volunteers:      %d\n", result.Volunteers)
			fmt.Fprintf(out, "Teams:           %d\n", result.Teams)
			return nil
		},
	}
}
