package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"
	"volunteer-scheduler-backend/internal/logger"
	"volunteer-scheduler-backend/internal/repository"
	"volunteer-scheduler-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"google.golang.org/genai"
)

// DefaultInstructions is used when the caller gives no instructions
const DefaultInstructions = "generate a balanced standard schedule"

// ContentGenerator produces JSON text constrained by a response schema
type ContentGenerator interface {
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

// ScheduleGenerator drafts services with a generative model. Drafts are
// returned for review and never stored.
type ScheduleGenerator struct {
	model         ContentGenerator
	volunteerRepo repository.VolunteerRepositoryInterface
	ministryRepo  repository.MinistryRepositoryInterface
	audit         AuditServiceInterface
	validator     *validator.Validate
}

// NewScheduleGenerator creates a new ScheduleGenerator
func NewScheduleGenerator(model ContentGenerator, volunteerRepo repository.VolunteerRepositoryInterface, ministryRepo repository.MinistryRepositoryInterface, audit AuditServiceInterface, validator *validator.Validate) *ScheduleGenerator {
	return &ScheduleGenerator{
		model:         model,
		volunteerRepo: volunteerRepo,
		ministryRepo:  ministryRepo,
		audit:         audit,
		validator:     validator,
	}
}

// GenerateRequest asks for drafts between From and To
type GenerateRequest struct {
	From         string `json:"from" validate:"required" example:"2025-01-01"`
	To           string `json:"to" validate:"required" example:"2025-01-31"`
	Instructions string `json:"instructions" validate:"max=2000"`
}

type rosterEntry struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

type draftAssignment struct {
	Role          string `json:"role"`
	VolunteerName string `json:"volunteerName"`
}

type draftService struct {
	Date        string            `json:"date"`
	Title       string            `json:"title"`
	Assignments []draftAssignment `json:"assignments"`
}

// draftSchema is the response schema sent with every request
var draftSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"date":  {Type: genai.TypeString, Description: "YYYY-MM-DD"},
			"title": {Type: genai.TypeString},
			"assignments": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"role":          {Type: genai.TypeString},
						"volunteerName": {Type: genai.TypeString},
					},
					Required: []string{"role", "volunteerName"},
				},
			},
		},
		Required: []string{"date", "title", "assignments"},
	},
}

// Generate returns draft services for the range. Assignments naming a
// volunteer not on the roster are dropped; the service is kept.
func (g *ScheduleGenerator) Generate(ctx context.Context, actor Actor, req *GenerateRequest) ([]models.ServiceEvent, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}
	if err := validate(g.validator, req); err != nil {
		return nil, err
	}
	from, err := parseDate("from", req.From)
	if err != nil {
		return nil, err
	}
	to, err := parseDate("to", req.To)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, apperrors.ErrInvalidDateRange
	}

	volunteers, err := g.volunteerRepo.List(ctx, actor.OrganizationID)
	if err != nil {
		return nil, err
	}
	ministries, err := g.ministryRepo.List(ctx, actor.OrganizationID)
	if err != nil {
		return nil, err
	}

	prompt, err := BuildSchedulePrompt(from, to, ministries, volunteers, req.Instructions)
	if err != nil {
		return nil, apperrors.NewGenerationError("failed to build prompt", err)
	}

	text, err := g.model.GenerateJSON(ctx, prompt, draftSchema)
	if err != nil {
		if apperrors.IsGeneration(err) {
			return nil, err
		}
		return nil, apperrors.NewGenerationError("model call failed", err)
	}

	drafts, err := ResolveDrafts(ctx, text, actor.OrganizationID, volunteers)
	if err != nil {
		return nil, err
	}

	g.audit.Record(ctx, actor, AuditActionGenerate, "schedule", "", map[string]interface{}{
		"from":   req.From,
		"to":     req.To,
		"drafts": len(drafts),
	})
	return drafts, nil
}

// BuildSchedulePrompt embeds the range, ministry names, the roster (name and
// roles only) and the instructions.
func BuildSchedulePrompt(from, to time.Time, ministries []models.Ministry, volunteers []models.Volunteer, instructions string) (string, error) {
	names := make([]string, len(ministries))
	for i, m := range ministries {
		names[i] = m.Name
	}
	roster := make([]rosterEntry, len(volunteers))
	for i, v := range volunteers {
		roles := []string(v.Roles)
		if roles == nil {
			roles = []string{}
		}
		roster[i] = rosterEntry{Name: v.Name, Roles: roles}
	}
	rosterJSON, err := json.Marshal(roster)
	if err != nil {
		return "", err
	}

	instructions = strings.TrimSpace(instructions)
	if instructions == "" {
		instructions = DefaultInstructions
	}

	var b strings.Builder
	b.WriteString("You are scheduling church volunteers.\n")
	fmt.Fprintf(&b, "Create services between %s and %s (inclusive).\n", from.Format(models.DateLayout), to.Format(models.DateLayout))
	fmt.Fprintf(&b, "Ministries (use only these as roles): %s\n", strings.Join(names, ", "))
	fmt.Fprintf(&b, "Volunteers (use only these exact names, and only for roles they hold): %s\n", rosterJSON)
	fmt.Fprintf(&b, "Instructions: %s\n", instructions)
	b.WriteString("Return dates as YYYY-MM-DD.")
	return b.String(), nil
}

// ResolveDrafts parses the model output and maps volunteer names to ids by
// exact match. Each draft gets a fresh id.
func ResolveDrafts(ctx context.Context, text string, orgID uuid.UUID, volunteers []models.Volunteer) ([]models.ServiceEvent, error) {
	var drafts []draftService
	if err := json.Unmarshal([]byte(text), &drafts); err != nil {
		return nil, apperrors.NewGenerationError("model returned malformed JSON", err)
	}

	byName := scheduling.VolunteersByName(volunteers)
	services := make([]models.ServiceEvent, 0, len(drafts))
	for _, d := range drafts {
		date, err := time.Parse(models.DateLayout, strings.TrimSpace(d.Date))
		if err != nil {
			return nil, apperrors.NewGenerationError(fmt.Sprintf("model returned invalid date %q", d.Date), err)
		}

		assignments := make([]models.Assignment, 0, len(d.Assignments))
		for _, a := range d.Assignments {
			id, ok := byName[a.VolunteerName]
			if !ok {
				logger.WithContext(ctx).WithFields(map[string]interface{}{
					"volunteer_name": a.VolunteerName,
					"role":           a.Role,
				}).Debug("Dropping draft assignment for unknown volunteer")
				continue
			}
			assignments = append(assignments, models.Assignment{Role: a.Role, VolunteerID: id})
		}

		svc := models.ServiceEvent{
			Date:        date,
			Title:       d.Title,
			Assignments: assignments,
		}
		svc.ID = uuid.New()
		svc.OrganizationID = orgID
		services = append(services, svc)
	}
	return services, nil
}
