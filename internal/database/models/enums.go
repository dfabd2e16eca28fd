package models

// ProfileRole is the access level of an authenticated profile
type ProfileRole string

const (
	ProfileRoleAdmin     ProfileRole = "admin"
	ProfileRoleVolunteer ProfileRole = "volunteer"
)

// IsValid checks if the ProfileRole is valid
func (r ProfileRole) IsValid() bool {
	switch r {
	case ProfileRoleAdmin, ProfileRoleVolunteer:
		return true
	}
	return false
}

// AssignmentStatus is a volunteer's response to an assignment
type AssignmentStatus string

const (
	AssignmentStatusPending   AssignmentStatus = "pending"
	AssignmentStatusConfirmed AssignmentStatus = "confirmed"
	AssignmentStatusDeclined  AssignmentStatus = "declined"
)

// IsValid checks if the AssignmentStatus is valid
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusPending, AssignmentStatusConfirmed, AssignmentStatusDeclined:
		return true
	}
	return false
}

// MinistryIcon identifies the pictogram shown next to a ministry
type MinistryIcon string

const (
	MinistryIconMusic  MinistryIcon = "music"
	MinistryIconMic    MinistryIcon = "mic"
	MinistryIconVideo  MinistryIcon = "video"
	MinistryIconCamera MinistryIcon = "camera"
	MinistryIconUsers  MinistryIcon = "users"
	MinistryIconHeart  MinistryIcon = "heart"
	MinistryIconBaby   MinistryIcon = "baby"
	MinistryIconCoffee MinistryIcon = "coffee"
	MinistryIconBook   MinistryIcon = "book"
	MinistryIconShield MinistryIcon = "shield"
	MinistryIconStar   MinistryIcon = "star"
	MinistryIconHand   MinistryIcon = "hand"

	DefaultMinistryIcon = MinistryIconUsers
)

// MinistryIcons lists every accepted icon in display order
var MinistryIcons = []MinistryIcon{
	MinistryIconMusic, MinistryIconMic, MinistryIconVideo, MinistryIconCamera,
	MinistryIconUsers, MinistryIconHeart, MinistryIconBaby, MinistryIconCoffee,
	MinistryIconBook, MinistryIconShield, MinistryIconStar, MinistryIconHand,
}

// IsValid checks if the MinistryIcon is one of the known icons
func (i MinistryIcon) IsValid() bool {
	for _, icon := range MinistryIcons {
		if i == icon {
			return true
		}
	}
	return false
}

// EventColor is one of the eight palette colors an event type can carry
type EventColor string

const (
	EventColorBlue   EventColor = "blue"
	EventColorGreen  EventColor = "green"
	EventColorRed    EventColor = "red"
	EventColorYellow EventColor = "yellow"
	EventColorPurple EventColor = "purple"
	EventColorPink   EventColor = "pink"
	EventColorOrange EventColor = "orange"
	EventColorTeal   EventColor = "teal"

	DefaultEventColor = EventColorBlue
)

// EventColors is the fixed palette
var EventColors = []EventColor{
	EventColorBlue, EventColorGreen, EventColorRed, EventColorYellow,
	EventColorPurple, EventColorPink, EventColorOrange, EventColorTeal,
}

// IsValid checks if the EventColor belongs to the palette
func (c EventColor) IsValid() bool {
	for _, color := range EventColors {
		if c == color {
			return true
		}
	}
	return false
}

// WizardScope selects which onboarding wizard a progress row belongs to
type WizardScope string

const (
	WizardScopeOrganization WizardScope = "organization"
	WizardScopeUser         WizardScope = "user"
)

// TerminalStep returns the last step of the wizard, or -1 for an unknown scope.
func (s WizardScope) TerminalStep() int {
	switch s {
	case WizardScopeOrganization:
		return 4
	case WizardScopeUser:
		return 3
	}
	return -1
}

// IsValid checks if the WizardScope is valid
func (s WizardScope) IsValid() bool {
	return s.TerminalStep() >= 0
}
