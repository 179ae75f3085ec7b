package domain

import "context"

// CompleteCV aggregates the profile and every sub-resource, each list
// sorted by order_index ascending. Empty lists stay empty slices so
// the JSON renders as [] rather than null.
type CompleteCV struct {
	Profile        *Profile              `json:"profile"`
	Experiences    []*WorkExperience     `json:"experiences"`
	Skills         []*Skill              `json:"skills"`
	Education      []*Education          `json:"education"`
	Projects       []*Project            `json:"projects"`
	Certifications []*Certification      `json:"certifications"`
	Training       []*AdditionalTraining `json:"training"`
	SocialNetworks []*SocialNetwork      `json:"social_networks"`
	Tools          []*Tool               `json:"tools"`
	ContactInfo    *ContactInformation   `json:"contact_info,omitempty"`
}

type CVUsecase interface {
	GetComplete(ctx context.Context) (*CompleteCV, error)
}
