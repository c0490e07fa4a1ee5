package domain

import (
	"fmt"
	"time"
)

type ContractType string

const (
	ContractB2B        ContractType = "B2B"
	ContractEmployment ContractType = "Employment Contract"
	ContractMandate    ContractType = "Mandate Contract"
	ContractWork       ContractType = "Work Contract"
)

type WorkMode string

const (
	WorkModeRemote WorkMode = "remote"
	WorkModeHybrid WorkMode = "hybrid"
	WorkModeOnsite WorkMode = "onsite"
)

type ExperienceLevel string

const (
	ExperienceJunior ExperienceLevel = "junior"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
)

type JobType string

const (
	JobTypeFullTime JobType = "full_time"
	JobTypePartTime JobType = "part_time"
)

type Job struct {
	ID               int64
	Title            string
	SalaryMin        *int
	SalaryMax        *int
	ContractTypes    []ContractType
	WorkModes        []WorkMode
	ExperienceLevels []ExperienceLevel
	JobTypes         []JobType
	Description      string
	Requirements     map[string]any
	Locations        []string
	StartDate        time.Time
	EndDate          *time.Time
	CompanyID        int64
	CompanyName      string
}

// JobUpdate carries a partial update; nil fields are left untouched.
// company_id is immutable after creation.
type JobUpdate struct {
	Title            *string
	SalaryMin        *int
	SalaryMax        *int
	ContractTypes    []ContractType
	WorkModes        []WorkMode
	ExperienceLevels []ExperienceLevel
	JobTypes         []JobType
	Description      *string
	Requirements     map[string]any
	Locations        []string
	StartDate        *time.Time
	EndDate          *time.Time
}

var contractTypes = map[ContractType]bool{
	ContractB2B:        true,
	ContractEmployment: true,
	ContractMandate:    true,
	ContractWork:       true,
}

var workModes = map[WorkMode]bool{
	WorkModeRemote: true,
	WorkModeHybrid: true,
	WorkModeOnsite: true,
}

var experienceLevels = map[ExperienceLevel]bool{
	ExperienceJunior: true,
	ExperienceMid:    true,
	ExperienceSenior: true,
}

var jobTypes = map[JobType]bool{
	JobTypeFullTime: true,
	JobTypePartTime: true,
}

func ParseContractTypes(tags []string) ([]ContractType, error) {
	out := make([]ContractType, 0, len(tags))
	for _, tag := range tags {
		value := ContractType(tag)
		if !contractTypes[value] {
			return nil, fmt.Errorf("%w: unknown contract type %q", ErrInvalidArgument, tag)
		}
		out = append(out, value)
	}
	return out, nil
}

func ParseWorkModes(tags []string) ([]WorkMode, error) {
	out := make([]WorkMode, 0, len(tags))
	for _, tag := range tags {
		value := WorkMode(tag)
		if !workModes[value] {
			return nil, fmt.Errorf("%w: unknown work mode %q", ErrInvalidArgument, tag)
		}
		out = append(out, value)
	}
	return out, nil
}

func ParseExperienceLevels(tags []string) ([]ExperienceLevel, error) {
	out := make([]ExperienceLevel, 0, len(tags))
	for _, tag := range tags {
		value := ExperienceLevel(tag)
		if !experienceLevels[value] {
			return nil, fmt.Errorf("%w: unknown experience level %q", ErrInvalidArgument, tag)
		}
		out = append(out, value)
	}
	return out, nil
}

func ParseJobTypes(tags []string) ([]JobType, error) {
	out := make([]JobType, 0, len(tags))
	for _, tag := range tags {
		value := JobType(tag)
		if !jobTypes[value] {
			return nil, fmt.Errorf("%w: unknown job type %q", ErrInvalidArgument, tag)
		}
		out = append(out, value)
	}
	return out, nil
}
