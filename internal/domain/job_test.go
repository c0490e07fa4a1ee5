package domain

import (
	"errors"
	"testing"
)

func TestParseContractTypes(t *testing.T) {
	values, err := ParseContractTypes([]string{"B2B", "Employment Contract"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(values) != 2 || values[0] != ContractB2B || values[1] != ContractEmployment {
		t.Fatalf("unexpected values: %v", values)
	}

	if _, err := ParseContractTypes([]string{"Gig"}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestParseWorkModes(t *testing.T) {
	if _, err := ParseWorkModes([]string{"remote", "hybrid", "onsite"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := ParseWorkModes([]string{"Remote"}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("vocabulary must be case sensitive, got %v", err)
	}
}

func TestParseExperienceLevels(t *testing.T) {
	if _, err := ParseExperienceLevels([]string{"junior", "mid", "senior"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := ParseExperienceLevels([]string{"principal"}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestParseJobTypes(t *testing.T) {
	if _, err := ParseJobTypes([]string{"full_time", "part_time"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := ParseJobTypes([]string{"contract"}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestParseEmptyInputYieldsEmptySet(t *testing.T) {
	values, err := ParseWorkModes(nil)
	if err != nil {
		t.Fatalf("parse nil: %v", err)
	}
	if len(values) != 0 {
		t.Fatalf("expected empty set, got %v", values)
	}
}
