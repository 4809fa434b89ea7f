package prompts

import (
	"strings"
	"testing"

	"business-advisor/internal/domain/entity"
)

func TestRenderContextHeader(t *testing.T) {
	md := entity.BusinessMetadata{
		Name:       "Mario's Trattoria",
		Rating:     4.5,
		Price:      entity.PriceModest,
		Categories: []string{"Italian", "Pizza"},
		Address:    "12 Main St, College Park, MD",
	}

	header, err := RenderContextHeader(md)
	if err != nil {
		t.Fatalf("RenderContextHeader failed: %v", err)
	}

	for _, want := range []string{
		"Business: Mario's Trattoria",
		"Rating: 4.5 of 5",
		"Price: $$",
		"Categories: Italian, Pizza",
		"Address: 12 Main St, College Park, MD",
	} {
		if !strings.Contains(header, want) {
			t.Errorf("Header missing %q:\n%s", want, header)
		}
	}

	// metadata fields must keep their fixed order
	if strings.Index(header, "Business:") > strings.Index(header, "Rating:") {
		t.Error("Name must come before rating")
	}
	if strings.Index(header, "Categories:") > strings.Index(header, "Address:") {
		t.Error("Categories must come before address")
	}
}

func TestRenderContextHeader_UnknownPriceAndNoCategories(t *testing.T) {
	header, err := RenderContextHeader(entity.BusinessMetadata{Name: "X", Rating: 3})
	if err != nil {
		t.Fatalf("RenderContextHeader failed: %v", err)
	}

	if !strings.Contains(header, "Price: unspecified") {
		t.Errorf("Expected unspecified price, got:\n%s", header)
	}
	if !strings.Contains(header, "Categories: unspecified") {
		t.Errorf("Expected unspecified categories, got:\n%s", header)
	}
}

func TestRenderSearchQueryInstruction(t *testing.T) {
	got, err := RenderSearchQueryInstruction("College Park, Maryland", "12/11/2025", "8pm")
	if err != nil {
		t.Fatalf("RenderSearchQueryInstruction failed: %v", err)
	}

	for _, want := range []string{"College Park, Maryland", "12/11/2025", "8pm"} {
		if !strings.Contains(got, want) {
			t.Errorf("Instruction missing %q", want)
		}
	}
}

func TestInstructionForRole_Distinct(t *testing.T) {
	opt := InstructionForRole(entity.RoleOptimist)
	crit := InstructionForRole(entity.RoleCritic)
	judge := InstructionForRole(entity.RoleJudge)

	if opt == "" || crit == "" || judge == "" {
		t.Fatal("Role instructions must not be empty")
	}
	if opt == crit || opt == judge || crit == judge {
		t.Error("Role instructions must be distinct")
	}
	if !strings.Contains(judge, "Pros:") || !strings.Contains(judge, "Cons:") || !strings.Contains(judge, "Our verdict:") {
		t.Error("Judge directive must spell out the three output labels")
	}
}
