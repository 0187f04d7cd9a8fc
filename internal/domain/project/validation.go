package project

import (
	"fmt"
	"strings"

	"github.com/rpggio/stageboard/internal/patch"
)

// ValidateCreateInput validates fields required to create a project.
// It expects req to be normalized already.
func ValidateCreateInput(req CreateRequest) error {
	if req.ProjectNo == "" {
		return fmt.Errorf("%w: project number is required", ErrInvalidInput)
	}
	if req.ProjectName == "" {
		return fmt.Errorf("%w: project name is required", ErrInvalidInput)
	}
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	return nil
}

// ValidatePatch trims the project number in p, if present, and rejects an
// empty one.
func ValidatePatch(p patch.Patch) error {
	no, ok := p.Lookup(ColumnProjectNo)
	if !ok {
		return nil
	}
	no = strings.TrimSpace(no)
	if no == "" {
		return fmt.Errorf("%w: project number cannot be empty", ErrInvalidInput)
	}
	p.Set(ColumnProjectNo, no)
	return nil
}

// Normalize trims every field of req.
func (req CreateRequest) Normalize() CreateRequest {
	return CreateRequest{
		ProjectNo:       strings.TrimSpace(req.ProjectNo),
		ProjectName:     strings.TrimSpace(req.ProjectName),
		CustomerName:    strings.TrimSpace(req.CustomerName),
		Owner:           strings.TrimSpace(req.Owner),
		ProjectDate:     strings.TrimSpace(req.ProjectDate),
		TargetDate:      strings.TrimSpace(req.TargetDate),
		DispatchMonth:   strings.TrimSpace(req.DispatchMonth),
		ProductionStage: strings.TrimSpace(req.ProductionStage),
		Remarks:         strings.TrimSpace(req.Remarks),
	}
}
