package respond

import (
	"errors"

	"github.com/biashara-ai/advisor/internal/domain"
)

// Per-record required-field checks. An entry failing its check is dropped
// from the list; the rest of the response is preserved.

func validateRecommendation(r domain.Recommendation) error {
	if r.BusinessName == "" {
		return errors.New("missing business_name")
	}
	if r.Description == "" {
		return errors.New("missing description")
	}
	return nil
}

func validateBudgetItem(b domain.BudgetItem) error {
	if b.Item == "" {
		return errors.New("missing item")
	}
	if b.CostLow == nil {
		return errors.New("missing cost_low")
	}
	if b.CostHigh == nil {
		return errors.New("missing cost_high")
	}
	return nil
}

func validateLicenseStep(l domain.LicenseStep) error {
	if l.Step == "" {
		return errors.New("missing step")
	}
	return nil
}

func validateSupplierEntry(s domain.SupplierEntry) error {
	if s.Name == "" {
		return errors.New("missing name")
	}
	return nil
}

func validateMonthlyProjection(m domain.MonthlyProjection) error {
	if m.Month == nil {
		return errors.New("missing month")
	}
	if m.Revenue == nil {
		return errors.New("missing revenue")
	}
	if m.Expenses == nil {
		return errors.New("missing expenses")
	}
	return nil
}

func validateActionStep(a domain.ActionStep) error {
	if a.StepNumber == nil {
		return errors.New("missing step_number")
	}
	if a.Action == "" {
		return errors.New("missing action")
	}
	return nil
}
