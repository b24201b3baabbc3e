package pricing

import (
	"errors"
	"fmt"

	"crm_cotizador/internal/domain/entities"
)

var (
	ErrUnknownEdit   = errors.New("unknown quote edit")
	ErrUnknownTarget = errors.New("unknown edit target")
)

// EditKind names the form field an edit changes.
type EditKind string

const (
	EditToggleModule    EditKind = "toggle_module"
	EditModuleEmployees EditKind = "module_employees"
	EditProductQuantity EditKind = "product_quantity"
	EditMonthlyDiscount EditKind = "monthly_discount"
	EditAnnualDiscount  EditKind = "annual_discount"
	EditMonths          EditKind = "months"
	EditExtraUsers      EditKind = "extra_users"
	EditRequiresStamps  EditKind = "requires_stamps"
	EditExtraStamps     EditKind = "extra_stamps"
)

// Edit is a single field mutation as typed in the form. Value is raw text and
// is coerced; TargetID is the module or product id for line level edits.
type Edit struct {
	Kind     EditKind
	TargetID string
	Value    string
}

// ApplyEdit applies one field change, resolves the module rules triggered by
// it and returns the fully recalculated quote. The input is not modified.
func (c *Calculator) ApplyEdit(q entities.Quote, e Edit) (entities.Quote, error) {
	out, _, err := c.EvaluateEdit(q, e)
	return out, err
}

// EvaluateEdit is ApplyEdit plus the report of the single recalculation it runs.
func (c *Calculator) EvaluateEdit(q entities.Quote, e Edit) (entities.Quote, Report, error) {
	out, err := applyEdit(q, e)
	if err != nil {
		return q, Report{}, err
	}
	res, report := c.Evaluate(out)
	return res, report, nil
}

func applyEdit(q entities.Quote, e Edit) (entities.Quote, error) {
	out := q.Clone()
	switch e.Kind {
	case EditToggleModule:
		i := out.Module(e.TargetID)
		if i < 0 {
			return q, fmt.Errorf("%w: module %q", ErrUnknownTarget, e.TargetID)
		}
		setModuleActive(&out, i, ParseFlag(e.Value))
	case EditModuleEmployees:
		i := out.Module(e.TargetID)
		if i < 0 {
			return q, fmt.Errorf("%w: module %q", ErrUnknownTarget, e.TargetID)
		}
		out.ModuleDetails[i].EmployeeNumber = ParseCount(e.Value)
	case EditProductQuantity:
		i := out.Product(e.TargetID)
		if i < 0 {
			return q, fmt.Errorf("%w: product %q", ErrUnknownTarget, e.TargetID)
		}
		out.ProductDetails[i].Quantity = ParseCount(e.Value)
	case EditMonthlyDiscount:
		out.MonthlyDiscount = ParseAmount(e.Value)
	case EditAnnualDiscount:
		out.AnualDiscount = ParseAmount(e.Value)
	case EditMonths:
		out.Months = max(ParseCount(e.Value), 1)
	case EditExtraUsers:
		out.NumberOfExtraUsers = ParseCount(e.Value)
	case EditRequiresStamps:
		out.RequiresStamps = ParseFlag(e.Value)
		if !out.RequiresStamps {
			out.NumberOfExtraRings = 0
		}
	case EditExtraStamps:
		out.NumberOfExtraRings = ParseCount(e.Value)
	default:
		return q, fmt.Errorf("%w: %q", ErrUnknownEdit, e.Kind)
	}
	enforceModuleRules(&out)
	return out, nil
}
