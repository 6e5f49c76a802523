// Package validator builds declarative input checks.
//
// Each helper returns a Rule: a deferred Check paired with the error to report.
// Apply evaluates all rules and aggregates failures into ValidationErrors,
// which implements error and can be recovered with errors.As.
//
//	err := validator.Apply(
//	    validator.Required("business_name", req.BusinessName),
//	    validator.ValidEmail("email", req.Email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Map() is ready for a JSON response
//	}
package validator
