// Package errors provides structured errors for the petgen tool.
//
// Every error carries a Code, a human readable Message, an optional Cause and
// optional metadata. The element validator reports broken affinity rules as
// InvalidArgument errors whose Message is safe to show to the designer as a
// notice:
//
//	err := errors.InvalidArgument("element total must be exactly 10").
//	    WithMeta("elements", tuple)
//
// Wrapping keeps the original code:
//
//	if err := distributor.Distribute(...); err != nil {
//	    return errors.Wrap(err, "failed to distribute stats")
//	}
//
// Dependency checks on Config structs use the ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Source == nil {
//	    vb.RequiredField("Source")
//	}
//	return vb.Build()
//
// # Error Codes
//
//   - InvalidArgument: the designer's input breaks a rule (element validation, unknown preset name)
//   - NotFound: a named preset or concept does not exist
//   - Internal: anything else, including random source failures
package errors
