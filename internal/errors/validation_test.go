package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-petgen/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("notice_ttl", "must be positive")
	ve.AddFieldError("edit_policy", "is invalid")
	ve.AddFieldErrorf("defaults.rarity", "must be between %d and %d", 0, 2)

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal(
		"validation failed: defaults.rarity: must be between 0 and 2; edit_policy: is invalid; notice_ttl: must be positive",
		ve.Error(),
	)

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("total", "must be at least %d", 1).
		RequiredField("Source").
		InvalidField("concept", "unknown profile")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Source: is required")
	s.Assert().Contains(err.Error(), "concept: is invalid: unknown profile")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRange() {
	testCases := []struct {
		name      string
		value     int
		shouldErr bool
	}{
		{"lower bound", 0, false},
		{"upper bound", 10, false},
		{"below", -1, true},
		{"above", 11, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRange("capture_difficulty", tc.value, 0, 10, vb)
			if tc.shouldErr {
				s.Assert().NotNil(vb.Build())
			} else {
				s.Assert().Nil(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"redistribute", "clamp"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("edit_policy", "clamp", allowed, vb)
	s.Assert().Nil(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateEnum("edit_policy", "squash", allowed, vb)
	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().Contains(err.Error(), "must be one of: redistribute, clamp")
}
