package pet_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-petgen/internal/entities/pet"
	"github.com/KirkDiggler/rpg-petgen/internal/errors"
)

type PresetTestSuite struct {
	suite.Suite
}

func TestPresetSuite(t *testing.T) {
	suite.Run(t, new(PresetTestSuite))
}

func (s *PresetTestSuite) TestBuiltinPresetsSpendTheBudget() {
	presets := pet.BuiltinPresets()
	s.Require().Len(presets, 5)
	for _, p := range presets {
		s.Assert().Equal(pet.ElementBudget, p.Elements.Total(), p.Name)
		s.Assert().LessOrEqual(p.Elements.ActiveCount(), pet.MaxActiveCount, p.Name)
	}
}

func (s *PresetTestSuite) TestFindPreset() {
	presets := pet.BuiltinPresets()

	p, err := pet.FindPreset(presets, "Earth10")
	s.Require().NoError(err)
	s.Assert().Equal(pet.ElementAffinity{Earth: 10}, p.Elements)

	p, err = pet.FindPreset(presets, "화7 수3")
	s.Require().NoError(err)
	s.Assert().Equal("fire7-water3", p.Name)
	s.Assert().Equal(pet.ElementAffinity{Water: 3, Fire: 7}, p.Elements)
}

func (s *PresetTestSuite) TestFindPresetMissing() {
	presets := pet.BuiltinPresets()

	_, err := pet.FindPreset(presets, "fire 10")
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Contains(err.Error(), `did you mean "fire10"?`)

	_, err = pet.FindPreset(presets, "volcano")
	s.Require().Error(err)
	s.Assert().NotContains(err.Error(), "did you mean")

	_, err = pet.FindPreset(nil, "fire10")
	s.Require().Error(err)
}
