package generator_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-petgen/internal/engine/elements"
	"github.com/KirkDiggler/rpg-petgen/internal/engine/random"
	randommock "github.com/KirkDiggler/rpg-petgen/internal/engine/random/mock"
	"github.com/KirkDiggler/rpg-petgen/internal/entities/pet"
	"github.com/KirkDiggler/rpg-petgen/internal/errors"
	"github.com/KirkDiggler/rpg-petgen/internal/export/enemybase"
	"github.com/KirkDiggler/rpg-petgen/internal/orchestrators/generator"
	mockclock "github.com/KirkDiggler/rpg-petgen/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-petgen/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-petgen/internal/testutils/builders"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClock  *mockclock.MockClock
	mockSource *randommock.MockSource
	ctx        context.Context
	now        time.Time
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.mockSource = randommock.NewMockSource(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2025, 7, 21, 12, 0, 0, 0, time.UTC)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newService(source random.Source, presets ...pet.Preset) generator.Service {
	svc, err := generator.NewOrchestrator(&generator.Config{
		Source:      source,
		IDGenerator: idgen.NewSequential("pet"),
		Clock:       s.mockClock,
		EditPolicy:  elements.PolicyRedistribute,
		Presets:     presets,
	})
	s.Require().NoError(err)
	return svc
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := generator.NewOrchestrator(&generator.Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Source: is required")
	s.Assert().Contains(err.Error(), "IDGenerator: is required")
	s.Assert().Contains(err.Error(), "Clock: is required")
}

func (s *OrchestratorTestSuite) TestGenerate() {
	s.mockClock.EXPECT().Now().Return(s.now)
	svc := s.newService(random.NewSequence().WithInts(1, 1))

	req := builders.NewGenerationRequestBuilder().
		WithName("불꽃여우").
		WithTempID("1234").
		WithImageID("100231").
		WithInitialValue("50").
		WithConcept(pet.ConceptOffenseDefense).
		WithElements(pet.ElementAffinity{Fire: 10}).
		WithCaptureDifficulty(3).
		WithRarity(2).
		Build()

	out, err := svc.Generate(s.ctx, &generator.GenerateInput{Request: req})
	s.Require().NoError(err)
	s.Require().NotNil(out.Result)

	result := out.Result
	s.Assert().Equal("pet_1", result.GetID())
	s.Assert().Equal(pet.EntityType, result.GetType())
	s.Assert().Equal(s.now, result.GeneratedAt)
	s.Assert().Equal(req, result.Request)
	s.Assert().Equal(pet.StatVector{Vitality: 20, Attack: 36, Toughness: 28, Agility: 16}, result.Stats)
	s.Assert().Equal(pet.BaseStatVector{HP: 80, Attack: 20, Defense: 17, Speed: 8}, result.BaseStats)
	s.Assert().Equal([4]int{0, 0, 10, 0}, result.Elements)
	s.Assert().Equal(
		"불꽃여우,컁,記,秊,므,制皐,1234,50,5.0,20,36,28,16,19,3,0,0,10,0,"+
			"0,0,0,0,0,0,0,0,0,1,,,,,,2,1,1,5,100231,1,1,"+
			",0,500,,0,500,,0,500,,0,500,,0,500,,0",
		result.EnemybaseLine,
	)
}

func (s *OrchestratorTestSuite) TestGenerateEachCallIsIndependent() {
	s.mockClock.EXPECT().Now().Return(s.now).Times(2)
	svc := s.newService(random.NewDefault())
	req := builders.NewGenerationRequestBuilder().Build()

	first, err := svc.Generate(s.ctx, &generator.GenerateInput{Request: req})
	s.Require().NoError(err)
	second, err := svc.Generate(s.ctx, &generator.GenerateInput{Request: req})
	s.Require().NoError(err)

	s.Assert().Equal("pet_1", first.Result.ID)
	s.Assert().Equal("pet_2", second.Result.ID)
	s.Assert().Equal(100, first.Result.Stats.Total())
	s.Assert().Equal(100, second.Result.Stats.Total())
}

func (s *OrchestratorTestSuite) TestGenerateRejectsInvalidElements() {
	// no source or clock expectations: validation stops the pipeline
	svc := s.newService(s.mockSource)

	testCases := []struct {
		name     string
		affinity pet.ElementAffinity
		message  string
	}{
		{"opposites", pet.ElementAffinity{Earth: 5, Fire: 5}, elements.MsgOppositesPaired},
		{"short of budget", pet.ElementAffinity{Water: 4}, elements.MsgTotalNotBudget},
		{"cleared", elements.Clear(), elements.MsgTotalNotBudget},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := builders.NewGenerationRequestBuilder().WithElements(tc.affinity).Build()
			out, err := svc.Generate(s.ctx, &generator.GenerateInput{Request: req})
			s.Assert().Nil(out)
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Equal(tc.message, errors.GetMessage(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestGenerateLenientNumbers() {
	s.mockClock.EXPECT().Now().Return(s.now)
	svc := s.newService(s.mockSource)

	req := builders.NewGenerationRequestBuilder().
		WithTotal("").
		WithInitialValue("abc").
		WithConcept(pet.ConceptTank).
		Build()

	out, err := svc.Generate(s.ctx, &generator.GenerateInput{Request: req})
	s.Require().NoError(err)
	s.Assert().Equal(pet.StatVector{}, out.Result.Stats)
	s.Assert().Equal(pet.BaseStatVector{}, out.Result.BaseStats)

	fields := strings.Split(out.Result.EnemybaseLine, ",")
	s.Require().Len(fields, enemybase.FieldCount)
	s.Assert().Equal("abc", fields[7])
}

func (s *OrchestratorTestSuite) TestGenerateNilInput() {
	svc := s.newService(s.mockSource)

	_, err := svc.Generate(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGenerateSourceFailure() {
	s.mockSource.EXPECT().Float64().Return(0.0, errors.Internal("roller jammed"))
	svc := s.newService(s.mockSource)

	_, err := svc.Generate(s.ctx, &generator.GenerateInput{Request: builders.NewGenerationRequestBuilder().Build()})
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
	s.Assert().Contains(err.Error(), "failed to distribute stats")
}

func (s *OrchestratorTestSuite) TestEditElement() {
	svc := s.newService(s.mockSource)

	out, err := svc.EditElement(s.ctx, &generator.EditElementInput{
		Current: pet.ElementAffinity{Earth: 8},
		Element: pet.ElementWater,
		Value:   5,
	})
	s.Require().NoError(err)
	s.Assert().Equal(pet.ElementAffinity{Earth: 5, Water: 5}, out.Elements)

	_, err = svc.EditElement(s.ctx, &generator.EditElementInput{
		Current: out.Elements,
		Element: pet.ElementWind,
		Value:   2,
	})
	s.Require().Error(err)
	s.Assert().Equal(elements.MsgTooManyActive, errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestApplyPreset() {
	svc := s.newService(s.mockSource)

	byName, err := svc.ApplyPreset(s.ctx, &generator.ApplyPresetInput{Name: "fire7-water3"})
	s.Require().NoError(err)
	s.Assert().Equal(pet.ElementAffinity{Water: 3, Fire: 7}, byName.Elements)

	byLabel, err := svc.ApplyPreset(s.ctx, &generator.ApplyPresetInput{Name: "풍 10"})
	s.Require().NoError(err)
	s.Assert().Equal(pet.ElementAffinity{Wind: 10}, byLabel.Elements)

	_, err = svc.ApplyPreset(s.ctx, &generator.ApplyPresetInput{Name: "fire11"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Contains(err.Error(), `did you mean "fire10"`)
}

func (s *OrchestratorTestSuite) TestConfiguredPresets() {
	good := pet.Preset{Name: "earth6-wind4", Elements: pet.ElementAffinity{Earth: 6, Wind: 4}}
	bad := pet.Preset{Name: "broken", Elements: pet.ElementAffinity{Water: 5, Wind: 5}}
	svc := s.newService(s.mockSource, good, bad)

	list, err := svc.ListPresets(s.ctx, &generator.ListPresetsInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Presets, 7)
	s.Assert().Equal("earth10", list.Presets[0].Name)
	s.Assert().Equal("earth6-wind4", list.Presets[5].Name)

	out, err := svc.ApplyPreset(s.ctx, &generator.ApplyPresetInput{Name: "earth6-wind4"})
	s.Require().NoError(err)
	s.Assert().Equal(good.Elements, out.Elements)

	_, err = svc.ApplyPreset(s.ctx, &generator.ApplyPresetInput{
		Current: pet.ElementAffinity{Fire: 10},
		Name:    "broken",
	})
	s.Require().Error(err)
	s.Assert().Equal(elements.MsgOppositesPaired, errors.GetMessage(err))
}
