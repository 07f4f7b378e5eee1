package pet_test

import (
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-petgen/internal/entities/pet"
)

type RequestTestSuite struct {
	suite.Suite
}

func TestRequestSuite(t *testing.T) {
	suite.Run(t, new(RequestTestSuite))
}

func (s *RequestTestSuite) TestDefaultRequest() {
	req := pet.DefaultRequest()

	s.Assert().Empty(req.Name)
	s.Assert().Empty(req.TempID)
	s.Assert().Equal("100000", req.ImageID)
	s.Assert().Equal(100, req.Total.Int())
	s.Assert().Equal("30", req.InitialValue.Raw)
	s.Assert().Equal(pet.ConceptBalanced, req.Concept)
	s.Assert().Equal(pet.ElementAffinity{Fire: 10}, req.Elements)
	s.Assert().Zero(req.CaptureDifficulty)
	s.Assert().Zero(req.Rarity)
}

func (s *RequestTestSuite) TestExportFallbacks() {
	req := pet.DefaultRequest()
	s.Assert().Equal("이름", req.DisplayName())
	s.Assert().Equal("9999", req.ExportID())

	req.Name = "불꽃여우"
	req.TempID = "1234"
	s.Assert().Equal("불꽃여우", req.DisplayName())
	s.Assert().Equal("1234", req.ExportID())
}

func (s *RequestTestSuite) TestResultIsEntity() {
	var entity core.Entity = &pet.GenerationResult{
		ID:          "pet-1",
		GeneratedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	s.Assert().Equal("pet-1", entity.GetID())
	s.Assert().Equal(pet.EntityType, entity.GetType())
}
