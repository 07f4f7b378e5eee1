package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-petgen/internal/engine/elements"
	"github.com/KirkDiggler/rpg-petgen/internal/engine/random"
	"github.com/KirkDiggler/rpg-petgen/internal/entities/pet"
	"github.com/KirkDiggler/rpg-petgen/internal/errors"
)

type CLITestSuite struct {
	suite.Suite
	out *bytes.Buffer
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.out = &bytes.Buffer{}
}

func (s *CLITestSuite) run(source random.Source, args ...string) error {
	cmd := buildRootCmd(&rootOptions{source: source})
	cmd.SetArgs(args)
	cmd.SetOut(s.out)
	cmd.SetErr(s.out)
	return cmd.Execute()
}

func (s *CLITestSuite) TestGenerateText() {
	err := s.run(random.NewSequence().WithInts(1, 1),
		"generate", "--name", "불꽃여우", "--temp-id", "1234", "--concept", "offense-defense", "--fire", "10")
	s.Require().NoError(err)

	got := s.out.String()
	s.Assert().Contains(got, "vit 20 · atk 36 · tgh 28 · agi 16")
	s.Assert().Contains(got, "\n불꽃여우,컁,記,秊,므,制皐,1234,30,5.0,20,36,28,16,19,0,0,0,10,0,")
}

func (s *CLITestSuite) TestGenerateJSON() {
	err := s.run(random.NewSequence().WithInts(3, 0),
		"generate", "--concept", "tank", "--preset", "water10", "--format", "json")
	s.Require().NoError(err)

	var result pet.GenerationResult
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &result))
	s.Assert().True(strings.HasPrefix(result.ID, "pet_"))
	s.Assert().Equal(pet.StatVector{Vitality: 40, Attack: 16, Toughness: 33, Agility: 11}, result.Stats)
	s.Assert().Equal([4]int{0, 10, 0, 0}, result.Elements)
	s.Assert().True(strings.HasPrefix(result.EnemybaseLine, "이름,"))
}

func (s *CLITestSuite) TestGenerateLenientTotal() {
	err := s.run(random.NewSequence(0.5, 0.5, 0.5, 0.5), "generate", "--total", "abc")
	s.Require().NoError(err)

	s.Assert().Contains(s.out.String(), "\n이름,컁,記,秊,므,制皐,9999,30,5.0,0,0,0,0,19,")
}

func (s *CLITestSuite) TestGenerateRejectsAffinity() {
	err := s.run(random.NewSequence(), "generate", "--earth", "5", "--fire", "5")
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal(elements.MsgOppositesPaired, errors.GetMessage(err))
	s.Assert().Equal(2, errors.GetCode(err).ExitCode())
}

func (s *CLITestSuite) TestGenerateBadFlags() {
	err := s.run(random.NewSequence(), "generate", "--concept", "sniper")
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))

	err = s.run(random.NewSequence(), "generate", "--format", "yaml")
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	err = s.run(random.NewSequence(), "generate", "--preset", "volcano")
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *CLITestSuite) TestElements() {
	err := s.run(random.NewSequence(), "elements", "--set", "water=3", "--set", "풍=2", "--set", "earth=8")
	s.Require().NoError(err)

	got := s.out.String()
	s.Assert().Contains(got, "water=3")
	s.Assert().Contains(got, "wind=2: "+elements.MsgOppositeActive)
	s.Assert().Contains(got, "earth=8: "+elements.MsgTooManyActive)
	s.Assert().Contains(got, "earth(지) 0 · water(수) 3 · fire(화) 7 · wind(풍) 0")
	s.Assert().Contains(got, "ready to generate")
}

func (s *CLITestSuite) TestElementsNotReady() {
	err := s.run(random.NewSequence(), "elements", "--clear")
	s.Require().NoError(err)
	s.Assert().Contains(s.out.String(), "not ready to generate: "+elements.MsgTotalNotBudget)

	err = s.run(random.NewSequence(), "elements", "--set", "fire")
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *CLITestSuite) TestPresetsIncludeConfigured() {
	path := filepath.Join(s.T().TempDir(), "petgen.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(`
presets:
  - name: earth6-water4
    label: 지6 수4
    elements:
      earth: 6
      water: 4
`), 0o600))

	s.Require().NoError(s.run(random.NewSequence(), "--config", path, "presets", "--format", "json"))

	var presets []pet.Preset
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &presets))
	s.Require().Len(presets, 6)
	s.Assert().Equal("earth10", presets[0].Name)
	s.Assert().Equal("earth6-water4", presets[5].Name)
}

func (s *CLITestSuite) TestBadConfig() {
	path := filepath.Join(s.T().TempDir(), "petgen.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("edit_policy: squash\n"), 0o600))

	err := s.run(random.NewSequence(), "--config", path, "concepts")
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *CLITestSuite) TestConcepts() {
	s.Require().NoError(s.run(random.NewSequence(), "concepts"))
	s.Assert().Contains(s.out.String(), "offense-speed")
	s.Assert().Contains(s.out.String(), "공순형")
}

func (s *CLITestSuite) TestShell() {
	cmd := buildRootCmd(&rootOptions{source: random.NewSequence(0.5, 0.5, 0.5, 0.5).WithInts(0)})
	cmd.SetArgs([]string{"shell"})
	cmd.SetIn(strings.NewReader("generate\nquit\n"))
	cmd.SetOut(s.out)
	cmd.SetErr(s.out)

	s.Require().NoError(cmd.Execute())
	s.Assert().Contains(s.out.String(), "vit 24 · atk 30 · tgh 23 · agi 23")
}
