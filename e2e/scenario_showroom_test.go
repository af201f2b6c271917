package e2e

import (
	"fmt"
	"testing"

	"furniture-lab/domain/furniture"
	"furniture-lab/repositories"
	"furniture-lab/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type ShowroomSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *ShowroomSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

func (s *ShowroomSuite) header(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

func (s *ShowroomSuite) openDB() *badger.DB {
	path := s.Config.DBPath
	if path == "" {
		path = s.T().TempDir()
	}
	db, err := badger.Open(badger.DefaultOptions(path).
		WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = db.Close() })
	return db
}

func (s *ShowroomSuite) TestClassicalScenario() {
	s.header("CLASSICAL SCENARIO")
	log := logs.GetLoggerFromString("ERROR")
	showroom := services.NewShowroomService(log, repositories.NewDemonstrationRepository(s.openDB(), log))

	demonstration, err := showroom.Demonstrate(services.DemonstrateRequest{Variant: "Classical"})
	s.Require().NoError(err)
	s.Equal("you can sleep from Classical sofa", demonstration.SleepLine)
	s.Equal(
		"You can sit on it from Classical sofa, with collabortaor (You can sit on it from Classical Chair)",
		demonstration.SitLine,
	)
}

func (s *ShowroomSuite) TestModernScenario() {
	s.header("MODERN SCENARIO")
	log := logs.GetLoggerFromString("ERROR")
	showroom := services.NewShowroomService(log, repositories.NewDemonstrationRepository(s.openDB(), log))

	demonstration, err := showroom.Demonstrate(services.DemonstrateRequest{Variant: "Modern"})
	s.Require().NoError(err)
	s.Equal("You can sleep from Modern sofa", demonstration.SleepLine)
	s.Equal(
		"You can sit on it from Modern sofa, with collaborator (You can sit on it from Modern Chair)",
		demonstration.SitLine,
	)
}

// The full walk persists one record per variant, retrievable afterwards
// in the order they ran.
func (s *ShowroomSuite) TestFullWalkIsPersisted() {
	s.header("FULL WALK")
	log := logs.GetLoggerFromString("ERROR")
	repository := repositories.NewDemonstrationRepository(s.openDB(), log)
	showroom := services.NewShowroomService(log, repository)

	demonstrations, err := showroom.DemonstrateAll()
	s.Require().NoError(err)
	s.Require().Len(demonstrations, len(furniture.Variants()))

	stored, err := repository.List()
	s.Require().NoError(err)
	s.Require().Len(stored, len(furniture.Variants()))
	s.Equal(furniture.CLASSICAL, stored[0].Variant)
	s.Equal(furniture.MODERN, stored[1].Variant)
}

func TestShowroomSuite(t *testing.T) {
	suite.Run(t, new(ShowroomSuite))
}
