package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"mytwitter/internal"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseSuite struct {
	suite.Suite
	Config Config
	app    *internal.App
}

// SetupSuite loads the environment configuration and starts a seeded network
// shared by every step of the suite.
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	s.app, err = internal.NewApp(context.Background(), internal.Config{
		SeedDefaultProfiles: true,
		CensoredWords:       s.Config.CensoredWords,
		CensorCharacter:     "*",
		SearchLimit:         s.Config.SearchLimit,
		InactiveMarker:      " (inactive)",
	}, logs.GetLoggerFromLevel(slog.LevelDebug))
	s.Require().NoError(err)
}

func (s *BaseSuite) TearDownSuite() {
	if s.app != nil {
		s.app.Close()
	}
}

func (s *BaseSuite) header(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// WithApp runs fn within a contextual test step and logs its duration.
func (s *BaseSuite) WithApp(name string, fn func(ctx context.Context, app *internal.App)) {
	s.header(s.T(), name)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	fn(ctx, s.app)
	s.T().Logf("%s done in %v", name, time.Since(start))
}
