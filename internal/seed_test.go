package internal

import (
	"context"
	"log/slog"
	"mytwitter/domain"
	"mytwitter/repositories"
	"mytwitter/services"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeed_RegistersDefaultProfiles(t *testing.T) {
	req := require.New(t)
	svc := services.NewTwitterService(repositories.NewUserDirectory(), slog.Default())

	req.NoError(Seed(context.Background(), svc))

	usernames := svc.RegisteredUsernames()
	req.Len(usernames, 15)
	req.Equal("Rodrigo", usernames[0])
	req.Equal("Alpha_Systems", usernames[14])
	kind, err := svc.ProfileKind("tech_master")
	req.NoError(err)
	req.Equal(domain.KindOrganization, kind)
}

func TestSeed_FailsWhenAlreadySeeded(t *testing.T) {
	req := require.New(t)
	svc := services.NewTwitterService(repositories.NewUserDirectory(), slog.Default())
	req.NoError(Seed(context.Background(), svc))

	err := Seed(context.Background(), svc)

	req.ErrorContains(err, "Rodrigo")
}
