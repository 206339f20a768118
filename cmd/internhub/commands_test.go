package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rakhadjo/internhub/internal/models"
	"github.com/rakhadjo/internhub/pkg/config"
)

func withAppConfig(t *testing.T, cfg *config.Config) {
	t.Helper()
	prev := app
	app = &App{cfg: cfg}
	t.Cleanup(func() { app = prev })
}

func TestViewStateUsesConfiguredPageSize(t *testing.T) {
	withAppConfig(t, &config.Config{Roster: config.RosterConfig{DefaultPageSize: 50}})

	flags := &listFlags{}
	vs := flags.viewState()
	assert.Equal(t, 50, vs.PageSize)
}

func TestViewStateFlagOverridesConfiguredPageSize(t *testing.T) {
	withAppConfig(t, &config.Config{Roster: config.RosterConfig{DefaultPageSize: 50}})

	flags := &listFlags{pageSize: 100}
	vs := flags.viewState()
	assert.Equal(t, 100, vs.PageSize)
}

func TestViewStateIgnoresUnsupportedConfiguredPageSize(t *testing.T) {
	withAppConfig(t, &config.Config{Roster: config.RosterConfig{DefaultPageSize: 33}})

	flags := &listFlags{}
	vs := flags.viewState()
	assert.Equal(t, models.DefaultPageSize, vs.PageSize)
}

func TestResolvePageSizeWithoutSession(t *testing.T) {
	withAppConfig(t, nil)
	app = nil

	assert.Equal(t, models.DefaultPageSize, resolvePageSize(0))
}
