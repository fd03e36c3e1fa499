package set_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"fjacquet/budget-projector/cmd/common"
	"fjacquet/budget-projector/cmd/set"
	"fjacquet/budget-projector/internal/config"
	"fjacquet/budget-projector/internal/container"
	"fjacquet/budget-projector/internal/logging"
	"fjacquet/budget-projector/internal/models"
	"fjacquet/budget-projector/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T, scenario *store.Scenario) *container.Container {
	t.Helper()
	path := filepath.Join(t.TempDir(), "budget.yml")
	if scenario != nil {
		require.NoError(t, store.NewScenarioStore(path, nil).Save(scenario))
	}
	cfg := config.Default()
	cfg.Scenario.File = path
	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	return c
}

func TestSetCommand_Subcommands(t *testing.T) {
	names := make([]string, 0)
	for _, sub := range set.Cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"balance", "salary", "bonus"}, names)
}

func TestRun(t *testing.T) {
	tests := []struct {
		field  set.Field
		amount string
		check  func(t *testing.T, s *store.Scenario)
	}{
		{set.FieldBalance, "10,000,000", func(t *testing.T, s *store.Scenario) {
			assert.Equal(t, int64(10_000_000), s.InitialBalance)
		}},
		{set.FieldSalary, "Rp 6.000.000", nil},
		{set.FieldSalary, "6000000", func(t *testing.T, s *store.Scenario) {
			assert.Equal(t, int64(6_000_000), s.MonthlySalary)
		}},
		{set.FieldBonus, "0", func(t *testing.T, s *store.Scenario) {
			assert.Zero(t, s.THRBonus)
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.field)+" "+tt.amount, func(t *testing.T) {
			c := newTestContainer(t, store.Default())
			var out bytes.Buffer

			err := set.Run(c, tt.field, tt.amount, &out)
			if tt.check == nil {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			saved, err := c.GetStore().Load()
			require.NoError(t, err)
			tt.check(t, saved)
			assert.Contains(t, out.String(), "Set "+string(tt.field))
		})
	}
}

func TestRun_RecomputesSummary(t *testing.T) {
	c := newTestContainer(t, store.Default())
	var out bytes.Buffer

	require.NoError(t, set.Run(c, set.FieldBonus, "0", &out))

	s, err := common.OpenSession(c)
	require.NoError(t, err)
	assert.Equal(t, int64(14_220_000-1_800_000), s.Planner.Summary().FinalBalance)
}

func TestRun_UnknownField(t *testing.T) {
	c := newTestContainer(t, store.Default())
	var out bytes.Buffer
	assert.Error(t, set.Run(c, set.Field("rent"), "1", &out))
}

func TestRun_NoScenarioFile(t *testing.T) {
	c := newTestContainer(t, nil)
	var out bytes.Buffer
	assert.Error(t, set.Run(c, set.FieldSalary, "1", &out))
}

func TestRun_AmountOutOfRange(t *testing.T) {
	c := newTestContainer(t, store.Default())
	var out bytes.Buffer

	err := set.Run(c, set.FieldSalary, "1,000,000,000,000,001", &out)
	assert.ErrorIs(t, err, models.ErrAmountOverflow)

	saved, err := c.GetStore().Load()
	require.NoError(t, err)
	assert.Equal(t, int64(5_200_000), saved.MonthlySalary)
}

func TestRun_ScenarioWithOutOfRangeBalance(t *testing.T) {
	scenario := store.Default()
	scenario.InitialBalance = models.MaxAmount + 1
	c := newTestContainer(t, scenario)
	var out bytes.Buffer

	err := set.Run(c, set.FieldBalance, "100", &out)
	assert.ErrorIs(t, err, models.ErrAmountOverflow)
}
