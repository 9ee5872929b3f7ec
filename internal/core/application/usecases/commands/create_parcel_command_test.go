package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateParcelCommand(t *testing.T) commands.CreateParcelCommand {
	t.Helper()

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), kernel.RoleCustomerService, "Chen Wei", 1.0, "30x20x10", decimal.NewFromInt(500), "books",
		parcel.KindSmallBox, parcel.ServiceLevelStandard, nil, 12.5,
		kernel.NewUUID(), "Chen Wei", "0912-345-678", "chen.wei@example.com", parcel.CustomerTypeContract,
		"100 Main St", parcel.BillingPreferenceMonthly)
	require.NoError(t, err)
	return cmd
}

func TestNewCreateParcelCommand(t *testing.T) {
	t.Run("should create valid command with all valid parameters", func(t *testing.T) {
		cmd := validCreateParcelCommand(t)

		require.NoError(t, cmd.Validate())
		assert.Equal(t, kernel.RoleCustomerService, cmd.Actor())
		assert.Equal(t, "Chen Wei", cmd.SenderName())
		assert.Equal(t, parcel.KindSmallBox, cmd.Kind())
		assert.Equal(t, parcel.ServiceLevelStandard, cmd.ServiceLevel())
		assert.Equal(t, "100 Main St", cmd.TargetAddress())
		assert.Equal(t, parcel.BillingPreferenceMonthly, cmd.BillingPreference())
	})

	t.Run("should fail with invalid tracking number", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewCreateParcelCommand(
			invalidID, kernel.RoleCustomerService, "Chen Wei", 1.0, "30x20x10", decimal.NewFromInt(500), "books",
			parcel.KindSmallBox, parcel.ServiceLevelStandard, nil, 12.5,
			kernel.NewUUID(), "Chen Wei", "", "", parcel.CustomerTypeContract,
			"100 Main St", parcel.BillingPreferenceMonthly)

		require.Error(t, err)
	})

	t.Run("should fail with invalid actor", func(t *testing.T) {
		var invalidActor kernel.Role

		_, err := commands.NewCreateParcelCommand(
			kernel.NewUUID(), invalidActor, "Chen Wei", 1.0, "30x20x10", decimal.NewFromInt(500), "books",
			parcel.KindSmallBox, parcel.ServiceLevelStandard, nil, 12.5,
			kernel.NewUUID(), "Chen Wei", "", "", parcel.CustomerTypeContract,
			"100 Main St", parcel.BillingPreferenceMonthly)

		require.Error(t, err)
	})

	t.Run("should fail with non-positive weight", func(t *testing.T) {
		_, err := commands.NewCreateParcelCommand(
			kernel.NewUUID(), kernel.RoleCustomerService, "Chen Wei", 0, "30x20x10", decimal.NewFromInt(500), "books",
			parcel.KindSmallBox, parcel.ServiceLevelStandard, nil, 12.5,
			kernel.NewUUID(), "Chen Wei", "", "", parcel.CustomerTypeContract,
			"100 Main St", parcel.BillingPreferenceMonthly)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrWeightIsInvalid)
	})

	t.Run("should fail with empty description", func(t *testing.T) {
		_, err := commands.NewCreateParcelCommand(
			kernel.NewUUID(), kernel.RoleCustomerService, "Chen Wei", 1.0, "30x20x10", decimal.NewFromInt(500), "",
			parcel.KindSmallBox, parcel.ServiceLevelStandard, nil, 12.5,
			kernel.NewUUID(), "Chen Wei", "", "", parcel.CustomerTypeContract,
			"100 Main St", parcel.BillingPreferenceMonthly)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrDescriptionIsRequired)
	})

	t.Run("should fail with empty customer name", func(t *testing.T) {
		_, err := commands.NewCreateParcelCommand(
			kernel.NewUUID(), kernel.RoleCustomerService, "Chen Wei", 1.0, "30x20x10", decimal.NewFromInt(500), "books",
			parcel.KindSmallBox, parcel.ServiceLevelStandard, nil, 12.5,
			kernel.NewUUID(), "", "", "", parcel.CustomerTypeContract,
			"100 Main St", parcel.BillingPreferenceMonthly)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
	})

	t.Run("should fail with empty target address", func(t *testing.T) {
		_, err := commands.NewCreateParcelCommand(
			kernel.NewUUID(), kernel.RoleCustomerService, "Chen Wei", 1.0, "30x20x10", decimal.NewFromInt(500), "books",
			parcel.KindSmallBox, parcel.ServiceLevelStandard, nil, 12.5,
			kernel.NewUUID(), "Chen Wei", "", "", parcel.CustomerTypeContract,
			"", parcel.BillingPreferenceMonthly)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrTargetAddressIsRequired)
	})

	t.Run("should fail with duplicate special services", func(t *testing.T) {
		_, err := commands.NewCreateParcelCommand(
			kernel.NewUUID(), kernel.RoleCustomerService, "Chen Wei", 1.0, "30x20x10", decimal.NewFromInt(500), "books",
			parcel.KindSmallBox, parcel.ServiceLevelStandard,
			[]parcel.SpecialService{parcel.SpecialServiceFragile, parcel.SpecialServiceFragile}, 12.5,
			kernel.NewUUID(), "Chen Wei", "", "", parcel.CustomerTypeContract,
			"100 Main St", parcel.BillingPreferenceMonthly)

		require.Error(t, err)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.CreateParcelCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrCreateParcelCommandIsNotConstructed, err)
	})
}
