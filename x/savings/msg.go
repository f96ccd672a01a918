package savings

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	// Migration needs to be registered for every message introduced in the
	// codec. This is the convention to message versioning.
	migration.MustRegister(1, &CreateGoalMsg{}, migration.NoModification)
	migration.MustRegister(1, &CompoundMsg{}, migration.NoModification)
	migration.MustRegister(1, &WithdrawMsg{}, migration.NoModification)
	migration.MustRegister(1, &EmergencyWithdrawMsg{}, migration.NoModification)
	migration.MustRegister(1, &BalanceMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

const (
	pathCreateGoal          = "savings/create_goal"
	pathCompound            = "savings/compound"
	pathWithdraw            = "savings/withdraw"
	pathEmergencyWithdraw   = "savings/emergency_withdraw"
	pathBalance             = "savings/balance"
	pathUpdateConfiguration = "savings/update_configuration"
)

var _ weave.Msg = (*CreateGoalMsg)(nil)
var _ weave.Msg = (*CompoundMsg)(nil)
var _ weave.Msg = (*WithdrawMsg)(nil)
var _ weave.Msg = (*EmergencyWithdrawMsg)(nil)
var _ weave.Msg = (*BalanceMsg)(nil)
var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

// ROUTING, Path method fulfills weave.Msg interface to allow routing

func (CreateGoalMsg) Path() string {
	return pathCreateGoal
}

func (CompoundMsg) Path() string {
	return pathCompound
}

func (WithdrawMsg) Path() string {
	return pathWithdraw
}

func (EmergencyWithdrawMsg) Path() string {
	return pathEmergencyWithdraw
}

func (BalanceMsg) Path() string {
	return pathBalance
}

func (UpdateConfigurationMsg) Path() string {
	return pathUpdateConfiguration
}

// VALIDATION, Validate method makes sure basic rules are enforced upon input
// data and fulfills weave.Msg interface

func (m *CreateGoalMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if m.Amount <= 0 {
		return errors.Wrap(errors.ErrAmount, "amount must be positive")
	}
	if m.LockDuration <= 0 {
		return errors.Wrap(errors.ErrInput, "lock duration must be positive")
	}
	if m.LockDuration > maxLockDuration {
		return errors.Wrapf(errors.ErrInput, "lock duration longer than %d seconds", int64(maxLockDuration))
	}
	if m.InterestRate > maxInterestRate {
		return errors.Wrapf(errors.ErrInput, "interest rate above %d basis points", int64(maxInterestRate))
	}
	return nil
}

func (m *CompoundMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

func (m *WithdrawMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

func (m *EmergencyWithdrawMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

func (m *BalanceMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

func (m *UpdateConfigurationMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Patch == nil {
		return errors.Wrap(errors.ErrInput, "patch is required")
	}
	if m.Patch.EmergencyPenalty > basisPoints {
		return errors.Wrapf(errors.ErrInput, "emergency penalty above %d basis points", basisPoints)
	}
	return nil
}
