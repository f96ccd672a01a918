package savings

import (
	"encoding/binary"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &SavingsGoal{}, migration.NoModification)
	migration.MustRegister(1, &SavingsAccount{}, migration.NoModification)
}

const (
	// maxLockDuration caps the lock period of a goal at ten years.
	maxLockDuration = 10 * 365 * 24 * 60 * 60

	// maxInterestRate caps the annual interest rate of a goal at 50%.
	maxInterestRate = 5000
)

var _ orm.CloneableData = (*SavingsGoal)(nil)

// Validate ensures the savings goal is valid.
func (g *SavingsGoal) Validate() error {
	if err := g.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := g.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := g.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	if g.Principal <= 0 {
		return errors.Wrap(errors.ErrAmount, "principal must be positive")
	}
	if g.InterestRate > maxInterestRate {
		return errors.Wrapf(errors.ErrInput, "interest rate above %d basis points", int64(maxInterestRate))
	}
	if err := g.CreatedAt.Validate(); err != nil {
		return errors.Wrap(err, "created at")
	}
	if g.CreatedAt == 0 {
		return errors.Wrap(errors.ErrInput, "created at is required")
	}
	if g.LockDuration <= 0 {
		return errors.Wrap(errors.ErrInput, "lock duration must be positive")
	}
	if g.LockDuration > maxLockDuration {
		return errors.Wrapf(errors.ErrInput, "lock duration longer than %d seconds", int64(maxLockDuration))
	}
	if err := g.LastCompoundedAt.Validate(); err != nil {
		return errors.Wrap(err, "last compounded at")
	}
	if g.LastCompoundedAt < g.CreatedAt {
		return errors.Wrap(errors.ErrState, "last compounded before creation")
	}
	switch g.Status {
	case GoalActive, GoalWithdrawn, GoalEmergencyWithdrawn:
		// All good.
	default:
		return errors.Wrapf(errors.ErrState, "invalid status %d", g.Status)
	}
	return nil
}

// Copy produces a new copy to fulfill the CloneableData interface.
func (g *SavingsGoal) Copy() orm.CloneableData {
	return &SavingsGoal{
		Metadata:         g.Metadata.Copy(),
		Owner:            g.Owner,
		Address:          g.Address.Clone(),
		Principal:        g.Principal,
		InterestRate:     g.InterestRate,
		CreatedAt:        g.CreatedAt,
		LockDuration:     g.LockDuration,
		LastCompoundedAt: g.LastCompoundedAt,
		Status:           g.Status,
	}
}

var _ orm.CloneableData = (*SavingsAccount)(nil)

// Validate ensures the savings account is valid.
func (a *SavingsAccount) Validate() error {
	if err := a.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := a.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

// Copy produces a new copy to fulfill the CloneableData interface.
func (a *SavingsAccount) Copy() orm.CloneableData {
	return &SavingsAccount{
		Metadata: a.Metadata.Copy(),
		Owner:    a.Owner,
		NumGoals: a.NumGoals,
	}
}

// goalKey builds the storage key of a goal. Goals are identified by their
// owner together with a per-owner sequence number, so a key is the owner
// address followed by the big endian encoded goal ID.
func goalKey(owner weave.Address, goalID uint64) []byte {
	key := make([]byte, len(owner)+8)
	copy(key, owner)
	binary.BigEndian.PutUint64(key[len(owner):], goalID)
	return key
}

// encodeSequence encodes an amount the same way sequence counters are
// encoded in the store, as 8 big endian bytes.
func encodeSequence(val int64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(val))
	return bz
}

// GoalCondition calculates the condition guarding the funds of the goal
// stored under the given key.
func GoalCondition(key []byte) weave.Condition {
	return weave.NewCondition("savings", "goal", key)
}

// NewGoalBucket returns a bucket for keeping savings goals, indexed by the
// owner address.
func NewGoalBucket() orm.ModelBucket {
	b := orm.NewModelBucket("savgoal", &SavingsGoal{},
		orm.WithIndex("owner", idxGoalOwner, false),
	)
	return migration.NewModelBucket("savings", b)
}

func idxGoalOwner(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	g, ok := obj.Value().(*SavingsGoal)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of SavingsGoal")
	}
	return g.Owner, nil
}

// NewAccountBucket returns a bucket for keeping per-owner savings accounts.
// An account is stored under the owner address.
func NewAccountBucket() orm.ModelBucket {
	b := orm.NewModelBucket("savacct", &SavingsAccount{})
	return migration.NewModelBucket("savings", b)
}
