package savings

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
)

const (
	createGoalCost        int64 = 300
	compoundCost          int64 = 100
	withdrawCost          int64 = 200
	emergencyWithdrawCost int64 = 200
	balanceCost           int64 = 0
)

// RegisterRoutes will instantiate and register
// all handlers in this package.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, cashctrl cash.Controller) {
	r = migration.SchemaMigratingRegistry("savings", r)
	goals := NewGoalBucket()
	accounts := NewAccountBucket()

	r.Handle(&CreateGoalMsg{}, CreateGoalHandler{auth, goals, accounts, cashctrl})
	r.Handle(&CompoundMsg{}, CompoundHandler{goals})
	r.Handle(&WithdrawMsg{}, WithdrawHandler{auth, goals, cashctrl})
	r.Handle(&EmergencyWithdrawMsg{}, EmergencyWithdrawHandler{auth, goals, cashctrl})
	r.Handle(&BalanceMsg{}, BalanceHandler{goals})
	r.Handle(&UpdateConfigurationMsg{}, gconf.NewUpdateConfigurationHandler("savings", &Configuration{}, auth, nil))
}

// RegisterQuery will register goals as "/savgoals" and accounts as
// "/savaccts".
func RegisterQuery(qr weave.QueryRouter) {
	NewGoalBucket().Register("savgoals", qr)
	NewAccountBucket().Register("savaccts", qr)
}

// blockNow returns the current block time.
func blockNow(ctx weave.Context) (weave.UnixTime, error) {
	t, err := weave.BlockTime(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "block time")
	}
	return weave.AsUnixTime(t), nil
}

// CreateGoalHandler locks owner funds into a new savings goal.
type CreateGoalHandler struct {
	auth     x.Authenticator
	goals    orm.ModelBucket
	accounts orm.ModelBucket
	bank     cash.CoinMover
}

var _ weave.Handler = CreateGoalHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CreateGoalHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createGoalCost}, nil
}

// Deliver creates the goal and moves the deposit from the owner to the goal
// custody account.
func (h CreateGoalHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}

	var account SavingsAccount
	switch err := h.accounts.One(db, msg.Owner, &account); {
	case err == nil:
		// Next goal ID continues the per-owner sequence.
	case errors.ErrNotFound.Is(err):
		account = SavingsAccount{
			Metadata: &weave.Metadata{},
			Owner:    msg.Owner,
		}
	default:
		return nil, errors.Wrap(err, "cannot load account")
	}

	key := goalKey(msg.Owner, account.NumGoals)
	goal := &SavingsGoal{
		Metadata:         &weave.Metadata{},
		Owner:            msg.Owner,
		Address:          GoalCondition(key).Address(),
		Principal:        msg.Amount,
		InterestRate:     msg.InterestRate,
		CreatedAt:        now,
		LockDuration:     msg.LockDuration,
		LastCompoundedAt: now,
		Status:           GoalActive,
	}
	if _, err := h.goals.Put(db, key, goal); err != nil {
		return nil, errors.Wrap(err, "cannot store goal")
	}

	account.NumGoals++
	if _, err := h.accounts.Put(db, msg.Owner, &account); err != nil {
		return nil, errors.Wrap(err, "cannot store account")
	}

	// Deposit to the goal custody account.
	deposit := goalCoin(conf, msg.Amount)
	if err := cash.MoveCoins(db, h.bank, msg.Owner, goal.Address, coin.Coins{&deposit}); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Data: key}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CreateGoalHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateGoalMsg, Configuration, error) {
	var msg CreateGoalMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, Configuration{}, errors.Wrap(err, "load msg")
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, conf, err
	}

	// Owner must authorize the deposit.
	if !h.auth.HasAddress(ctx, msg.Owner) {
		return nil, conf, errors.ErrUnauthorized
	}

	return &msg, conf, nil
}

// CompoundHandler commits accrued interest into the goal principal. This is
// pure bookkeeping and requires no authorization, so anyone can keep goals
// up to date.
type CompoundHandler struct {
	goals orm.ModelBucket
}

var _ weave.Handler = CompoundHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CompoundHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: compoundCost}, nil
}

// Deliver folds the interest accrued until the current block time into the
// principal. No coins are moved.
func (h CompoundHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	key, goal, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	if err := compound(goal, now); err != nil {
		return nil, err
	}
	if _, err := h.goals.Put(db, key, goal); err != nil {
		return nil, errors.Wrap(err, "cannot save goal")
	}
	return &weave.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CompoundHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) ([]byte, *SavingsGoal, error) {
	var msg CompoundMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	key := goalKey(msg.Owner, msg.GoalId)
	var goal SavingsGoal
	if err := h.goals.One(db, key, &goal); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load goal from the store")
	}
	if goal.Status != GoalActive {
		return nil, nil, errors.Wrapf(ErrInactiveGoal, "status %s", goal.Status)
	}

	return key, &goal, nil
}

// WithdrawHandler pays out a matured goal to its owner.
type WithdrawHandler struct {
	auth  x.Authenticator
	goals orm.ModelBucket
	bank  cash.Controller
}

var _ weave.Handler = WithdrawHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h WithdrawHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: withdrawCost}, nil
}

// Deliver closes the goal and pays the full balance, principal plus all
// accrued interest, to the owner. The custody account holds only what was
// deposited, interest above that is paid from the configuration owner
// account which acts as the interest treasury.
func (h WithdrawHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	key, goal, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	balance, err := CurrentBalance(goal, now)
	if err != nil {
		return nil, err
	}

	goal.Principal = balance
	goal.LastCompoundedAt = now
	goal.Status = GoalWithdrawn
	if _, err := h.goals.Put(db, key, goal); err != nil {
		return nil, errors.Wrap(err, "cannot save goal")
	}

	held, err := h.bank.Balance(db, goal.Address)
	if err != nil {
		return nil, err
	}
	if err := cash.MoveCoins(db, h.bank, goal.Address, goal.Owner, held); err != nil {
		return nil, err
	}
	if interest := balance - amountOf(conf, held); interest > 0 {
		c := goalCoin(conf, interest)
		if err := cash.MoveCoins(db, h.bank, conf.Owner, goal.Owner, coin.Coins{&c}); err != nil {
			return nil, errors.Wrap(err, "cannot pay interest")
		}
	}
	return &weave.DeliverResult{Data: encodeSequence(balance)}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h WithdrawHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) ([]byte, *SavingsGoal, Configuration, error) {
	var msg WithdrawMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, Configuration{}, errors.Wrap(err, "load msg")
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, conf, err
	}

	key := goalKey(msg.Owner, msg.GoalId)
	var goal SavingsGoal
	if err := h.goals.One(db, key, &goal); err != nil {
		return nil, nil, conf, errors.Wrap(err, "cannot load goal from the store")
	}

	// Owner must authorize the payout.
	if !h.auth.HasAddress(ctx, goal.Owner) {
		return nil, nil, conf, errors.ErrUnauthorized
	}

	if goal.Status != GoalActive {
		return nil, nil, conf, errors.Wrapf(ErrInactiveGoal, "status %s", goal.Status)
	}

	unlock := weave.UnixTime(int64(goal.CreatedAt) + goal.LockDuration)
	if !weave.IsExpired(ctx, unlock) {
		return nil, nil, conf, errors.Wrapf(ErrStillLocked, "until %v", unlock)
	}

	return key, &goal, conf, nil
}

// EmergencyWithdrawHandler pays out an active goal before the lock expired,
// withholding the configured penalty.
type EmergencyWithdrawHandler struct {
	auth  x.Authenticator
	goals orm.ModelBucket
	bank  cash.Controller
}

var _ weave.Handler = EmergencyWithdrawHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h EmergencyWithdrawHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: emergencyWithdrawCost}, nil
}

// Deliver closes the goal and pays the balance minus the penalty to the
// owner. The custody funds cover the payout first, any remainder of the
// custody goes to the configuration owner together with the penalty. An
// owner share above the custody is paid from the configuration owner
// account, same as regular interest.
func (h EmergencyWithdrawHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	key, goal, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	balance, err := CurrentBalance(goal, now)
	if err != nil {
		return nil, err
	}
	payout, _, err := emergencyPayout(balance, conf.EmergencyPenalty)
	if err != nil {
		return nil, err
	}

	goal.Principal = balance
	goal.LastCompoundedAt = now
	goal.Status = GoalEmergencyWithdrawn
	if _, err := h.goals.Put(db, key, goal); err != nil {
		return nil, errors.Wrap(err, "cannot save goal")
	}

	held, err := h.bank.Balance(db, goal.Address)
	if err != nil {
		return nil, err
	}
	deposited := amountOf(conf, held)

	ownerShare := payout
	if ownerShare > deposited {
		ownerShare = deposited
	}
	if ownerShare > 0 {
		c := goalCoin(conf, ownerShare)
		if err := cash.MoveCoins(db, h.bank, goal.Address, goal.Owner, coin.Coins{&c}); err != nil {
			return nil, err
		}
	}
	if rest := deposited - ownerShare; rest > 0 {
		c := goalCoin(conf, rest)
		if err := cash.MoveCoins(db, h.bank, goal.Address, conf.Owner, coin.Coins{&c}); err != nil {
			return nil, errors.Wrap(err, "cannot collect penalty")
		}
	}
	if short := payout - ownerShare; short > 0 {
		c := goalCoin(conf, short)
		if err := cash.MoveCoins(db, h.bank, conf.Owner, goal.Owner, coin.Coins{&c}); err != nil {
			return nil, errors.Wrap(err, "cannot pay interest")
		}
	}
	return &weave.DeliverResult{Data: encodeSequence(payout)}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h EmergencyWithdrawHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) ([]byte, *SavingsGoal, Configuration, error) {
	var msg EmergencyWithdrawMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, Configuration{}, errors.Wrap(err, "load msg")
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, conf, err
	}

	key := goalKey(msg.Owner, msg.GoalId)
	var goal SavingsGoal
	if err := h.goals.One(db, key, &goal); err != nil {
		return nil, nil, conf, errors.Wrap(err, "cannot load goal from the store")
	}

	// Owner must authorize the payout.
	if !h.auth.HasAddress(ctx, goal.Owner) {
		return nil, nil, conf, errors.ErrUnauthorized
	}

	if goal.Status != GoalActive {
		return nil, nil, conf, errors.Wrapf(ErrInactiveGoal, "status %s", goal.Status)
	}

	return key, &goal, conf, nil
}

// BalanceHandler reports the live balance of a goal. Nothing is persisted.
type BalanceHandler struct {
	goals orm.ModelBucket
}

var _ weave.Handler = BalanceHandler{}

// Check just verifies it is properly formed.
func (h BalanceHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: balanceCost}, nil
}

// Deliver returns the balance as of the current block time, big endian
// encoded in the result data.
func (h BalanceHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	goal, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	balance, err := CurrentBalance(goal, now)
	if err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Data: encodeSequence(balance)}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h BalanceHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SavingsGoal, error) {
	var msg BalanceMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	var goal SavingsGoal
	if err := h.goals.One(db, goalKey(msg.Owner, msg.GoalId), &goal); err != nil {
		return nil, errors.Wrap(err, "cannot load goal from the store")
	}
	if goal.Status != GoalActive {
		return nil, errors.Wrapf(ErrInactiveGoal, "status %s", goal.Status)
	}
	return &goal, nil
}
