package savings_test

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"

	"github.com/iov-one/savings/x/savings"
)

const (
	ticker = "SAV"
	// One year of seconds, the period over which an interest rate
	// applies in full.
	year int64 = 365 * 24 * 60 * 60
)

var genesisTime = time.Unix(1600000000, 0)

type testEnv struct {
	admin weave.Condition
	bank  cash.WalletBucket
	ctrl  cash.Controller
	goals orm.ModelBucket
	rt    *app.Router
	authn *weavetest.CtxAuth
}

func newTestEnv() *testEnv {
	bank := cash.NewBucket()
	ctrl := cash.NewController(bank)
	rt := app.NewRouter()
	authn := &weavetest.CtxAuth{Key: "auth"}
	savings.RegisterRoutes(rt, x.ChainAuth(authn), ctrl)
	return &testEnv{
		admin: weavetest.NewCondition(),
		bank:  bank,
		ctrl:  ctrl,
		goals: savings.NewGoalBucket(),
		rt:    rt,
		authn: authn,
	}
}

func (e *testEnv) newDB(t *testing.T) weave.CacheableKVStore {
	t.Helper()
	db := store.MemStore()
	migration.MustInitPkg(db, "savings", "cash")
	conf := savings.Configuration{
		Owner:            e.admin.Address(),
		Ticker:           ticker,
		EmergencyPenalty: 1000,
	}
	assert.Nil(t, gconf.Save(db, "savings", &conf))
	return db
}

func (e *testEnv) setBalance(t *testing.T, db weave.KVStore, addr weave.Address, amount int64) {
	t.Helper()
	c := coin.Coin{Whole: amount / coin.FracUnit, Fractional: amount % coin.FracUnit, Ticker: ticker}
	acct, err := cash.WalletWith(addr, &c)
	assert.Nil(t, err)
	assert.Nil(t, e.bank.Save(db, acct))
}

func (e *testEnv) balance(t *testing.T, db weave.KVStore, addr weave.Address) int64 {
	t.Helper()
	coins, err := e.ctrl.Balance(db, addr)
	if err != nil {
		if errors.ErrEmpty.Is(err) {
			return 0
		}
		t.Fatalf("balance of %s: %+v", addr, err)
	}
	var total int64
	for _, c := range coins {
		if c.Ticker == ticker {
			total += c.Whole*coin.FracUnit + c.Fractional
		}
	}
	return total
}

func (e *testEnv) ctxAt(at time.Time, signers ...weave.Condition) weave.Context {
	ctx := weave.WithHeight(context.Background(), 500)
	ctx = weave.WithBlockTime(ctx, at)
	return e.authn.SetConditions(ctx, signers...)
}

// createGoal delivers a create message and returns the goal key.
func (e *testEnv) createGoal(t *testing.T, db weave.KVStore, owner weave.Condition, amount, lock int64, rate uint32) []byte {
	t.Helper()
	tx := &weavetest.Tx{Msg: &savings.CreateGoalMsg{
		Metadata:     &weave.Metadata{Schema: 1},
		Owner:        owner.Address(),
		Amount:       amount,
		LockDuration: lock,
		InterestRate: rate,
	}}
	res, err := e.rt.Deliver(e.ctxAt(genesisTime, owner), db, tx)
	assert.Nil(t, err)
	return res.Data
}

func TestCreateGoalHandler(t *testing.T) {
	env := newTestEnv()
	alice := weavetest.NewCondition()
	stranger := weavetest.NewCondition()

	cases := map[string]struct {
		setup          func(t *testing.T, db weave.KVStore)
		signer         weave.Condition
		mutator        func(msg *savings.CreateGoalMsg)
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.KVStore, data []byte)
	}{
		"happy path": {
			setup: func(t *testing.T, db weave.KVStore) {
				env.setBalance(t, db, alice.Address(), 3000)
			},
			signer: alice,
			check: func(t *testing.T, db weave.KVStore, data []byte) {
				var goal savings.SavingsGoal
				assert.Nil(t, env.goals.One(db, data, &goal))
				assert.Equal(t, goal.Status, savings.GoalActive)
				assert.Equal(t, goal.Principal, int64(1000))
				assert.Equal(t, goal.CreatedAt, weave.AsUnixTime(genesisTime))
				assert.Equal(t, goal.LastCompoundedAt, goal.CreatedAt)
				// Deposit is held in custody, not with the owner.
				assert.Equal(t, env.balance(t, db, goal.Address), int64(1000))
				assert.Equal(t, env.balance(t, db, alice.Address()), int64(2000))

				var account savings.SavingsAccount
				accounts := savings.NewAccountBucket()
				assert.Nil(t, accounts.One(db, alice.Address(), &account))
				assert.Equal(t, account.NumGoals, uint64(1))
			},
		},
		"amount must be positive": {
			signer: alice,
			mutator: func(msg *savings.CreateGoalMsg) {
				msg.Amount = 0
			},
			wantCheckErr:   errors.ErrAmount,
			wantDeliverErr: errors.ErrAmount,
		},
		"lock duration must be positive": {
			signer: alice,
			mutator: func(msg *savings.CreateGoalMsg) {
				msg.LockDuration = -1
			},
			wantCheckErr:   errors.ErrInput,
			wantDeliverErr: errors.ErrInput,
		},
		"only the owner can deposit": {
			signer:         stranger,
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"insufficient funds": {
			signer:         alice,
			wantDeliverErr: errors.ErrEmpty,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := env.newDB(t)
			if tc.setup != nil {
				tc.setup(t, db)
			}
			msg := &savings.CreateGoalMsg{
				Metadata:     &weave.Metadata{Schema: 1},
				Owner:        alice.Address(),
				Amount:       1000,
				LockDuration: year,
				InterestRate: 500,
			}
			if tc.mutator != nil {
				tc.mutator(msg)
			}
			tx := &weavetest.Tx{Msg: msg}
			ctx := env.ctxAt(genesisTime, tc.signer)

			cache := db.CacheWrap()
			if _, err := env.rt.Check(ctx, cache, tx); !tc.wantCheckErr.Is(err) {
				t.Fatalf("check expected %+v but got %+v", tc.wantCheckErr, err)
			}
			cache.Discard()

			res, err := env.rt.Deliver(ctx, cache, tx)
			if !tc.wantDeliverErr.Is(err) {
				t.Fatalf("deliver expected %+v but got %+v", tc.wantDeliverErr, err)
			}
			if tc.check != nil {
				tc.check(t, cache, res.Data)
			}
		})
	}
}

func TestCreateGoalRequiresInitialization(t *testing.T) {
	env := newTestEnv()
	alice := weavetest.NewCondition()

	db := store.MemStore()
	migration.MustInitPkg(db, "savings", "cash")

	tx := &weavetest.Tx{Msg: &savings.CreateGoalMsg{
		Metadata:     &weave.Metadata{Schema: 1},
		Owner:        alice.Address(),
		Amount:       1000,
		LockDuration: year,
		InterestRate: 500,
	}}
	_, err := env.rt.Deliver(env.ctxAt(genesisTime, alice), db, tx)
	if !savings.ErrNotInitialized.Is(err) {
		t.Fatalf("expected not initialized, got %+v", err)
	}
}

func TestGoalIDsArePerOwner(t *testing.T) {
	env := newTestEnv()
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()

	db := env.newDB(t)
	env.setBalance(t, db, alice.Address(), 5000)
	env.setBalance(t, db, bob.Address(), 5000)

	first := env.createGoal(t, db, alice, 1000, year, 500)
	second := env.createGoal(t, db, alice, 1000, year, 500)
	other := env.createGoal(t, db, bob, 1000, year, 500)

	// Each owner gets an independent sequence starting at zero.
	assert.Equal(t, first[len(first)-8:], weavetest.SequenceID(0))
	assert.Equal(t, second[len(second)-8:], weavetest.SequenceID(1))
	assert.Equal(t, other[len(other)-8:], weavetest.SequenceID(0))
}

func TestCompoundHandler(t *testing.T) {
	env := newTestEnv()
	alice := weavetest.NewCondition()
	stranger := weavetest.NewCondition()

	db := env.newDB(t)
	env.setBalance(t, db, alice.Address(), 1000000000)
	key := env.createGoal(t, db, alice, 1000000000, 2*year, 1000)

	compoundTx := &weavetest.Tx{Msg: &savings.CompoundMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    alice.Address(),
		GoalId:   0,
	}}

	// Anyone can compound, not only the goal owner.
	oneYear := genesisTime.Add(time.Duration(year) * time.Second)
	_, err := env.rt.Deliver(env.ctxAt(oneYear, stranger), db, compoundTx)
	assert.Nil(t, err)

	var goal savings.SavingsGoal
	assert.Nil(t, env.goals.One(db, key, &goal))
	// 10% per year on 1000000000.
	assert.Equal(t, goal.Principal, int64(1100000000))
	assert.Equal(t, goal.LastCompoundedAt, weave.AsUnixTime(oneYear))

	// Compounding again at the same time is a no-op.
	_, err = env.rt.Deliver(env.ctxAt(oneYear, stranger), db, compoundTx)
	assert.Nil(t, err)
	assert.Nil(t, env.goals.One(db, key, &goal))
	assert.Equal(t, goal.Principal, int64(1100000000))

	// Compounding compounds: the second year earns interest on the
	// interest of the first.
	twoYears := genesisTime.Add(time.Duration(2*year) * time.Second)
	_, err = env.rt.Deliver(env.ctxAt(twoYears, stranger), db, compoundTx)
	assert.Nil(t, err)
	assert.Nil(t, env.goals.One(db, key, &goal))
	assert.Equal(t, goal.Principal, int64(1210000000))

	// A missing goal cannot be compounded.
	missingTx := &weavetest.Tx{Msg: &savings.CompoundMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    alice.Address(),
		GoalId:   99,
	}}
	if _, err := env.rt.Deliver(env.ctxAt(twoYears, stranger), db, missingTx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("expected not found, got %+v", err)
	}
}

func TestWithdrawHandler(t *testing.T) {
	env := newTestEnv()
	alice := weavetest.NewCondition()
	stranger := weavetest.NewCondition()

	const principal int64 = 1000000000

	setup := func(t *testing.T) weave.KVStore {
		db := env.newDB(t)
		env.setBalance(t, db, alice.Address(), principal)
		// The treasury pays interest above the deposit.
		env.setBalance(t, db, env.admin.Address(), 10*principal)
		env.createGoal(t, db, alice, principal, year, 1000)
		return db
	}

	withdrawTx := func() *weavetest.Tx {
		return &weavetest.Tx{Msg: &savings.WithdrawMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    alice.Address(),
			GoalId:   0,
		}}
	}

	t.Run("one second before unlock", func(t *testing.T) {
		db := setup(t)
		at := genesisTime.Add(time.Duration(year-1) * time.Second)
		_, err := env.rt.Deliver(env.ctxAt(at, alice), db, withdrawTx())
		if !savings.ErrStillLocked.Is(err) {
			t.Fatalf("expected still locked, got %+v", err)
		}
	})

	t.Run("exactly at unlock", func(t *testing.T) {
		db := setup(t)
		at := genesisTime.Add(time.Duration(year) * time.Second)
		res, err := env.rt.Deliver(env.ctxAt(at, alice), db, withdrawTx())
		assert.Nil(t, err)
		assert.Equal(t, res.Data, weavetest.SequenceID(1100000000))

		// 10% interest for a full year.
		assert.Equal(t, env.balance(t, db, alice.Address()), int64(1100000000))

		var goal savings.SavingsGoal
		assert.Nil(t, env.goals.One(db, env.goalKey(alice.Address(), 0), &goal))
		assert.Equal(t, goal.Status, savings.GoalWithdrawn)
		assert.Equal(t, goal.Principal, int64(1100000000))
		// Custody account is emptied.
		assert.Equal(t, env.balance(t, db, goal.Address), int64(0))
	})

	t.Run("after unlock interest keeps accruing", func(t *testing.T) {
		db := setup(t)
		at := genesisTime.Add(time.Duration(2*year) * time.Second)
		_, err := env.rt.Deliver(env.ctxAt(at, alice), db, withdrawTx())
		assert.Nil(t, err)
		// Two years of simple interest.
		assert.Equal(t, env.balance(t, db, alice.Address()), int64(1200000000))
	})

	t.Run("only the owner can withdraw", func(t *testing.T) {
		db := setup(t)
		at := genesisTime.Add(time.Duration(year) * time.Second)
		_, err := env.rt.Deliver(env.ctxAt(at, stranger), db, withdrawTx())
		if !errors.ErrUnauthorized.Is(err) {
			t.Fatalf("expected unauthorized, got %+v", err)
		}
	})

	t.Run("withdrawing twice fails", func(t *testing.T) {
		db := setup(t)
		at := genesisTime.Add(time.Duration(year) * time.Second)
		_, err := env.rt.Deliver(env.ctxAt(at, alice), db, withdrawTx())
		assert.Nil(t, err)
		_, err = env.rt.Deliver(env.ctxAt(at, alice), db, withdrawTx())
		if !savings.ErrInactiveGoal.Is(err) {
			t.Fatalf("expected inactive goal, got %+v", err)
		}
	})
}

func TestEmergencyWithdrawHandler(t *testing.T) {
	env := newTestEnv()
	alice := weavetest.NewCondition()

	const principal int64 = 1000000000

	setup := func(t *testing.T) weave.KVStore {
		db := env.newDB(t)
		env.setBalance(t, db, alice.Address(), principal)
		env.setBalance(t, db, env.admin.Address(), 10*principal)
		env.createGoal(t, db, alice, principal, year, 1000)
		return db
	}

	emergencyTx := func() *weavetest.Tx {
		return &weavetest.Tx{Msg: &savings.EmergencyWithdrawMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    alice.Address(),
			GoalId:   0,
		}}
	}

	t.Run("penalty is applied to the full balance", func(t *testing.T) {
		db := setup(t)
		adminBefore := env.balance(t, db, env.admin.Address())

		// Half a year in: balance is 1050000000, the 10% penalty
		// leaves 945000000 for the owner.
		at := genesisTime.Add(time.Duration(year/2) * time.Second)
		res, err := env.rt.Deliver(env.ctxAt(at, alice), db, emergencyTx())
		assert.Nil(t, err)
		assert.Equal(t, res.Data, weavetest.SequenceID(945000000))

		assert.Equal(t, env.balance(t, db, alice.Address()), int64(945000000))

		var goal savings.SavingsGoal
		assert.Nil(t, env.goals.One(db, env.goalKey(alice.Address(), 0), &goal))
		assert.Equal(t, goal.Status, savings.GoalEmergencyWithdrawn)
		assert.Equal(t, env.balance(t, db, goal.Address), int64(0))

		// The custody remainder, deposit minus owner payout, goes to
		// the configuration owner.
		assert.Equal(t, env.balance(t, db, env.admin.Address()), adminBefore+principal-945000000)
	})

	t.Run("allowed right after creation", func(t *testing.T) {
		db := setup(t)
		_, err := env.rt.Deliver(env.ctxAt(genesisTime, alice), db, emergencyTx())
		assert.Nil(t, err)
		// No interest yet, only the penalty applies.
		assert.Equal(t, env.balance(t, db, alice.Address()), int64(900000000))
	})

	t.Run("closed goal cannot be drained again", func(t *testing.T) {
		db := setup(t)
		at := genesisTime.Add(time.Duration(year/2) * time.Second)
		_, err := env.rt.Deliver(env.ctxAt(at, alice), db, emergencyTx())
		assert.Nil(t, err)
		_, err = env.rt.Deliver(env.ctxAt(at, alice), db, emergencyTx())
		if !savings.ErrInactiveGoal.Is(err) {
			t.Fatalf("expected inactive goal, got %+v", err)
		}
	})
}

func TestBalanceHandler(t *testing.T) {
	env := newTestEnv()
	alice := weavetest.NewCondition()
	stranger := weavetest.NewCondition()

	db := env.newDB(t)
	env.setBalance(t, db, alice.Address(), 1000000000)
	env.createGoal(t, db, alice, 1000000000, year, 1000)

	balanceTx := &weavetest.Tx{Msg: &savings.BalanceMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    alice.Address(),
		GoalId:   0,
	}}

	// Balance reporting is open to anyone.
	at := genesisTime.Add(time.Duration(year/2) * time.Second)
	res, err := env.rt.Deliver(env.ctxAt(at, stranger), db, balanceTx)
	assert.Nil(t, err)
	assert.Equal(t, res.Data, weavetest.SequenceID(1050000000))

	// Interest accrues per second, truncated towards zero.
	at = genesisTime.Add(time.Second)
	res, err = env.rt.Deliver(env.ctxAt(at, stranger), db, balanceTx)
	assert.Nil(t, err)
	assert.Equal(t, res.Data, weavetest.SequenceID(1000000003))

	// A closed goal has no live balance to report.
	env.setBalance(t, db, env.admin.Address(), 1000000000)
	withdrawTx := &weavetest.Tx{Msg: &savings.WithdrawMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    alice.Address(),
		GoalId:   0,
	}}
	at = genesisTime.Add(time.Duration(year) * time.Second)
	_, err = env.rt.Deliver(env.ctxAt(at, alice), db, withdrawTx)
	assert.Nil(t, err)
	if _, err := env.rt.Deliver(env.ctxAt(at, stranger), db, balanceTx); !savings.ErrInactiveGoal.Is(err) {
		t.Fatalf("expected inactive goal, got %+v", err)
	}
}

func TestUpdateConfigurationHandler(t *testing.T) {
	env := newTestEnv()
	stranger := weavetest.NewCondition()

	update := func(penalty uint32) *weavetest.Tx {
		return &weavetest.Tx{Msg: &savings.UpdateConfigurationMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Patch: &savings.Configuration{
				EmergencyPenalty: penalty,
			},
		}}
	}

	t.Run("owner can update the penalty", func(t *testing.T) {
		db := env.newDB(t)
		_, err := env.rt.Deliver(env.ctxAt(genesisTime, env.admin), db, update(2500))
		assert.Nil(t, err)

		var conf savings.Configuration
		assert.Nil(t, gconf.Load(db, "savings", &conf))
		assert.Equal(t, conf.EmergencyPenalty, uint32(2500))
		// Zero values in the patch keep the old configuration.
		assert.Equal(t, conf.Ticker, ticker)
		assert.Equal(t, conf.Owner, env.admin.Address())
	})

	t.Run("only the owner can update", func(t *testing.T) {
		db := env.newDB(t)
		_, err := env.rt.Deliver(env.ctxAt(genesisTime, stranger), db, update(2500))
		if !errors.ErrUnauthorized.Is(err) {
			t.Fatalf("expected unauthorized, got %+v", err)
		}
	})

	t.Run("penalty above 100 percent is rejected", func(t *testing.T) {
		db := env.newDB(t)
		_, err := env.rt.Deliver(env.ctxAt(genesisTime, env.admin), db, update(10001))
		if !errors.ErrInput.Is(err) {
			t.Fatalf("expected input error, got %+v", err)
		}
	})
}

// goalKey rebuilds the storage key of a goal for assertions.
func (e *testEnv) goalKey(owner weave.Address, id uint64) []byte {
	key := make([]byte, 0, len(owner)+8)
	key = append(key, owner...)
	return append(key, weavetest.SequenceID(id)...)
}
