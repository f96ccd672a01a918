package savings

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func validGoal() SavingsGoal {
	key := goalKey(weavetest.NewCondition().Address(), 0)
	return SavingsGoal{
		Metadata:         &weave.Metadata{Schema: 1},
		Owner:            weavetest.NewCondition().Address(),
		Address:          GoalCondition(key).Address(),
		Principal:        1000,
		InterestRate:     500,
		CreatedAt:        weave.UnixTime(1600000000),
		LockDuration:     3600,
		LastCompoundedAt: weave.UnixTime(1600000000),
		Status:           GoalActive,
	}
}

func TestSavingsGoalValidate(t *testing.T) {
	cases := map[string]struct {
		mutator func(g *SavingsGoal)
		wantErr *errors.Error
	}{
		"valid goal": {},
		"withdrawn goal is valid": {
			mutator: func(g *SavingsGoal) {
				g.Status = GoalWithdrawn
			},
		},
		"missing metadata": {
			mutator: func(g *SavingsGoal) {
				g.Metadata = nil
			},
			wantErr: errors.ErrMetadata,
		},
		"missing owner": {
			mutator: func(g *SavingsGoal) {
				g.Owner = nil
			},
			wantErr: errors.ErrEmpty,
		},
		"zero principal": {
			mutator: func(g *SavingsGoal) {
				g.Principal = 0
			},
			wantErr: errors.ErrAmount,
		},
		"negative principal": {
			mutator: func(g *SavingsGoal) {
				g.Principal = -5
			},
			wantErr: errors.ErrAmount,
		},
		"missing creation time": {
			mutator: func(g *SavingsGoal) {
				g.CreatedAt = 0
				g.LastCompoundedAt = 0
			},
			wantErr: errors.ErrInput,
		},
		"zero lock duration": {
			mutator: func(g *SavingsGoal) {
				g.LockDuration = 0
			},
			wantErr: errors.ErrInput,
		},
		"lock duration above the cap": {
			mutator: func(g *SavingsGoal) {
				g.LockDuration = maxLockDuration + 1
			},
			wantErr: errors.ErrInput,
		},
		"interest rate above the cap": {
			mutator: func(g *SavingsGoal) {
				g.InterestRate = maxInterestRate + 1
			},
			wantErr: errors.ErrInput,
		},
		"compounded before creation": {
			mutator: func(g *SavingsGoal) {
				g.LastCompoundedAt = g.CreatedAt - 1
			},
			wantErr: errors.ErrState,
		},
		"invalid status": {
			mutator: func(g *SavingsGoal) {
				g.Status = GoalInvalid
			},
			wantErr: errors.ErrState,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			goal := validGoal()
			if tc.mutator != nil {
				tc.mutator(&goal)
			}
			if err := goal.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("expected %+v but got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestSavingsGoalCopy(t *testing.T) {
	goal := validGoal()
	cp, ok := goal.Copy().(*SavingsGoal)
	if !ok {
		t.Fatal("copy is not a savings goal")
	}
	assert.Equal(t, &goal, cp)

	cp.Principal = 42
	assert.Equal(t, goal.Principal, int64(1000))
}

func TestGoalKey(t *testing.T) {
	owner := weavetest.NewCondition().Address()

	key := goalKey(owner, 7)
	assert.Equal(t, len(key), len(owner)+8)
	assert.Equal(t, weave.Address(key[:len(owner)]), owner)
	assert.Equal(t, key[len(owner):], []byte{0, 0, 0, 0, 0, 0, 0, 7})

	// Keys are deterministic so the same condition address is derived
	// every time.
	again := goalKey(owner, 7)
	assert.Equal(t, GoalCondition(key).Address(), GoalCondition(again).Address())
}

func TestSavingsAccountValidate(t *testing.T) {
	account := SavingsAccount{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    weavetest.NewCondition().Address(),
		NumGoals: 3,
	}
	assert.Nil(t, account.Validate())

	account.Owner = nil
	if err := account.Validate(); !errors.ErrEmpty.Is(err) {
		t.Fatalf("expected empty error, got %+v", err)
	}
}

func TestConfigurationValidate(t *testing.T) {
	cases := map[string]struct {
		conf    Configuration
		wantErr *errors.Error
	}{
		"valid configuration": {
			conf: Configuration{
				Owner:            weavetest.NewCondition().Address(),
				Ticker:           "SAV",
				EmergencyPenalty: 1000,
			},
		},
		"missing owner": {
			conf: Configuration{
				Ticker: "SAV",
			},
			wantErr: errors.ErrEmpty,
		},
		"invalid ticker": {
			conf: Configuration{
				Owner:  weavetest.NewCondition().Address(),
				Ticker: "x",
			},
			wantErr: errors.ErrCurrency,
		},
		"penalty above 100 percent": {
			conf: Configuration{
				Owner:            weavetest.NewCondition().Address(),
				Ticker:           "SAV",
				EmergencyPenalty: basisPoints + 1,
			},
			wantErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.conf.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("expected %+v but got %+v", tc.wantErr, err)
			}
		})
	}
}
