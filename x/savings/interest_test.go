package savings

import (
	"math"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestAccruedInterest(t *testing.T) {
	cases := map[string]struct {
		goal    SavingsGoal
		now     weave.UnixTime
		want    int64
		wantErr *errors.Error
	}{
		"full period earns the full rate": {
			goal: SavingsGoal{
				Principal:        1000000000,
				InterestRate:     1000,
				LastCompoundedAt: 1000,
			},
			now:  weave.UnixTime(1000 + accrualPeriod),
			want: 100000000,
		},
		"half period earns half the rate": {
			goal: SavingsGoal{
				Principal:        1000000000,
				InterestRate:     1000,
				LastCompoundedAt: 1000,
			},
			now:  weave.UnixTime(1000 + accrualPeriod/2),
			want: 50000000,
		},
		"interest is truncated towards zero": {
			goal: SavingsGoal{
				Principal:        1000000000,
				InterestRate:     1000,
				LastCompoundedAt: 1000,
			},
			// A single second accrues 3.17 which truncates to 3.
			now:  weave.UnixTime(1001),
			want: 3,
		},
		"no time passed means no interest": {
			goal: SavingsGoal{
				Principal:        1000000000,
				InterestRate:     1000,
				LastCompoundedAt: 1000,
			},
			now:  weave.UnixTime(1000),
			want: 0,
		},
		"time before last compounding yields zero": {
			goal: SavingsGoal{
				Principal:        1000000000,
				InterestRate:     1000,
				LastCompoundedAt: 1000,
			},
			now:  weave.UnixTime(500),
			want: 0,
		},
		"zero rate accrues nothing": {
			goal: SavingsGoal{
				Principal:        1000000000,
				InterestRate:     0,
				LastCompoundedAt: 1000,
			},
			now:  weave.UnixTime(1000 + accrualPeriod),
			want: 0,
		},
		"large values do not overflow intermediate math": {
			goal: SavingsGoal{
				Principal:        math.MaxInt64 / 2,
				InterestRate:     1,
				LastCompoundedAt: 0,
			},
			now:  weave.UnixTime(accrualPeriod),
			want: math.MaxInt64 / 2 / basisPoints,
		},
		"interest beyond int64 range fails": {
			goal: SavingsGoal{
				Principal:        math.MaxInt64,
				InterestRate:     basisPoints * 10,
				LastCompoundedAt: 0,
			},
			now:     weave.UnixTime(accrualPeriod),
			wantErr: errors.ErrOverflow,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := AccruedInterest(&tc.goal, tc.now)
			if !tc.wantErr.Is(err) {
				t.Fatalf("expected %+v but got %+v", tc.wantErr, err)
			}
			if err == nil {
				assert.Equal(t, got, tc.want)
			}
		})
	}
}

func TestCompound(t *testing.T) {
	goal := SavingsGoal{
		Principal:        1000000000,
		InterestRate:     1000,
		LastCompoundedAt: 1000,
	}

	assert.Nil(t, compound(&goal, weave.UnixTime(1000+accrualPeriod)))
	assert.Equal(t, goal.Principal, int64(1100000000))
	assert.Equal(t, goal.LastCompoundedAt, weave.UnixTime(1000+accrualPeriod))

	// The second period earns interest on the compounded principal.
	assert.Nil(t, compound(&goal, weave.UnixTime(1000+2*accrualPeriod)))
	assert.Equal(t, goal.Principal, int64(1210000000))

	// Compounding never moves backwards in time.
	assert.Nil(t, compound(&goal, weave.UnixTime(1000)))
	assert.Equal(t, goal.Principal, int64(1210000000))
	assert.Equal(t, goal.LastCompoundedAt, weave.UnixTime(1000+2*accrualPeriod))
}

func TestCurrentBalanceOverflow(t *testing.T) {
	goal := SavingsGoal{
		Principal:        math.MaxInt64,
		InterestRate:     1000,
		LastCompoundedAt: 0,
	}
	if _, err := CurrentBalance(&goal, weave.UnixTime(accrualPeriod)); !errors.ErrOverflow.Is(err) {
		t.Fatalf("expected overflow, got %+v", err)
	}
}

func TestEmergencyPayout(t *testing.T) {
	cases := map[string]struct {
		balance     int64
		penaltyBps  uint32
		wantPayout  int64
		wantPenalty int64
	}{
		"ten percent": {
			balance:     1000,
			penaltyBps:  1000,
			wantPayout:  900,
			wantPenalty: 100,
		},
		"penalty is truncated in favor of the owner": {
			balance:     999,
			penaltyBps:  1000,
			wantPayout:  900,
			wantPenalty: 99,
		},
		"zero penalty": {
			balance:     1000,
			penaltyBps:  0,
			wantPayout:  1000,
			wantPenalty: 0,
		},
		"full penalty": {
			balance:     1000,
			penaltyBps:  basisPoints,
			wantPayout:  0,
			wantPenalty: 1000,
		},
		"large balance": {
			balance:     math.MaxInt64,
			penaltyBps:  1000,
			wantPayout:  math.MaxInt64 - math.MaxInt64/10,
			wantPenalty: math.MaxInt64 / 10,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			payout, penalty, err := emergencyPayout(tc.balance, tc.penaltyBps)
			assert.Nil(t, err)
			assert.Equal(t, payout, tc.wantPayout)
			assert.Equal(t, penalty, tc.wantPenalty)
		})
	}
}
