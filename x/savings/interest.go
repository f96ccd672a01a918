package savings

import (
	"math"
	"math/big"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

// AccruedInterest returns the interest earned by the goal since it was last
// compounded, prorated per second up to the given time. The result is
// truncated towards zero. Time before the last compounding yields zero.
//
// The intermediate product principal * rate * elapsed does not fit int64 for
// realistic amounts, so the formula is evaluated with big integers.
func AccruedInterest(g *SavingsGoal, now weave.UnixTime) (int64, error) {
	if now <= g.LastCompoundedAt {
		return 0, nil
	}
	elapsed := int64(now) - int64(g.LastCompoundedAt)
	n := big.NewInt(g.Principal)
	n.Mul(n, big.NewInt(int64(g.InterestRate)))
	n.Mul(n, big.NewInt(elapsed))
	n.Quo(n, big.NewInt(accrualPeriod*basisPoints))
	if !n.IsInt64() {
		return 0, errors.Wrap(errors.ErrOverflow, "accrued interest")
	}
	return n.Int64(), nil
}

// CurrentBalance returns the principal of the goal together with all
// interest accrued until the given time.
func CurrentBalance(g *SavingsGoal, now weave.UnixTime) (int64, error) {
	interest, err := AccruedInterest(g, now)
	if err != nil {
		return 0, err
	}
	balance, err := add64(g.Principal, interest)
	if err != nil {
		return 0, errors.Wrap(err, "principal plus interest")
	}
	return balance, nil
}

// compound commits the interest accrued until now into the principal. The
// compounding time never moves backwards.
func compound(g *SavingsGoal, now weave.UnixTime) error {
	if now <= g.LastCompoundedAt {
		return nil
	}
	balance, err := CurrentBalance(g, now)
	if err != nil {
		return err
	}
	g.Principal = balance
	g.LastCompoundedAt = now
	return nil
}

// emergencyPayout splits the balance into the amount paid out to the owner
// and the penalty withheld, given a penalty in basis points.
func emergencyPayout(balance int64, penaltyBps uint32) (payout, penalty int64, err error) {
	n := big.NewInt(balance)
	n.Mul(n, big.NewInt(int64(penaltyBps)))
	n.Quo(n, big.NewInt(basisPoints))
	if !n.IsInt64() {
		return 0, 0, errors.Wrap(errors.ErrOverflow, "penalty")
	}
	penalty = n.Int64()
	return balance - penalty, penalty, nil
}

func add64(a, b int64) (int64, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, b)
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, b)
	}
	return a + b, nil
}
