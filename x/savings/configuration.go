package savings

import (
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

const (
	// basisPoints is the denominator for all percentage values. One basis
	// point is 0.01%, so 10000 basis points represent the whole.
	basisPoints = 10000

	// accrualPeriod is the number of seconds over which the interest rate
	// of a goal applies in full (365 days).
	accrualPeriod = 365 * 24 * 60 * 60
)

func (c *Configuration) Validate() error {
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner address")
	}
	if !coin.IsCC(c.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid ticker: %q", c.Ticker)
	}
	if c.EmergencyPenalty > basisPoints {
		return errors.Wrapf(errors.ErrInput, "emergency penalty above %d basis points", basisPoints)
	}
	return nil
}

// loadConf returns the savings configuration. A missing configuration means
// the extension was never initialized on this chain.
func loadConf(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "savings", &conf); err != nil {
		if errors.ErrNotFound.Is(err) {
			return conf, errors.Wrap(ErrNotInitialized, "no configuration")
		}
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}

// goalCoin converts an amount in the smallest unit of the configured token
// into a coin value.
func goalCoin(conf Configuration, amount int64) coin.Coin {
	return coin.Coin{
		Whole:      amount / coin.FracUnit,
		Fractional: amount % coin.FracUnit,
		Ticker:     conf.Ticker,
	}
}

// amountOf returns how much of the configured token the coins hold, in the
// smallest unit. Coins of any other ticker are ignored.
func amountOf(conf Configuration, cs coin.Coins) int64 {
	for _, c := range cs {
		if c.Ticker == conf.Ticker {
			return c.Whole*coin.FracUnit + c.Fractional
		}
	}
	return 0
}
