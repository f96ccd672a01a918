package savings

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load the savings
// configuration from the genesis file.
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse the savings configuration from genesis and save it
// in the database. Initializing an already configured extension is an error.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	var conf Configuration
	switch err := gconf.Load(db, "savings", &conf); {
	case err == nil:
		return errors.Wrap(errors.ErrState, "already initialized")
	case errors.ErrNotFound.Is(err):
		// Expected, configure for the first time.
	default:
		return errors.Wrap(err, "load configuration")
	}
	return gconf.InitConfig(db, opts, "savings", &conf)
}
