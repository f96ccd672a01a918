package savings_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"

	"github.com/iov-one/savings/x/savings"
)

func TestInitializerFromGenesis(t *testing.T) {
	admin := weavetest.NewCondition().Address()
	opts := weave.Options{
		"conf": json.RawMessage(fmt.Sprintf(`{
			"savings": {
				"owner": %q,
				"ticker": "SAV",
				"emergency_penalty": 1000
			}
		}`, admin)),
	}

	db := store.MemStore()
	var ini savings.Initializer
	assert.Nil(t, ini.FromGenesis(opts, weave.GenesisParams{}, db))

	var conf savings.Configuration
	assert.Nil(t, gconf.Load(db, "savings", &conf))
	assert.Equal(t, conf.Owner, admin)
	assert.Equal(t, conf.Ticker, "SAV")
	assert.Equal(t, conf.EmergencyPenalty, uint32(1000))

	// Initializing a configured chain again must fail.
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); !errors.ErrState.Is(err) {
		t.Fatalf("expected state error, got %+v", err)
	}
}

func TestInitializerRejectsInvalidConfiguration(t *testing.T) {
	admin := weavetest.NewCondition().Address()
	opts := weave.Options{
		"conf": json.RawMessage(fmt.Sprintf(`{
			"savings": {
				"owner": %q,
				"ticker": "SAV",
				"emergency_penalty": 10001
			}
		}`, admin)),
	}

	db := store.MemStore()
	var ini savings.Initializer
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); err == nil {
		t.Fatal("expected an error for a penalty above 100 percent")
	}
}
